// Package extract turns raw upstream content into loosely-typed
// candidate fixtures. Three strategies share one contract: a
// structured-API extractor for JSON endpoints, an embedded-JSON
// extractor for pages carrying serialized state in script blocks, and
// an HTML-table extractor for rendered schedule tables.
//
// Extractors never fail loudly. Malformed or unrecognizable content
// produces an empty candidate list so the resolution cascade can move
// on to the next source.
package extract
