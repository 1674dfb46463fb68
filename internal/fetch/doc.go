// Package fetch is the HTTP collaborator of the resolution cascade:
// it owns the per-request timeout and the bounded fixed-delay retry
// policy. Exceeding the retry bound is reported as an ordinary error;
// the cascade turns it into "this source produced nothing".
package fetch
