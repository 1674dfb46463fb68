// Package team defines the tracked team's identity and the alias
// matching used to decide whether a scraped name refers to it.
//
// Alias matching drives home/away orientation when an upstream source
// does not state it explicitly, and filters out rows for other teams
// that share a page with the tracked one.
package team
