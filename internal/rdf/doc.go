// Package rdf defines the triple data model for the playlist graph.
//
// The model is deliberately small: a closed predicate vocabulary, opaque
// node identifiers, and string-valued literals. There is no schema layer
// and no open-world extensibility - unknown predicates are rejected at
// triple construction time so a typo fails fast instead of silently
// matching nothing in pattern lookups.
//
// CRITICAL PATTERNS:
//
// Raw-Text Duration Ordering:
// Track durations are carried as literals in their exact "M:SS" textual
// form. Every row-level comparison (sorting, threshold filters) operates
// on that raw text with plain string comparison, so "10:00" orders
// before "2:00". Only the explicit total-duration aggregate converts to
// seconds. This mirrors the behavior of the system this tool replaces
// and is preserved intentionally; see DESIGN.md before "fixing" it.
//
// Immutability:
// Nodes, literals, and triples are value types. Once a triple is built
// it is never mutated; corrections require rebuilding the whole graph.
package rdf
