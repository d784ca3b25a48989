// Package store implements the in-memory triple store and its
// graph-exchange text codec.
//
// ARCHITECTURE:
//
// Build-Once, Read-Many:
// The store is populated once per process invocation - either from
// projected catalog records or by parsing a graph file - and is treated
// as immutable for the rest of the session. Under that discipline every
// Match call is safely re-entrant without locking. Nothing may call
// Insert after the initial load; incremental mutation would need a
// single-writer/many-readers scheme because matching is not
// insert-atomic.
//
// Set Semantics, Insertion Order:
// Insert deduplicates on full-triple equality, and Match enumerates in
// insertion order. That order is stable and deterministic but carries
// no meaning; the orderings that matter are applied by the query engine.
//
// Linear Scan:
// Match scans the whole triple slice per call. At this scale (tens to
// low thousands of triples) an index would not pay for itself; adding a
// predicate/subject index later must not change external behavior.
package store
