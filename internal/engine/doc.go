// Package engine evaluates the fixed set of analytical queries over a
// playlist triple store.
//
// ARCHITECTURE:
//
// Basic-Graph-Pattern Joins:
// Every query is a short list of triple patterns evaluated left to
// right. The first pattern seeds the binding rows; each later pattern
// runs once per existing row with its already-bound variables
// substituted as concrete values, extending the row with any new
// variables. A row with no matching triple is dropped (inner-join
// semantics, no OPTIONAL). Evaluation order is the store's insertion
// order, so results are deterministic; the orderings that matter are
// applied explicitly per query.
//
// Typed Filters, No Interpolation:
// Caller-supplied values (duration thresholds, artist names) enter the
// evaluator as bound pattern terms or filter closures, never by
// splicing text into a query string.
//
// Explicit Store:
// The engine holds the store instance it was constructed with. There is
// no package-level graph. All queries are pure reads; under the
// store's read-only-after-load discipline independent queries may run
// on separate goroutines against the same engine.
//
// CRITICAL PATTERNS:
//
// Raw-Text Duration Ordering:
// Sorting and threshold filtering on duration compare the raw "M:SS"
// literal text (see package rdf). Only TotalDuration converts to
// seconds. Do not "fix" this to numeric comparison.
package engine
