package store

import (
	"github.com/roach88/playgraph/internal/rdf"
)

// AnyPredicate is the wildcard predicate for Match. The empty token is
// never a valid predicate, so it is free to mean "unbound".
const AnyPredicate rdf.Predicate = ""

// Store holds the playlist triple set.
//
// The zero value is not usable; call New.
type Store struct {
	// triples preserves insertion order for deterministic enumeration.
	triples []rdf.Triple

	// seen provides set semantics on full-triple equality. Triples are
	// comparable values (Node/Literal are string kinds), so they key a
	// map directly.
	seen map[rdf.Triple]struct{}
}

// New creates an empty store.
func New() *Store {
	return &Store{seen: make(map[rdf.Triple]struct{})}
}

// Insert appends a triple unless an equal triple is already present.
// Returns true if the triple was added. Idempotent: projecting the same
// record twice leaves the store unchanged.
func (s *Store) Insert(t rdf.Triple) bool {
	if _, dup := s.seen[t]; dup {
		return false
	}
	s.seen[t] = struct{}{}
	s.triples = append(s.triples, t)
	return true
}

// InsertAll inserts a batch of triples in order.
func (s *Store) InsertAll(triples []rdf.Triple) {
	for _, t := range triples {
		s.Insert(t)
	}
}

// Len returns the number of distinct triples held.
func (s *Store) Len() int {
	return len(s.triples)
}

// Triples returns a copy of the triple set in insertion order. Callers
// own the returned slice; the store's internal state is never exposed.
func (s *Store) Triples() []rdf.Triple {
	out := make([]rdf.Triple, len(s.triples))
	copy(out, s.triples)
	return out
}

// Match returns every triple whose bound pattern components equal the
// pattern, in insertion order.
//
// Wildcards: subject nil matches any subject, predicate AnyPredicate
// matches any predicate, object nil matches any object. A bound subject
// must be a Node; a bound object may be a Node or a Literal and matches
// by kind and exact text.
func (s *Store) Match(subject rdf.Term, predicate rdf.Predicate, object rdf.Term) []rdf.Triple {
	var out []rdf.Triple
	for _, t := range s.triples {
		if subject != nil {
			n, ok := subject.(rdf.Node)
			if !ok || t.Subject != n {
				continue
			}
		}
		if predicate != AnyPredicate && t.Predicate != predicate {
			continue
		}
		if object != nil && !sameTerm(t.Object, object) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Contains reports whether an equal triple is present.
func (s *Store) Contains(t rdf.Triple) bool {
	_, ok := s.seen[t]
	return ok
}

// Equal reports set equality with another store, ignoring insertion
// order. Used by the codec round-trip contract.
func (s *Store) Equal(other *Store) bool {
	if len(s.seen) != len(other.seen) {
		return false
	}
	for t := range s.seen {
		if _, ok := other.seen[t]; !ok {
			return false
		}
	}
	return true
}

func sameTerm(a, b rdf.Term) bool {
	switch av := a.(type) {
	case rdf.Node:
		bv, ok := b.(rdf.Node)
		return ok && av == bv
	case rdf.Literal:
		bv, ok := b.(rdf.Literal)
		return ok && av == bv
	default:
		return false
	}
}
