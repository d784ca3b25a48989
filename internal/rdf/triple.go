package rdf

import "fmt"

// Triple is a single (subject, predicate, object) fact, the atomic unit
// of the graph. Subjects are always nodes; objects are nodes for IsA,
// ByArtist, and InAlbum, and literals for Name and Duration.
type Triple struct {
	Subject   Node
	Predicate Predicate
	Object    Term
}

// NewTriple builds a validated triple. The predicate must belong to the
// closed vocabulary and the object must be non-nil.
func NewTriple(subject Node, predicate Predicate, object Term) (Triple, error) {
	if !ValidPredicates[predicate] {
		return Triple{}, fmt.Errorf("invalid predicate %q", string(predicate))
	}
	if object == nil {
		return Triple{}, fmt.Errorf("triple %s %s has nil object", subject, predicate)
	}
	return Triple{Subject: subject, Predicate: predicate, Object: object}, nil
}

// MustTriple is NewTriple that panics on invalid input. For composing
// fixed triples in tests and projection code where the predicate is a
// package constant.
func MustTriple(subject Node, predicate Predicate, object Term) Triple {
	t, err := NewTriple(subject, predicate, object)
	if err != nil {
		panic(err)
	}
	return t
}

// Equal reports whether two triples are the same fact. Terms compare by
// kind and exact text.
func (t Triple) Equal(other Triple) bool {
	return t.Subject == other.Subject &&
		t.Predicate == other.Predicate &&
		termEqual(t.Object, other.Object)
}

// String renders the triple for diagnostics, not for the exchange
// format (see package store for that).
func (t Triple) String() string {
	return fmt.Sprintf("(%s %s %s)", t.Subject, t.Predicate, t.Object)
}

func termEqual(a, b Term) bool {
	switch av := a.(type) {
	case Node:
		bv, ok := b.(Node)
		return ok && av == bv
	case Literal:
		bv, ok := b.(Literal)
		return ok && av == bv
	default:
		return false
	}
}
