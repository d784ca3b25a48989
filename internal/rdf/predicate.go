package rdf

import "fmt"

// Predicate identifies the relation a triple asserts. The vocabulary is
// closed: exactly five predicates exist, and ParsePredicate rejects
// anything else. The string value doubles as the wire token in the
// graph-exchange text form.
type Predicate string

const (
	// PredicateIsA types a subject node ("?track type MusicRecording").
	PredicateIsA Predicate = "type"

	// PredicateName attaches a display-name literal to a track, artist,
	// or album node.
	PredicateName Predicate = "name"

	// PredicateDuration attaches the raw "M:SS" duration literal to a
	// track node.
	PredicateDuration Predicate = "duration"

	// PredicateByArtist links a track node to its artist node.
	PredicateByArtist Predicate = "byArtist"

	// PredicateInAlbum links a track node to its album node.
	PredicateInAlbum Predicate = "inAlbum"
)

// ValidPredicates defines the allowed predicate tokens.
var ValidPredicates = map[Predicate]bool{
	PredicateIsA:      true,
	PredicateName:     true,
	PredicateDuration: true,
	PredicateByArtist: true,
	PredicateInAlbum:  true,
}

// ParsePredicate validates a wire token against the closed vocabulary.
// Returns error for unknown tokens so typos fail fast instead of
// silently mismatching in pattern lookups.
func ParsePredicate(token string) (Predicate, error) {
	p := Predicate(token)
	if !ValidPredicates[p] {
		return "", fmt.Errorf("unknown predicate %q: must be one of type, name, duration, byArtist, inAlbum", token)
	}
	return p, nil
}
