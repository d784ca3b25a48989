package engine

import (
	"github.com/roach88/playgraph/internal/rdf"
	"github.com/roach88/playgraph/internal/store"
)

// Variable names shared by the query definitions.
const (
	varTrack  Var = "track"
	varTitle  Var = "title"
	varDur    Var = "duration"
	varArtist Var = "artist"
	varAlbum  Var = "album"
	varName   Var = "name"
)

// Engine answers the fixed analytical queries over one triple store.
// Construct with New; there is no package-level graph.
type Engine struct {
	store *store.Store
}

// New creates an engine bound to the given store. The store must be
// fully loaded before the first query and must not receive inserts
// afterwards.
func New(s *store.Store) *Engine {
	return &Engine{store: s}
}

// trackPattern matches every track node, one row per IsA triple.
func trackPattern() Pattern {
	return Pattern{
		Subject:   varTrack,
		Predicate: rdf.PredicateIsA,
		Object:    Bound{Term: rdf.ClassMusicRecording},
	}
}

// songPatterns joins each track to its title and raw duration text.
// Tracks missing either literal drop out of the join.
func songPatterns() []Pattern {
	return []Pattern{
		trackPattern(),
		{Subject: varTrack, Predicate: rdf.PredicateName, Object: varTitle},
		{Subject: varTrack, Predicate: rdf.PredicateDuration, Object: varDur},
	}
}
