package projector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/playgraph/internal/catalog"
	"github.com/roach88/playgraph/internal/rdf"
	"github.com/roach88/playgraph/internal/store"
)

func reverie() catalog.TrackRecord {
	return catalog.TrackRecord{
		ID:         "t1",
		Name:       "Reverie",
		DurationMs: 242000,
		ArtistID:   "a1",
		ArtistName: "A.L.I.S.O.N",
		AlbumID:    "al1",
		AlbumName:  "Memory Bank",
	}
}

func TestProject_SevenTripleShape(t *testing.T) {
	triples := Project(reverie())
	require.Len(t, triples, 7)

	track := rdf.TrackNode("t1")
	assert.Contains(t, triples, rdf.MustTriple(track, rdf.PredicateIsA, rdf.ClassMusicRecording))
	assert.Contains(t, triples, rdf.MustTriple(track, rdf.PredicateName, rdf.Literal("Reverie")))
	assert.Contains(t, triples, rdf.MustTriple(track, rdf.PredicateDuration, rdf.Literal("4:02")))
	assert.Contains(t, triples, rdf.MustTriple(track, rdf.PredicateByArtist, rdf.ArtistNode("a1")))
	assert.Contains(t, triples, rdf.MustTriple(rdf.ArtistNode("a1"), rdf.PredicateName, rdf.Literal("A.L.I.S.O.N")))
	assert.Contains(t, triples, rdf.MustTriple(track, rdf.PredicateInAlbum, rdf.AlbumNode("al1")))
	assert.Contains(t, triples, rdf.MustTriple(rdf.AlbumNode("al1"), rdf.PredicateName, rdf.Literal("Memory Bank")))
}

func TestProject_DurationFloorsMilliseconds(t *testing.T) {
	rec := reverie()
	rec.DurationMs = 242999

	triples := Project(rec)
	assert.Contains(t, triples, rdf.MustTriple(rdf.TrackNode("t1"), rdf.PredicateDuration, rdf.Literal("4:02")))
}

func TestProject_IdempotentThroughStore(t *testing.T) {
	s := store.New()
	s.InsertAll(Project(reverie()))
	s.InsertAll(Project(reverie()))

	assert.Equal(t, 7, s.Len(), "re-projecting the same record must not grow the store")
}

func TestProjectAll_SharedEntitiesCollapse(t *testing.T) {
	second := reverie()
	second.ID = "t2"
	second.Name = "Echoes"
	second.DurationMs = 195000

	s := store.New()
	s.InsertAll(ProjectAll([]catalog.TrackRecord{reverie(), second}))

	// 7 + 7 triples, minus the repeated artist-name and album-name.
	assert.Equal(t, 12, s.Len())

	// Both tracks point at the one artist node.
	byArtist := s.Match(nil, rdf.PredicateByArtist, rdf.ArtistNode("a1"))
	assert.Len(t, byArtist, 2)
}
