// Package projector maps catalog track records into playlist graph
// triples - the transform step between the catalog source and the
// triple store. It is a pure function of its input: no I/O, no state.
package projector

import (
	"github.com/roach88/playgraph/internal/catalog"
	"github.com/roach88/playgraph/internal/rdf"
)

// Project renders one track record as triples: the track's type, name,
// and duration, its artist link plus the artist's name, and its album
// link plus the album's name. Seven triples per record; across a
// playlist the artist and album name triples repeat and collapse under
// the store's set semantics, which also makes projecting the same
// record twice a no-op.
func Project(rec catalog.TrackRecord) []rdf.Triple {
	track := rdf.TrackNode(rec.ID)
	artist := rdf.ArtistNode(rec.ArtistID)
	album := rdf.AlbumNode(rec.AlbumID)
	duration := rdf.FromMillis(rec.DurationMs)

	return []rdf.Triple{
		rdf.MustTriple(track, rdf.PredicateIsA, rdf.ClassMusicRecording),
		rdf.MustTriple(track, rdf.PredicateName, rdf.Literal(rec.Name)),
		rdf.MustTriple(track, rdf.PredicateDuration, rdf.DurationLiteral(duration)),
		rdf.MustTriple(track, rdf.PredicateByArtist, artist),
		rdf.MustTriple(artist, rdf.PredicateName, rdf.Literal(rec.ArtistName)),
		rdf.MustTriple(track, rdf.PredicateInAlbum, album),
		rdf.MustTriple(album, rdf.PredicateName, rdf.Literal(rec.AlbumName)),
	}
}

// ProjectAll projects a record batch in order.
func ProjectAll(records []catalog.TrackRecord) []rdf.Triple {
	triples := make([]rdf.Triple, 0, len(records)*7)
	for _, rec := range records {
		triples = append(triples, Project(rec)...)
	}
	return triples
}
