// Package catalog obtains raw track records from the music catalog: a
// remote playlist source (Spotify) fronted by a local SQLite cache so a
// rebuild does not refetch. Records are the fixed shape the projector
// consumes; nothing here touches the graph.
package catalog

import "context"

// TrackRecord is one playlist entry as delivered by the catalog.
// Only the first artist survives when the remote track lists several;
// that is a documented simplification of the data model, not an
// accident.
type TrackRecord struct {
	ID         string
	Name       string
	DurationMs int
	ArtistID   string
	ArtistName string
	AlbumID    string
	AlbumName  string
}

// Source yields the fully-materialized track list of one playlist.
type Source interface {
	PlaylistTracks(ctx context.Context, playlistID string) ([]TrackRecord, error)
}
