package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.uber.org/zap"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/text/unicode/norm"
)

// SpotifySource fetches playlist tracks from the Spotify Web API using
// the client-credentials flow. Reading a private playlist only needs
// the playlist-read scope granted to the app credentials.
type SpotifySource struct {
	client *spotify.Client
	log    *zap.Logger
}

// NewSpotifySource authenticates against the Spotify token endpoint and
// returns a ready source. The context bounds the token exchange.
func NewSpotifySource(ctx context.Context, clientID, clientSecret string, log *zap.Logger) (*SpotifySource, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("spotify credentials are required (SPOTIFY_CLIENT_ID / SPOTIFY_CLIENT_SECRET)")
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	token, err := config.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("spotify token exchange: %w", err)
	}

	httpClient := spotifyauth.New().Client(ctx, token)
	return &SpotifySource{client: spotify.New(httpClient), log: log}, nil
}

// PlaylistTracks fetches every track of the playlist, following
// pagination to the end. Records come back in playlist order.
func (s *SpotifySource) PlaylistTracks(ctx context.Context, playlistID string) ([]TrackRecord, error) {
	playlist, err := s.client.GetPlaylist(ctx, spotify.ID(playlistID))
	if err != nil {
		return nil, fmt.Errorf("get playlist %s: %w", playlistID, err)
	}
	s.log.Info("fetched playlist",
		zap.String("playlist_id", playlistID),
		zap.String("name", playlist.Name),
		zap.Int("total_tracks", int(playlist.Tracks.Total)))

	var records []TrackRecord
	page := playlist.Tracks
	for {
		for _, item := range page.Tracks {
			rec, ok := fromPlaylistTrack(item)
			if !ok {
				s.log.Warn("skipping unusable playlist item",
					zap.String("track_id", string(item.Track.ID)),
					zap.String("track_name", item.Track.Name))
				continue
			}
			records = append(records, rec)
		}

		err := s.client.NextPage(ctx, &page)
		if errors.Is(err, spotify.ErrNoMorePages) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("next playlist page: %w", err)
		}
	}
	return records, nil
}

// fromPlaylistTrack maps one API item to a TrackRecord. Items without a
// track id (removed/local tracks) or without any artist are unusable.
// Names are NFC-normalized on the way in so literal equality in the
// graph is well-defined regardless of how the API spells accents.
func fromPlaylistTrack(item spotify.PlaylistTrack) (TrackRecord, bool) {
	track := item.Track
	if track.ID == "" || len(track.Artists) == 0 {
		return TrackRecord{}, false
	}
	first := track.Artists[0]
	return TrackRecord{
		ID:         string(track.ID),
		Name:       norm.NFC.String(track.Name),
		DurationMs: int(track.Duration),
		ArtistID:   string(first.ID),
		ArtistName: norm.NFC.String(first.Name),
		AlbumID:    string(track.Album.ID),
		AlbumName:  norm.NFC.String(track.Album.Name),
	}, true
}
