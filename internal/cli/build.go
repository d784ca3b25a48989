package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/playgraph/internal/catalog"
	"github.com/roach88/playgraph/internal/config"
	"github.com/roach88/playgraph/internal/logger"
	"github.com/roach88/playgraph/internal/projector"
	"github.com/roach88/playgraph/internal/store"
)

// newSource builds the remote catalog source. Swapped out in tests so
// build can run against a fake catalog.
var newSource = func(ctx context.Context, clientID, clientSecret string, log *zap.Logger) (catalog.Source, error) {
	return catalog.NewSpotifySource(ctx, clientID, clientSecret, log)
}

// BuildResult is the payload reported after a successful build.
type BuildResult struct {
	PlaylistID string `json:"playlist_id"`
	GraphPath  string `json:"graph_path"`
	Tracks     int    `json:"tracks"`
	Triples    int    `json:"triples"`
	FromCache  bool   `json:"from_cache"`
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	var playlistID string
	var out string
	var refresh bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Fetch the playlist and write the graph file",
		Long: `Fetch the playlist's track records from the music catalog, project
them into triples, and write the graph-exchange file that the query
commands read.

Fetched records are cached locally; a rebuild reuses the cache unless
--refresh forces a refetch.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(rootOpts, cmd, playlistID, out, refresh)
		},
	}

	cmd.Flags().StringVar(&playlistID, "playlist", "", "playlist id (defaults to config / SPOTIFY_PLAYLIST_ID)")
	cmd.Flags().StringVar(&out, "out", "", "graph file to write (defaults to config)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "refetch from the catalog even when cached")

	return cmd
}

func runBuild(opts *RootOptions, cmd *cobra.Command, playlistID, out string, refresh bool) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	log := logger.Get()

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if playlistID == "" {
		playlistID = cfg.PlaylistID
	}
	if playlistID == "" {
		return WrapExitError(ExitCommandError, "no playlist id: pass --playlist, set playlist_id in config, or export SPOTIFY_PLAYLIST_ID", nil)
	}
	if out == "" {
		out = cfg.GraphPath
	}

	ctx := cmd.Context()

	cache, err := catalog.OpenCache(cfg.CachePath)
	if err != nil {
		return WrapExitError(ExitCommandError, "open catalog cache", err)
	}
	defer cache.Close()

	records, fromCache, err := loadRecords(ctx, cfg, cache, playlistID, refresh, log)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return WrapExitError(ExitFailure, fmt.Sprintf("playlist %s has no usable tracks", playlistID), nil)
	}
	formatter.VerboseLog("Loaded %d track record(s) (from cache: %v)", len(records), fromCache)

	s := store.New()
	s.InsertAll(projector.ProjectAll(records))

	if err := WriteGraph(out, s); err != nil {
		return WrapExitError(ExitCommandError, "write graph", err)
	}
	log.Info("graph written",
		zap.String("path", out),
		zap.Int("tracks", len(records)),
		zap.Int("triples", s.Len()))

	result := BuildResult{
		PlaylistID: playlistID,
		GraphPath:  out,
		Tracks:     len(records),
		Triples:    s.Len(),
		FromCache:  fromCache,
	}
	if opts.Format == "json" {
		return formatter.JSON(result)
	}
	formatter.Printf("Graph written to %s (%d tracks, %d triples)\n", out, result.Tracks, result.Triples)
	return nil
}

// loadRecords serves the track list from the cache when allowed,
// otherwise fetches from the catalog and refreshes the cache.
func loadRecords(ctx context.Context, cfg *config.Config, cache *catalog.Cache, playlistID string, refresh bool, log *zap.Logger) ([]catalog.TrackRecord, bool, error) {
	if !refresh {
		cached, err := cache.Get(ctx, playlistID)
		if err != nil {
			return nil, false, WrapExitError(ExitCommandError, "read catalog cache", err)
		}
		if len(cached) > 0 {
			return cached, true, nil
		}
	}

	source, err := newSource(ctx, cfg.SpotifyClientID, cfg.SpotifyClientSecret, log)
	if err != nil {
		return nil, false, WrapExitError(ExitCommandError, "catalog source", err)
	}
	records, err := source.PlaylistTracks(ctx, playlistID)
	if err != nil {
		return nil, false, WrapExitError(ExitFailure, "fetch playlist", err)
	}

	if err := cache.Put(ctx, playlistID, records); err != nil {
		// Cache write failure is not fatal to the build.
		log.Warn("cache update failed", zap.Error(err))
	}
	return records, false, nil
}
