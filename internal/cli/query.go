package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/playgraph/internal/engine"
)

// QueryOps lists the supported operation names, in help order.
var QueryOps = []string{
	"total_songs",
	"duration",
	"length",
	"longest",
	"shortest",
	"longer_than",
	"album",
	"artist",
	"by_appearance",
	"by_artist",
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	var graphPath string
	var minDuration string
	var artist string

	cmd := &cobra.Command{
		Use:   "query <operation>",
		Short: "Run an analytical query over the graph file",
		Long: `Run one of the fixed analytical queries over the playlist graph.

Operations:
  total_songs    total number of songs
  duration       total playlist duration
  length         songs sorted by length, longest first
  longest        the single longest song
  shortest       the single shortest song
  longer_than    songs longer than --min-duration (raw text comparison)
  album          songs grouped by album
  artist         songs grouped by artist
  by_appearance  artists by number of appearances
  by_artist      songs by the --artist named artist`,
		Args:          cobra.ExactArgs(1),
		ValidArgs:     QueryOps,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(rootOpts, cmd, args[0], graphPath, minDuration, artist)
		},
	}

	cmd.Flags().StringVar(&graphPath, "graph", "", "graph file to query (defaults to config)")
	cmd.Flags().StringVar(&minDuration, "min-duration", "", `threshold for longer_than, e.g. "4:00"`)
	cmd.Flags().StringVar(&artist, "artist", "", "artist name for by_artist")

	return cmd
}

func runQuery(opts *RootOptions, cmd *cobra.Command, op, graphPath, minDuration, artist string) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	graphPath, err := resolveGraphPath(opts, graphPath)
	if err != nil {
		return err
	}
	eng, s, err := LoadGraph(graphPath)
	if err != nil {
		return err
	}
	formatter.VerboseLog("Loaded %d triple(s) from %s", s.Len(), graphPath)

	switch op {
	case "total_songs":
		return renderTotalSongs(formatter, eng)
	case "duration":
		return renderDuration(formatter, eng)
	case "length":
		return renderLength(formatter, eng)
	case "longest":
		return renderLongest(formatter, eng)
	case "shortest":
		return renderShortest(formatter, eng)
	case "longer_than":
		if minDuration == "" {
			return WrapExitError(ExitCommandError, "--min-duration is required for the longer_than query", nil)
		}
		return renderLongerThan(formatter, eng, minDuration)
	case "album":
		return renderGroups(formatter, eng.SongsByAlbum())
	case "artist":
		return renderGroups(formatter, eng.SongsByArtistName())
	case "by_appearance":
		return renderByAppearance(formatter, eng)
	case "by_artist":
		if artist == "" {
			return renderArtistChoices(formatter, eng)
		}
		return renderByArtist(formatter, eng, artist)
	default:
		return WrapExitError(ExitCommandError, fmt.Sprintf("unknown query %q: choose one of %v", op, QueryOps), nil)
	}
}

func resolveGraphPath(opts *RootOptions, flagPath string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		return "", err
	}
	return cfg.GraphPath, nil
}

func renderTotalSongs(f *OutputFormatter, eng *engine.Engine) error {
	total := eng.TotalSongs()
	if f.Format == "json" {
		return f.JSON(map[string]int{"total_songs": total})
	}
	f.Printf("Total Number of Songs: %d\n", total)
	return nil
}

func renderDuration(f *OutputFormatter, eng *engine.Engine) error {
	total, err := eng.TotalDuration()
	if err != nil {
		return WrapExitError(ExitFailure, "duration query", err)
	}
	if f.Format == "json" {
		return f.JSON(map[string]int{"minutes": total.Minutes, "seconds": total.Seconds})
	}
	f.Printf("Total Playlist Duration: %d minutes, %d seconds\n", total.Minutes, total.Seconds)
	return nil
}

func renderLength(f *OutputFormatter, eng *engine.Engine) error {
	rows, err := eng.SongsByLength()
	if err != nil {
		return WrapExitError(ExitFailure, "length query", err)
	}
	if f.Format == "json" {
		return f.JSON(rows)
	}
	for i, r := range rows {
		f.Printf("%d. %s: %s\n", i+1, r.Title, r.Duration)
	}
	return nil
}

func renderLongest(f *OutputFormatter, eng *engine.Engine) error {
	row, ok, err := eng.Longest()
	if err != nil {
		return WrapExitError(ExitFailure, "longest query", err)
	}
	if !ok {
		return f.Error("EMPTY_GRAPH", "the graph has no tracks")
	}
	if f.Format == "json" {
		return f.JSON(row)
	}
	f.Printf("Longest Song: %s, Duration: %s\n", row.Title, row.Duration)
	return nil
}

func renderShortest(f *OutputFormatter, eng *engine.Engine) error {
	row, ok, err := eng.Shortest()
	if err != nil {
		return WrapExitError(ExitFailure, "shortest query", err)
	}
	if !ok {
		return f.Error("EMPTY_GRAPH", "the graph has no tracks")
	}
	if f.Format == "json" {
		return f.JSON(row)
	}
	f.Printf("Shortest Song: %s, Duration: %s\n", row.Title, row.Duration)
	return nil
}

func renderLongerThan(f *OutputFormatter, eng *engine.Engine, threshold string) error {
	rows := eng.LongerThan(threshold)
	if f.Format == "json" {
		return f.JSON(rows)
	}
	for _, r := range rows {
		f.Printf("%s: %s\n", r.Title, r.Duration)
	}
	return nil
}

func renderGroups(f *OutputFormatter, groups []engine.Group) error {
	if f.Format == "json" {
		return f.JSON(groups)
	}
	for i, g := range groups {
		if i > 0 {
			f.Printf("\n")
		}
		f.Printf("%s:\n", g.Name)
		for _, song := range g.Songs {
			f.Printf("  - %s\n", song)
		}
	}
	return nil
}

func renderByAppearance(f *OutputFormatter, eng *engine.Engine) error {
	counts := eng.ArtistsByAppearance()
	if f.Format == "json" {
		return f.JSON(counts)
	}
	for _, c := range counts {
		f.Printf("%s: %d songs\n", c.Artist, c.Count)
	}
	return nil
}

func renderByArtist(f *OutputFormatter, eng *engine.Engine, artist string) error {
	songs := eng.SongsByArtist(artist)
	if f.Format == "json" {
		return f.JSON(map[string]interface{}{"artist": artist, "songs": songs})
	}
	f.Printf("Songs by %s:\n", artist)
	for _, song := range songs {
		f.Printf(" - %s\n", song)
	}
	return nil
}

// renderArtistChoices lists the valid by_artist candidates when the
// caller did not name one. The command still fails so scripts notice
// the missing flag.
func renderArtistChoices(f *OutputFormatter, eng *engine.Engine) error {
	names := eng.Artists()
	if f.Format != "json" {
		f.Printf("Artists:\n")
		for i, name := range names {
			f.Printf("%d. %s\n", i+1, name)
		}
	}
	return WrapExitError(ExitCommandError, "--artist is required for the by_artist query (choose from the list above)", nil)
}
