package cli

import (
	"github.com/spf13/cobra"
)

// NewArtistsCommand creates the artists command.
func NewArtistsCommand(rootOpts *RootOptions) *cobra.Command {
	var graphPath string

	cmd := &cobra.Command{
		Use:           "artists",
		Short:         "List the distinct artists in the graph",
		Long:          "List every artist appearing on a track, in ascending name order. These are the valid values for 'query by_artist --artist'.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArtists(rootOpts, cmd, graphPath)
		},
	}

	cmd.Flags().StringVar(&graphPath, "graph", "", "graph file to query (defaults to config)")

	return cmd
}

func runArtists(opts *RootOptions, cmd *cobra.Command, graphPath string) error {
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
	eng, _, err := LoadGraph(graphPath)
	if err != nil {
		return err
	}

	names := eng.Artists()
	if opts.Format == "json" {
		return formatter.JSON(map[string][]string{"artists": names})
	}
	for i, name := range names {
		formatter.Printf("%d. %s\n", i+1, name)
	}
	return nil
}
