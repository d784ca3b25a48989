package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/playgraph/internal/catalog"
	"github.com/roach88/playgraph/internal/projector"
	"github.com/roach88/playgraph/internal/store"
)

// weddingRecords is the fixture playlist shared by the query tests. The
// durations are chosen to expose the raw-text ordering ("10:00" sorts
// below everything, "9:59" sorts above "4:02").
func weddingRecords() []catalog.TrackRecord {
	return []catalog.TrackRecord{
		{ID: "t1", Name: "Reverie", DurationMs: 242000, ArtistID: "a1", ArtistName: "A.L.I.S.O.N", AlbumID: "al1", AlbumName: "Memory Bank"},
		{ID: "t2", Name: "Echoes", DurationMs: 195000, ArtistID: "a1", ArtistName: "A.L.I.S.O.N", AlbumID: "al1", AlbumName: "Memory Bank"},
		{ID: "t3", Name: "Starlight", DurationMs: 120000, ArtistID: "a2", ArtistName: "Voyager", AlbumID: "al2", AlbumName: "Horizons"},
		{ID: "t4", Name: "Drift", DurationMs: 600000, ArtistID: "a2", ArtistName: "Voyager", AlbumID: "al2", AlbumName: "Horizons"},
		{ID: "t5", Name: "Neon Nights", DurationMs: 599000, ArtistID: "a3", ArtistName: "Midnight Run", AlbumID: "al2", AlbumName: "Horizons"},
	}
}

// writeTestGraph projects the fixture playlist into a graph file and
// returns its path.
func writeTestGraph(t *testing.T) string {
	t.Helper()
	s := store.New()
	s.InsertAll(projector.ProjectAll(weddingRecords()))

	path := filepath.Join(t.TempDir(), "playlist.graph")
	require.NoError(t, WriteGraph(path, s))
	return path
}

// execute runs the CLI with the given args, capturing stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestQuery_TextOutputGolden(t *testing.T) {
	graph := writeTestGraph(t)

	testCases := []struct {
		name string
		args []string
	}{
		{"total_songs", []string{"query", "total_songs"}},
		{"duration", []string{"query", "duration"}},
		{"length", []string{"query", "length"}},
		{"longest", []string{"query", "longest"}},
		{"shortest", []string{"query", "shortest"}},
		{"longer_than", []string{"query", "longer_than", "--min-duration", "3:00"}},
		{"album", []string{"query", "album"}},
		{"artist", []string{"query", "artist"}},
		{"by_appearance", []string{"query", "by_appearance"}},
		{"by_artist", []string{"query", "by_artist", "--artist", "A.L.I.S.O.N"}},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			args := append(tc.args, "--graph", graph)
			out, err := execute(t, args...)
			require.NoError(t, err)
			g.Assert(t, tc.name, []byte(out))
		})
	}
}

func TestQuery_JSONEnvelope(t *testing.T) {
	graph := writeTestGraph(t)

	out, err := execute(t, "query", "total_songs", "--graph", graph, "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.TraceID)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(5), data["total_songs"])
}

func TestQuery_JSONDuration(t *testing.T) {
	graph := writeTestGraph(t)

	out, err := execute(t, "query", "duration", "--graph", graph, "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	// 242+195+120+600+599 seconds = 29 minutes 16 seconds
	assert.Equal(t, float64(29), data["minutes"])
	assert.Equal(t, float64(16), data["seconds"])
}

func TestQuery_LongerThanLexicographicQuirk(t *testing.T) {
	graph := writeTestGraph(t)

	// "9:00" exceeds every track's raw text except "9:59": "10:00" and
	// "4:02" both compare below it lexicographically.
	out, err := execute(t, "query", "longer_than", "--min-duration", "9:00", "--graph", graph)
	require.NoError(t, err)
	assert.Equal(t, "Neon Nights: 9:59\n", out)
}

func TestQuery_LongerThanRequiresThreshold(t *testing.T) {
	graph := writeTestGraph(t)

	_, err := execute(t, "query", "longer_than", "--graph", graph)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestQuery_ByArtistWithoutFlagListsChoices(t *testing.T) {
	graph := writeTestGraph(t)

	out, err := execute(t, "query", "by_artist", "--graph", graph)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "1. A.L.I.S.O.N")
	assert.Contains(t, out, "2. Midnight Run")
	assert.Contains(t, out, "3. Voyager")
}

func TestQuery_ByArtistUnknownIsEmptyNotError(t *testing.T) {
	graph := writeTestGraph(t)

	out, err := execute(t, "query", "by_artist", "--artist", "Nobody", "--graph", graph)
	require.NoError(t, err)
	assert.Equal(t, "Songs by Nobody:\n", out)
}

func TestQuery_UnknownOperation(t *testing.T) {
	graph := writeTestGraph(t)

	_, err := execute(t, "query", "frobnicate", "--graph", graph)
	require.Error(t, err)
}

func TestQuery_MissingGraphFile(t *testing.T) {
	_, err := execute(t, "query", "total_songs", "--graph", filepath.Join(t.TempDir(), "absent.graph"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "playgraph build")
}

func TestQuery_MalformedDurationLiteralFailsQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.graph")
	graph := "<track:1> type <schema:MusicRecording> .\n" +
		"<track:1> name \"Broken\" .\n" +
		"<track:1> duration \"not a duration\" .\n"
	require.NoError(t, os.WriteFile(path, []byte(graph), 0o644))

	_, err := execute(t, "query", "duration", "--graph", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "track:1")

	// total_songs never touches the literal and still works.
	out, err := execute(t, "query", "total_songs", "--graph", path)
	require.NoError(t, err)
	assert.Equal(t, "Total Number of Songs: 1\n", out)
}

func TestArtistsCommand(t *testing.T) {
	graph := writeTestGraph(t)

	out, err := execute(t, "artists", "--graph", graph)
	require.NoError(t, err)
	assert.Equal(t, "1. A.L.I.S.O.N\n2. Midnight Run\n3. Voyager\n", out)
}

func TestArtistsCommand_JSON(t *testing.T) {
	graph := writeTestGraph(t)

	out, err := execute(t, "artists", "--graph", graph, "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
}
