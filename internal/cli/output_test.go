package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "bad flag", nil)))
	assert.Equal(t, ExitFailure, GetExitCode(WrapExitError(ExitFailure, "query failed", nil)))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain error")))

	wrapped := fmt.Errorf("outer: %w", WrapExitError(ExitCommandError, "inner", nil))
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
}

func TestExitError_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := WrapExitError(ExitFailure, "context", cause)

	assert.Equal(t, "context: boom", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestOutputFormatter_JSONEnvelope(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &buf}

	require.NoError(t, f.JSON(map[string]int{"total_songs": 2}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Nil(t, resp.Error)

	_, err := uuid.Parse(resp.TraceID)
	assert.NoError(t, err, "trace id must be a valid UUID")
}

func TestOutputFormatter_ErrorFormats(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &buf}
	require.NoError(t, f.Error("EMPTY_GRAPH", "the graph has no tracks"))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "EMPTY_GRAPH", resp.Error.Code)

	buf.Reset()
	f = &OutputFormatter{Format: "text", Writer: &buf}
	require.NoError(t, f.Error("EMPTY_GRAPH", "the graph has no tracks"))
	assert.Equal(t, "Error [EMPTY_GRAPH]: the graph has no tracks\n", buf.String())
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	var out, errOut bytes.Buffer

	quiet := &OutputFormatter{Format: "text", Writer: &out, ErrWriter: &errOut}
	quiet.VerboseLog("hidden %d", 1)
	assert.Empty(t, errOut.String())

	verbose := &OutputFormatter{Format: "json", Writer: &out, ErrWriter: &errOut, Verbose: true}
	verbose.VerboseLog("loaded %d triples", 30)
	assert.Equal(t, "loaded 30 triples\n", errOut.String())
	assert.Empty(t, out.String(), "diagnostics must not corrupt JSON output")
}
