package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/roach88/playgraph/internal/config"
	"github.com/roach88/playgraph/internal/engine"
	"github.com/roach88/playgraph/internal/store"
)

// loadConfig wraps config.Load with the command-error exit code.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load config", err)
	}
	return cfg, nil
}

// LoadGraph parses a graph-exchange file into a fresh store and wraps
// it in a query engine. The store is complete before the engine sees
// it, so every query runs against an immutable graph.
func LoadGraph(path string) (*engine.Engine, *store.Store, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil, WrapExitError(ExitCommandError,
			fmt.Sprintf("graph file %s not found (run 'playgraph build' first)", path), err)
	}
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, fmt.Sprintf("open graph file %s", path), err)
	}
	defer f.Close()

	s, err := store.Decode(f)
	if err != nil {
		return nil, nil, WrapExitError(ExitFailure, fmt.Sprintf("parse graph file %s", path), err)
	}
	return engine.New(s), s, nil
}

// WriteGraph serializes a store to the graph-exchange file, replacing
// any previous content atomically via a temp file rename.
func WriteGraph(path string, s *store.Store) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".playgraph-*")
	if err != nil {
		return fmt.Errorf("create temp graph file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := store.Encode(tmp, s); err != nil {
		tmp.Close()
		return fmt.Errorf("write graph: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close graph file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace graph file %s: %w", path, err)
	}
	return nil
}
