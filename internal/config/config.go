// Package config loads tool configuration: defaults from an optional
// playgraph.yaml, Spotify credentials from the environment (with .env
// support for local use). Credentials never live in the YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults applied when neither the config file nor flags say otherwise.
const (
	DefaultGraphPath = "playlist.graph"
	DefaultCachePath = "catalog.db"
)

// Config holds all tool configuration.
type Config struct {
	// File-configurable defaults.
	GraphPath  string `yaml:"graph_path"`
	CachePath  string `yaml:"cache_path"`
	PlaylistID string `yaml:"playlist_id"`

	// Environment-only credentials.
	SpotifyClientID     string `yaml:"-"`
	SpotifyClientSecret string `yaml:"-"`
}

// Load reads configuration. A missing config file is fine - defaults
// apply; a present but malformed one is an error. SPOTIFY_PLAYLIST_ID
// in the environment overrides the file's playlist id.
func Load(path string) (*Config, error) {
	// Pick up a local .env if present; ignore when absent.
	_ = godotenv.Load()

	cfg := &Config{
		GraphPath: DefaultGraphPath,
		CachePath: DefaultCachePath,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env + defaults
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if cfg.GraphPath == "" {
		cfg.GraphPath = DefaultGraphPath
	}
	if cfg.CachePath == "" {
		cfg.CachePath = DefaultCachePath
	}

	cfg.SpotifyClientID = os.Getenv("SPOTIFY_CLIENT_ID")
	cfg.SpotifyClientSecret = os.Getenv("SPOTIFY_CLIENT_SECRET")
	if id := os.Getenv("SPOTIFY_PLAYLIST_ID"); id != "" {
		cfg.PlaylistID = id
	}

	return cfg, nil
}
