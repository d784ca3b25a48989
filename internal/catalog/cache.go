package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Cache is a SQLite-backed record cache keyed by playlist id. It caches
// fetched catalog records, not the graph; the graph itself lives only
// for a single load/query/discard cycle.
type Cache struct {
	db *sql.DB
}

// OpenCache creates or opens the cache database at the given path and
// applies the schema. Idempotent - safe to call on an existing file.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to cache database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Put replaces the cached record list for a playlist. The delete and
// the inserts run in one transaction so readers never observe a
// half-synced playlist.
func (c *Cache) Put(ctx context.Context, playlistID string, records []TrackRecord) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM playlist_tracks WHERE playlist_id = ?`, playlistID); err != nil {
		return fmt.Errorf("cache put: %w", err)
	}

	for i, rec := range records {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO playlist_tracks
			(playlist_id, position, track_id, name, duration_ms, artist_id, artist_name, album_id, album_name)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			playlistID,
			i,
			rec.ID,
			rec.Name,
			rec.DurationMs,
			rec.ArtistID,
			rec.ArtistName,
			rec.AlbumID,
			rec.AlbumName,
		)
		if err != nil {
			return fmt.Errorf("cache put track %s: %w", rec.ID, err)
		}
	}

	return tx.Commit()
}

// Get returns the cached record list for a playlist in playlist order.
// An unknown playlist yields an empty slice and no error; callers treat
// that as a cache miss.
func (c *Cache) Get(ctx context.Context, playlistID string) ([]TrackRecord, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT track_id, name, duration_ms, artist_id, artist_name, album_id, album_name
		FROM playlist_tracks
		WHERE playlist_id = ?
		ORDER BY position
	`, playlistID)
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	defer rows.Close()

	var records []TrackRecord
	for rows.Next() {
		var rec TrackRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.DurationMs, &rec.ArtistID, &rec.ArtistName, &rec.AlbumID, &rec.AlbumName); err != nil {
			return nil, fmt.Errorf("cache get: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	return records, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}
