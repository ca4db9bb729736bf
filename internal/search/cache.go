// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paper-tracker/pkg/types"
)

const cacheDBFile = "results.db"

// Cache is an on-disk search result cache keyed by the full parameter
// tuple. Upstream content for a fixed query changes slowly, so results stay
// valid for the TTL; entries are expired by age only. Each CLI invocation
// is a fresh process, which is why the cache lives in SQLite rather than
// memory.
type Cache struct {
	db  *sql.DB
	ttl time.Duration
}

// OpenCache opens or creates the cache database at dir/results.db.
func OpenCache(dir string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	if ttl <= 0 {
		ttl = time.Hour
	}

	dbPath := filepath.Join(dir, cacheDBFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS results (
		key        TEXT PRIMARY KEY,
		fetched_at TEXT NOT NULL,
		payload    TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &Cache{db: db, ttl: ttl}, nil
}

// Close releases the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached records for params if a fresh entry exists.
// Stale entries are deleted on the way out.
func (c *Cache) Get(params types.SearchParams) ([]types.PaperRecord, bool) {
	key := cacheKey(params)

	var fetchedAt, payload string
	err := c.db.QueryRow(
		`SELECT fetched_at, payload FROM results WHERE key = ?`, key,
	).Scan(&fetchedAt, &payload)
	if err != nil {
		return nil, false
	}

	t, err := time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil || timeNow().UTC().Sub(t) > c.ttl {
		c.db.Exec(`DELETE FROM results WHERE key = ?`, key)
		return nil, false
	}

	var records []types.PaperRecord
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		c.db.Exec(`DELETE FROM results WHERE key = ?`, key)
		return nil, false
	}
	return records, true
}

// Put stores records for params, replacing any previous entry.
func (c *Cache) Put(params types.SearchParams, records []types.PaperRecord) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling cache payload: %w", err)
	}

	_, err = c.db.Exec(
		`INSERT INTO results (key, fetched_at, payload) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET fetched_at=excluded.fetched_at, payload=excluded.payload`,
		cacheKey(params), timeNow().UTC().Format(time.RFC3339Nano), string(payload),
	)
	if err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

// cacheKey builds the lookup key from the full parameter tuple.
func cacheKey(params types.SearchParams) string {
	return fmt.Sprintf("%s|%d|%d|%s", params.Query, params.DaysBack, params.MaxResults, params.Sort)
}
