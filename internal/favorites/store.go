// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package favorites persists the saved-papers collection as one JSON file.
// Every mutation reads the full collection, modifies it in memory, and
// rewrites the file. Two processes mutating concurrently can lose updates;
// last writer wins. That is acceptable for a single-user tool.
package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/paper-tracker/pkg/types"
)

var (
	// ErrDuplicate is returned by Save when the identifier is already present.
	ErrDuplicate = errors.New("paper already in favorites")

	// ErrCorrupt is returned by Load when the file exists but cannot be
	// parsed. The collection is still usable as empty; the error exists so
	// callers can warn instead of silently showing nothing.
	ErrCorrupt = errors.New("favorites file is corrupt")
)

// Store manages the favorites collection at a fixed path.
type Store struct {
	path string
}

// NewStore returns a store backed by the JSON file at path. The file is
// created on first save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted collection, most recently saved first.
// A missing file yields an empty collection. An unreadable or corrupt file
// yields an empty collection plus ErrCorrupt. Records saved by older
// versions without tags, notes, or a summary get those fields defaulted.
func (s *Store) Load() ([]types.PaperRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var records []types.PaperRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	for i := range records {
		if records[i].Tags == nil {
			records[i].Tags = []string{}
		}
	}
	return records, nil
}

// Save inserts rec at the front of the collection and persists it.
// Saving an identifier that is already present returns ErrDuplicate and
// leaves the collection unchanged: idempotent by identifier, not by content.
func (s *Store) Save(rec types.PaperRecord) error {
	records := s.loadLenient()

	for _, r := range records {
		if r.Identifier == rec.Identifier {
			return fmt.Errorf("%w: %s", ErrDuplicate, rec.Identifier)
		}
	}

	if rec.Tags == nil {
		rec.Tags = []string{}
	}
	records = append([]types.PaperRecord{rec}, records...)
	return s.persist(records)
}

// UpdateSummary sets the AI summary of the matching record. No-op when the
// identifier is not present.
func (s *Store) UpdateSummary(identifier, summary string) error {
	records := s.loadLenient()

	for i := range records {
		if records[i].Identifier == identifier {
			records[i].AISummary = summary
			return s.persist(records)
		}
	}
	return nil
}

// UpdateTagsAndNotes sets the tags and notes of the matching record. Tags
// are normalized: trimmed, empties dropped, duplicates removed. No-op when
// the identifier is not present.
func (s *Store) UpdateTagsAndNotes(identifier string, tags []string, notes string) error {
	records := s.loadLenient()

	for i := range records {
		if records[i].Identifier == identifier {
			records[i].Tags = normalizeTags(tags)
			records[i].Notes = notes
			return s.persist(records)
		}
	}
	return nil
}

// Remove deletes the matching record and persists the reduced collection
// unconditionally, so removing an absent identifier is a harmless rewrite.
func (s *Store) Remove(identifier string) error {
	records := s.loadLenient()

	kept := records[:0]
	for _, r := range records {
		if r.Identifier != identifier {
			kept = append(kept, r)
		}
	}
	return s.persist(kept)
}

// AllTags returns the sorted union of every record's tags.
func (s *Store) AllTags() ([]string, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var tags []string
	for _, r := range records {
		for _, t := range r.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags, nil
}

// ParseTags splits a comma-delimited input into a normalized tag list.
func ParseTags(input string) []string {
	return normalizeTags(strings.Split(input, ","))
}

// loadLenient reads the collection treating corruption as empty. Mutations
// favor availability: a broken file is overwritten rather than blocking.
func (s *Store) loadLenient() []types.PaperRecord {
	records, _ := s.Load()
	return records
}

// persist rewrites the whole collection, temp file then rename, so readers
// never observe a partial write.
func (s *Store) persist(records []types.PaperRecord) error {
	if records == nil {
		records = []types.PaperRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling favorites: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating favorites directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".favorites-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing favorites: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
