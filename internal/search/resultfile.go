// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-tracker/pkg/types"
)

// ResultFile is the on-disk representation of a search and its results.
// Saving a search lets later commands (read, favorites add, export) refer
// to result positions without re-querying the API.
type ResultFile struct {
	Params    types.SearchParams  `yaml:"params"`
	Records   []types.PaperRecord `yaml:"records"`
	FetchedAt time.Time           `yaml:"fetched_at"`
}

// WriteResultFile saves search parameters and records to a YAML file.
func WriteResultFile(path string, params types.SearchParams, records []types.PaperRecord) error {
	rf := ResultFile{
		Params:    params,
		Records:   records,
		FetchedAt: timeNow().UTC(),
	}
	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved result file from disk.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}

// Record returns the record at the 1-based position shown in the result table.
func (rf *ResultFile) Record(index int) (types.PaperRecord, error) {
	if index < 1 || index > len(rf.Records) {
		return types.PaperRecord{}, fmt.Errorf("index %d out of range (1-%d)", index, len(rf.Records))
	}
	return rf.Records[index-1], nil
}
