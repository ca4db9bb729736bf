package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-tracker/internal/favorites"
	"github.com/pdiddy/paper-tracker/pkg/types"
)

func TestCanonicalIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2301.07041v1", "http://arxiv.org/abs/2301.07041v1"},
		{"2301.07041", "http://arxiv.org/abs/2301.07041"},
		{"http://arxiv.org/abs/2301.07041v1", "http://arxiv.org/abs/2301.07041v1"},
		{"https://arxiv.org/abs/2301.07041v1", "https://arxiv.org/abs/2301.07041v1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, canonicalIdentifier(tt.in), "input %q", tt.in)
	}
}

// A summary saved from `read <bare-id>` must land on the favorite saved
// from a search result file, which is keyed by the entry URL.
func TestSaveSummaryFromBareIDMatchesSearchKeyedFavorite(t *testing.T) {
	store := favorites.NewStore(filepath.Join(t.TempDir(), "favorites.json"))
	require.NoError(t, store.Save(types.PaperRecord{
		Identifier: "http://arxiv.org/abs/2301.07041v1",
		Title:      "Paper One",
		Tags:       []string{},
	}))

	require.NoError(t, store.UpdateSummary(canonicalIdentifier("2301.07041v1"), "A five-section reading."))

	records, err := store.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "A five-section reading.", records[0].AISummary)
}
