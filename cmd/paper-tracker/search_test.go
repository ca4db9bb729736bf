package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-tracker/pkg/types"
)

func TestSearchConfigDefaults(t *testing.T) {
	cfg := searchConfig(defaultCacheDir)

	assert.Equal(t, defaultSearchTimeout, cfg.Timeout)
	assert.Equal(t, defaultUserAgent, cfg.UserAgent)
	assert.Equal(t, defaultPageSize, cfg.PageSize)
	assert.Equal(t, defaultCacheTTL, cfg.CacheTTL)
	assert.Equal(t, defaultCacheDir, cfg.CacheDir)
}

func TestNewArxivProviderWiring(t *testing.T) {
	cfg := types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   5 * time.Second,
			UserAgent: "agent-x",
		},
		PageSize: 7,
	}

	provider := newArxivProvider(cfg)
	assert.Equal(t, 7, provider.PageSize)
	assert.Equal(t, 5*time.Second, provider.Client.Timeout)

	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer ts.Close()

	resp, err := provider.Client.Get(ts.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "agent-x", gotUA)
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		in   string
		want types.SortCriterion
	}{
		{"relevance", types.SortRelevance},
		{"submitted", types.SortSubmittedDate},
		{"updated", types.SortLastUpdated},
	}
	for _, tt := range tests {
		got, err := parseSort(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := parseSort("alphabetical")
	assert.Error(t, err)
}
