package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests. arXiv's
	// HTML mirrors reject requests without a realistic one.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// PageSize is the number of records requested per upstream page (default 100).
	PageSize int `json:"page_size" yaml:"page_size"`

	// RelevanceBuffer multiplies MaxResults to size the upstream fetch when
	// sorting by relevance (default 5). Relevance order does not correlate
	// with recency, so a large buffer is needed to find enough recent items.
	RelevanceBuffer int `json:"relevance_buffer" yaml:"relevance_buffer"`

	// TimeOrderedBuffer multiplies MaxResults when sorting by a time
	// criterion (default 10). Still a safety buffer: one generous request is
	// cheaper than repeated small pages against upstream rate limits.
	TimeOrderedBuffer int `json:"time_ordered_buffer" yaml:"time_ordered_buffer"`

	// CacheDir is the directory for the on-disk result cache. Empty disables
	// caching.
	CacheDir string `json:"cache_dir,omitempty" yaml:"cache_dir,omitempty"`

	// CacheTTL is how long a cached result set stays valid (default 1h).
	// Entries are expired by age only, never actively invalidated.
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl"`
}

// ReaderConfig holds settings for the content extraction stage.
type ReaderConfig struct {
	// HTMLTimeout bounds the fast-path HTML fetch (default 10s).
	HTMLTimeout time.Duration `json:"html_timeout" yaml:"html_timeout"`

	// PDFTimeout bounds the fallback PDF fetch (default 15s).
	PDFTimeout time.Duration `json:"pdf_timeout" yaml:"pdf_timeout"`

	// UserAgent is sent with both fetches.
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// MaxPages caps how many PDF pages are read on the fallback path
	// (default 8), bounding both extraction cost and downstream token use.
	MaxPages int `json:"max_pages" yaml:"max_pages"`
}

// AIConfig holds settings for the summarization stage.
type AIConfig struct {
	// Model is the model identifier (e.g. "gpt-4o-mini").
	Model string `json:"model" yaml:"model"`

	// BaseURL is the OpenAI-compatible endpoint. Empty uses the default.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// APIKey is the credential for the endpoint.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxChars truncates paper text before it is sent to the model
	// (default 30000).
	MaxChars int `json:"max_chars" yaml:"max_chars"`
}

// StoreConfig holds settings for the favorites store.
type StoreConfig struct {
	// Path is the JSON file holding the whole favorites collection.
	Path string `json:"path" yaml:"path"`
}
