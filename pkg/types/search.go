// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SortCriterion selects the upstream ranking for a search.
type SortCriterion string

const (
	SortRelevance     SortCriterion = "relevance"
	SortSubmittedDate SortCriterion = "submittedDate"
	SortLastUpdated   SortCriterion = "lastUpdatedDate"
)

// TimeOrdered reports whether the criterion yields results in strictly
// decreasing time order, which allows the recency filter to stop at the
// first record older than the cutoff.
func (s SortCriterion) TimeOrdered() bool {
	return s == SortSubmittedDate || s == SortLastUpdated
}

// SearchParams holds one search invocation's parameters together with the
// query string built from them. Immutable once constructed; the tuple also
// serves as the result cache key.
type SearchParams struct {
	// Keywords is the free-text keyword expression as entered.
	Keywords string `json:"keywords" yaml:"keywords"`

	// CategoryKey names the category bundle the query was scoped to.
	CategoryKey string `json:"category_key" yaml:"category_key"`

	// Query is the combined upstream query string.
	Query string `json:"query" yaml:"query"`

	// DaysBack bounds the recency window: only papers published within the
	// last DaysBack days are accepted.
	DaysBack int `json:"days_back" yaml:"days_back"`

	// MaxResults caps the number of accepted records.
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Sort is the upstream ranking criterion.
	Sort SortCriterion `json:"sort" yaml:"sort"`
}
