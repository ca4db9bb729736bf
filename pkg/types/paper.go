// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper-tracker pipeline.
package types

import "time"

// PaperRecord is one discovered or saved paper. Search produces transient
// records; the favorites store persists them. Identity is Identifier; every
// other field is mutable.
type PaperRecord struct {
	// Identifier is the canonical arXiv entry URL
	// (e.g. "http://arxiv.org/abs/2301.07041v1").
	Identifier string `json:"identifier" yaml:"identifier"`

	// Title is the paper title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Published is the publication date (UTC).
	Published time.Time `json:"published" yaml:"published"`

	// PDFURL is the direct download location for the PDF rendition.
	PDFURL string `json:"pdf_url" yaml:"pdf_url"`

	// Abstract is the paper abstract.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Categories holds the taxonomy codes assigned by the source (e.g. "cs.LG").
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`

	// AISummary is the generated summary, empty until one is produced.
	AISummary string `json:"ai_summary,omitempty" yaml:"ai_summary,omitempty"`

	// Tags are short user-assigned labels. Order is preserved for display
	// but irrelevant for matching.
	Tags []string `json:"tags" yaml:"tags"`

	// Notes is free-form user text.
	Notes string `json:"notes" yaml:"notes"`
}

// ContentSource identifies which extraction tier produced a paper's text.
type ContentSource string

const (
	// SourceHTML is the fast path: the server-rendered HTML edition.
	SourceHTML ContentSource = "html"
	// SourcePDF is the fallback path: text pulled from the PDF rendition.
	SourcePDF ContentSource = "pdf"
	// SourceFailed means both tiers failed; Text carries an error marker.
	SourceFailed ContentSource = "failed"
)

// ExtractionResult is the outcome of the content extraction chain.
// Transient, never persisted.
type ExtractionResult struct {
	Text   string        `json:"text"`
	Source ContentSource `json:"source"`
}

// Failed reports whether both extraction tiers failed.
func (r ExtractionResult) Failed() bool {
	return r.Source == SourceFailed
}
