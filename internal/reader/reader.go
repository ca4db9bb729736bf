// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reader turns a paper identifier into readable full text through a
// two-tier fallback chain: the HTML edition first, the PDF rendition when
// that is unavailable.
package reader

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pdiddy/paper-tracker/internal/httputil"
	"github.com/pdiddy/paper-tracker/internal/search"
	"github.com/pdiddy/paper-tracker/pkg/types"
)

const (
	defaultHTMLTimeout = 10 * time.Second
	defaultPDFTimeout  = 15 * time.Second
	defaultMaxPages    = 8
	defaultUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Reader fetches and extracts paper text.
type Reader struct {
	client *http.Client
	cfg    types.ReaderConfig
}

// New returns a Reader with cfg's zero fields defaulted.
func New(cfg types.ReaderConfig) *Reader {
	if cfg.HTMLTimeout <= 0 {
		cfg.HTMLTimeout = defaultHTMLTimeout
	}
	if cfg.PDFTimeout <= 0 {
		cfg.PDFTimeout = defaultPDFTimeout
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = defaultMaxPages
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return &Reader{
		client: httputil.NewClient(cfg.UserAgent),
		cfg:    cfg,
	}
}

// Content resolves identifier to full text. Each tier is attempted exactly
// once; a tier failure falls through to the next. Content never returns a Go
// error: total failure yields a SourceFailed result whose Text carries an
// "Error:" marker, so callers distinguish outcomes by inspecting the result.
func (r *Reader) Content(ctx context.Context, identifier, pdfURL string) types.ExtractionResult {
	id := search.ArxivID(identifier)

	text, htmlErr := r.htmlContent(ctx, id)
	if htmlErr == nil {
		return types.ExtractionResult{Text: text, Source: types.SourceHTML}
	}

	text, pdfErr := r.pdfContent(ctx, pdfURL)
	if pdfErr == nil {
		return types.ExtractionResult{Text: text, Source: types.SourcePDF}
	}

	return types.ExtractionResult{
		Text:   fmt.Sprintf("Error: html: %v; pdf: %v", htmlErr, pdfErr),
		Source: types.SourceFailed,
	}
}
