// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/paper-tracker/pkg/types"
)

// arxivAPIBase is the arXiv search endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

const defaultPageSize = 100

// ArxivProvider queries the arXiv API with descending sort order and pages
// through the feed lazily.
type ArxivProvider struct {
	Client   *http.Client
	PageSize int
}

// Name returns the provider identifier.
func (p *ArxivProvider) Name() string { return "arxiv" }

// Search returns a lazy stream over the paged feed. No request is issued
// until the first Next call.
func (p *ArxivProvider) Search(_ context.Context, req Request) (Stream, error) {
	pageSize := p.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &arxivStream{provider: p, req: req, pageSize: pageSize}, nil
}

// arxivStream pages through arXiv API results. fetched counts records
// requested so far; the stream ends at req.MaxResults or at a short page.
type arxivStream struct {
	provider *ArxivProvider
	req      Request
	pageSize int

	buf     []types.PaperRecord
	pos     int
	fetched int
	done    bool
}

func (s *arxivStream) Next(ctx context.Context) (types.PaperRecord, error) {
	for s.pos >= len(s.buf) {
		if s.done || s.fetched >= s.req.MaxResults {
			return types.PaperRecord{}, io.EOF
		}
		if err := s.fetchPage(ctx); err != nil {
			return types.PaperRecord{}, err
		}
	}
	rec := s.buf[s.pos]
	s.pos++
	return rec, nil
}

func (s *arxivStream) fetchPage(ctx context.Context) error {
	count := s.pageSize
	if remaining := s.req.MaxResults - s.fetched; remaining < count {
		count = remaining
	}

	params := url.Values{}
	params.Set("search_query", s.req.Query)
	params.Set("start", fmt.Sprintf("%d", s.fetched))
	params.Set("max_results", fmt.Sprintf("%d", count))
	params.Set("sortBy", string(s.req.Sort))
	params.Set("sortOrder", "descending")

	reqURL := arxivAPIBase + "?" + params.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.provider.Client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return fmt.Errorf("parsing arXiv response: %w", err)
	}

	s.fetched += count
	if len(feed.Entries) < count {
		s.done = true
	}

	for _, entry := range feed.Entries {
		s.buf = append(s.buf, entry.toRecord())
	}
	return nil
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID         string          `xml:"id"`
	Title      string          `xml:"title"`
	Summary    string          `xml:"summary"`
	Published  string          `xml:"published"`
	Authors    []arxivAuthor   `xml:"author"`
	Links      []arxivLink     `xml:"link"`
	Categories []arxivCategory `xml:"category"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

type arxivLink struct {
	Href  string `xml:"href,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

type arxivCategory struct {
	Term string `xml:"term,attr"`
}

// toRecord converts one feed entry into the canonical record shape. All
// downstream stages work with PaperRecord; the Atom representation never
// leaves this package.
func (e arxivEntry) toRecord() types.PaperRecord {
	rec := types.PaperRecord{
		Identifier: strings.TrimSpace(e.ID),
		Title:      strings.Join(strings.Fields(e.Title), " "),
		Abstract:   strings.TrimSpace(e.Summary),
		PDFURL:     e.pdfURL(),
	}

	for _, a := range e.Authors {
		rec.Authors = append(rec.Authors, strings.TrimSpace(a.Name))
	}
	for _, c := range e.Categories {
		if c.Term != "" {
			rec.Categories = append(rec.Categories, c.Term)
		}
	}
	if t, err := time.Parse(time.RFC3339, e.Published); err == nil {
		rec.Published = t.UTC()
	}
	return rec
}

// pdfURL prefers the feed's explicit PDF link and falls back to rewriting
// the abstract URL.
func (e arxivEntry) pdfURL() string {
	for _, l := range e.Links {
		if l.Title == "pdf" || l.Type == "application/pdf" {
			return l.Href
		}
	}
	return strings.Replace(strings.TrimSpace(e.ID), "/abs/", "/pdf/", 1)
}

// ArxivID pulls the bare arXiv ID from an entry URL
// (e.g. "http://arxiv.org/abs/2301.07041v1" → "2301.07041v1").
// It returns the input unchanged when no "/abs/" segment is present, so
// bare IDs pass through.
func ArxivID(identifier string) string {
	const prefix = "/abs/"
	idx := strings.Index(identifier, prefix)
	if idx < 0 {
		return identifier
	}
	return identifier[idx+len(prefix):]
}
