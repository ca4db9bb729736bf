// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search turns a broad, relevance-ranked upstream query into a
// precise, recency-bounded result set. It over-fetches from the provider,
// filters locally against a recency window, and caps the accepted count.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/paper-tracker/pkg/types"
)

// timeNow is substituted by tests to pin the recency cutoff.
var timeNow = time.Now

// Provider searches a single upstream paper source and streams results in
// the requested order.
type Provider interface {
	Name() string
	Search(ctx context.Context, req Request) (Stream, error)
}

// Request holds the upstream query: already buffered, so MaxResults here is
// the fetch limit, not the caller-visible cap.
type Request struct {
	Query      string
	MaxResults int
	Sort       types.SortCriterion
}

// Stream yields provider records one at a time in upstream order. Next
// returns io.EOF when the stream is exhausted. Providers page internally.
type Stream interface {
	Next(ctx context.Context) (types.PaperRecord, error)
}

// Search fetches up to params.MaxResults records published within the last
// params.DaysBack days, preserving upstream order.
//
// The upstream fetch is sized at MaxResults times a ranking-dependent buffer
// factor, because the recency filter discards an unknown share of records.
// Under a time-ordered ranking the scan stops at the first record older than
// the cutoff; under relevance ranking old records are skipped individually.
//
// Provider errors are written to w as a warning and returned with an empty
// result; they are never retried here.
func Search(ctx context.Context, provider Provider, params types.SearchParams, cfg types.SearchConfig, w io.Writer) ([]types.PaperRecord, error) {
	if params.Query == "" {
		return nil, fmt.Errorf("query is empty: provide keywords")
	}
	if params.DaysBack <= 0 {
		return nil, fmt.Errorf("days_back must be positive, got %d", params.DaysBack)
	}
	if params.MaxResults <= 0 {
		return nil, fmt.Errorf("max_results must be positive, got %d", params.MaxResults)
	}

	cutoff := timeNow().UTC().AddDate(0, 0, -params.DaysBack)
	fetchLimit := params.MaxResults * bufferFactor(params.Sort, cfg)

	stream, err := provider.Search(ctx, Request{
		Query:      params.Query,
		MaxResults: fetchLimit,
		Sort:       params.Sort,
	})
	if err != nil {
		fmt.Fprintf(w, "warning: provider %s failed: %v\n", provider.Name(), err)
		return nil, err
	}

	var accepted []types.PaperRecord
	for len(accepted) < params.MaxResults {
		rec, err := stream.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Fprintf(w, "warning: provider %s failed: %v\n", provider.Name(), err)
			return nil, err
		}

		if rec.Published.Before(cutoff) {
			if params.Sort.TimeOrdered() {
				// Strictly decreasing by time: everything after this
				// record is older too.
				break
			}
			continue
		}
		accepted = append(accepted, rec)
	}

	return accepted, nil
}

// bufferFactor returns the over-fetch multiplier for the ranking criterion.
// The defaults (5 for relevance, 10 for time orderings) are tuning constants;
// the right value depends on how dense recent papers are in the upstream
// result stream, so both are configurable.
func bufferFactor(sort types.SortCriterion, cfg types.SearchConfig) int {
	if sort.TimeOrdered() {
		if cfg.TimeOrderedBuffer > 0 {
			return cfg.TimeOrderedBuffer
		}
		return 10
	}
	if cfg.RelevanceBuffer > 0 {
		return cfg.RelevanceBuffer
	}
	return 5
}
