// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/paper-tracker/pkg/types"
)

func pinDate(t *testing.T) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { timeNow = orig })
}

func TestMarkdown(t *testing.T) {
	pinDate(t)
	records := []types.PaperRecord{
		{
			Identifier: "http://arxiv.org/abs/2301.07041v1",
			Title:      "Paper One",
			Authors:    []string{"Alice Ames", "Bob Bolt"},
			Published:  time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
			Abstract:   "Abstract one.",
		},
		{
			Identifier: "http://arxiv.org/abs/2301.08155v2",
			Title:      "Paper Two",
			Authors:    []string{"A", "B", "C", "D", "E"},
			Abstract:   "Abstract two.",
		},
	}

	got := Markdown(records, "LLM agents")

	for _, want := range []string{
		"# ArXiv Papers Report\n",
		"**Keywords:** LLM agents\n",
		"**Date:** 2026-08-30\n",
		"### 1. Paper One\n",
		"- **Authors:** Alice Ames, Bob Bolt\n",
		"- **Date:** 2026-08-28\n",
		"- **Link:** http://arxiv.org/abs/2301.07041v1\n",
		"- **Summary:** Abstract one.\n",
		"### 2. Paper Two\n",
		"- **Authors:** A, B, C et al.\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Markdown() missing %q\ngot:\n%s", want, got)
		}
	}

	// The second record has no published date; the line is omitted entirely.
	section := got[strings.Index(got, "### 2."):]
	if strings.Contains(section, "- **Date:**") {
		t.Error("zero Published should omit the date line")
	}
}

func TestMarkdownEmpty(t *testing.T) {
	pinDate(t)
	got := Markdown(nil, "nothing")
	if !strings.Contains(got, "# ArXiv Papers Report") {
		t.Errorf("Markdown() = %q, want the header even with no records", got)
	}
	if strings.Contains(got, "### ") {
		t.Error("Markdown() with no records should have no sections")
	}
}

func TestAuthorLine(t *testing.T) {
	tests := []struct {
		authors []string
		want    string
	}{
		{nil, ""},
		{[]string{"A"}, "A"},
		{[]string{"A", "B", "C"}, "A, B, C"},
		{[]string{"A", "B", "C", "D"}, "A, B, C et al."},
	}
	for _, tt := range tests {
		if got := authorLine(tt.authors); got != tt.want {
			t.Errorf("authorLine(%v) = %q, want %q", tt.authors, got, tt.want)
		}
	}
}
