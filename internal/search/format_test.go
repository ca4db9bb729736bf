// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/pdiddy/paper-tracker/pkg/types"
)

func TestFormatTable(t *testing.T) {
	records := []types.PaperRecord{
		{
			Identifier: "http://arxiv.org/abs/2301.07041v1",
			Title:      strings.Repeat("Long Title ", 10),
			Authors:    []string{"Alice Ames", "Bob Bolt"},
			Published:  time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		},
		{Identifier: "http://arxiv.org/abs/2301.08155v2", Title: "Short"},
	}

	var buf bytes.Buffer
	FormatTable(records, &buf)
	out := buf.String()

	if !strings.Contains(out, "Rank") || !strings.Contains(out, "Identifier") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "Alice Ames et al.") {
		t.Errorf("multi-author record should show \"et al.\":\n%s", out)
	}
	if !strings.Contains(out, "2026-08-28") {
		t.Errorf("missing published date:\n%s", out)
	}
	if !strings.Contains(out, "...") {
		t.Errorf("long title should be truncated:\n%s", out)
	}
	if !strings.Contains(out, "2 results") {
		t.Errorf("missing result count:\n%s", out)
	}
}

func TestTruncateMultibyte(t *testing.T) {
	title := strings.Repeat("模型", 40)
	got := truncate(title, 60)

	if !utf8.ValidString(got) {
		t.Errorf("truncate(%q, 60) = %q, invalid UTF-8", title, got)
	}
	if n := utf8.RuneCountInString(got); n != 60 {
		t.Errorf("rune count = %d, want 60", n)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncate() = %q, want ellipsis suffix", got)
	}
}

func TestTruncateShortString(t *testing.T) {
	if got := truncate("short", 60); got != "short" {
		t.Errorf("truncate() = %q, want unchanged", got)
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, &buf)
	if !strings.Contains(buf.String(), "No results found.") {
		t.Errorf("got %q", buf.String())
	}
}

func TestFormatJSON(t *testing.T) {
	records := []types.PaperRecord{{Identifier: "http://arxiv.org/abs/1", Title: "Paper"}}

	var buf bytes.Buffer
	if err := FormatJSON(records, &buf); err != nil {
		t.Fatalf("FormatJSON() error = %v", err)
	}

	var decoded []types.PaperRecord
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Title != "Paper" {
		t.Errorf("decoded = %+v", decoded)
	}
}
