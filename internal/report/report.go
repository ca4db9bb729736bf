// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders a search result set as a Markdown report.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/paper-tracker/pkg/types"
)

// timeNow is substituted by tests to pin the report date.
var timeNow = time.Now

// Markdown renders records as a dated Markdown report headed by the
// keywords that produced them.
func Markdown(records []types.PaperRecord, keywords string) string {
	var b strings.Builder

	b.WriteString("# ArXiv Papers Report\n")
	fmt.Fprintf(&b, "**Keywords:** %s\n", keywords)
	fmt.Fprintf(&b, "**Date:** %s\n\n", timeNow().Format("2006-01-02"))
	b.WriteString("---\n\n")

	for i, rec := range records {
		fmt.Fprintf(&b, "### %d. %s\n", i+1, rec.Title)
		fmt.Fprintf(&b, "- **Authors:** %s\n", authorLine(rec.Authors))
		if !rec.Published.IsZero() {
			fmt.Fprintf(&b, "- **Date:** %s\n", rec.Published.Format("2006-01-02"))
		}
		fmt.Fprintf(&b, "- **Link:** %s\n", rec.Identifier)
		fmt.Fprintf(&b, "- **Summary:** %s\n\n", rec.Abstract)
		b.WriteString("---\n\n")
	}

	return b.String()
}

// authorLine shows at most the first three authors, then "et al.".
func authorLine(authors []string) string {
	if len(authors) <= 3 {
		return strings.Join(authors, ", ")
	}
	return strings.Join(authors[:3], ", ") + " et al."
}
