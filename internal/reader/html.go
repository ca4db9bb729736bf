// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reader

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// htmlBase is the root of the arXiv HTML edition. Declared as a var so
// tests can substitute an httptest server.
var htmlBase = "https://arxiv.org/html/"

// strippedClasses marks the non-substantive page regions removed before
// linearization: bibliography, page chrome, and the "extra services" box.
var strippedClasses = []string{"ltx_bibliography", "ltx_page_footer", "extra-services"}

// strippedTags is the set of container tags those classes appear on.
var strippedTags = []string{"nav", "footer", "div", "section"}

// htmlContent fetches the HTML edition of the paper and linearizes it to
// plain text. Any failure (network, non-200 status, parse error) is
// returned so the caller can fall back to the PDF tier.
func (r *Reader) htmlContent(ctx context.Context, id string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.HTMLTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, htmlBase+id, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTML fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTML edition returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, tag := range strippedTags {
		for _, class := range strippedClasses {
			doc.Find(tag + "." + class).Remove()
		}
	}

	text := linearize(doc)
	if text == "" {
		return "", fmt.Errorf("HTML edition contained no text")
	}
	return text, nil
}

// linearize flattens the remaining document to one trimmed line per text
// node, dropping blank lines and script/style content.
func linearize(doc *goquery.Document) string {
	var lines []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if line := strings.TrimSpace(n.Data); line != "" {
				lines = append(lines, line)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Selection.Nodes {
		walk(n)
	}
	return strings.Join(lines, "\n")
}
