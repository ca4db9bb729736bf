// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfContent downloads the PDF rendition and extracts text from at most the
// first cfg.MaxPages pages.
func (r *Reader) pdfContent(ctx context.Context, pdfURL string) (text string, err error) {
	if pdfURL == "" {
		return "", fmt.Errorf("no PDF URL")
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.PDFTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pdfURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/pdf")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("PDF fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("PDF download returned HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading PDF body: %w", err)
	}

	// The pdf library panics on some malformed inputs.
	defer func() {
		if p := recover(); p != nil {
			text = ""
			err = fmt.Errorf("parsing PDF: %v", p)
		}
	}()

	rd, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}

	limit := rd.NumPage()
	if limit > r.cfg.MaxPages {
		limit = r.cfg.MaxPages
	}

	var b strings.Builder
	for i := 1; i <= limit; i++ {
		page := rd.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(pageText)
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("no text extracted from PDF")
	}
	return b.String(), nil
}
