// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reader

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-tracker/pkg/types"
)

const samplePage = `<html><body>
<div class="ltx_page_main">
  <h1>A Sample Paper</h1>
  <p>BODYTEXT the main contribution.</p>
  <p>More prose here.</p>
  <script>var tracked = true;</script>
</div>
<div class="ltx_bibliography"><p>REFENTRY Smith 2019</p></div>
<footer class="ltx_page_footer">FOOTERTEXT</footer>
<div class="extra-services">SERVICES box</div>
</body></html>`

// withHTMLBase points the HTML tier at a test server for one test.
func withHTMLBase(t *testing.T, base string) {
	t.Helper()
	orig := htmlBase
	htmlBase = base
	t.Cleanup(func() { htmlBase = orig })
}

// buildPDF assembles a minimal uncompressed PDF with one text line per page.
func buildPDF(t *testing.T, pageTexts []string) []byte {
	t.Helper()
	n := len(pageTexts)
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	var offsets []int
	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	kids := make([]string, n)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", 4+i)
	}
	writeObj("<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), n))
	writeObj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")
	for i := 0; i < n; i++ {
		writeObj(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			4+n+i))
	}
	for _, text := range pageTexts {
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		writeObj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)
	return buf.Bytes()
}

func TestContentHTMLTier(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, samplePage)
	}))
	defer ts.Close()
	withHTMLBase(t, ts.URL+"/html/")

	r := New(types.ReaderConfig{})
	result := r.Content(context.Background(), "http://arxiv.org/abs/2301.07041v1", "")

	require.Equal(t, types.SourceHTML, result.Source)
	assert.False(t, result.Failed())
	assert.Contains(t, result.Text, "BODYTEXT the main contribution.")
	assert.Contains(t, result.Text, "A Sample Paper")
	assert.NotContains(t, result.Text, "REFENTRY", "bibliography must be stripped")
	assert.NotContains(t, result.Text, "FOOTERTEXT", "page footer must be stripped")
	assert.NotContains(t, result.Text, "SERVICES", "extra-services box must be stripped")
	assert.NotContains(t, result.Text, "tracked", "script content must be dropped")
}

func TestContentPDFFallback(t *testing.T) {
	texts := make([]string, 10)
	for i := range texts {
		texts[i] = fmt.Sprintf("PAGEMARK%02d", i+1)
	}
	pdfData := buildPDF(t, texts)

	mux := http.NewServeMux()
	mux.HandleFunc("/html/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/paper.pdf", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdfData)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()
	withHTMLBase(t, ts.URL+"/html/")

	r := New(types.ReaderConfig{})
	result := r.Content(context.Background(), "2301.07041v1", ts.URL+"/paper.pdf")

	require.Equal(t, types.SourcePDF, result.Source)
	assert.Contains(t, result.Text, "PAGEMARK01")
	assert.Contains(t, result.Text, "PAGEMARK08")
	assert.NotContains(t, result.Text, "PAGEMARK09", "extraction stops at the page cap")
	assert.NotContains(t, result.Text, "PAGEMARK10")
}

func TestContentPDFPageCapConfigurable(t *testing.T) {
	pdfData := buildPDF(t, []string{"PAGEMARK01", "PAGEMARK02", "PAGEMARK03"})

	mux := http.NewServeMux()
	mux.HandleFunc("/html/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/paper.pdf", func(w http.ResponseWriter, r *http.Request) {
		w.Write(pdfData)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()
	withHTMLBase(t, ts.URL+"/html/")

	r := New(types.ReaderConfig{MaxPages: 2})
	result := r.Content(context.Background(), "2301.07041v1", ts.URL+"/paper.pdf")

	require.Equal(t, types.SourcePDF, result.Source)
	assert.Contains(t, result.Text, "PAGEMARK02")
	assert.NotContains(t, result.Text, "PAGEMARK03")
}

func TestContentBothTiersFail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer ts.Close()
	withHTMLBase(t, ts.URL+"/html/")

	r := New(types.ReaderConfig{})
	result := r.Content(context.Background(), "2301.07041v1", ts.URL+"/paper.pdf")

	require.Equal(t, types.SourceFailed, result.Source)
	assert.True(t, result.Failed())
	assert.True(t, strings.HasPrefix(result.Text, "Error:"), "failure text carries the marker: %q", result.Text)
}

func TestContentMalformedPDF(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/html/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/paper.pdf", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "this is not a pdf")
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()
	withHTMLBase(t, ts.URL+"/html/")

	r := New(types.ReaderConfig{})
	result := r.Content(context.Background(), "2301.07041v1", ts.URL+"/paper.pdf")

	assert.Equal(t, types.SourceFailed, result.Source)
	assert.True(t, result.Failed())
}

func TestContentEmptyPDFURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(http.NotFound))
	defer ts.Close()
	withHTMLBase(t, ts.URL+"/html/")

	r := New(types.ReaderConfig{})
	result := r.Content(context.Background(), "2301.07041v1", "")

	assert.Equal(t, types.SourceFailed, result.Source)
}
