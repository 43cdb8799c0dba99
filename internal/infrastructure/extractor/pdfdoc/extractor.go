// Package pdfdoc extracts plain text from uploaded PDF byte streams.
package pdfdoc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

// Extract reads every document fully, pulls text page by page and joins the
// documents with a newline. Pages whose primary extraction comes back empty
// are retried in row mode, which keeps word spacing the plain-text pass can
// drop. A fully image-based document contributes nothing; the caller treats
// an empty trimmed result as the no-text failure case.
func (e *Extractor) Extract(ctx context.Context, docs []io.Reader) (string, error) {
	var b strings.Builder
	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		raw, err := io.ReadAll(doc)
		if err != nil {
			return "", fmt.Errorf("read document %d: %w", i+1, err)
		}
		text, err := extractDocument(raw)
		if err != nil {
			return "", fmt.Errorf("extract document %d: %w", i+1, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func extractDocument(raw []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil || strings.TrimSpace(text) == "" {
			text = extractPageByRows(page)
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

// extractPageByRows is the whitespace-preserving fallback for pages where
// plain-text extraction found nothing.
func extractPageByRows(page pdf.Page) string {
	rows, err := page.GetTextByRow()
	if err != nil {
		return ""
	}

	var b strings.Builder
	for _, row := range rows {
		for _, word := range row.Content {
			b.WriteString(word.S)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}
