// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/nro337/docparse/internal/fetch"
)

// PDFConverter extracts text from PDF documents page by page using the
// ledongthuc/pdf reader (pure Go, no external tools). The output is
// plain text, which downstream extraction treats as Markdown without
// headings.
type PDFConverter struct{}

// Convert returns the concatenated page text of a PDF document, pages
// separated by blank lines. Unreadable pages are skipped.
func (c *PDFConverter) Convert(doc *fetch.Document) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(doc.Body), int64(len(doc.Body)))
	if err != nil {
		return "", fmt.Errorf("opening PDF from %s: %w", doc.URL, err)
	}

	var text strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}

		if text.Len() > 0 {
			text.WriteString("\n\n")
		}
		text.WriteString(pageText)
	}

	return text.String(), nil
}
