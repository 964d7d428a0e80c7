// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/nro337/docparse/internal/fetch"
)

// HTMLConverter converts HTML pages to Markdown using the
// html-to-markdown library.
type HTMLConverter struct{}

// Convert returns the Markdown rendition of an HTML document.
func (c *HTMLConverter) Convert(doc *fetch.Document) (string, error) {
	md, err := htmltomarkdown.ConvertString(string(doc.Body))
	if err != nil {
		return "", fmt.Errorf("converting HTML from %s: %w", doc.URL, err)
	}
	return strings.TrimSpace(md), nil
}
