// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns fetched documents into Markdown text behind a
// pluggable Converter interface, with HTML and PDF backends.
package convert

import (
	"fmt"

	"github.com/nro337/docparse/internal/fetch"
)

// Converter transforms a fetched document into Markdown text. Different
// backends handle different payload kinds.
type Converter interface {
	// Convert returns the Markdown rendition of doc.
	Convert(doc *fetch.Document) (string, error)
}

// Auto dispatches to an HTML or PDF backend based on the document kind.
type Auto struct {
	html Converter
	pdf  Converter
}

// NewAuto builds the dispatching converter with the default backends.
func NewAuto() *Auto {
	return &Auto{
		html: &HTMLConverter{},
		pdf:  &PDFConverter{},
	}
}

// Convert routes doc to the backend matching its kind. Empty conversion
// output is an error so a blank paper never enters the store.
func (a *Auto) Convert(doc *fetch.Document) (string, error) {
	var (
		md  string
		err error
	)
	switch doc.Kind {
	case fetch.KindPDF:
		md, err = a.pdf.Convert(doc)
	default:
		md, err = a.html.Convert(doc)
	}
	if err != nil {
		return "", err
	}
	if md == "" {
		return "", fmt.Errorf("converting %s: empty %s conversion output", doc.URL, doc.Kind)
	}
	return md, nil
}
