// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch resolves paper identifiers and downloads documents.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nro337/docparse/internal/httputil"
	"github.com/nro337/docparse/pkg/types"
)

// Kind identifies the payload type of a fetched document.
type Kind int

const (
	KindHTML Kind = iota
	KindPDF
)

func (k Kind) String() string {
	switch k {
	case KindPDF:
		return "pdf"
	default:
		return "html"
	}
}

// maxBodySize bounds how much of a response is read (32 MiB).
const maxBodySize = 32 << 20

// Document is a downloaded document ready for conversion.
type Document struct {
	// URL is the resolved location the body was fetched from.
	URL string

	// Kind reports whether the body is HTML or PDF.
	Kind Kind

	// Body is the raw response payload.
	Body []byte
}

// Fetch resolves identifier to a URL, downloads it, and classifies the
// payload. Unrecognized identifiers and non-2xx terminal responses are
// errors.
func Fetch(ctx context.Context, client *http.Client, identifier string, cfg types.HTTPConfig) (*Document, error) {
	idType, normalized := Classify(identifier)
	if idType == TypeUnknown {
		return nil, fmt.Errorf("unrecognized identifier format: %q", identifier)
	}

	fetchURL := ResolveURL(idType, normalized)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", fetchURL, err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", fetchURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", fetchURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", fetchURL, err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("fetching %s: empty response body", fetchURL)
	}

	finalURL := fetchURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &Document{
		URL:  finalURL,
		Kind: DetectKind(resp.Header.Get("Content-Type"), body),
		Body: body,
	}, nil
}

// DetectKind classifies a payload from its Content-Type header, falling
// back to the %PDF- magic bytes when the header is absent or generic.
func DetectKind(contentType string, body []byte) Kind {
	if strings.Contains(contentType, "application/pdf") {
		return KindPDF
	}
	if strings.Contains(contentType, "text/html") {
		return KindHTML
	}
	if bytes.HasPrefix(body, []byte("%PDF-")) {
		return KindPDF
	}
	return KindHTML
}
