// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest runs the add-paper flow: fetch the document, convert
// it to markdown, extract title and abstract, and store the result.
package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/nro337/docparse/internal/convert"
	"github.com/nro337/docparse/internal/extract"
	"github.com/nro337/docparse/internal/fetch"
	"github.com/nro337/docparse/internal/store"
	"github.com/nro337/docparse/pkg/types"
)

// Ingestor adds papers to the collection from identifiers.
type Ingestor struct {
	client    *http.Client
	converter convert.Converter
	store     *store.Store
	http      types.HTTPConfig
}

// New builds an Ingestor around the given store.
func New(client *http.Client, converter convert.Converter, s *store.Store, httpCfg types.HTTPConfig) *Ingestor {
	return &Ingestor{
		client:    client,
		converter: converter,
		store:     s,
		http:      httpCfg,
	}
}

// Add fetches identifier, converts it, extracts metadata, and stores
// the paper. The stored record (with its assigned ID) is returned.
func (in *Ingestor) Add(ctx context.Context, identifier string) (types.Paper, error) {
	doc, err := fetch.Fetch(ctx, in.client, identifier, in.http)
	if err != nil {
		return types.Paper{}, err
	}

	markdown, err := in.converter.Convert(doc)
	if err != nil {
		return types.Paper{}, err
	}

	title, abstract := extract.Metadata(markdown, doc.URL)

	paper, err := in.store.Add(types.Paper{
		URL:      doc.URL,
		Title:    title,
		Abstract: abstract,
		Markdown: markdown,
	})
	if err != nil {
		return types.Paper{}, fmt.Errorf("storing paper from %s: %w", doc.URL, err)
	}
	return paper, nil
}

// BatchResult holds the outcome of a batch add run.
type BatchResult struct {
	Added  int
	Failed int
	Papers []types.Paper
}

// Total returns the number of identifiers processed.
func (r BatchResult) Total() int {
	return r.Added + r.Failed
}

// HasFailures reports whether any identifiers failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// AddBatch processes multiple identifiers, printing per-item status to
// w and returning a summary. It continues after individual failures.
func (in *Ingestor) AddBatch(ctx context.Context, identifiers []string, w io.Writer) BatchResult {
	var result BatchResult
	for _, id := range identifiers {
		paper, err := in.Add(ctx, id)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", id, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "added:   [%d] %s\n", paper.ID, paper.Title)
		result.Added++
		result.Papers = append(result.Papers, paper)
	}
	fmt.Fprintf(w, "\nBatch summary: %d added, %d failed (total: %d)\n",
		result.Added, result.Failed, result.Total())
	return result
}
