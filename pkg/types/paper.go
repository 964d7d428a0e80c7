// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for docparse.
package types

import "time"

// Paper is a stored entry in the collection: the submitted URL plus the
// title and abstract extracted from the converted document.
type Paper struct {
	// ID is a positive integer assigned by the store in insertion order.
	ID int `json:"id" yaml:"id"`

	// URL is the location the document was fetched from.
	URL string `json:"url" yaml:"url"`

	// Title is the extracted paper title, or the URL when no title
	// heading was found in the converted document.
	Title string `json:"title" yaml:"title"`

	// Abstract is the extracted abstract, or the literal placeholder
	// "No abstract found".
	Abstract string `json:"abstract" yaml:"abstract"`

	// AddedDate records when the paper entered the collection.
	AddedDate time.Time `json:"added_date" yaml:"added_date"`

	// Markdown holds the full converted document. It is persisted with
	// the record but stripped from listings and API responses.
	Markdown string `json:"markdown,omitempty" yaml:"markdown,omitempty"`
}

// PaperSummary is the listing shape of a Paper: everything except the
// converted markdown body.
type PaperSummary struct {
	ID        int       `json:"id" yaml:"id"`
	URL       string    `json:"url" yaml:"url"`
	Title     string    `json:"title" yaml:"title"`
	Abstract  string    `json:"abstract" yaml:"abstract"`
	AddedDate time.Time `json:"added_date" yaml:"added_date"`
}

// Summary returns the listing shape of p.
func (p Paper) Summary() PaperSummary {
	return PaperSummary{
		ID:        p.ID,
		URL:       p.URL,
		Title:     p.Title,
		Abstract:  p.Abstract,
		AddedDate: p.AddedDate,
	}
}
