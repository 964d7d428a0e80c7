// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes the paper collection to markdown, YAML, or
// JSON files.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/nao1215/markdown"
	"go.yaml.in/yaml/v3"

	"github.com/nro337/docparse/pkg/types"
)

// filenameStamp is the timestamp layout in default export filenames.
const filenameStamp = "20060102_150405"

// Markdown writes the collection report to w: a header with the export
// time and total count, then one numbered section per paper with its
// URL, added date, and abstract.
func Markdown(papers []types.Paper, now time.Time, w io.Writer) error {
	md := markdown.NewMarkdown(w)

	md.H1("Paper Collection")
	md.PlainText("")
	md.PlainTextf("Exported: %s", now.Format("2006-01-02 15:04:05"))
	md.PlainText("")
	md.PlainTextf("Total papers: %d", len(papers))
	md.PlainText("")
	md.HorizontalRule()
	md.PlainText("")

	for i, p := range papers {
		md.H2f("%d. %s", i+1, p.Title)
		md.PlainText("")
		md.PlainTextf("%s %s", markdown.Bold("URL:"), p.URL)
		md.PlainText("")
		md.PlainTextf("%s %s", markdown.Bold("Added:"), p.AddedDate.Format(time.RFC3339))
		md.PlainText("")
		md.H3("Abstract")
		md.PlainText("")
		md.PlainText(p.Abstract)
		md.PlainText("")
		md.HorizontalRule()
		md.PlainText("")
	}

	return md.Build()
}

// Write exports papers in the configured format. When filename is empty
// a timestamped name is generated under cfg.Dir. It returns the path of
// the written file.
func Write(papers []types.Paper, cfg types.ExportConfig, filename string) (string, error) {
	format := cfg.Format
	if format == "" {
		format = types.FormatMarkdown
	}

	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory %s: %w", dir, err)
	}

	if filename == "" {
		filename = fmt.Sprintf("papers_export_%s%s", time.Now().Format(filenameStamp), extension(format))
	}
	path := filepath.Join(dir, filename)

	var (
		data []byte
		err  error
	)
	switch format {
	case types.FormatMarkdown:
		f, createErr := os.Create(path)
		if createErr != nil {
			return "", fmt.Errorf("creating export file %s: %w", path, createErr)
		}
		if err := Markdown(papers, time.Now(), f); err != nil {
			f.Close()
			return "", fmt.Errorf("writing markdown export: %w", err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("closing export file %s: %w", path, err)
		}
		return path, nil
	case types.FormatYAML:
		data, err = yaml.Marshal(papers)
		if err != nil {
			return "", fmt.Errorf("marshaling YAML export: %w", err)
		}
	case types.FormatJSON:
		data, err = json.MarshalIndent(papers, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshaling JSON export: %w", err)
		}
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing export file %s: %w", path, err)
	}
	return path, nil
}

func extension(format types.ExportFormat) string {
	switch format {
	case types.FormatYAML:
		return ".yaml"
	case types.FormatJSON:
		return ".json"
	default:
		return ".md"
	}
}
