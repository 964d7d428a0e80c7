// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for document fetching.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "docparse/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// StoreConfig holds settings for the paper store.
type StoreConfig struct {
	// Path is the JSON storage file (default "papers_data.json").
	Path string `json:"path" yaml:"path"`
}

// ServerConfig holds settings for the web server.
type ServerConfig struct {
	// Addr is the listen address (default ":5000").
	Addr string `json:"addr" yaml:"addr"`

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// ExportFormat selects the collection export format.
type ExportFormat string

const (
	FormatMarkdown ExportFormat = "markdown"
	FormatYAML     ExportFormat = "yaml"
	FormatJSON     ExportFormat = "json"
)

// ExportConfig holds settings for collection export.
type ExportConfig struct {
	// Dir is the directory export files are written to (default ".").
	Dir string `json:"dir" yaml:"dir"`

	// Format selects the output format: markdown, yaml, or json.
	Format ExportFormat `json:"format" yaml:"format"`
}

// Config groups all docparse settings.
type Config struct {
	HTTP   HTTPConfig   `json:"http" yaml:"http"`
	Store  StoreConfig  `json:"store" yaml:"store"`
	Server ServerConfig `json:"server" yaml:"server"`
	Export ExportConfig `json:"export" yaml:"export"`
}
