// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls the title and abstract out of converted
// Markdown text.
package extract

import (
	"regexp"
	"strings"
)

// NoAbstract is stored when no abstract section is found.
const NoAbstract = "No abstract found"

// abstractHeading matches an abstract heading line at any level:
// "## Abstract", "# ABSTRACT", "###   abstract".
var abstractHeading = regexp.MustCompile(`(?i)^#{1,6}\s*Abstract\s*$`)

// nextHeading matches any heading line that ends an abstract section.
var nextHeading = regexp.MustCompile(`^#{1,6}\s+\w+`)

// whitespace collapses runs of whitespace when joining abstract lines.
var whitespace = regexp.MustCompile(`\s+`)

// Title returns the first top-level heading of the markdown text, or
// url when the document has none.
func Title(markdown, url string) string {
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") && len(line) > 2 {
			return strings.TrimSpace(line[2:])
		}
	}
	return url
}

// Abstract returns the text of the abstract section and whether one was
// found. The section starts at a heading line reading "Abstract" (any
// level, case-insensitive) and runs until the next heading. Lines are
// joined with single spaces and interior whitespace is collapsed.
func Abstract(markdown string) (string, bool) {
	if markdown == "" {
		return "", false
	}

	lines := strings.Split(markdown, "\n")
	start := -1
	for i, line := range lines {
		if abstractHeading.MatchString(strings.TrimSpace(line)) {
			start = i
			break
		}
	}
	if start < 0 {
		return "", false
	}

	var collected []string
	for _, line := range lines[start+1:] {
		line = strings.TrimSpace(line)
		if nextHeading.MatchString(line) {
			break
		}
		if line != "" {
			collected = append(collected, line)
		}
	}
	if len(collected) == 0 {
		return "", false
	}

	text := strings.Join(collected, " ")
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " ")), true
}

// Metadata extracts both fields, applying the title fallback and the
// NoAbstract placeholder.
func Metadata(markdown, url string) (title, abstract string) {
	title = Title(markdown, url)
	abstract, ok := Abstract(markdown)
	if !ok {
		abstract = NoAbstract
	}
	return title, abstract
}
