// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render projects a parsed profile into human-facing documents.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// AtomicWrite writes content to path via a temp file and rename, so a
// partially written document is never observed.
func AtomicWrite(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, "dctap-tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing content: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), path); err != nil {
		return fmt.Errorf("moving temp file to %s: %w", path, err)
	}

	return nil
}

// sortedElements returns the element keys of a warning bucket in
// lexicographic order, for deterministic rendering.
func sortedElements(bucket map[string][]string) []string {
	keys := make([]string, 0, len(bucket))
	for k := range bucket {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// markdownTable renders a Markdown table. Rows are emitted as given;
// callers sort first when determinism matters.
func markdownTable(headers []string, rows [][]string) string {
	var b strings.Builder

	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("|")
	for range headers {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}

	return b.String()
}

// markdownHeader renders a Markdown heading.
func markdownHeader(level int, text string) string {
	return fmt.Sprintf("%s %s\n\n", strings.Repeat("#", level), text)
}
