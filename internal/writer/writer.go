// Package writer persists summaries into an output tree mirroring the input.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format selects how summaries are persisted.
type Format string

const (
	FormatText Format = "txt"
	FormatDocx Format = "docx"
)

const summarySuffix = "_summary"

// Writer writes one summary file per transcript under the output root.
type Writer struct {
	root   string
	format Format
}

// New creates a Writer rooted at the output directory.
func New(root string, format Format) *Writer {
	if format == "" {
		format = FormatText
	}
	return &Writer{root: root, format: format}
}

// Write persists the summary for the transcript at relPath, creating any
// missing parent directories and overwriting a previous summary. It returns
// the path written. Permission failures surface as wrapped fs errors.
func (w *Writer) Write(relPath, summary string) (string, error) {
	base := filepath.Base(relPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	dir := filepath.Join(w.root, filepath.Dir(relPath))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	if w.format == FormatDocx {
		out := filepath.Join(dir, stem+summarySuffix+".docx")
		if err := markdownToDocx(stem, summary, out); err != nil {
			return "", fmt.Errorf("write docx summary: %w", err)
		}
		return out, nil
	}

	out := filepath.Join(dir, stem+summarySuffix+".txt")
	if err := os.WriteFile(out, []byte(summary), 0644); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}
	return out, nil
}
