package extract

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// PlainText reads UTF-8 text files as-is.
type PlainText struct{}

// NewPlainText creates a plain text extractor.
func NewPlainText() *PlainText { return &PlainText{} }

// Extract returns the file content. Files that are not valid UTF-8 are rejected.
func (e *PlainText) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read %s: not valid utf-8", path)
	}
	return string(data), nil
}
