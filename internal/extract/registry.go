package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"docsearch/internal/domain"
)

// Registry selects an extractor by file extension.
type Registry struct {
	byExt map[string]domain.Extractor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byExt: make(map[string]domain.Extractor)}
}

// Default returns a registry that handles .pdf and .txt files.
func Default() *Registry {
	r := NewRegistry()
	r.Register(".pdf", NewPDF())
	r.Register(".txt", NewPlainText())
	return r
}

// Register binds an extractor to an extension such as ".pdf".
func (r *Registry) Register(ext string, e domain.Extractor) {
	r.byExt[strings.ToLower(ext)] = e
}

// Extract dispatches to the extractor registered for the file's extension.
func (r *Registry) Extract(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	e, ok := r.byExt[ext]
	if !ok {
		return "", fmt.Errorf("no extractor for %q", ext)
	}
	return e.Extract(path)
}
