package domain

import "os"

// Document is a single file from the documents location together with its extracted text.
type Document struct {
	Name string
	Path string
	Text string
}

// Corpus is the ordered set of documents produced by one load.
// Order follows the directory listing; documents with blank text are never part of it.
type Corpus []Document

// Names returns the document identifiers in corpus order.
func (c Corpus) Names() []string {
	names := make([]string, len(c))
	for i, d := range c {
		names[i] = d.Name
	}
	return names
}

// ScoredResult represents a document that matched a query with a positive similarity.
type ScoredResult struct {
	Name         string
	Score        float64
	ScorePercent float64
	Preview      string
}

// Extractor reads a single file and returns its plain text.
type Extractor interface {
	Extract(path string) (string, error)
}

// FileLister enumerates eligible document file names in a stable order.
type FileLister interface {
	List() ([]string, error)
}

// FileOpener returns the raw bytes of a document by identifier.
type FileOpener interface {
	Open(name string) (*os.File, error)
}

// Normalizer turns raw text into a space-joined sequence of stems.
type Normalizer interface {
	Normalize(text string) string
}
