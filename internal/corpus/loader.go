// Package corpus reads the documents folder into an ordered Corpus.
package corpus

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"docsearch/internal/domain"
)

// Source is a folder that can enumerate documents and resolve their paths.
type Source interface {
	domain.FileLister
	Path(name string) string
}

// DropObserver is notified once per document dropped during a load.
type DropObserver func(name string, err error)

// Loader turns the files of a Source into a Corpus.
type Loader struct {
	source    Source
	extractor domain.Extractor
	logger    *zap.Logger
	onDrop    DropObserver
}

// NewLoader creates a Loader. A nil logger disables logging.
func NewLoader(source Source, extractor domain.Extractor, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{source: source, extractor: extractor, logger: logger}
}

// WithDropObserver registers a callback for dropped documents.
func (l *Loader) WithDropObserver(fn DropObserver) *Loader {
	l.onDrop = fn
	return l
}

// Load extracts every eligible file in listing order. Files that fail to extract
// or contain only whitespace are skipped. Only listing failures and context
// cancellation are returned as errors.
func (l *Loader) Load(ctx context.Context) (domain.Corpus, error) {
	names, err := l.source.List()
	if err != nil {
		return nil, err
	}
	docs := make(domain.Corpus, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := l.source.Path(name)
		text, err := l.extractor.Extract(path)
		if err != nil {
			l.drop(name, err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			l.drop(name, nil)
			continue
		}
		docs = append(docs, domain.Document{Name: name, Path: path, Text: text})
	}
	l.logger.Debug("corpus loaded",
		zap.Int("files", len(names)),
		zap.Int("documents", len(docs)),
	)
	return docs, nil
}

func (l *Loader) drop(name string, err error) {
	if err != nil {
		l.logger.Warn("skipping unreadable document", zap.String("name", name), zap.Error(err))
	} else {
		l.logger.Debug("skipping empty document", zap.String("name", name))
	}
	if l.onDrop != nil {
		l.onDrop(name, err)
	}
}
