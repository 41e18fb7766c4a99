// Package app wires configuration into a ready search pipeline and renders
// console reports for the command-line front end.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"docsearch/internal/config"
	"docsearch/internal/corpus"
	"docsearch/internal/extract"
	"docsearch/internal/metrics"
	"docsearch/internal/service"
	"docsearch/internal/textnorm"
	"docsearch/internal/tfidf"
)

// Pipeline holds the assembled components shared by the binaries.
type Pipeline struct {
	Documents *corpus.Directory
	Service   *service.SearchService
}

// NewPipeline assembles directory, extractors, normalizer and service from cfg.
func NewPipeline(cfg *config.AppConfig, logger *zap.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics.RegisterSearchMetrics()

	langCfg, err := textnorm.NewConfig(cfg.Search.Language)
	if err != nil {
		return nil, fmt.Errorf("normalizer: %w", err)
	}

	docs := corpus.NewDirectory(cfg.Documents.Location, cfg.Documents.Extension)
	loader := corpus.NewLoader(docs, extract.Default(), logger.Named("loader")).
		WithDropObserver(metrics.ObserveDrop)
	svc := service.NewSearchService(
		loader,
		textnorm.New(langCfg),
		tfidf.NewVectorizer(),
		cfg.Search.PreviewLength,
		logger.Named("search"),
	)

	logger.Info("search pipeline ready",
		zap.String("location", cfg.Documents.Location),
		zap.String("extension", cfg.Documents.Extension),
		zap.String("language", langCfg.Language()),
		zap.Int("stopwords", langCfg.StopwordCount()),
		zap.Int("preview_length", cfg.Search.PreviewLength),
	)
	return &Pipeline{Documents: docs, Service: svc}, nil
}
