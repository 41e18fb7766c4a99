package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"docsearch/internal/domain"
	"docsearch/internal/metrics"
	"docsearch/internal/tfidf"
	"docsearch/internal/vectorstore/memory"
)

// DefaultPreviewLength is the number of characters of raw text shown with each result.
const DefaultPreviewLength = 300

// CorpusLoader produces a fresh corpus on every call.
type CorpusLoader interface {
	Load(ctx context.Context) (domain.Corpus, error)
}

// Response is the outcome of a full search: the corpus it ran against and the ranked results.
type Response struct {
	Query   string
	Corpus  domain.Corpus
	Results []domain.ScoredResult
}

// Explanation exposes the intermediate state of one ranking run.
type Explanation struct {
	NormalizedDocuments []string
	NormalizedQuery     string
	Vocabulary          []string
	// Scores holds the cosine similarity of every document in corpus order, zeros included.
	Scores []float64
	hits   []memory.Hit
}

// SearchService ranks documents against a query by TF-IDF cosine similarity.
// It keeps no state between calls; every search rebuilds the vector space.
type SearchService struct {
	loader        CorpusLoader
	normalizer    domain.Normalizer
	vectorizer    *tfidf.Vectorizer
	previewLength int
	logger        *zap.Logger
}

// NewSearchService assembles the pipeline. previewLength <= 0 selects DefaultPreviewLength.
func NewSearchService(loader CorpusLoader, normalizer domain.Normalizer, vectorizer *tfidf.Vectorizer, previewLength int, logger *zap.Logger) *SearchService {
	if previewLength <= 0 {
		previewLength = DefaultPreviewLength
	}
	if vectorizer == nil {
		vectorizer = tfidf.NewVectorizer()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchService{
		loader:        loader,
		normalizer:    normalizer,
		vectorizer:    vectorizer,
		previewLength: previewLength,
		logger:        logger,
	}
}

// LoadCorpus refreshes the document set from the configured location.
func (s *SearchService) LoadCorpus(ctx context.Context) (domain.Corpus, error) {
	corpus, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	metrics.CorpusDocuments.Set(float64(len(corpus)))
	return corpus, nil
}

// Search loads the corpus and ranks it against query.
func (s *SearchService) Search(ctx context.Context, query string) (*Response, error) {
	corpus, err := s.LoadCorpus(ctx)
	if err != nil {
		return nil, err
	}
	results, err := s.Rank(ctx, query, corpus)
	if err != nil {
		return nil, err
	}
	return &Response{Query: query, Corpus: corpus, Results: results}, nil
}

// Rank scores every document of corpus against query and returns those with a
// positive score, highest first, ties in corpus order. An empty query or corpus
// yields no results. The only error is cancellation of ctx.
func (s *SearchService) Rank(ctx context.Context, query string, corpus domain.Corpus) ([]domain.ScoredResult, error) {
	results, _, err := s.RankExplained(ctx, query, corpus)
	return results, err
}

// RankExplained is Rank that also returns the explanation the ranking was built from.
// The explanation is nil when nothing was scored: empty corpus, blank query or empty vocabulary.
func (s *SearchService) RankExplained(ctx context.Context, query string, corpus domain.Corpus) ([]domain.ScoredResult, *Explanation, error) {
	start := time.Now()
	defer func() { metrics.SearchDuration.Observe(time.Since(start).Seconds()) }()
	results := []domain.ScoredResult{}

	if len(corpus) == 0 || strings.TrimSpace(query) == "" {
		metrics.SearchesTotal.WithLabelValues(metrics.OutcomeShortCircuit).Inc()
		return results, nil, nil
	}

	ex, err := s.Explain(ctx, query, corpus)
	if errors.Is(err, tfidf.ErrEmptyVocabulary) {
		s.logger.Debug("empty vocabulary, no document can match",
			zap.Int("documents", len(corpus)),
		)
		metrics.SearchesTotal.WithLabelValues(metrics.OutcomeDegenerate).Inc()
		return results, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	for _, h := range ex.hits {
		doc := corpus[h.Index]
		results = append(results, domain.ScoredResult{
			Name:         doc.Name,
			Score:        h.Score,
			ScorePercent: h.Score * 100,
			Preview:      truncate(doc.Text, s.previewLength),
		})
	}

	outcome := metrics.OutcomeHit
	if len(results) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.SearchesTotal.WithLabelValues(outcome).Inc()

	s.logger.Debug("search ranked",
		zap.Int("documents", len(corpus)),
		zap.Int("query_length", len(query)),
		zap.Int("vocabulary", len(ex.Vocabulary)),
		zap.Int("hits", len(results)),
		zap.Duration("latency", time.Since(start)),
	)
	return results, ex, nil
}

// Explain runs normalization, vectorization and similarity without filtering.
// Documents occupy rows 0..n-1 of the vector space and the query row n.
// It returns tfidf.ErrEmptyVocabulary when nothing survives normalization.
func (s *SearchService) Explain(ctx context.Context, query string, corpus domain.Corpus) (*Explanation, error) {
	items := make([]string, 0, len(corpus)+1)
	for _, d := range corpus {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		items = append(items, s.normalizer.Normalize(d.Text))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	normalizedQuery := s.normalizer.Normalize(query)
	items = append(items, normalizedQuery)

	m, err := s.vectorizer.FitTransform(items)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	store, err := memory.NewStorage(m.Dimension())
	if err != nil {
		return nil, err
	}
	if err := store.Add(m.Rows[:len(corpus)]...); err != nil {
		return nil, err
	}
	hits, err := store.Search(m.Rows[len(corpus)])
	if err != nil {
		return nil, err
	}

	scores := make([]float64, len(corpus))
	for _, h := range hits {
		scores[h.Index] = h.Score
	}
	return &Explanation{
		NormalizedDocuments: items[:len(corpus)],
		NormalizedQuery:     normalizedQuery,
		Vocabulary:          m.Vocabulary,
		Scores:              scores,
		hits:                hits,
	}, nil
}

// truncate returns the first n characters (runes) of text.
func truncate(text string, n int) string {
	count := 0
	for i := range text {
		if count == n {
			return text[:i]
		}
		count++
	}
	return text
}
