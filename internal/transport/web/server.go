// Package web serves the HTML search front end: document list, query form,
// ranked results and inline download of the source files.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"docsearch/internal/domain"
	logpkg "docsearch/internal/logger"
	"docsearch/internal/metrics"
	"docsearch/internal/service"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Searcher is the pipeline surface the front end needs.
type Searcher interface {
	LoadCorpus(ctx context.Context) (domain.Corpus, error)
	Search(ctx context.Context, query string) (*service.Response, error)
}

// Server renders pages on top of a Searcher and serves raw files through a FileOpener.
type Server struct {
	searcher Searcher
	files    domain.FileOpener
	logger   *zap.Logger
}

// NewServer creates the front end.
func NewServer(searcher Searcher, files domain.FileOpener, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{searcher: searcher, files: files, logger: logger}
}

// Router builds the chi router with the full middleware stack.
// requestTimeout bounds each request; zero disables the bound.
func (s *Server) Router(requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(Recoverer(s.logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(WideEvent(s.logger))
	r.Use(metrics.Middleware())
	if requestTimeout > 0 {
		r.Use(chiMiddleware.Timeout(requestTimeout))
	}

	r.Get("/", s.handleIndex)
	r.Get("/search", s.handleSearch)
	r.Post("/search", s.handleSearch)
	r.Get("/download/{filename}", s.handleDownload)
	r.Get("/healthz", handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

type documentLink struct {
	Name        string
	DownloadURL string
}

type resultView struct {
	domain.ScoredResult
	DownloadURL string
}

type pageData struct {
	Query     string
	Searched  bool
	Results   []resultView
	TotalDocs int
	Documents []documentLink
	Error     string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	corpus, err := s.searcher.LoadCorpus(r.Context())
	if err != nil {
		s.renderError(w, r, pageData{}, err)
		return
	}
	s.render(w, r, http.StatusOK, pageData{
		TotalDocs: len(corpus),
		Documents: links(corpus),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	// FormValue covers both the POST body and the URL query string.
	query := r.FormValue("query")
	page := pageData{Query: query, Searched: true}

	resp, err := s.searcher.Search(r.Context(), query)
	if err != nil {
		s.renderError(w, r, page, err)
		return
	}

	page.TotalDocs = len(resp.Corpus)
	page.Documents = links(resp.Corpus)
	page.Results = make([]resultView, len(resp.Results))
	for i, res := range resp.Results {
		page.Results[i] = resultView{ScoredResult: res, DownloadURL: downloadURL(res.Name)}
	}
	s.render(w, r, http.StatusOK, page)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
	}
	log := logpkg.FromContext(r.Context(), s.logger)

	f, err := s.files.Open(name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidName) || errors.Is(err, domain.ErrDocumentNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Error("open document failed", zap.String("name", name), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		log.Error("stat document failed", zap.String("name", name), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": name}))
	http.ServeContent(w, r, name, info.ModTime(), f)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// renderError shows err on the page with status 500.
// A deadline hit is left to the timeout middleware, a client that went away gets nothing.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, page pageData, err error) {
	log := logpkg.FromContext(r.Context(), s.logger)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		log.Warn("request aborted", zap.Error(err))
		return
	}
	log.Error("search pipeline failed", zap.Error(err))
	page.Error = err.Error()
	s.render(w, r, http.StatusInternalServerError, page)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := indexTemplate.Execute(w, page); err != nil {
		logpkg.FromContext(r.Context(), s.logger).Error("render template", zap.Error(err))
	}
}

func links(corpus domain.Corpus) []documentLink {
	out := make([]documentLink, len(corpus))
	for i, d := range corpus {
		out[i] = documentLink{Name: d.Name, DownloadURL: downloadURL(d.Name)}
	}
	return out
}

func downloadURL(name string) string {
	return "/download/" + url.PathEscape(name)
}
