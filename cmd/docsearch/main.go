package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"docsearch/internal/app"
	"docsearch/internal/config"
	logpkg "docsearch/internal/logger"
	"docsearch/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath string
		query   string
		useTUI  bool
		verbose bool
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ./config.yaml or ~/.config/docsearch/config.yaml if not provided)")
	flag.StringVar(&query, "query", "", "Search query (remaining arguments are used when empty)")
	flag.BoolVar(&useTUI, "tui", false, "Open the interactive search interface")
	flag.BoolVar(&verbose, "verbose", false, "Print normalized documents and query")
	flag.Parse()
	if query == "" {
		query = strings.Join(flag.Args(), " ")
	}
	if query == "" && !useTUI {
		fmt.Println("Usage: docsearch [--config=config.yaml] [--verbose] [--tui] [--query=text | text...]")
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// console output owns stdout; keep logs quiet unless asked
	level := cfg.Logging.Level
	if level == "" && !verbose {
		level = "warn"
	}
	logger, err := logpkg.NewLogger(cfg.Logging.Env, level)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p, err := app.NewPipeline(cfg, logger)
	if err != nil {
		logger.Fatal("failed to build pipeline", zap.Error(err))
	}

	if useTUI {
		summary := fmt.Sprintf("Searching %s (%s)", p.Documents.Location(), cfg.Search.Language)
		m := tui.New(ctx, p.Service, summary)
		if _, err := tea.NewProgram(m).Run(); err != nil {
			logger.Fatal("tui failed", zap.Error(err))
		}
		return
	}

	corpus, err := p.Service.LoadCorpus(ctx)
	if err != nil {
		logger.Fatal("failed to load documents", zap.Error(err))
	}
	if err := app.Report(ctx, os.Stdout, p.Service, query, corpus, verbose); err != nil {
		logger.Fatal("search failed", zap.Error(err))
	}
}
