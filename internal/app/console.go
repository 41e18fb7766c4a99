package app

import (
	"context"
	"fmt"
	"io"

	"docsearch/internal/domain"
	"docsearch/internal/service"
)

// Report runs query against corpus and prints the document count, the
// similarity of every document and the ranking. verbose adds the normalized
// documents and query.
func Report(ctx context.Context, w io.Writer, svc *service.SearchService, query string, corpus domain.Corpus, verbose bool) error {
	fmt.Fprintf(w, "Documents: %d\n", len(corpus))

	results, ex, err := svc.RankExplained(ctx, query, corpus)
	if err != nil {
		return err
	}
	switch {
	case ex != nil:
		printExplanation(w, corpus, ex, verbose)
	case len(corpus) > 0:
		fmt.Fprintln(w, "\nNo indexable terms in documents or query.")
	}

	fmt.Fprintln(w, "\n=== Ranking ===")
	if len(results) == 0 {
		fmt.Fprintln(w, "no matching documents")
		return nil
	}
	for i, r := range results {
		fmt.Fprintf(w, "%d. %s score %.4f (%.2f%%)\n", i+1, r.Name, r.Score, r.ScorePercent)
	}
	return nil
}

func printExplanation(w io.Writer, corpus domain.Corpus, ex *service.Explanation, verbose bool) {
	if verbose {
		fmt.Fprintln(w, "\n=== Normalized Documents ===")
		for i, d := range ex.NormalizedDocuments {
			fmt.Fprintf(w, "%s: %s\n", corpus[i].Name, d)
		}
		fmt.Fprintln(w, "\n=== Normalized Query ===")
		fmt.Fprintln(w, ex.NormalizedQuery)
	}

	fmt.Fprintln(w, "\n=== Scores ===")
	for i, score := range ex.Scores {
		fmt.Fprintf(w, "%s: %.4f\n", corpus[i].Name, score)
	}
}
