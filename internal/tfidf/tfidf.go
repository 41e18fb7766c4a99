// Package tfidf builds a TF-IDF vector space over a set of texts.
//
// Weights follow the common smooth-IDF convention: raw term counts are multiplied by
// idf(t) = ln((1+n)/(1+df(t))) + 1, where n is the number of items and df(t) the number
// of items containing t, and every row is then L2-normalised.
package tfidf

import (
	"errors"
	"math"
	"regexp"
	"sort"
)

// ErrEmptyVocabulary is returned when no item contains a single term.
var ErrEmptyVocabulary = errors.New("empty vocabulary; items contain no terms")

// Matrix holds one L2-normalised row per input item over a shared vocabulary.
type Matrix struct {
	Vocabulary []string
	IDF        []float64
	Rows       [][]float64
}

// Dimension returns the vocabulary size.
func (m *Matrix) Dimension() int { return len(m.Vocabulary) }

// Vectorizer fits a vocabulary and IDF weights and projects items onto them.
type Vectorizer struct {
	tokenPattern *regexp.Regexp
}

// NewVectorizer creates a vectorizer whose terms are runs of two or more word characters.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{
		tokenPattern: regexp.MustCompile(`[\p{L}\p{N}\p{M}_]{2,}`),
	}
}

// FitTransform builds the vocabulary from items and returns their weight rows in input order.
func (v *Vectorizer) FitTransform(items []string) (*Matrix, error) {
	tokenized := make([][]string, len(items))
	df := make(map[string]int)
	for i, text := range items {
		tokens := v.Tokenize(text)
		tokenized[i] = tokens
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	// Create stable ordering for vocabulary
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	if len(terms) == 0 {
		return nil, ErrEmptyVocabulary
	}
	sort.Strings(terms)

	index := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	n := float64(len(items))
	for i, term := range terms {
		index[term] = i
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}

	rows := make([][]float64, len(items))
	for i, tokens := range tokenized {
		rows[i] = weigh(tokens, index, idf)
	}
	return &Matrix{Vocabulary: terms, IDF: idf, Rows: rows}, nil
}

// Tokenize returns the terms of text as seen by the vectorizer.
func (v *Vectorizer) Tokenize(text string) []string {
	return v.tokenPattern.FindAllString(text, -1)
}

func weigh(tokens []string, index map[string]int, idf []float64) []float64 {
	vec := make([]float64, len(idf))
	for _, tok := range tokens {
		if idx, ok := index[tok]; ok {
			vec[idx]++
		}
	}
	for idx := range vec {
		vec[idx] *= idf[idx]
	}
	// L2 normalize
	norm := 0.0
	for _, w := range vec {
		norm += w * w
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}
