// Package textnorm lowercases, tokenizes, filters stopwords and stems text
// so documents and queries share one term space.
package textnorm

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
)

// Normalizer applies case folding, word segmentation, stopword removal and stemming.
// It holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	cfg Config
}

// New creates a Normalizer bound to cfg.
func New(cfg Config) *Normalizer {
	return &Normalizer{cfg: cfg}
}

// Config returns the language resources in use.
func (n *Normalizer) Config() Config { return n.cfg }

// Normalize returns the stems of text joined by single spaces.
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}
	// cases.Caser is stateful, so a fresh one is built per call.
	lower := cases.Lower(n.cfg.tag).String(text)
	tokens := Tokenize(lower)
	stems := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if n.cfg.IsStopword(tok) {
			continue
		}
		stem := n.cfg.stemmer.Stem(tok)
		if stem == "" {
			continue
		}
		stems = append(stems, stem)
	}
	return strings.Join(stems, " ")
}

// Tokenize splits text on Unicode word boundaries (UAX #29) and keeps
// the segments that contain at least one letter or digit.
func Tokenize(text string) []string {
	var tokens []string
	state := -1
	var word string
	for len(text) > 0 {
		word, text, state = uniseg.FirstWordInString(text, state)
		if isWord(word) {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
