package textnorm

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/RadhiFadlillah/go-sastrawi"
	"github.com/kljensen/snowball/english"
	"golang.org/x/text/language"
)

// Supported languages.
const (
	Indonesian = "indonesian"
	English    = "english"
)

//go:embed stopwords/*.txt
var stopwordFiles embed.FS

// Stemmer reduces a single lowercase token to its root form.
type Stemmer interface {
	Stem(word string) string
}

// StemmerFunc adapts a plain function to Stemmer.
type StemmerFunc func(word string) string

// Stem calls f(word).
func (f StemmerFunc) Stem(word string) string { return f(word) }

// Config is the immutable set of language resources used by a Normalizer.
// Build it once with NewConfig and share it for the lifetime of the process.
type Config struct {
	language  string
	tag       language.Tag
	stopwords map[string]struct{}
	stemmer   Stemmer
}

// NewConfig builds the stopword set and stemmer for the given language.
func NewConfig(lang string) (Config, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		lang = Indonesian
	}
	var (
		tag     language.Tag
		stemmer Stemmer
	)
	switch lang {
	case Indonesian:
		tag = language.Indonesian
		s := sastrawi.NewStemmer(sastrawi.DefaultDictionary())
		stemmer = StemmerFunc(s.Stem)
	case English:
		tag = language.English
		stemmer = StemmerFunc(func(w string) string { return english.Stem(w, true) })
	default:
		return Config{}, fmt.Errorf("unsupported language %q (supported: %s)", lang, strings.Join(Languages(), ", "))
	}
	stop, err := loadStopwords(lang)
	if err != nil {
		return Config{}, err
	}
	return Config{language: lang, tag: tag, stopwords: stop, stemmer: stemmer}, nil
}

// NewCustomConfig builds a Config from caller-supplied resources.
func NewCustomConfig(lang string, tag language.Tag, stopwords []string, stemmer Stemmer) Config {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[w] = struct{}{}
	}
	if stemmer == nil {
		stemmer = StemmerFunc(func(w string) string { return w })
	}
	return Config{language: lang, tag: tag, stopwords: set, stemmer: stemmer}
}

// Languages lists the built-in language names.
func Languages() []string {
	langs := []string{Indonesian, English}
	sort.Strings(langs)
	return langs
}

// Language returns the configured language name.
func (c Config) Language() string { return c.language }

// IsStopword reports whether the lowercase token is in the stopword set.
func (c Config) IsStopword(token string) bool {
	_, ok := c.stopwords[token]
	return ok
}

// StopwordCount returns the size of the stopword set.
func (c Config) StopwordCount() int { return len(c.stopwords) }

func loadStopwords(lang string) (map[string]struct{}, error) {
	data, err := stopwordFiles.ReadFile("stopwords/" + lang + ".txt")
	if err != nil {
		return nil, fmt.Errorf("load stopwords for %s: %w", lang, err)
	}
	words := strings.Fields(string(data))
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m, nil
}
