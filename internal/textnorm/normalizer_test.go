package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func identityConfig(stopwords ...string) Config {
	return NewCustomConfig("test", language.Und, stopwords, nil)
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("hello, world! it's 3.14 — ok?")
	assert.Equal(t, []string{"hello", "world", "it's", "3.14", "ok"}, tokens)
}

func TestTokenize_UnicodeLetters(t *testing.T) {
	tokens := Tokenize("café naïve Ünïcödé")
	assert.Equal(t, []string{"café", "naïve", "Ünïcödé"}, tokens)
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("  ... !!! "))
}

func TestNormalize_LowercasesAndDropsStopwords(t *testing.T) {
	n := New(identityConfig("the", "of"))
	assert.Equal(t, "history rome", n.Normalize("The History of ROME."))
}

func TestNormalize_PreservesOrder(t *testing.T) {
	n := New(identityConfig())
	assert.Equal(t, "c b a b", n.Normalize("C, b; a: B"))
}

func TestNormalize_EmptyInput(t *testing.T) {
	n := New(identityConfig())
	assert.Equal(t, "", n.Normalize(""))
	assert.Equal(t, "", n.Normalize("   \n\t"))
}

func TestNormalize_Deterministic(t *testing.T) {
	cfg, err := NewConfig(Indonesian)
	require.NoError(t, err)
	n := New(cfg)
	text := "Mahasiswa Primakara sedang mempelajari pemrograman di kampus."
	first := n.Normalize(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, n.Normalize(text))
	}
}

func TestNormalize_StemmerApplied(t *testing.T) {
	stem := StemmerFunc(func(w string) string {
		if w == "cats" {
			return "cat"
		}
		return w
	})
	n := New(NewCustomConfig("test", language.English, nil, stem))
	assert.Equal(t, "cat dog", n.Normalize("Cats dog"))
}

func TestNormalize_DropsEmptyStems(t *testing.T) {
	stem := StemmerFunc(func(w string) string {
		if w == "gone" {
			return ""
		}
		return w
	})
	n := New(NewCustomConfig("test", language.English, nil, stem))
	assert.Equal(t, "still here", n.Normalize("still gone here"))
}

func TestIndonesian(t *testing.T) {
	cfg, err := NewConfig(Indonesian)
	require.NoError(t, err)
	assert.Equal(t, Indonesian, cfg.Language())
	assert.True(t, cfg.IsStopword("yang"))
	assert.True(t, cfg.IsStopword("adalah"))
	assert.False(t, cfg.IsStopword("kucing"))

	n := New(cfg)
	assert.Equal(t, "kucing makan ikan", n.Normalize("Kucing makan ikan"))
	assert.Equal(t, "makan", n.Normalize("memakan"))
	assert.Equal(t, "", n.Normalize("yang dan di adalah"))
}

func TestEnglish(t *testing.T) {
	cfg, err := NewConfig("English")
	require.NoError(t, err)
	assert.Equal(t, English, cfg.Language())
	assert.Equal(t, 179, cfg.StopwordCount())

	n := New(cfg)
	assert.Equal(t, "cat run", n.Normalize("The cats are running"))
}

func TestNewConfig_DefaultsToIndonesian(t *testing.T) {
	cfg, err := NewConfig("")
	require.NoError(t, err)
	assert.Equal(t, Indonesian, cfg.Language())
}

func TestNewConfig_Unsupported(t *testing.T) {
	_, err := NewConfig("klingon")
	assert.ErrorContains(t, err, "unsupported language")
}
