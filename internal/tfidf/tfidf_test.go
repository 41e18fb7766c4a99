package tfidf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitTransform_VocabularyAndIDF(t *testing.T) {
	m, err := NewVectorizer().FitTransform([]string{"apple banana", "apple orange"})
	require.NoError(t, err)

	assert.Equal(t, []string{"apple", "banana", "orange"}, m.Vocabulary)
	assert.Equal(t, 3, m.Dimension())
	require.Len(t, m.Rows, 2)

	// apple occurs in both items: ln(3/3)+1 = 1; banana/orange in one: ln(3/2)+1
	assert.InDelta(t, 1.0, m.IDF[0], 1e-12)
	assert.InDelta(t, math.Log(1.5)+1, m.IDF[1], 1e-12)
	assert.InDelta(t, math.Log(1.5)+1, m.IDF[2], 1e-12)
}

func TestFitTransform_RowsAreL2Normalised(t *testing.T) {
	m, err := NewVectorizer().FitTransform([]string{"a bb bb cc", "dd ee", "bb dd dd dd"})
	require.NoError(t, err)
	for i, row := range m.Rows {
		sum := 0.0
		for _, w := range row {
			sum += w * w
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "row %d", i)
	}
}

func TestFitTransform_TermCounts(t *testing.T) {
	m, err := NewVectorizer().FitTransform([]string{"xx xx yy", "xx yy"})
	require.NoError(t, err)
	// both terms share idf 1, so the first row is (2,1)/sqrt(5)
	assert.InDelta(t, 2/math.Sqrt(5), m.Rows[0][0], 1e-12)
	assert.InDelta(t, 1/math.Sqrt(5), m.Rows[0][1], 1e-12)
}

func TestFitTransform_EmptyItemYieldsZeroRow(t *testing.T) {
	m, err := NewVectorizer().FitTransform([]string{"kucing makan", ""})
	require.NoError(t, err)
	for _, w := range m.Rows[1] {
		assert.Zero(t, w)
	}
}

func TestFitTransform_SingleCharactersIgnored(t *testing.T) {
	m, err := NewVectorizer().FitTransform([]string{"a b c dd"})
	require.NoError(t, err)
	assert.Equal(t, []string{"dd"}, m.Vocabulary)
}

func TestFitTransform_EmptyVocabulary(t *testing.T) {
	_, err := NewVectorizer().FitTransform([]string{"", "a", " "})
	assert.ErrorIs(t, err, ErrEmptyVocabulary)

	_, err = NewVectorizer().FitTransform(nil)
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}
