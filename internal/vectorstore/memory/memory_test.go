package memory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine(t *testing.T) {
	assert.InDelta(t, 0.5, Cosine([]float64{1, 0, 1}, []float64{0, 1, 1}), 1e-12)
	assert.InDelta(t, 1.0, Cosine([]float64{3, 4}, []float64{6, 8}), 1e-12)
	assert.Zero(t, Cosine([]float64{0, 0}, []float64{1, 1}))
	assert.Zero(t, Cosine([]float64{1, 0}, []float64{0, 1}))
}

func TestCosine_NeverAboveOne(t *testing.T) {
	v := []float64{0.1, 0.7, 1.0 / 3.0, math.Pi}
	assert.LessOrEqual(t, Cosine(v, v), 1.0)
}

func TestSearch_FiltersAndSorts(t *testing.T) {
	s, err := NewStorage(3)
	require.NoError(t, err)
	require.NoError(t, s.Add(
		[]float64{0, 1, 0}, // orthogonal to the query
		[]float64{1, 1, 0},
		[]float64{1, 0, 0},
	))
	assert.Equal(t, 3, s.Len())

	hits, err := s.Search([]float64{1, 0, 0})
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, 2, hits[0].Index)
	assert.InDelta(t, 1.0, hits[0].Score, 1e-12)
	assert.Equal(t, 1, hits[1].Index)
	assert.InDelta(t, 1/math.Sqrt2, hits[1].Score, 1e-12)
}

func TestSearch_TiesKeepInsertionOrder(t *testing.T) {
	s, err := NewStorage(2)
	require.NoError(t, err)
	same := []float64{0.6, 0.8}
	require.NoError(t, s.Add([]float64{0, 1}, same, []float64{1, 0}, same, same))

	hits, err := s.Search([]float64{0.6, 0.8})
	require.NoError(t, err)
	require.Len(t, hits, 5)
	assert.Equal(t, []int{1, 3, 4}, []int{hits[0].Index, hits[1].Index, hits[2].Index})
}

func TestStorage_DimensionChecks(t *testing.T) {
	_, err := NewStorage(0)
	assert.Error(t, err)

	s, err := NewStorage(2)
	require.NoError(t, err)
	assert.Error(t, s.Add([]float64{1, 2, 3}))
	_, err = s.Search([]float64{1})
	assert.Error(t, err)
}
