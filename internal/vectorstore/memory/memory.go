package memory

import (
	"errors"
	"math"
	"sort"
	"sync"
)

// Hit is a stored vector that scored above zero against a query.
// Index is the insertion position of the vector.
type Hit struct {
	Index int
	Score float64
}

// Storage is a simple in-memory vector store using brute-force cosine similarity.
type Storage struct {
	mu        sync.RWMutex
	dimension int
	vectors   [][]float64
}

// NewStorage creates an empty store for vectors of the given dimension.
func NewStorage(dimension int) (*Storage, error) {
	if dimension <= 0 {
		return nil, errors.New("invalid dimension")
	}
	return &Storage{dimension: dimension}, nil
}

// Add appends vectors in order.
func (s *Storage) Add(vectors ...[]float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range vectors {
		if len(v) != s.dimension {
			return errors.New("vector dimension mismatch")
		}
	}
	s.vectors = append(s.vectors, vectors...)
	return nil
}

// Len returns the number of stored vectors.
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vectors)
}

// Search scores every stored vector against query and returns those with a
// positive score, highest first. Equal scores keep insertion order.
func (s *Storage) Search(query []float64) ([]Hit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(query) != s.dimension {
		return nil, errors.New("vector dimension mismatch")
	}
	hits := make([]Hit, 0, len(s.vectors))
	for i, v := range s.vectors {
		if score := Cosine(query, v); score > 0 {
			hits = append(hits, Hit{Index: i, Score: score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	return hits, nil
}

// Cosine returns the cosine similarity of a and b, or 0 when either is a zero vector.
// The result is clamped to 1 to absorb rounding on identical directions.
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	for _, x := range a {
		normA += x * x
	}
	for _, x := range b {
		normB += x * x
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim > 1 {
		sim = 1
	}
	return sim
}
