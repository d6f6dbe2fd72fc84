// Package embedding loads word vectors and measures distances between them.
package embedding

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ritzau/cousin-words/pkg/logging"
	"gonum.org/v1/gonum/floats"
)

// ErrDimensionMismatch is returned when two vectors differ in length
var ErrDimensionMismatch = errors.New("vector dimensions differ")

// Vectors maps a word to its embedding. All vectors share one dimension.
type Vectors struct {
	byWord    map[string][]float64
	dimension int
}

// NewVectors creates an empty vector table
func NewVectors() *Vectors {
	return &Vectors{byWord: make(map[string][]float64)}
}

// Add stores a vector. The first vector fixes the table's dimension.
func (v *Vectors) Add(word string, vec []float64) error {
	if v.dimension == 0 {
		v.dimension = len(vec)
	}
	if len(vec) != v.dimension {
		return fmt.Errorf("%q has %d components, want %d: %w", word, len(vec), v.dimension, ErrDimensionMismatch)
	}
	v.byWord[word] = vec
	return nil
}

// Get returns the vector for word
func (v *Vectors) Get(word string) ([]float64, bool) {
	vec, ok := v.byWord[word]
	return vec, ok
}

// Len returns the number of words with a vector
func (v *Vectors) Len() int {
	return len(v.byWord)
}

// Dimension returns the shared vector length, 0 when empty
func (v *Vectors) Dimension() int {
	return v.dimension
}

// Distance is the Euclidean distance between two vectors
func Distance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	return floats.Distance(a, b, 2), nil
}

// ReadVectors parses "<word> <x1> <x2> ..." lines. Lines that do not parse
// or do not match the dimension of the first vector are skipped.
func ReadVectors(r io.Reader) (*Vectors, error) {
	logger := logging.New("embedding")
	vectors := NewVectors()
	skipped := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		vec, err := parseComponents(fields[1:])
		if err != nil {
			logger.Debug("Skipping vector", "line", lineNo, "error", err)
			skipped++
			continue
		}
		if err := vectors.Add(fields[0], vec); err != nil {
			logger.Debug("Skipping vector", "line", lineNo, "error", err)
			skipped++
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading vectors: %w", err)
	}

	if skipped > 0 {
		logger.Warn("Skipped malformed vectors", "count", skipped)
	}
	logger.Debug("Loaded vectors", "words", vectors.Len(), "dimension", vectors.Dimension())
	return vectors, nil
}

// LoadVectors reads a whitespace-separated embedding file such as GloVe
func LoadVectors(path string) (*Vectors, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	vectors, err := ReadVectors(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vectors, nil
}

func parseComponents(fields []string) ([]float64, error) {
	vec := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		vec[i] = x
	}
	return vec, nil
}
