package embedding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadVectors(t *testing.T) {
	input := strings.Join([]string{
		"dog 0.5 -1.0 2",
		"cat 1 1 1",
		"broken 1 x 1",
		"short 1 2",
		"",
		"lonely",
	}, "\n")

	vectors, err := ReadVectors(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, vectors.Len())
	assert.Equal(t, 3, vectors.Dimension())

	dog, ok := vectors.Get("dog")
	require.True(t, ok)
	assert.Equal(t, []float64{0.5, -1.0, 2}, dog)

	_, ok = vectors.Get("short")
	assert.False(t, ok)
}

func TestDistance(t *testing.T) {
	d, err := Distance([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-12)

	d, err = Distance([]float64{1, 2, 3}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Zero(t, d)

	_, err = Distance([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestAdd_DimensionMismatch(t *testing.T) {
	vectors := NewVectors()
	require.NoError(t, vectors.Add("a", []float64{1, 2}))

	err := vectors.Add("b", []float64{1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
