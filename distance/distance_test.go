package distance

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Simple", []float32{1, 2, 3}, []float32{4, 5, 6}, 32},
		{"Zero", []float32{0, 0, 0}, []float32{0, 0, 0}, 0},
		{"Mixed", []float32{1, -1, 2}, []float32{1, 1, -2}, -4},
		{"Empty", []float32{}, []float32{}, 0},
		{"Single", []float32{2}, []float32{3}, 6},
		// Large vector to cover the unrolled kernels.
		{"Large", make([]float32, 1024), make([]float32, 1024), 0},
	}

	for i := range tests[5].a {
		tests[5].a[i] = 1
		tests[5].b[i] = 1
	}
	tests[5].expected = 1024

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dot(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-5)
		})
	}

	t.Run("UnequalLengths", func(t *testing.T) {
		_, err := Dot([]float32{1, 2}, []float32{1, 2, 3})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnequalVectorLengths)

		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 2, dm.Expected)
		assert.Equal(t, 3, dm.Actual)
		assert.Equal(t, "vectors are not equal length: expected 2, got 3", err.Error())
	})
}

func TestMagnitude(t *testing.T) {
	assert.InDelta(t, 5.0, Magnitude([]float32{3, 4}), 1e-6)
	assert.InDelta(t, 0.0, Magnitude([]float32{0, 0}), 1e-6)
	assert.InDelta(t, 0.0, Magnitude(nil), 1e-6)
	assert.True(t, math.IsNaN(float64(Magnitude([]float32{float32(math.NaN()), 1}))))
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"Scaled", []float32{1, 1}, []float32{5, 5}, 1},
		{"Orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"Opposite", []float32{1, 2}, []float32{-1, -2}, -1},
		{"Fixture", []float32{1, 1}, []float32{3.4, 3.1}, 0.99893},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cosine(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-4)
		})
	}
}

func TestCosineErrors(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want error
	}{
		{"EmptyQuery", []float32{}, []float32{1, 2}, ErrEmptyVector},
		{"EmptyCandidate", []float32{1, 2}, nil, ErrEmptyVector},
		{"BothEmpty", nil, nil, ErrEmptyVector},
		{"UnequalLengths", []float32{1, 2}, []float32{1, 2, 3}, ErrUnequalVectorLengths},
		{"ZeroQuery", []float32{0, 0}, []float32{1, 2}, ErrZeroMagnitude},
		{"ZeroCandidate", []float32{1, 2}, []float32{0, 0}, ErrZeroMagnitude},
		// Length is checked before magnitude.
		{"ZeroAndUnequal", []float32{0, 0}, []float32{1, 2, 3}, ErrUnequalVectorLengths},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Cosine(tt.a, tt.b)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestCosineNaN(t *testing.T) {
	got, err := Cosine([]float32{1, 1}, []float32{float32(math.NaN()), 1})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(got)))
}

func TestCosineScorer(t *testing.T) {
	s := NewCosineScorer([]float32{1, 1})

	a, err := s.Score([]float32{9.3, 7.6})
	require.NoError(t, err)
	b, err := s.Score([]float32{1.2, 2.0})
	require.NoError(t, err)

	assert.Greater(t, a, b)

	_, err = s.Score([]float32{1})
	assert.ErrorIs(t, err, ErrUnequalVectorLengths)
}

func TestKernel(t *testing.T) {
	assert.Contains(t, []string{"generic", "unrolled"}, Kernel())
}

func BenchmarkCosine(b *testing.B) {
	q := make([]float32, 1536)
	v := make([]float32, 1536)
	for i := range q {
		q[i] = float32(i%7) - 3
		v[i] = float32(i%5) - 2
	}
	s := NewCosineScorer(q)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Score(v)
	}
}
