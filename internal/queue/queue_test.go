package queue

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nan = float32(math.NaN())

func TestBetter(t *testing.T) {
	tests := []struct {
		name string
		a, b float32
		want bool
	}{
		{"Greater", 0.9, 0.1, true},
		{"Smaller", 0.1, 0.9, false},
		{"Equal", 0.5, 0.5, false},
		{"NumberOverNaN", -1, nan, true},
		{"NaNUnderNumber", nan, -1, false},
		{"NaNVsNaN", nan, nan, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Better(tc.a, tc.b))
		})
	}
}

func TestTopK(t *testing.T) {
	t.Run("KeepsBest", func(t *testing.T) {
		q := NewTopK(3, 3)
		for i, s := range []float32{0.1, 0.9, 0.5, 0.7, 0.3} {
			q.Push(Item{Index: i, Score: s})
		}

		got := q.Drain()
		require.Len(t, got, 3)
		assert.Equal(t, []int{1, 3, 2}, indexes(got))
		assert.Equal(t, 0, q.Len())
	})

	t.Run("FewerThanK", func(t *testing.T) {
		q := NewTopK(10, 2)
		q.Push(Item{Index: 0, Score: 0.2})
		q.Push(Item{Index: 1, Score: 0.8})

		assert.Equal(t, []int{1, 0}, indexes(q.Drain()))
	})

	t.Run("ZeroK", func(t *testing.T) {
		q := NewTopK(0, 10)
		assert.False(t, q.Push(Item{Index: 0, Score: 1}))
		assert.Empty(t, q.Drain())
	})

	t.Run("NaNLast", func(t *testing.T) {
		q := NewTopK(4, 4)
		q.Push(Item{Index: 0, Score: nan})
		q.Push(Item{Index: 1, Score: -0.5})
		q.Push(Item{Index: 2, Score: nan})
		q.Push(Item{Index: 3, Score: 0.5})

		got := q.Drain()
		require.Len(t, got, 4)
		assert.Equal(t, 3, got[0].Index)
		assert.Equal(t, 1, got[1].Index)
		assert.True(t, math.IsNaN(float64(got[2].Score)))
		assert.True(t, math.IsNaN(float64(got[3].Score)))
	})

	t.Run("NaNEvicted", func(t *testing.T) {
		q := NewTopK(1, 1)
		q.Push(Item{Index: 0, Score: nan})
		assert.True(t, q.Push(Item{Index: 1, Score: -1}))

		worst, ok := q.Worst()
		require.True(t, ok)
		assert.Equal(t, 1, worst.Index)
	})

	t.Run("MatchesSort", func(t *testing.T) {
		r := rand.New(rand.NewSource(4711)) // nolint gosec

		scores := make([]float32, 1000)
		for i := range scores {
			scores[i] = r.Float32()*2 - 1
		}

		q := NewTopK(10, 10)
		for i, s := range scores {
			q.Push(Item{Index: i, Score: s})
		}
		got := q.Drain()

		sorted := slices.Clone(scores)
		slices.SortFunc(sorted, func(a, b float32) int {
			switch {
			case a > b:
				return -1
			case a < b:
				return 1
			}
			return 0
		})

		require.Len(t, got, 10)
		for i, it := range got {
			assert.Equal(t, sorted[i], it.Score)
		}
	})

	t.Run("Reset", func(t *testing.T) {
		q := NewTopK(2, 2)
		q.Push(Item{Index: 0, Score: 1})
		q.Reset()
		assert.Equal(t, 0, q.Len())
		assert.Equal(t, 2, q.Cap())

		_, ok := q.Worst()
		assert.False(t, ok)
	})
}

func indexes(items []Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Index
	}
	return out
}
