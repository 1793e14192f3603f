package bitmap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositions(t *testing.T) {
	p := New()
	assert.True(t, p.IsEmpty())

	p.Add(5)
	p.Add(1)
	p.Add(5)
	p.Add(70000)

	assert.False(t, p.IsEmpty())
	assert.Equal(t, 3, p.Len())
	assert.True(t, p.Contains(1))
	assert.True(t, p.Contains(70000))
	assert.False(t, p.Contains(2))
	assert.Equal(t, []int{1, 5, 70000}, slices.Collect(p.All()))

	p.Clear()
	assert.True(t, p.IsEmpty())
}

func TestPool(t *testing.T) {
	p := Get()
	p.Add(3)
	Put(p)

	q := Get()
	defer Put(q)
	assert.True(t, q.IsEmpty())

	Put(nil)
}

func TestAllEarlyStop(t *testing.T) {
	p := New()
	for i := range 10 {
		p.Add(i)
	}

	var seen []int
	for pos := range p.All() {
		if pos == 3 {
			break
		}
		seen = append(seen, pos)
	}
	assert.Equal(t, []int{0, 1, 2}, seen)
}
