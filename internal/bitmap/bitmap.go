package bitmap

import (
	"iter"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// Positions is a set of slice positions.
// Positions beyond math.MaxUint32 cannot be represented.
type Positions struct {
	rb *roaring.Bitmap
}

var pool = sync.Pool{
	New: func() any {
		return &Positions{
			rb: roaring.New(),
		}
	},
}

// New creates a new empty set.
func New() *Positions {
	return &Positions{
		rb: roaring.New(),
	}
}

// Get gets an empty set from the pool. Call Put when done.
func Get() *Positions {
	p := pool.Get().(*Positions)
	p.rb.Clear()
	return p
}

// Put returns a set to the pool.
func Put(p *Positions) {
	if p == nil {
		return
	}
	// Clear before returning to pool to release container memory
	p.rb.Clear()
	pool.Put(p)
}

// Add adds pos to the set.
func (p *Positions) Add(pos int) {
	p.rb.Add(uint32(pos))
}

// Contains reports whether pos is in the set.
func (p *Positions) Contains(pos int) bool {
	return p.rb.Contains(uint32(pos))
}

// Len returns the number of positions in the set.
func (p *Positions) Len() int {
	return int(p.rb.GetCardinality())
}

// IsEmpty returns true if the set is empty.
func (p *Positions) IsEmpty() bool {
	return p.rb.IsEmpty()
}

// All iterates the positions in ascending order.
func (p *Positions) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := p.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// Clear removes all positions.
func (p *Positions) Clear() {
	p.rb.Clear()
}
