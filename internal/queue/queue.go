// Package queue provides the bounded selection heap used to rank query results.
package queue

import "math"

// Item is a scored candidate. Index points back into the caller's slice.
type Item struct {
	Index int     // Position of the candidate in the scanned sequence.
	Score float32 // Similarity; higher ranks first.
}

// Better reports whether score a ranks above score b.
// NaN ranks below every comparable score; two NaNs rank equal.
func Better(a, b float32) bool {
	if isNaN(b) {
		return !isNaN(a)
	}
	return a > b
}

// TopK retains the k best items pushed into it.
// The heap root is the worst retained item, so a better candidate replaces
// it in O(log k).
type TopK struct {
	k     int
	items []Item
}

// NewTopK returns an empty queue retaining at most k items.
// hint sizes the backing slice and may be smaller than k.
func NewTopK(k, hint int) *TopK {
	if k < 0 {
		k = 0
	}
	if hint > k {
		hint = k
	}
	if hint < 0 {
		hint = 0
	}
	return &TopK{
		k:     k,
		items: make([]Item, 0, hint),
	}
}

// Len returns the number of retained items.
func (q *TopK) Len() int { return len(q.items) }

// Cap returns the maximum number of retained items.
func (q *TopK) Cap() int { return q.k }

// Worst returns the lowest-ranked retained item.
func (q *TopK) Worst() (Item, bool) {
	if len(q.items) == 0 {
		return Item{}, false
	}
	return q.items[0], true
}

// Push offers item to the queue. It reports whether the item was retained.
func (q *TopK) Push(item Item) bool {
	if q.k == 0 {
		return false
	}
	if len(q.items) < q.k {
		q.items = append(q.items, item)
		q.siftUp(len(q.items) - 1)
		return true
	}
	if !Better(item.Score, q.items[0].Score) {
		return false
	}
	q.items[0] = item
	q.siftDown(0)
	return true
}

// Drain empties the queue and returns the retained items best first.
func (q *TopK) Drain() []Item {
	out := make([]Item, len(q.items))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = q.pop()
	}
	return out
}

// Reset clears the queue for reuse.
func (q *TopK) Reset() {
	q.items = q.items[:0]
}

func (q *TopK) pop() Item {
	n := len(q.items)
	root := q.items[0]
	last := q.items[n-1]
	q.items[n-1] = Item{}
	q.items = q.items[:n-1]
	if n-1 > 0 {
		q.items[0] = last
		q.siftDown(0)
	}
	return root
}

// less orders the heap worst-first.
func (q *TopK) less(i, j int) bool {
	return Better(q.items[j].Score, q.items[i].Score)
}

func (q *TopK) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !q.less(i, p) {
			return
		}
		q.items[i], q.items[p] = q.items[p], q.items[i]
		i = p
	}
}

func (q *TopK) siftDown(i int) {
	n := len(q.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		worst := l
		r := l + 1
		if r < n && q.less(r, l) {
			worst = r
		}
		if !q.less(worst, i) {
			return
		}
		q.items[i], q.items[worst] = q.items[worst], q.items[i]
		i = worst
	}
}

func isNaN(f float32) bool {
	return math.IsNaN(float64(f))
}
