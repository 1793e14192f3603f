package holocron

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/holocron/internal/bitmap"
)

// DeleteStrategy selects how Delete removes records from the store.
type DeleteStrategy int

const (
	// SwapRemove moves the last record into the freed slot. Each removal is
	// O(1) after the lookup, but the order reported by List changes.
	SwapRemove DeleteStrategy = iota

	// StableDelete marks every position the batch removes, then compacts the
	// store in one pass. Surviving records keep their relative order.
	StableDelete
)

func (d DeleteStrategy) String() string {
	switch d {
	case SwapRemove:
		return "swap_remove"
	case StableDelete:
		return "stable"
	default:
		return fmt.Sprintf("unknown(%d)", int(d))
	}
}

// Delete removes, for each id, the first record with that id that is still
// present. Repeating an id removes successive duplicates; ids without a
// match are ignored.
func (s *VectorStore) Delete(ids []string) {
	start := time.Now()

	var removed int
	switch s.opts.deleteStrategy {
	case StableDelete:
		removed = s.deleteStable(ids)
	default:
		removed = s.deleteSwap(ids)
	}

	s.metrics.RecordDelete(len(ids), removed, time.Since(start))
	s.logger.LogDelete(context.Background(), len(ids), removed, s.opts.deleteStrategy)
}

func (s *VectorStore) deleteSwap(ids []string) int {
	removed := 0
	for _, id := range ids {
		pos := s.indexOf(id)
		if pos < 0 {
			continue
		}
		last := len(s.records) - 1
		s.records[pos] = s.records[last]
		s.records[last] = Record{}
		s.records = s.records[:last]
		removed++
	}
	return removed
}

func (s *VectorStore) deleteStable(ids []string) int {
	marked := bitmap.Get()
	defer bitmap.Put(marked)

	for _, id := range ids {
		for i := range s.records {
			if s.records[i].id == id && !marked.Contains(i) {
				marked.Add(i)
				break
			}
		}
	}
	if marked.IsEmpty() {
		return 0
	}

	kept := s.records[:0]
	for i := range s.records {
		if !marked.Contains(i) {
			kept = append(kept, s.records[i])
		}
	}
	clear(s.records[len(kept):])
	s.records = kept

	return marked.Len()
}
