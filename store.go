package holocron

import (
	"context"
	"slices"
	"time"

	"github.com/hupe1980/holocron/distance"
)

// VectorStore is an in-memory, ordered collection of Records with exact
// cosine similarity search.
//
// Every retrieval path is a linear scan; there is no secondary index and no
// cached similarity. Ids are not required to be unique: Get and Delete act on
// the first match.
//
// A VectorStore performs no locking. Wrap it with NewSync when it is shared
// between goroutines.
type VectorStore struct {
	records []Record
	metrics MetricsCollector
	logger  *Logger
	opts    options
}

// New creates a store holding exactly records, in order. The slice is
// copied; no deduplication or validation is performed.
func New(records []Record, optFns ...Option) *VectorStore {
	opts := applyOptions(optFns)

	s := &VectorStore{
		records: slices.Clone(records),
		metrics: opts.metricsCollector,
		logger:  opts.logger,
		opts:    opts,
	}
	if s.records == nil {
		s.records = []Record{}
	}

	s.logger.Debug("vector store created",
		"records", len(s.records),
		"kernel", distance.Kernel(),
		"delete_strategy", opts.deleteStrategy.String(),
	)

	return s
}

// Add appends records to the end of the store, preserving their order.
func (s *VectorStore) Add(records []Record) {
	start := time.Now()

	s.records = append(s.records, records...)

	s.metrics.RecordAdd(len(records), time.Since(start))
	s.logger.LogAdd(context.Background(), len(records), len(s.records))
}

// Get returns, for each id in request order, a copy of the first record with
// that id. Ids without a match are omitted, so the result may be shorter
// than ids.
func (s *VectorStore) Get(ids []string) []Record {
	start := time.Now()

	result := make([]Record, 0, len(ids))
	for _, id := range ids {
		if pos := s.indexOf(id); pos >= 0 {
			result = append(result, s.records[pos].Clone())
		}
	}

	s.metrics.RecordGet(len(ids), len(result), time.Since(start))
	s.logger.LogGet(context.Background(), len(ids), len(result))

	return result
}

// List returns the ids of all records in current store order.
func (s *VectorStore) List() []string {
	ids := make([]string, len(s.records))
	for i := range s.records {
		ids[i] = s.records[i].id
	}
	return ids
}

// Records returns copies of all records in current store order.
func (s *VectorStore) Records() []Record {
	out := make([]Record, len(s.records))
	for i := range s.records {
		out[i] = s.records[i].Clone()
	}
	return out
}

// Len returns the number of records in the store.
func (s *VectorStore) Len() int {
	return len(s.records)
}

// indexOf returns the position of the first record with id, or -1.
func (s *VectorStore) indexOf(id string) int {
	for i := range s.records {
		if s.records[i].id == id {
			return i
		}
	}
	return -1
}
