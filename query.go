package holocron

import (
	"context"
	"time"

	"github.com/hupe1980/holocron/distance"
	"github.com/hupe1980/holocron/internal/queue"
)

// Result is a ranked query match.
type Result struct {
	Record Record  // Copy of the matched record.
	Score  float32 // Cosine similarity to the query vector.
}

// Query ranks every record by cosine similarity to vector and returns the
// best topK, highest score first. NaN scores rank last; the relative order of
// equal scores is unspecified.
//
// topK must lie in [0, MaxTopK]; violations fail with *ErrInvalidTopK before
// any record is scored. If scoring any record fails, the whole query fails
// with a *SimilarityCalculationError naming that record and no partial
// results are returned. An empty store yields an empty result.
func (s *VectorStore) Query(vector []float32, topK int) ([]Result, error) {
	start := time.Now()

	results, scanned, err := s.query(vector, topK)

	s.metrics.RecordQuery(topK, len(results), time.Since(start), err)
	s.logger.LogQuery(context.Background(), topK, scanned, len(results), err)

	return results, err
}

// query returns the ranked results and the number of records scored.
func (s *VectorStore) query(vector []float32, topK int) ([]Result, int, error) {
	if topK < 0 || topK > MaxTopK {
		return nil, 0, &ErrInvalidTopK{TopK: topK, Max: MaxTopK}
	}

	scorer := distance.NewCosineScorer(vector)
	top := queue.NewTopK(topK, min(topK, len(s.records)))

	for i := range s.records {
		score, err := scorer.Score(s.records[i].values)
		if err != nil {
			return nil, i + 1, &SimilarityCalculationError{ID: s.records[i].id, Err: err}
		}
		top.Push(queue.Item{Index: i, Score: score})
	}

	items := top.Drain()
	results := make([]Result, len(items))
	for i, it := range items {
		results[i] = Result{
			Record: s.records[it.Index].Clone(),
			Score:  it.Score,
		}
	}

	return results, len(s.records), nil
}
