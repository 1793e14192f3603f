// Package holocron provides an in-memory vector record store with exact
// cosine similarity search.
//
// A store holds Records (a string id, a float32 vector and optional string
// metadata) in insertion order and answers queries by scoring every record.
// There is no approximate index, no persistence and no background work:
// every call runs to completion on the caller's goroutine.
//
// # Quick Start
//
//	store := holocron.New(nil)
//	store.Add([]holocron.Record{
//	    holocron.NewRecord("vec1", []float32{1.2, 2.0}),
//	    holocron.NewRecordWithMetadata("vec2", []float32{4.0, 9.5}, map[string]string{"lang": "en"}),
//	})
//
//	results, err := store.Query([]float32{1.0, 1.0}, 10)
//	if err != nil {
//	    var sce *holocron.SimilarityCalculationError
//	    if errors.As(err, &sce) {
//	        store.Delete([]string{sce.ID}) // drop the malformed record
//	    }
//	}
//
// # Batches
//
// Add, Get and Delete take batches so callers, including foreign-language
// bindings, pay conversion overhead once per call rather than once per
// record.
//
// # Ids
//
// Ids are not required to be unique. Get returns the first match per id and
// Delete removes the first remaining match per id.
//
// # Deletes
//
// The default SwapRemove strategy fills the freed slot with the last record,
// so List order changes after a delete. WithDeleteStrategy(StableDelete)
// keeps the surviving records in insertion order at O(n) per batch.
//
// # Scores
//
// Scores are float32 cosine similarities. The dot product kernel is chosen
// per CPU (see HOLOCRON_SIMD), and kernels add in different orders, so the
// same data can score differently in the last bits on different machines.
// Like the order of equal scores, this is not part of the ranking contract.
//
// # Errors
//
// Query reports a closed set of failures: ErrTopKTooLarge and
// ErrNegativeTopK for an invalid limit, and ErrEmptyVector,
// ErrUnequalVectorLengths and ErrZeroMagnitude for a record that cannot be
// scored. Scoring failures are wrapped in *SimilarityCalculationError, which
// names the offending record. KindOf and RootKind map any error onto a stable
// ErrorKind tag.
//
// # Concurrency
//
// VectorStore does no locking. Use NewSync to share a store between
// goroutines.
package holocron
