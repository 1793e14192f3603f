package holocron

import "sync"

// SyncVectorStore guards a VectorStore with a read/write mutex so it can be
// shared between goroutines. Add and Delete take the write lock; every other
// operation takes the read lock.
//
// Semantics are exactly those of the wrapped store.
type SyncVectorStore struct {
	mu    sync.RWMutex
	store *VectorStore
}

// NewSync wraps store. The caller must not use store directly afterwards.
func NewSync(store *VectorStore) *SyncVectorStore {
	if store == nil {
		store = New(nil)
	}
	return &SyncVectorStore{store: store}
}

// Add appends records. See VectorStore.Add.
func (s *SyncVectorStore) Add(records []Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Add(records)
}

// Delete removes the first match per id. See VectorStore.Delete.
func (s *SyncVectorStore) Delete(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Delete(ids)
}

// Get returns copies of the first match per id. See VectorStore.Get.
func (s *SyncVectorStore) Get(ids []string) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Get(ids)
}

// List returns the current ids. See VectorStore.List.
func (s *SyncVectorStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.List()
}

// Records returns copies of all records. See VectorStore.Records.
func (s *SyncVectorStore) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Records()
}

// Len returns the number of records.
func (s *SyncVectorStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Len()
}

// Query ranks records by cosine similarity. See VectorStore.Query.
func (s *SyncVectorStore) Query(vector []float32, topK int) ([]Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Query(vector, topK)
}
