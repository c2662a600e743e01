package sysinfo

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Store owns the Record shown by one mounted screen. It starts all-absent,
// accepts exactly one committed replacement, and drops anything committed
// after Close.
//
// Snapshot is lock-free. Commit and Close serialize on mu, so a commit either
// lands entirely before Close returns or not at all.
type Store struct {
	id     string
	record atomic.Pointer[Record]

	mu        sync.Mutex
	committed bool
	closed    bool
}

// NewStore creates a live store holding the all-absent record.
func NewStore() *Store {
	s := &Store{id: uuid.NewString()}
	s.record.Store(&Record{})
	return s
}

// ID identifies the mount this store belongs to.
func (s *Store) ID() string {
	return s.id
}

// Snapshot returns the current record: either the initial all-absent one or
// the full committed one.
func (s *Store) Snapshot() Record {
	return *s.record.Load()
}

// Commit swaps rec in as the store's record. It returns false, leaving the
// store untouched, when the store is closed or already holds a committed
// record.
func (s *Store) Commit(rec Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.committed {
		return false
	}
	s.record.Store(&rec)
	s.committed = true
	return true
}

// Committed reports whether a record has been committed.
func (s *Store) Committed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.committed
}

// Close unmounts the store. Commits that have not landed by the time Close
// returns are dropped silently.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Closed reports whether Close has been called.
func (s *Store) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Mount runs the aggregator once and commits its record. It returns
// whether the record was applied.
func (s *Store) Mount(ctx context.Context, agg *Aggregator) bool {
	return s.Commit(agg.Collect(ctx))
}
