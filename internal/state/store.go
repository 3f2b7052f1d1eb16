package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/glassy/internal/catalog"
)

// Snapshot represents the latest catalog available to the UI.
type Snapshot struct {
	Catalog             *catalog.Catalog
	Version             int // bumped every time a new catalog is published
	LoadedAt            time.Time
	LastAttempt         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive failed reloads
}

// HasCatalog reports whether a catalog has been published.
func (s Snapshot) HasCatalog() bool {
	return s.Catalog != nil
}

// IsFailing returns true when reloads have failed more than once in a row.
func (s Snapshot) IsFailing() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update publishes cat. When err is non-nil the previous catalog is kept but
// the error is recorded for visibility. Publishing a catalog equal to the
// current one refreshes the timestamps without bumping the version.
func (s *Store) Update(cat *catalog.Catalog, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.snapshot.LastAttempt = now
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}
	if cat == nil {
		return
	}

	if !cat.Equal(s.snapshot.Catalog) {
		s.snapshot.Catalog = cat
		s.snapshot.Version++
	}
	s.snapshot.LoadedAt = now
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot. The catalog itself is
// immutable and shared.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
