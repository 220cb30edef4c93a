// Package store holds parsed documents between the upload request and
// the render request that consumes them. It is an explicit, injected
// dependency with bounded capacity and TTL eviction — an entry whose
// render never arrives ages out instead of leaking.
package store

import (
	"sync"
	"time"

	"github.com/edulab/atividades/activity"
)

// Store is a bounded transient cache keyed by file identifier. Safe for
// concurrent use.
type Store struct {
	mu       sync.Mutex
	entries  map[string]*entry
	capacity int
	ttl      time.Duration
	now      func() time.Time
}

type entry struct {
	doc     *activity.ParsedDocument
	addedAt time.Time
}

// New creates a Store. capacity <= 0 defaults to 256 entries; ttl <= 0
// defaults to one hour.
func New(capacity int, ttl time.Duration) *Store {
	if capacity <= 0 {
		capacity = 256
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Store{
		entries:  make(map[string]*entry),
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Put stores a parsed document under fileID, evicting expired entries
// and, at capacity, the oldest entry.
func (s *Store) Put(fileID string, doc *activity.ParsedDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()

	if len(s.entries) >= s.capacity {
		s.evictOldestLocked()
	}
	s.entries[fileID] = &entry{doc: doc, addedAt: s.now()}
}

// Get returns the parsed document stored under fileID, if present and
// not expired.
func (s *Store) Get(fileID string) (*activity.ParsedDocument, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[fileID]
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.addedAt) > s.ttl {
		delete(s.entries, fileID)
		return nil, false
	}
	return e.doc, true
}

// Evict removes the entry for fileID. Renders call this after consuming
// their document.
func (s *Store) Evict(fileID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, fileID)
}

// Len returns the number of live entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	return len(s.entries)
}

func (s *Store) sweepLocked() {
	cutoff := s.now().Add(-s.ttl)
	for id, e := range s.entries {
		if e.addedAt.Before(cutoff) {
			delete(s.entries, id)
		}
	}
}

func (s *Store) evictOldestLocked() {
	var oldestID string
	var oldestAt time.Time
	for id, e := range s.entries {
		if oldestID == "" || e.addedAt.Before(oldestAt) {
			oldestID = id
			oldestAt = e.addedAt
		}
	}
	if oldestID != "" {
		delete(s.entries, oldestID)
	}
}
