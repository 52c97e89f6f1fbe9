// Package viewstate persists per-view list selections (query, filters,
// sort, page size) across sessions. Entries are keyed by an opaque
// namespace string chosen by the caller, one per (portal, dataset) pair.
//
// Persistence is best-effort: a failed write is logged and swallowed, never
// surfaced to the user. Views that cannot open durable storage fall back to
// the in-memory store for the session.
package viewstate

import (
	"sync"

	"gigview/internal/view"
)

// schemaVersion tags persisted entries. A stored entry whose version does
// not match is discarded on load and treated as never written, so a shape
// change on deploy restores defaults instead of a stale state.
const schemaVersion = 1

// Store reads and writes view state by namespace. Load's second return is
// false when nothing valid is stored. Save is fire-and-forget.
type Store interface {
	Load(namespace string) (view.State, bool)
	Save(namespace string, st view.State)
}

// Memory is the in-memory Store, used in tests and as the fallback when
// durable storage is unavailable.
type Memory struct {
	mu     sync.RWMutex
	states map[string]view.State
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{states: map[string]view.State{}}
}

func (m *Memory) Load(namespace string) (view.State, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.states[namespace]
	if !ok {
		return view.State{}, false
	}
	return st.Normalize(), true
}

func (m *Memory) Save(namespace string, st view.State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[namespace] = st
}
