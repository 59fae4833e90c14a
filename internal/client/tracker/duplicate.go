// Package tracker remembers which file names were uploaded during the
// current process lifetime.
package tracker

import "sync"

// DuplicateTracker is a grow-only set of uploaded file names. It starts
// empty and is never persisted.
type DuplicateTracker struct {
	mu    sync.RWMutex
	names map[string]struct{}
}

func NewDuplicateTracker() *DuplicateTracker {
	return &DuplicateTracker{names: make(map[string]struct{})}
}

func (t *DuplicateTracker) Contains(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.names[name]
	return ok
}

// Record adds name; recording an existing name is a no-op.
func (t *DuplicateTracker) Record(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.names[name] = struct{}{}
}

func (t *DuplicateTracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.names)
}
