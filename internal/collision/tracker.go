package collision

import (
	"github.com/arloliu/growth/errs"
)

// Tracker records catalog keys and their hashes while a catalog is built,
// and rejects duplicates and hash collisions.
type Tracker struct {
	keys     map[uint64]string // hash → key
	keysList []string          // insertion order
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		keys:     make(map[uint64]string),
		keysList: make([]string, 0),
	}
}

// Track registers key under hash.
//
// Returns:
//   - errs.ErrDuplicateTable if the same key was tracked before
//   - errs.ErrHashCollision if a different key already owns hash
func (t *Tracker) Track(key string, hash uint64) error {
	if existing, exists := t.keys[hash]; exists {
		if existing == key {
			return errs.ErrDuplicateTable
		}

		return errs.ErrHashCollision
	}

	t.keys[hash] = key
	t.keysList = append(t.keysList, key)

	return nil
}

// Keys returns the tracked keys in insertion order.
func (t *Tracker) Keys() []string {
	return t.keysList
}

// Count returns the number of tracked keys.
func (t *Tracker) Count() int {
	return len(t.keysList)
}
