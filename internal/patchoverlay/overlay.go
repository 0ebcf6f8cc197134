// Package patchoverlay implements the process-local, short-lived overlay
// described in spec §4.6: API reads merge the most recent mutation's
// projected view onto the row read from the store, papering over
// read-after-write latency the store itself does not guarantee against.
// The store remains the source of truth; losing this overlay (process
// restart, TTL expiry) never produces an incorrect response, only a
// momentarily stale one (spec §9).
package patchoverlay

import (
	"sync"
	"time"
)

// ttl is how long a patch stays eligible to be merged onto a read.
const ttl = 12 * time.Second

type entry struct {
	patch     map[string]any
	expiresAt time.Time
}

// Overlay is a keyed map of pending patches, safe for concurrent use.
type Overlay struct {
	mu   sync.RWMutex
	rows map[string]entry
	now  func() time.Time
}

// New builds an empty Overlay.
func New() *Overlay {
	return &Overlay{rows: make(map[string]entry), now: time.Now}
}

// Put installs a patch for key, superseding any existing one, with a
// fresh 12-second TTL.
func (o *Overlay) Put(key string, patch map[string]any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.rows[key] = entry{patch: patch, expiresAt: o.now().Add(ttl)}
}

// Get returns the live patch for key, if any has not yet expired. Expiry
// is checked lazily here rather than via a background sweeper — an
// expired entry is simply never returned, and a later Put overwrites it
// regardless.
func (o *Overlay) Get(key string) (map[string]any, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	e, ok := o.rows[key]
	if !ok || o.now().After(e.expiresAt) {
		return nil, false
	}
	return e.patch, true
}
