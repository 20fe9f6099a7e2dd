// Package editorid captures the editor IDs the host assigns to its forms
// and keeps them queryable for the lifetime of the process.
//
// The host discards editor IDs once a form is loaded. A Registry hooks the
// assignment routine of every form class, and records each identifier into
// a Cache before forwarding to the host's own routine.
package editorid

import (
	"sync"

	"github.com/zond/consoleutil/host"
)

// Cache maps form identities to editor IDs. All access, reads included,
// goes through one lock.
type Cache struct {
	mu      sync.Mutex
	entries map[host.FormID]string
}

func NewCache() *Cache {
	return &Cache{
		entries: map[host.FormID]string{},
	}
}

// Access blocks until the cache is free and returns an Accessor holding
// it. The caller must Release the accessor, typically with defer.
// Acquiring a second accessor before releasing the first deadlocks.
func (c *Cache) Access() *Accessor {
	c.mu.Lock()
	return &Accessor{cache: c}
}

// With runs f with exclusive access to the cache, releasing it however f
// returns.
func (c *Cache) With(f func(a *Accessor)) {
	a := c.Access()
	defer a.Release()
	f(a)
}

// Accessor is exclusive access to a Cache, valid until Release.
type Accessor struct {
	cache    *Cache
	released bool
}

// Find returns the editor ID recorded for id.
func (a *Accessor) Find(id host.FormID) (string, bool) {
	a.check()
	editorID, found := a.cache.entries[id]
	return editorID, found
}

// Insert records editorID for id, replacing any previous value.
func (a *Accessor) Insert(id host.FormID, editorID string) {
	a.check()
	a.cache.entries[id] = editorID
}

// Len returns the number of recorded identities.
func (a *Accessor) Len() int {
	a.check()
	return len(a.cache.entries)
}

// Release gives up the access. Releasing twice is a no-op.
func (a *Accessor) Release() {
	if a.released {
		return
	}
	a.released = true
	a.cache.mu.Unlock()
}

func (a *Accessor) check() {
	if a.released {
		panic("editorid: use of released cache accessor")
	}
}
