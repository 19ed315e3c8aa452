// Package intern provides an xxHash-keyed string interning cache for
// decoded String values that recur across a session: property keys
// ("name", "scheme"), node labels, and relationship types are each
// decoded fresh off the wire every time they appear, but almost always
// repeat the same small vocabulary. Interning them avoids an allocation
// per occurrence.
package intern

import (
	"bytes"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given bytes, used both as the interning
// cache key here and, in package trace, to correlate a captured wire frame
// with a specific decoded message during replay debugging.
func ID(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Cache interns decoded strings keyed by their xxHash64, so repeated
// occurrences of the same bytes resolve to one shared string instead of a
// fresh allocation each time.
//
// Cache is safe for concurrent use; a single Cache may be shared by
// multiple decoders, unlike a Reader, which is exclusive to one decode
// call.
type Cache struct {
	mu sync.RWMutex
	m  map[uint64]string
}

// NewCache creates an empty interning cache.
func NewCache() *Cache {
	return &Cache{m: make(map[uint64]string)}
}

// Intern returns a shared string equal to the bytes in b, allocating and
// caching a new one only the first time those bytes (by content, via
// xxHash64) are seen.
//
// b is not retained; the returned string is always a fresh copy on first
// insertion.
func (c *Cache) Intern(b []byte) string {
	id := ID(b)

	c.mu.RLock()
	if s, ok := c.m[id]; ok && bytes.Equal([]byte(s), b) {
		c.mu.RUnlock()
		return s
	}
	c.mu.RUnlock()

	s := string(b)

	c.mu.Lock()
	// A hash collision against a different string is possible, if rare;
	// in that case we simply don't cache this one rather than risk
	// handing back the wrong string for these bytes.
	if existing, ok := c.m[id]; !ok || existing == s {
		c.m[id] = s
	}
	c.mu.Unlock()

	return s
}

// Len returns the number of distinct strings currently interned.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.m)
}
