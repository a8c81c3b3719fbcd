package cache

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when a key is missing or its entry has expired.
var ErrNotFound = errors.New("cache: key not found")

// DefaultTTL applies when Set is called with a non-positive TTL.
const DefaultTTL = 5 * time.Minute

// Entry is a stored HTTP response.
type Entry struct {
	Body        []byte
	StatusCode  int
	ContentType string
}

type record struct {
	entry    Entry
	storedAt time.Time
	ttl      time.Duration
}

// Memory is a single-process TTL cache for computed responses, keyed by a
// request fingerprint. Expired entries are evicted lazily on Get; there is
// no background sweep and no capacity bound — the keyspace is small and the
// dataset static for the process lifetime.
type Memory struct {
	mu      sync.RWMutex
	records map[string]record

	now func() time.Time
}

// New creates an empty cache.
func New() *Memory {
	return &Memory{
		records: make(map[string]record),
		now:     time.Now,
	}
}

// Fingerprint digests a request's identity (path + raw query string) into a
// cache key. The query string is used as received, so differing parameter
// order yields a different key.
func Fingerprint(path, rawQuery string) string {
	sum := md5.Sum([]byte(path + "?" + rawQuery))
	return hex.EncodeToString(sum[:])
}

// Get returns the entry for the key. A stored entry older than its TTL is
// evicted and reported as ErrNotFound.
func (m *Memory) Get(key string) (Entry, error) {
	m.mu.RLock()
	rec, ok := m.records[key]
	m.mu.RUnlock()
	if !ok {
		return Entry{}, ErrNotFound
	}

	if m.now().Sub(rec.storedAt) > rec.ttl {
		m.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have
		// refreshed the entry.
		if current, ok := m.records[key]; ok && current.storedAt.Equal(rec.storedAt) {
			delete(m.records, key)
		}
		m.mu.Unlock()
		return Entry{}, ErrNotFound
	}

	return rec.entry, nil
}

// Set stores an entry under the key with the given TTL.
func (m *Memory) Set(key string, entry Entry, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m.mu.Lock()
	m.records[key] = record{entry: entry, storedAt: m.now(), ttl: ttl}
	m.mu.Unlock()
}

// Size returns the number of stored entries, expired ones included.
func (m *Memory) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Clear drops all entries.
func (m *Memory) Clear() {
	m.mu.Lock()
	m.records = make(map[string]record)
	m.mu.Unlock()
}
