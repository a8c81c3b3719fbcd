package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySetGet(t *testing.T) {
	m := New()

	entry := Entry{Body: []byte(`{"count":1}`), StatusCode: 200, ContentType: "application/json"}
	m.Set("key", entry, time.Minute)

	got, err := m.Get("key")
	require.NoError(t, err)
	assert.Equal(t, entry, got)
	assert.Equal(t, 1, m.Size())
}

func TestMemoryMissingKey(t *testing.T) {
	m := New()

	_, err := m.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryLazyExpiry(t *testing.T) {
	m := New()
	now := time.Now()
	m.now = func() time.Time { return now }

	m.Set("key", Entry{Body: []byte("x"), StatusCode: 200}, 5*time.Minute)

	now = now.Add(4 * time.Minute)
	_, err := m.Get("key")
	assert.NoError(t, err)

	// An expired entry is evicted on read, not by a background sweep.
	now = now.Add(2 * time.Minute)
	_, err = m.Get("key")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, m.Size())
}

func TestMemoryExpiredEntriesCountUntilRead(t *testing.T) {
	m := New()
	now := time.Now()
	m.now = func() time.Time { return now }

	m.Set("key", Entry{Body: []byte("x"), StatusCode: 200}, time.Minute)
	now = now.Add(2 * time.Minute)

	assert.Equal(t, 1, m.Size())
	_, _ = m.Get("key")
	assert.Equal(t, 0, m.Size())
}

func TestMemoryDefaultTTL(t *testing.T) {
	m := New()
	now := time.Now()
	m.now = func() time.Time { return now }

	m.Set("key", Entry{Body: []byte("x"), StatusCode: 200}, 0)

	now = now.Add(DefaultTTL - time.Second)
	_, err := m.Get("key")
	assert.NoError(t, err)

	now = now.Add(2 * time.Second)
	_, err = m.Get("key")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryClear(t *testing.T) {
	m := New()
	m.Set("a", Entry{Body: []byte("1"), StatusCode: 200}, time.Minute)
	m.Set("b", Entry{Body: []byte("2"), StatusCode: 200}, time.Minute)

	m.Clear()

	assert.Equal(t, 0, m.Size())
}

func TestFingerprintIsDeterministic(t *testing.T) {
	a := Fingerprint("/api/search/advanced", "cities=ankara&sortBy=name")
	b := Fingerprint("/api/search/advanced", "cities=ankara&sortBy=name")

	assert.Equal(t, a, b)
	assert.Len(t, a, 32)
}

func TestFingerprintIsOrderSensitive(t *testing.T) {
	// Parameter order is part of the request identity; no canonicalization
	// is performed before hashing.
	a := Fingerprint("/api/search/advanced", "cities=ankara&sortBy=name")
	b := Fingerprint("/api/search/advanced", "sortBy=name&cities=ankara")

	assert.NotEqual(t, a, b)
}

func TestFingerprintVariesWithPath(t *testing.T) {
	a := Fingerprint("/api/universities", "")
	b := Fingerprint("/api/statistics", "")

	assert.NotEqual(t, a, b)
}
