package finbrief

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"
)

// Errors reported by GetOrFetch when no usable data exists at all. Both are
// recoverable: callers render the affected section as unavailable and move
// on.
var (
	// ErrRateLimited: the limiter denied the call and no stale entry was
	// usable.
	ErrRateLimited = errors.New("rate limit exceeded and no cached data available")
	// ErrUnavailable: the live fetch failed and no stale entry was usable.
	ErrUnavailable = errors.New("data unavailable")
)

// Freshness qualifies the value returned by GetOrFetch.
type Freshness int

const (
	// Fresh data is within its TTL window (either a cache hit or just
	// fetched).
	Fresh Freshness = iota
	// Stale data is past its TTL but within the 24h fallback ceiling,
	// returned because a live refresh was denied or failed.
	Stale
	// Unavailable accompanies an error return.
	Unavailable
)

func (f Freshness) String() string {
	switch f {
	case Fresh:
		return "fresh"
	case Stale:
		return "stale"
	default:
		return "unavailable"
	}
}

// Entry is one cached payload. Entries are overwritten on every successful
// fetch and never deleted; expiry is implicit through FetchedAt.
type Entry struct {
	Value     json.RawMessage `json:"value"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// Cache shields outbound data-source calls behind a freshness check and
// guarantees degraded-but-available responses when the source is
// unreachable. All entries live in a single JSON document in the store.
//
// The limiter may be nil for sources that need no throttling (local
// templates, RSS feeds with their own etiquette).
type Cache struct {
	store   Store
	limiter *Limiter
	doc     string
	now     func() time.Time
}

// NewCache returns a cache persisting entries under the named document.
func NewCache(store Store, limiter *Limiter, doc string) *Cache {
	return &Cache{store: store, limiter: limiter, doc: doc, now: time.Now}
}

// load reads the entry map; a missing or corrupt document is a plain miss.
func (c *Cache) load() map[string]Entry {
	entries := make(map[string]Entry)
	if err := c.store.Load(c.doc, &entries); err != nil {
		return make(map[string]Entry)
	}
	return entries
}

// GetOrFetch returns the value for key, fetching it through fetch when the
// cached copy is absent or older than ttl.
//
//   - fresh cache hit: returned immediately, no fetch, no limiter token.
//   - miss or expired: one token is requested from the limiter. Denied and
//     a <=24h entry exists: that entry is returned marked Stale. Denied
//     with nothing usable: ErrRateLimited.
//   - permitted: fetch runs exactly once. Success is persisted
//     synchronously before returning Fresh; failure falls back to a <=24h
//     entry marked Stale, or ErrUnavailable.
//
// GetOrFetch never blocks and never returns data older than 24h.
func GetOrFetch[T any](c *Cache, key string, ttl time.Duration, fetch func() (T, error)) (T, Freshness, error) {
	var zero T
	now := c.now()
	entries := c.load()

	if e, ok := entries[key]; ok && now.Sub(e.FetchedAt) <= ttl {
		var v T
		if err := json.Unmarshal(e.Value, &v); err == nil {
			return v, Fresh, nil
		}
		// corrupt payload: fall through as a miss
	}

	staleValue := func() (T, bool) {
		e, ok := entries[key]
		if !ok || now.Sub(e.FetchedAt) > StaleMax {
			return zero, false
		}
		var v T
		if err := json.Unmarshal(e.Value, &v); err != nil {
			return zero, false
		}
		return v, true
	}

	if c.limiter != nil && !c.limiter.TryAcquire() {
		if v, ok := staleValue(); ok {
			return v, Stale, nil
		}
		return zero, Unavailable, fmt.Errorf("%q: %w", key, ErrRateLimited)
	}

	v, err := fetch()
	if err != nil {
		if sv, ok := staleValue(); ok {
			return sv, Stale, nil
		}
		return zero, Unavailable, fmt.Errorf("%q: %w: %v", key, ErrUnavailable, err)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return zero, Unavailable, fmt.Errorf("encoding %q: %w", key, err)
	}
	entries[key] = Entry{Value: raw, FetchedAt: now}
	if err := c.store.Save(c.doc, entries); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return v, Fresh, nil
}
