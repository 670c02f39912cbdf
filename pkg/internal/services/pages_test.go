package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/eko/gocache/lib/v4/store"
	localCache "github.com/inklets/inklet/pkg/internal/cache"
)

// clockedStore is a deterministic stand-in for the ristretto store: entries
// expire against a manually advanced clock instead of wall time.
type clockedStore struct {
	now     time.Time
	entries map[string]clockedEntry
}

type clockedEntry struct {
	payload   any
	expiresAt time.Time
}

func newClockedStore() *clockedStore {
	return &clockedStore{
		now:     time.Unix(1700000000, 0),
		entries: map[string]clockedEntry{},
	}
}

func (s *clockedStore) Advance(d time.Duration) { s.now = s.now.Add(d) }

func (s *clockedStore) Get(_ context.Context, key any) (any, error) {
	entry, ok := s.entries[fmt.Sprint(key)]
	if !ok || (!entry.expiresAt.IsZero() && s.now.After(entry.expiresAt)) {
		return nil, errors.New("value not found in store")
	}
	return entry.payload, nil
}

func (s *clockedStore) GetWithTTL(ctx context.Context, key any) (any, time.Duration, error) {
	payload, err := s.Get(ctx, key)
	if err != nil {
		return nil, 0, err
	}
	return payload, s.entries[fmt.Sprint(key)].expiresAt.Sub(s.now), nil
}

func (s *clockedStore) Set(_ context.Context, key any, value any, options ...store.Option) error {
	opts := store.ApplyOptions(options...)
	entry := clockedEntry{payload: value}
	if opts != nil && opts.Expiration > 0 {
		entry.expiresAt = s.now.Add(opts.Expiration)
	}
	s.entries[fmt.Sprint(key)] = entry
	return nil
}

func (s *clockedStore) Delete(_ context.Context, key any) error {
	delete(s.entries, fmt.Sprint(key))
	return nil
}

func (s *clockedStore) Invalidate(context.Context, ...store.InvalidateOption) error { return nil }

func (s *clockedStore) Clear(context.Context) error {
	s.entries = map[string]clockedEntry{}
	return nil
}

func (s *clockedStore) GetType() string { return "clocked" }

func testPageCache(t *testing.T) *clockedStore {
	t.Helper()

	fake := newClockedStore()
	previous := localCache.S
	localCache.S = fake
	t.Cleanup(func() { localCache.S = previous })

	return fake
}

func TestCachedPageServesIdenticalBytesWithinTTL(t *testing.T) {
	fake := testPageCache(t)

	renders := 0
	render := func() ([]byte, error) {
		renders++
		return []byte(fmt.Sprintf("rendering #%d", renders)), nil
	}

	first, hit, err := CachedPage(HomePageCacheKey(1), 20*time.Second, render)
	if err != nil || hit {
		t.Fatalf("first request should render fresh, hit=%v err=%v", hit, err)
	}

	// A write in between must not show up until the TTL lapses.
	fake.Advance(10 * time.Second)
	second, hit, err := CachedPage(HomePageCacheKey(1), 20*time.Second, render)
	if err != nil {
		t.Fatalf("cached request failed: %v", err)
	}
	if !hit || !bytes.Equal(first, second) {
		t.Fatalf("request within the TTL must be a byte-identical cache hit, hit=%v", hit)
	}
	if renders != 1 {
		t.Fatalf("render ran %d times, want 1", renders)
	}
}

func TestCachedPageExpiresAfterTTL(t *testing.T) {
	fake := testPageCache(t)

	renders := 0
	render := func() ([]byte, error) {
		renders++
		return []byte(fmt.Sprintf("rendering #%d", renders)), nil
	}

	first, _, err := CachedPage(HomePageCacheKey(1), 20*time.Second, render)
	if err != nil {
		t.Fatal(err)
	}

	fake.Advance(21 * time.Second)
	refreshed, hit, err := CachedPage(HomePageCacheKey(1), 20*time.Second, render)
	if err != nil {
		t.Fatalf("request after expiry failed: %v", err)
	}
	if hit || bytes.Equal(first, refreshed) {
		t.Fatal("request after the TTL must rerender")
	}
	if renders != 2 {
		t.Fatalf("render ran %d times, want 2", renders)
	}
}

func TestCachedPageKeysPerPage(t *testing.T) {
	testPageCache(t)

	pageOne, _, err := CachedPage(HomePageCacheKey(1), time.Minute, func() ([]byte, error) {
		return []byte("page one"), nil
	})
	if err != nil {
		t.Fatal(err)
	}

	pageTwo, hit, err := CachedPage(HomePageCacheKey(2), time.Minute, func() ([]byte, error) {
		return []byte("page two"), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if hit || bytes.Equal(pageOne, pageTwo) {
		t.Fatal("different page numbers must not share a cache entry")
	}
}

func TestCachedPagePropagatesRenderErrors(t *testing.T) {
	fake := testPageCache(t)

	boom := errors.New("render exploded")
	if _, _, err := CachedPage(HomePageCacheKey(1), time.Minute, func() ([]byte, error) {
		return nil, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("render errors must propagate, got %v", err)
	}
	if len(fake.entries) != 0 {
		t.Fatal("failed renders must not be cached")
	}
}
