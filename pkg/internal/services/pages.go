package services

import (
	"context"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	localCache "github.com/inklets/inklet/pkg/internal/cache"
	"github.com/spf13/viper"
)

func HomePageCacheKey(page int) string {
	return fmt.Sprintf("home-page#%d", page)
}

func HomePageTTL() time.Duration {
	if ttl := viper.GetDuration("cache.home_ttl"); ttl > 0 {
		return ttl
	}
	return 20 * time.Second
}

// CachedPage serves the rendered payload from the page cache when it is still
// fresh, otherwise renders, stores and returns it. Cached entries are the
// response bytes themselves, so hits are byte-identical and skip the database
// entirely. Writes are not invalidated proactively; staleness up to the TTL
// is accepted.
func CachedPage(key string, ttl time.Duration, render func() ([]byte, error)) ([]byte, bool, error) {
	cacheManager := cache.New[[]byte](localCache.S)
	ctx := context.Background()

	if payload, err := cacheManager.Get(ctx, key); err == nil && len(payload) > 0 {
		return payload, true, nil
	}

	payload, err := render()
	if err != nil {
		return nil, false, err
	}

	// Last writer wins; the cached page is derived data, not authoritative.
	_ = cacheManager.Set(ctx, key, payload, store.WithExpiration(ttl))

	return payload, false, nil
}
