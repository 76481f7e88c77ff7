package redis

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// TranslationCache stores remote translation results keyed by language pair
// and a hash of the source text.
type TranslationCache struct {
	rdb *goredis.Client
	ttl time.Duration
}

// NewTranslationCache creates a TranslationCache. A non-positive ttl keeps
// entries forever.
func NewTranslationCache(rdb *goredis.Client, ttl time.Duration) *TranslationCache {
	return &TranslationCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached translation. ok is false on a miss.
func (c *TranslationCache) Get(ctx context.Context, text, src, tgt string) (string, bool, error) {
	val, err := c.rdb.Get(ctx, cacheKey(text, src, tgt)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("translation cache get: %w", err)
	}
	return val, true, nil
}

// Set stores a translation.
func (c *TranslationCache) Set(ctx context.Context, text, src, tgt, translated string) error {
	ttl := c.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := c.rdb.Set(ctx, cacheKey(text, src, tgt), translated, ttl).Err(); err != nil {
		return fmt.Errorf("translation cache set: %w", err)
	}
	return nil
}

func cacheKey(text, src, tgt string) string {
	sum := sha1.Sum([]byte(text))
	return "translate:" + src + ":" + tgt + ":" + hex.EncodeToString(sum[:])
}
