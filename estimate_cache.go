package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/blake2b"

	"lg/sahha-go-api/nutrition"
)

const estimateKeyPrefix = "sahha:estimate:"

// estimateCache remembers analyzer results per image so re-uploading the same
// photo does not cost another model call. A nil cache is valid and never hits.
// Redis failures are logged and treated as misses.
type estimateCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func newEstimateCache(rdb *redis.Client, ttl time.Duration) *estimateCache {
	return &estimateCache{rdb: rdb, ttl: ttl}
}

// estimateKey is the cache key for an image: blake2b-256 of its bytes.
func estimateKey(image []byte) string {
	sum := blake2b.Sum256(image)
	return estimateKeyPrefix + hex.EncodeToString(sum[:])
}

func (c *estimateCache) get(ctx context.Context, image []byte) (nutrition.Estimate, bool) {
	if c == nil {
		return nutrition.Estimate{}, false
	}
	data, err := c.rdb.Get(ctx, estimateKey(image)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[estimateCache] get error: %v", err)
		}
		return nutrition.Estimate{}, false
	}
	var e nutrition.Estimate
	if err := json.Unmarshal(data, &e); err != nil {
		log.Printf("[estimateCache] decode error: %v", err)
		return nutrition.Estimate{}, false
	}
	return e, true
}

func (c *estimateCache) put(ctx context.Context, image []byte, e nutrition.Estimate) {
	if c == nil {
		return
	}
	data, err := json.Marshal(e)
	if err != nil {
		log.Printf("[estimateCache] encode error: %v", err)
		return
	}
	if err := c.rdb.Set(ctx, estimateKey(image), data, c.ttl).Err(); err != nil {
		log.Printf("[estimateCache] set error: %v", err)
	}
}
