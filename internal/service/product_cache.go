package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmarqb/Microservice-Products-and-Categories/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const defaultCacheTTL = 60 * time.Second

// productCache is a best-effort read-through cache for product-by-id lookups.
// Redis being down only costs latency: every operation degrades to the store.
// Entries are invalidated on update/delete and by the category-deleted
// reconciliation handler; the TTL bounds any staleness the invalidation
// misses.
type productCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// CacheOption tweaks the product cache.
type CacheOption func(*productCache)

// WithCacheTTL overrides the default entry lifetime.
func WithCacheTTL(ttl time.Duration) CacheOption {
	return func(c *productCache) { c.ttl = ttl }
}

func newProductCache(rdb *redis.Client, opts ...CacheOption) *productCache {
	c := &productCache{rdb: rdb, ttl: defaultCacheTTL}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func cacheKey(id uuid.UUID) string { return "product:" + id.String() }

func (c *productCache) get(ctx context.Context, id uuid.UUID) *model.Product {
	if c.rdb == nil {
		return nil
	}
	raw, err := c.rdb.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Debug().Err(err).Str("product_id", id.String()).Msg("product cache read failed")
		}
		return nil
	}
	var p model.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		log.Debug().Err(err).Str("product_id", id.String()).Msg("product cache entry corrupt")
		return nil
	}
	return &p
}

func (c *productCache) set(ctx context.Context, p *model.Product) {
	if c.rdb == nil {
		return
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(p.ID), raw, c.ttl).Err(); err != nil {
		log.Debug().Err(err).Str("product_id", p.ID.String()).Msg("product cache write failed")
	}
}

func (c *productCache) del(ctx context.Context, id uuid.UUID) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, cacheKey(id)).Err(); err != nil {
		log.Debug().Err(err).Str("product_id", id.String()).Msg("product cache invalidation failed")
	}
}
