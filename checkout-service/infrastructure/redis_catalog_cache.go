package infrastructure

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const catalogCacheKey = "checkout:payment_methods"

// RedisCatalogCache decorates a payment method catalog with a shared Redis
// cache so multiple service instances serve the same list without hitting
// the upstream. Cache reads are best-effort: a cache failure falls through
// to the wrapped catalog.
type RedisCatalogCache struct {
	cache    *redis.Client
	upstream domain.PaymentMethodCatalog
	ttl      time.Duration
}

// NewRedisCatalogCache creates a caching decorator around upstream
func NewRedisCatalogCache(cache *redis.Client, upstream domain.PaymentMethodCatalog, ttl time.Duration) *RedisCatalogCache {
	return &RedisCatalogCache{
		cache:    cache,
		upstream: upstream,
		ttl:      ttl,
	}
}

// FetchPaymentMethods returns the cached list or fetches and caches it
func (c *RedisCatalogCache) FetchPaymentMethods(ctx context.Context) ([]domain.PaymentMethodOption, error) {
	if data, err := c.cache.Get(ctx, catalogCacheKey).Bytes(); err == nil {
		var methods []domain.PaymentMethodOption
		if err := sonic.Unmarshal(data, &methods); err == nil {
			return methods, nil
		}
	}

	methods, err := c.upstream.FetchPaymentMethods(ctx)
	if err != nil {
		return nil, err
	}

	data, err := sonic.Marshal(methods)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal payment methods")
	}

	// Failing to populate the cache is not a reason to fail the fetch
	_ = c.cache.Set(ctx, catalogCacheKey, data, c.ttl).Err()

	return methods, nil
}
