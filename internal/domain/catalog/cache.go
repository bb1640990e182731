// internal/domain/catalog/cache.go
package catalog

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// CachedCatalog decorates a Catalog with a Redis cache-aside layer.
// Concurrent misses for the same key are collapsed with singleflight so a
// cold cache produces one upstream fetch, not one per request. Cache
// failures degrade to a direct fetch, never to a user-visible error.
type CachedCatalog struct {
	next   Catalog
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
	group  singleflight.Group
}

// NewCachedCatalog wraps next with a Redis cache
func NewCachedCatalog(next Catalog, client *redis.Client, ttl time.Duration, logger *logrus.Logger) *CachedCatalog {
	return &CachedCatalog{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// ListProducts returns the catalog, served from cache when possible
func (c *CachedCatalog) ListProducts(ctx context.Context, limit int) ([]Product, error) {
	key := "catalog:products:limit:" + strconv.Itoa(limit)

	var products []Product
	if c.lookup(ctx, key, &products) {
		return products, nil
	}

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		products, err := c.next.ListProducts(ctx, limit)
		if err != nil {
			return nil, err
		}
		c.store(ctx, key, products)
		return products, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]Product), nil
}

// ListCategories returns the category labels, served from cache when possible
func (c *CachedCatalog) ListCategories(ctx context.Context) ([]string, error) {
	key := "catalog:categories"

	var categories []string
	if c.lookup(ctx, key, &categories) {
		return categories, nil
	}

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		categories, err := c.next.ListCategories(ctx)
		if err != nil {
			return nil, err
		}
		c.store(ctx, key, categories)
		return categories, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]string), nil
}

// ListProductsByCategory returns a category's products, served from cache
// when possible
func (c *CachedCatalog) ListProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	key := "catalog:products:category:" + category

	var products []Product
	if c.lookup(ctx, key, &products) {
		return products, nil
	}

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		products, err := c.next.ListProductsByCategory(ctx, category)
		if err != nil {
			return nil, err
		}
		c.store(ctx, key, products)
		return products, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]Product), nil
}

// GetProduct returns a single product, served from cache when possible.
// Not-found results are not cached.
func (c *CachedCatalog) GetProduct(ctx context.Context, id int) (Product, error) {
	key := "catalog:product:" + strconv.Itoa(id)

	var product Product
	if c.lookup(ctx, key, &product) {
		return product, nil
	}

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		product, err := c.next.GetProduct(ctx, id)
		if err != nil {
			return Product{}, err
		}
		c.store(ctx, key, product)
		return product, nil
	})
	if err != nil {
		return Product{}, err
	}

	return result.(Product), nil
}

// lookup reports a cache hit and decodes into dest when one occurs
func (c *CachedCatalog) lookup(ctx context.Context, key string, dest interface{}) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WithError(err).WithField("key", key).Warn("Catalog cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Catalog cache entry undecodable")
		return false
	}

	return true
}

func (c *CachedCatalog) store(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Catalog cache write failed")
	}
}
