package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"shirtshop_backend/internal/feature/catalog/domain/entity"
	"shirtshop_backend/internal/feature/catalog/usecase"
)

// CachingProductRepository decorates a ProductRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingProductRepository struct {
	inner     usecase.ProductRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check to ensure the decorator implements ProductRepository.
var _ usecase.ProductRepository = (*CachingProductRepository)(nil)

// NewCachingProductRepository decorates a ProductRepository with Redis
// caching. If ttl is 0, it defaults to 5 minutes. If namespace is empty,
// it uses "products".
func NewCachingProductRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ProductRepository, namespace string) *CachingProductRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "products"
	}
	return &CachingProductRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// listKey returns the cache key for the full catalog listing.
func (c *CachingProductRepository) listKey() string {
	return c.namespace + ":list"
}

// productKey returns the cache key for a single product.
func (c *CachingProductRepository) productKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}

// List retrieves products, checking the cache first then falling back to
// the database.
func (c *CachingProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	if b, err := c.rdb.Get(ctx, c.listKey()).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Product
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
	}

	products, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(products); err == nil {
		if err := c.rdb.Set(ctx, c.listKey(), b, c.ttl).Err(); err != nil {
			slog.Warn("failed to cache product list", "error", err)
		}
	}
	return products, nil
}

// FindByID retrieves a product, checking the cache first then falling back
// to the database.
func (c *CachingProductRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.productKey(id)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Product
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
	}

	product, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(product); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			slog.Warn("failed to cache product", "error", err, "id", id)
		}
	}
	return product, nil
}

// Create inserts a product and invalidates the listing cache.
func (c *CachingProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := c.inner.Create(ctx, product); err != nil {
		return err
	}
	c.invalidate(ctx, product.ID)
	return nil
}

// Update persists a product and invalidates its cache entries.
func (c *CachingProductRepository) Update(ctx context.Context, product *entity.Product) error {
	if err := c.inner.Update(ctx, product); err != nil {
		return err
	}
	c.invalidate(ctx, product.ID)
	return nil
}

// Delete removes a product and invalidates its cache entries.
func (c *CachingProductRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

// Count is never cached; the admin panel wants live numbers.
func (c *CachingProductRepository) Count(ctx context.Context) (int64, error) {
	return c.inner.Count(ctx)
}

// invalidate drops the cache entries touched by a write. Best effort:
// a failed delete only means a stale read until the TTL runs out.
func (c *CachingProductRepository) invalidate(ctx context.Context, id uint) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, c.listKey(), c.productKey(id)).Err(); err != nil {
		slog.Warn("failed to invalidate product cache", "error", err, "id", id)
	}
}
