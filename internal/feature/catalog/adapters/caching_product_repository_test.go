package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shirtshop_backend/internal/feature/catalog/domain/entity"
)

// countingRepository wraps the inner repository calls with counters so the
// tests can see which reads hit the database.
type countingRepository struct {
	products  []entity.Product
	listCalls int
	findCalls int
}

func (r *countingRepository) List(_ context.Context) ([]entity.Product, error) {
	r.listCalls++
	return r.products, nil
}

func (r *countingRepository) FindByID(_ context.Context, id uint) (*entity.Product, error) {
	r.findCalls++
	for i := range r.products {
		if r.products[i].ID == id {
			return &r.products[i], nil
		}
	}
	return nil, nil
}

func (r *countingRepository) Create(_ context.Context, p *entity.Product) error { return nil }
func (r *countingRepository) Update(_ context.Context, p *entity.Product) error { return nil }
func (r *countingRepository) Delete(_ context.Context, id uint) error           { return nil }
func (r *countingRepository) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

// setupCacheTest builds the decorator over a counting repository and
// miniredis.
func setupCacheTest(t *testing.T) (*CachingProductRepository, *countingRepository) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	inner := &countingRepository{
		products: []entity.Product{
			{ID: 101, Name: "Logo Shirt, Red", Price: 18},
			{ID: 102, Name: "Mike the Frog Shirt, Black", Price: 20},
		},
	}
	return NewCachingProductRepository(client, time.Minute, inner, "products"), inner
}

func TestCachingProductRepository_List(t *testing.T) {
	cache, inner := setupCacheTest(t)

	first, err := cache.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, 1, inner.listCalls)

	// Second read is served from cache.
	second, err := cache.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.listCalls, "second list should hit the cache")
}

func TestCachingProductRepository_FindByID(t *testing.T) {
	cache, inner := setupCacheTest(t)

	first, err := cache.FindByID(context.Background(), 101)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 1, inner.findCalls)

	second, err := cache.FindByID(context.Background(), 101)
	require.NoError(t, err)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, 1, inner.findCalls, "second read should hit the cache")
}

func TestCachingProductRepository_WriteInvalidates(t *testing.T) {
	cache, inner := setupCacheTest(t)

	_, err := cache.List(context.Background())
	require.NoError(t, err)
	_, err = cache.FindByID(context.Background(), 101)
	require.NoError(t, err)

	// An update drops both the listing and the product entry.
	require.NoError(t, cache.Update(context.Background(), &entity.Product{ID: 101, Name: "Logo Shirt, Red", Price: 25}))

	_, err = cache.List(context.Background())
	require.NoError(t, err)
	_, err = cache.FindByID(context.Background(), 101)
	require.NoError(t, err)

	assert.Equal(t, 2, inner.listCalls, "list cache should have been invalidated")
	assert.Equal(t, 2, inner.findCalls, "product cache should have been invalidated")
}

func TestCachingProductRepository_NilClientBypasses(t *testing.T) {
	inner := &countingRepository{products: []entity.Product{{ID: 101, Name: "Logo Shirt, Red"}}}
	cache := NewCachingProductRepository(nil, time.Minute, inner, "products")

	for range 3 {
		_, err := cache.List(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 3, inner.listCalls, "without redis every read goes to the database")
}
