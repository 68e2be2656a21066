// Package adapters provides repository implementations for the catalog
// feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shirtshop_backend/internal/feature/catalog/domain/entity"
	"shirtshop_backend/internal/feature/catalog/usecase"
	"shirtshop_backend/internal/platform/db"
)

// productSQL is a gorm implementation of the ProductRepository interface.
type productSQL struct {
	db *gorm.DB
}

// Compile-time check to ensure productSQL implements ProductRepository.
var _ usecase.ProductRepository = (*productSQL)(nil)

// NewProductSQL creates a new productSQL instance with the given gorm.DB
// connection. Constructor for dependency injection.
func NewProductSQL(db *gorm.DB) *productSQL {
	return &productSQL{db: db}
}

// List retrieves all products with their sizes, ordered by ID.
func (r *productSQL) List(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.db.WithContext(ctx).Preload("Sizes").Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID retrieves a product with its sizes.
// If the product does not exist, it returns usecase.ErrProductNotFound.
func (r *productSQL) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.WithContext(ctx).Preload("Sizes").Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create persists a product and links its sizes. Sizes are shared rows
// resolved by name, so two products in "Small" reference the same record.
// If the name already exists, it returns usecase.ErrProductNameTaken.
func (r *productSQL) Create(ctx context.Context, product *entity.Product) error {
	if err := r.resolveSizes(ctx, product); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return usecase.ErrProductNameTaken
		}
		return err
	}
	return nil
}

// Update persists scalar fields and replaces the size links.
// If the product does not exist, it returns usecase.ErrProductNotFound.
func (r *productSQL) Update(ctx context.Context, product *entity.Product) error {
	if err := r.resolveSizes(ctx, product); err != nil {
		return err
	}

	tx := r.db.WithContext(ctx)

	// Existence is checked up front: Save would insert when the UPDATE
	// matches nothing, and mysql reports changed rows rather than matched
	// rows, so RowsAffected is 0 for a no-op edit too.
	var exists entity.Product
	if err := tx.Select("id").First(&exists, product.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.ErrProductNotFound
		}
		return err
	}

	result := tx.Model(&entity.Product{ID: product.ID}).
		Select("name", "price", "paypal", "description", "cover_image", "textual").
		Updates(product)
	if result.Error != nil {
		if db.IsDuplicateKey(result.Error) {
			return usecase.ErrProductNameTaken
		}
		return result.Error
	}
	return tx.Model(product).Association("Sizes").Replace(product.Sizes)
}

// Delete removes a product and its size links. The sizes themselves are
// shared and stay.
// If the product does not exist, it returns usecase.ErrProductNotFound.
func (r *productSQL) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&entity.Product{ID: id})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrProductNotFound
	}
	return nil
}

// Count returns the number of products in the catalog.
func (r *productSQL) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Product{}).Count(&count).Error
	return count, err
}

// resolveSizes swaps the product's sizes for persisted rows looked up (or
// created) by name.
func (r *productSQL) resolveSizes(ctx context.Context, product *entity.Product) error {
	resolved := make([]entity.Size, 0, len(product.Sizes))
	for _, s := range product.Sizes {
		var size entity.Size
		if err := r.db.WithContext(ctx).
			Where(entity.Size{Name: s.Name}).
			FirstOrCreate(&size).Error; err != nil {
			return err
		}
		resolved = append(resolved, size)
	}
	product.Sizes = resolved
	return nil
}
