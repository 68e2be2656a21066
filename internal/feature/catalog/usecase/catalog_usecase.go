package usecase

import (
	"context"
	"fmt"

	"shirtshop_backend/internal/feature/catalog/domain/entity"
)

// ProductRepository abstracts the persistence layer for the catalog.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type ProductRepository interface {
	// List retrieves all products with their sizes, ordered by ID.
	List(ctx context.Context) ([]entity.Product, error)

	// FindByID retrieves a product with its sizes.
	// It returns ErrProductNotFound if the product does not exist.
	FindByID(ctx context.Context, id uint) (*entity.Product, error)

	// Create persists a new product.
	// It returns ErrProductNameTaken if the name already exists.
	Create(ctx context.Context, product *entity.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by ID.
	// It returns ErrProductNotFound if the product does not exist.
	Delete(ctx context.Context, id uint) error

	// Count returns the number of products in the catalog.
	Count(ctx context.Context) (int64, error)
}

// catalogUsecase implements the catalog business logic.
type catalogUsecase struct {
	products ProductRepository
}

// NewCatalogUsecase creates a new catalogUsecase instance.
func NewCatalogUsecase(products ProductRepository) *catalogUsecase {
	return &catalogUsecase{products: products}
}

// ListAll returns every product in the catalog.
func (u *catalogUsecase) ListAll(ctx context.Context) ([]entity.Product, error) {
	return u.products.List(ctx)
}

// Featured returns the first n products for the home page.
func (u *catalogUsecase) Featured(ctx context.Context, n int) ([]entity.Product, error) {
	products, err := u.products.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) > n {
		products = products[:n]
	}
	return products, nil
}

// Get returns a single product by ID.
func (u *catalogUsecase) Get(ctx context.Context, id uint) (*entity.Product, error) {
	return u.products.FindByID(ctx, id)
}

// Create adds a product to the catalog.
func (u *catalogUsecase) Create(ctx context.Context, product *entity.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return u.products.Create(ctx, product)
}

// Update persists changes to a product.
func (u *catalogUsecase) Update(ctx context.Context, product *entity.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return u.products.Update(ctx, product)
}

// Delete removes a product from the catalog.
func (u *catalogUsecase) Delete(ctx context.Context, id uint) error {
	return u.products.Delete(ctx, id)
}

// SeedDefault loads the stock catalog on an empty database so a fresh
// install has something to sell.
func (u *catalogUsecase) SeedDefault(ctx context.Context) error {
	count, err := u.products.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range defaultProducts() {
		if err := u.products.Create(ctx, &p); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
	}
	return nil
}

// validateProduct checks the field constraints shared by create and update.
func validateProduct(p *entity.Product) error {
	if p.Name == "" || len(p.Name) > 64 {
		return fmt.Errorf("product name must be between 1 and 64 characters")
	}
	if p.Price < 0 {
		return fmt.Errorf("product price must not be negative")
	}
	if len(p.Paypal) > 128 {
		return fmt.Errorf("paypal code must be at most 128 characters")
	}
	return nil
}
