// Package entity defines the domain entities for the catalog feature.
package entity

import "time"

// Product is a shirt in the catalog.
type Product struct {
	// ID is the unique identifier for the product.
	ID uint `gorm:"primaryKey"`

	// Name is the display name, unique across the catalog.
	Name string `gorm:"uniqueIndex;size:64;not null"`

	// Price in whole currency units.
	Price int `gorm:"not null"`

	// Paypal is the opaque checkout-widget button code. The server never
	// interprets it.
	Paypal string `gorm:"size:128"`

	// Description is the free-form product description.
	Description string `gorm:"type:text"`

	// CoverImage is the image filename under static/.
	CoverImage string `gorm:"size:64"`

	// Textual is the short tagline shown on the detail page.
	Textual string `gorm:"size:64"`

	// Sizes are the sizes this product is available in.
	Sizes []Size `gorm:"many2many:product_sizes"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Size is a named shirt size shared across products.
type Size struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:64;not null"`
}
