// Package usecase implements the business logic for the catalog feature.
package usecase

import "errors"

var (
	// ErrProductNotFound is returned when a product cannot be found by ID
	// or name.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductNameTaken is returned when attempting to create or rename a
	// product to a name that already exists.
	ErrProductNameTaken = errors.New("product name already taken")
)
