// Package dto defines the form bindings for the admin panel's HTTP
// transport layer.
package dto

// AdminLoginForm represents the POST /admin/login form body.
type AdminLoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// ProductForm represents the product create and edit form bodies.
// Sizes is a comma-separated list of size names.
type ProductForm struct {
	Name        string `form:"name" binding:"required,max=64"`
	Price       int    `form:"price" binding:"gte=0"`
	Paypal      string `form:"paypal" binding:"max=128"`
	Description string `form:"description"`
	CoverImage  string `form:"cover_image" binding:"max=64"`
	Textual     string `form:"textual" binding:"max=64"`
	Sizes       string `form:"sizes"`
}
