// Package dto defines the form bindings for the contact feature's HTTP
// transport layer.
package dto

// ContactForm represents the POST /send form body.
type ContactForm struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required"`
}
