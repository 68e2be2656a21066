// Package dto defines the form bindings for the auth feature's HTTP
// transport layer.
package dto

// LoginForm represents the POST /login form body.
// Remember is kept as a string because browsers submit checkboxes as "on",
// which does not parse as a bool; any non-empty value means checked.
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	Remember string `form:"remember"`
}

// RegisterForm represents the POST /register form body.
// The limits mirror the users table: usernames are at most 64 characters
// and passwords at least 8.
type RegisterForm struct {
	Username string `form:"username" binding:"required,max=64"`
	Password string `form:"password" binding:"required,min=8"`
}
