// Package sendgrid provides a client for the SendGrid transactional-email
// API.
package sendgrid

import "time"

// Config holds configuration for the SendGrid API client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the API (e.g., "https://api.sendgrid.com")
	Timeout time.Duration // HTTP request timeout
}
