// Package config collects every environment-driven setting into one struct
// that is parsed once in main and passed down by reference, instead of each
// component reading ambient globals.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process-wide configuration for the shirtshop server.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `env:"ADDR" envDefault:":8080"`

	DB       DBConfig
	Redis    RedisConfig
	Admin    AdminConfig
	Session  SessionConfig
	SendGrid SendGridConfig
	Contact  ContactConfig
}

// DBConfig holds the relational database settings.
type DBConfig struct {
	// Driver selects the SQL dialect: "mysql" (default) or "postgres".
	Driver   string `env:"DB_DRIVER" envDefault:"mysql"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"3306"`
	Name     string `env:"DB_NAME" envDefault:"shirtshop"`

	// Instance, when set, connects through a Cloud SQL unix socket
	// instead of TCP (mysql only).
	Instance string `env:"INSTANCE_CONNECTION_NAME"`

	// RunMigrations enables AutoMigrate at startup.
	RunMigrations bool `env:"RUN_MIGRATIONS"`
}

// RedisConfig holds the settings for the session store and catalog cache.
type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
}

// Addr returns the host:port address of the redis server.
func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// AdminConfig holds the credentials the admin login is compared against.
// The values are plaintext by contract; the handler compares them in
// constant time.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME"`
	Password string `env:"ADMIN_PASSWORD"`
}

// SessionConfig holds session and remember-me settings.
type SessionConfig struct {
	// Secret signs remember-me tokens.
	Secret string `env:"SESSION_SECRET"`

	// TTL is the lifetime of a server-side session record.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// RememberTTL is the lifetime of a remember-me token.
	RememberTTL time.Duration `env:"REMEMBER_TTL" envDefault:"720h"`
}

// SendGridConfig holds the settings of the transactional-email provider.
type SendGridConfig struct {
	APIKey  string        `env:"SENDGRID_API_KEY"`
	BaseURL string        `env:"SENDGRID_BASE_URL" envDefault:"https://api.sendgrid.com"`
	Timeout time.Duration `env:"SENDGRID_TIMEOUT" envDefault:"10s"`
}

// ContactConfig holds the fixed addresses used by the contact form.
type ContactConfig struct {
	To   string `env:"CONTACT_TO"`
	From string `env:"CONTACT_FROM" envDefault:"noreply@tomthefrog.com"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
