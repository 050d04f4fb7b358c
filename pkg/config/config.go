// Package config loads typed application configuration from the environment.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings. Values come from the environment,
// optionally seeded by a .env file in development.
type Config struct {
	Port        string `envconfig:"PORT" default:"3000"`
	Env         string `envconfig:"APP_ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:5173"`

	DatabaseURL string `envconfig:"DATABASE_URL"`
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER" default:"postgres"`
	DBPassword  string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME" default:"stockpilot"`

	JWTSecret     string        `envconfig:"JWT_SECRET" default:"change-me-in-production"`
	JWTExpiry     time.Duration `envconfig:"JWT_EXPIRE" default:"1h"`
	RefreshExpiry time.Duration `envconfig:"JWT_REFRESH_EXPIRE" default:"168h"`

	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@stockpilot.local"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin123"`
}

// Load reads .env (if present) and decodes the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction reports whether the app runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
