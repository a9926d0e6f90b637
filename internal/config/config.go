package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB. The default keeps everything in a local SQLite file, the Go
	// stand-in for the demo's browser storage. A postgres:// DSN switches
	// drivers.
	DatabaseURL string `envconfig:"DATABASE_URL" default:"quickcourt.db"`

	// JWT
	JWTSecret    string `envconfig:"JWT_SECRET" default:"change-me-jwt-secret"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"1440"`

	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// Dev mailer: when true, verification codes are printed to the log.
	DevMailEnabled bool `envconfig:"DEV_MAIL_ENABLED" default:"true"`
}

func Load() (App, error) {
	// Missing .env is fine; env vars still apply.
	_ = godotenv.Load()

	var c App
	err := envconfig.Process("", &c)
	return c, err
}
