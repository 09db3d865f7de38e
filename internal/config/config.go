package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	Port string `envconfig:"API_PORT" default:"5000"`

	DBConnectionURL string        `envconfig:"DB_CONNECTION_URL" required:"true"`
	DBSSLRootCert   string        `envconfig:"DB_SSL_ROOT_CERT"`
	DBMaxOpenConns  int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	DBMaxIdleConns  int           `envconfig:"DB_MAX_IDLE_CONNS" default:"25"`
	DBConnMaxLife   time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`

	JWTSecret            string        `envconfig:"JWT_SECRET" required:"true"`
	JWTExpiration        time.Duration `envconfig:"JWT_EXPIRATION" default:"1h"`
	ResetTokenExpiration time.Duration `envconfig:"RESET_TOKEN_EXPIRATION" default:"15m"`
	BcryptCost           int           `envconfig:"BCRYPT_COST" default:"10"`

	CORSAllowedOrigin string `envconfig:"CORS_ALLOWED_ORIGIN" default:"http://localhost:5173"`
	ResetURL          string `envconfig:"RESET_URL" default:"http://localhost:5173/reset-password"`

	SendGridAPIKey string `envconfig:"SENDGRID_API_KEY"`
	MailFromEmail  string `envconfig:"MAIL_FROM_EMAIL" default:"no-reply@fastauth.local"`
	MailFromName   string `envconfig:"MAIL_FROM_NAME" default:"FastAuth"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// NewApp loads an optional .env file and then reads the configuration from the environment.
func NewApp(envFiles ...string) (App, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return App{}, fmt.Errorf("load env file: %w", err)
	}

	var app App
	if err := envconfig.Process("", &app); err != nil {
		return App{}, fmt.Errorf("process env: %w", err)
	}

	if app.JWTExpiration <= 0 {
		return App{}, fmt.Errorf("JWT_EXPIRATION must be positive, got %s", app.JWTExpiration)
	}

	return app, nil
}

// DSN returns the connection string, pinned to verify-full TLS when a root certificate is configured.
func (a App) DSN() string {
	if a.DBSSLRootCert == "" {
		return a.DBConnectionURL
	}

	if u, err := url.Parse(a.DBConnectionURL); err == nil && (u.Scheme == "postgres" || u.Scheme == "postgresql") {
		q := u.Query()
		q.Set("sslmode", "verify-full")
		q.Set("sslrootcert", a.DBSSLRootCert)
		u.RawQuery = q.Encode()
		return u.String()
	}

	return strings.TrimSpace(a.DBConnectionURL) + " sslmode=verify-full sslrootcert=" + a.DBSSLRootCert
}
