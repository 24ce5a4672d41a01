package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting, loaded from the environment.
type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP server
	Port            int           `envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	AllowedOrigins  []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`

	// PostgreSQL
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"photobooth"`
	DBSSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	DBMaxConns int32  `envconfig:"DB_MAX_CONNECTIONS" default:"10"`

	// Redis (session-code verify rate limiting)
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// JWT auth
	JWTSecret      string        `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenTTL time.Duration `envconfig:"ACCESS_TOKEN_TTL" default:"24h"`

	// AI image provider
	AIAPIKey  string        `envconfig:"AI_API_KEY" required:"true"`
	AIBaseURL string        `envconfig:"AI_BASE_URL" default:""`
	AIModel   string        `envconfig:"AI_MODEL" default:"gpt-image-1"`
	AISize    string        `envconfig:"AI_IMAGE_SIZE" default:"1024x1024"`
	AITimeout time.Duration `envconfig:"AI_TIMEOUT" default:"120s"`

	// Object storage (S3-compatible)
	StorageAccountID  string `envconfig:"STORAGE_ACCOUNT_ID" default:""`
	StorageAccessKey  string `envconfig:"STORAGE_ACCESS_KEY_ID" required:"true"`
	StorageSecretKey  string `envconfig:"STORAGE_ACCESS_KEY_SECRET" required:"true"`
	StorageBucket     string `envconfig:"STORAGE_BUCKET" default:"photobooth-images"`
	StorageRegion     string `envconfig:"STORAGE_REGION" default:"auto"`
	StorageEndpoint   string `envconfig:"STORAGE_ENDPOINT" default:""`
	StoragePublicBase string `envconfig:"STORAGE_PUBLIC_BASE_URL" required:"true"`

	// Verify-endpoint rate limit (per client IP, fixed window)
	VerifyRateLimit  int           `envconfig:"VERIFY_RATE_LIMIT" default:"30"`
	VerifyRateWindow time.Duration `envconfig:"VERIFY_RATE_WINDOW" default:"1m"`
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// IsProduction reports whether the service runs in production mode.
// Non-production responses may carry extra error detail.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
