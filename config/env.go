package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type SMTPConfig struct {
	Host string `env:"HOST"`
	Port int    `env:"PORT" envDefault:"587"`
	User string `env:"USER"`
	Pass string `env:"PASS"`
	From string `env:"FROM"`
}

// Enabled reports whether enough is set to dial an SMTP server.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.User != "" && c.Pass != ""
}

type Config struct {
	AppEnv     string `env:"APP_ENV" envDefault:"development"`
	Port       string `env:"APP_PORT"`
	HostPort   string `env:"PORT" envDefault:"8000"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	Serverless bool   `env:"VERCEL"`

	StoreDriver        string        `env:"STORE_DRIVER" envDefault:"mongo"`
	DatabaseURL        string        `env:"DATABASE_URL"`
	DatabaseName       string        `env:"DATABASE_NAME"`
	SQLitePath         string        `env:"SQLITE_PATH" envDefault:"perfume.db"`
	FirestoreProjectID string        `env:"FIRESTORE_PROJECT_ID"`
	GoogleCredentials  string        `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	StoreTimeout       time.Duration `env:"STORE_TIMEOUT" envDefault:"10s"`

	RedisURL        string        `env:"REDIS_URL"`
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"5m"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	SMTP SMTPConfig `envPrefix:"SMTP_"`

	SeedOnStartup         bool `env:"SEED_ON_STARTUP" envDefault:"true"`
	CartSerializeSessions bool `env:"CART_SERIALIZE_SESSIONS" envDefault:"true"`
}

// LoadConfig reads .env when present, then the process environment.
// APP_PORT takes precedence over PORT.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found, using system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port == "" {
		cfg.Port = cfg.HostPort
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
