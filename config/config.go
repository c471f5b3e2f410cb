package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBUser      string `env:"DB_USER" envDefault:"postgres"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME" envDefault:"gpustore"`

	Port      string `env:"PORT" envDefault:"8080"`
	JWTSecret string `env:"JWT_SECRET"`
	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads/images"`
}

// New loads .env, environment variables and finally flags, in that
// order of precedence (flags win for local runs).
func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	flag.StringVar(&cfg.DatabaseURL, "database-url", cfg.DatabaseURL, "full postgres DSN, overrides DB_* parts")
	flag.StringVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	flag.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "secret used to sign session tokens")
	flag.StringVar(&cfg.UploadDir, "upload-dir", cfg.UploadDir, "directory for uploaded card images")
	flag.Parse()

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-key"
	}

	return cfg
}

// DSN returns the postgres connection string, assembled from the
// discrete DB_* parts unless DATABASE_URL is set.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}
