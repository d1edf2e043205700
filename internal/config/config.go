package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Admin    AdminConfig
	Blob     BlobConfig
}

type AppConfig struct {
	Port string
}

type PostgresConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	DBName         string
	SSLMode        string
	MigrationsPath string
}

type AdminConfig struct {
	// PasswordHash is a bcrypt hash of the shared admin secret.
	PasswordHash string
}

type BlobConfig struct {
	// S3Bucket empty means the local upload directory is used instead.
	S3Bucket      string
	S3Region      string
	PublicBaseURL string
	UploadDir     string
}

// New loads configuration from the environment, reading .env first when
// present. Database settings and the admin password hash are required;
// everything else has a default.
func New() (*Config, error) {
	// Missing .env is fine: real deployments set plain env vars.
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.App.Port = getenv("APP_PORT", "8080")

	var err error
	if cfg.Postgres.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Postgres.Port, err = requireEnv("DB_PORT"); err != nil {
		return nil, err
	}
	if cfg.Postgres.User, err = requireEnv("DB_USER"); err != nil {
		return nil, err
	}
	if cfg.Postgres.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Postgres.DBName, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}
	cfg.Postgres.SSLMode = getenv("DB_SSLMODE", "disable")
	cfg.Postgres.MigrationsPath = getenv("DB_MIGRATIONS_PATH", "migrations")

	if cfg.Admin.PasswordHash, err = requireEnv("ADMIN_PASSWORD_HASH"); err != nil {
		return nil, err
	}

	cfg.Blob.S3Bucket = os.Getenv("S3_BUCKET")
	cfg.Blob.S3Region = getenv("S3_REGION", "us-east-1")
	cfg.Blob.PublicBaseURL = os.Getenv("S3_PUBLIC_BASE_URL")
	cfg.Blob.UploadDir = getenv("UPLOAD_DIR", "uploads")

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func requireEnv(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("config: %s is required", key)
	}
	return v, nil
}
