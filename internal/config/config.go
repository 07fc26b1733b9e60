package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Supported dataset backends.
const (
	SourceFile     = "file"
	SourceObject   = "object"
	SourcePostgres = "postgres"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string `env:"DB_HOST"`
	Port               string `env:"DB_PORT" envDefault:"5432"`
	User               string `env:"DB_USER"`
	Password           string `env:"DB_PASSWORD"`
	Name               string `env:"DB_NAME"`
	SSLMode            string `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns       int    `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns       int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetimeSec int    `env:"DB_CONN_MAX_LIFETIME_SEC" envDefault:"300"`
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	Bucket    string `env:"MINIO_BUCKET"`
	UseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
}

// DataConfig selects where the dashboard dataset is read from.
type DataConfig struct {
	Source      string `env:"DATA_SOURCE" envDefault:"file"`
	FilePath    string `env:"DATA_FILE_PATH" envDefault:"dummyData.json"`
	ObjectKey   string `env:"DATA_OBJECT_KEY" envDefault:"dummyData.json"`
	DatasetName string `env:"DATA_DATASET_NAME" envDefault:"dummy"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost          string `env:"APP_HOST" envDefault:"localhost:8080"`
	Port             string `env:"PORT" envDefault:"8080"`
	LogTimezone      string `env:"TZ_LOG" envDefault:"UTC"`
	CORSAllowOrigins string `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
	Data             DataConfig
	Database         DatabaseConfig
	MinIO            MinIOConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over the file.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.Data.Source {
	case SourceFile, SourceObject, SourcePostgres:
	default:
		return nil, fmt.Errorf("unsupported DATA_SOURCE %q", cfg.Data.Source)
	}
	return &cfg, nil
}

// Location resolves the log timezone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.LogTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
