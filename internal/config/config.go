package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendSQLite   Backend = "sqlite" // Local database via gorm (default)
	BackendPostgres Backend = "postgres"
	BackendDynamoDB Backend = "dynamodb"
)

type (
	Config struct {
		Storage
		Database
		Postgres
		DynamoDB
		Log
	}

	Storage struct {
		Backend Backend
	}
	Database struct {
		Path string
	}
	Postgres struct {
		URL string
	}
	DynamoDB struct {
		Table    string
		Region   string
		Endpoint string // Optional override, e.g. http://localhost:8000 for DynamoDB Local
	}
	Log struct {
		Level string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("storage_backend", string(BackendSQLite))
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("postgres_url", "")
	v.SetDefault("dynamodb_table", DefaultDynamoDBTable)
	v.SetDefault("dynamodb_region", "")
	v.SetDefault("dynamodb_endpoint", "")
	v.SetDefault("log_level", "info")

	return &Config{
		Storage: Storage{
			Backend: Backend(v.GetString("STORAGE_BACKEND")),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Postgres: Postgres{
			URL: v.GetString("POSTGRES_URL"),
		},
		DynamoDB: DynamoDB{
			Table:    v.GetString("DYNAMODB_TABLE"),
			Region:   v.GetString("DYNAMODB_REGION"),
			Endpoint: v.GetString("DYNAMODB_ENDPOINT"),
		},
		Log: Log{
			Level: v.GetString("LOG_LEVEL"),
		},
	}
}

// Validate checks that the selected backend is known and has the settings it needs.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory:
		return nil
	case BackendSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("DATABASE_PATH is required for the %s backend", c.Storage.Backend)
		}
	case BackendPostgres:
		if c.Postgres.URL == "" {
			return fmt.Errorf("POSTGRES_URL is required for the %s backend", c.Storage.Backend)
		}
	case BackendDynamoDB:
		if c.DynamoDB.Table == "" {
			return fmt.Errorf("DYNAMODB_TABLE is required for the %s backend", c.Storage.Backend)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Storage.Backend)
	}
	return nil
}
