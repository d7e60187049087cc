package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshelf/internal/database/books"
)

type Database struct {
	DB *gorm.DB
}

// Option tweaks the gorm configuration used by NewDatabase.
type Option func(*gorm.Config)

// WithLogLevel sets gorm's own SQL logger level (Warn by default).
func WithLogLevel(level logger.LogLevel) Option {
	return func(c *gorm.Config) {
		c.Logger = logger.Default.LogMode(level)
	}
}

func NewDatabase(dbPath string, opts ...Option) (*Database, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initial schema creation only; there are no versioned migrations.
	if err := db.AutoMigrate(&books.BookModel{}); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("Database initialized")

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
