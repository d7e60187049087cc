package entrypoint

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/mrlokans/bookshelf/internal/books"
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	dbbooks "github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/dynamo"
	"github.com/mrlokans/bookshelf/internal/postgres"
)

// CloseFunc releases the resources held by an opened repository.
type CloseFunc func() error

func noopClose() error { return nil }

// OpenRepository builds the repository for the configured storage backend.
func OpenRepository(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (books.Repository, CloseFunc, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger = logger.With().Str("backend", string(cfg.Storage.Backend)).Logger()
	opts := []books.StoreOption{books.WithLogger(logger)}

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		logger.Warn().Msg("Using in-memory storage, books are lost on exit")
		return books.NewMemoryRepository(), noopClose, nil

	case config.BackendSQLite:
		db, err := database.NewDatabase(cfg.Database.Path)
		if err != nil {
			return nil, nil, err
		}
		return dbbooks.NewRepository(db.DB, opts...), db.Close, nil

	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info().Msg("Postgres schema ready")
		return postgres.NewRepository(pool, opts...), func() error { pool.Close(); return nil }, nil

	case config.BackendDynamoDB:
		client, err := dynamo.NewClient(ctx, cfg.DynamoDB.Region, cfg.DynamoDB.Endpoint)
		if err != nil {
			return nil, nil, err
		}
		if err := dynamo.EnsureTable(ctx, client, cfg.DynamoDB.Table); err != nil {
			return nil, nil, err
		}
		logger.Info().Str("table", cfg.DynamoDB.Table).Msg("DynamoDB table ready")
		return dynamo.NewRepository(client, cfg.DynamoDB.Table, opts...), noopClose, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Storage.Backend)
}
