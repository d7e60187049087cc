// Package postgres implements books.Store on PostgreSQL using pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mrlokans/bookshelf/internal/books"
)

const schema = `
CREATE TABLE IF NOT EXISTS books (
	id              UUID PRIMARY KEY,
	author          TEXT NOT NULL,
	title           TEXT NOT NULL,
	publishing_date TIMESTAMPTZ NOT NULL
)`

// EnsureSchema creates the books table if it does not exist yet.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create books table: %w", err)
	}
	return nil
}

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// NewRepository wraps a postgres store in the domain repository contract.
func NewRepository(db *pgxpool.Pool, opts ...books.StoreOption) *books.StoreRepository {
	return books.NewStoreRepository(NewStore(db), opts...)
}

func (s *Store) Insert(ctx context.Context, record books.Record) error {
	query := `
	INSERT INTO books (id, author, title, publishing_date)
	VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.Exec(ctx, query, record.ID, record.Author, record.Title, record.PublishingDate)
	return err
}

func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (books.Record, bool, error) {
	query := `
	SELECT id, author, title, publishing_date
	FROM books
	WHERE id = $1
	`
	var r books.Record
	err := s.db.QueryRow(ctx, query, id).Scan(&r.ID, &r.Author, &r.Title, &r.PublishingDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return books.Record{}, false, nil
	}
	if err != nil {
		return books.Record{}, false, err
	}
	return r, true, nil
}
