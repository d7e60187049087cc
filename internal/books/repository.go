// Package books defines the persistence contract for books and the
// implementations that live entirely inside the domain layer.
//
// # Contract
//
// Callers depend on Repository (or on the narrower Reader / Writer) and never
// on a concrete backend:
//
//	var repo books.Repository = books.NewMemoryRepository()
//	err := repo.Save(ctx, book)     // book.ID is assigned here
//	got, err := repo.Get(ctx, book.ID)
//
// # Implementations
//
//   - MemoryRepository: map-backed reference implementation
//   - StoreRepository: adapts any Store (sqlite via gorm, postgres, dynamodb)
//
// Every implementation must pass the conformance suite in booktest.
package books

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// ErrNotFound is returned by Get when no book was saved under the requested id,
// regardless of the backing implementation.
var ErrNotFound = errors.New("book not found")

// Writer stores books.
type Writer interface {
	// Save assigns a fresh id to book and stores a copy of its fields.
	// Saving the same value twice creates two records.
	Save(ctx context.Context, book *entities.Book) error
}

// Reader loads previously saved books.
type Reader interface {
	Get(ctx context.Context, id uuid.UUID) (*entities.Book, error)
}

// Repository is the full contract an implementation must satisfy to be
// substitutable.
type Repository interface {
	Reader
	Writer
}
