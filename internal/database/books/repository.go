// Package books implements the domain books.Store on top of gorm.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	err := repo.Save(ctx, book)
//	book, err := repo.Get(ctx, id)
package books

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/mrlokans/bookshelf/internal/books"
)

// Store handles book rows in the relational database.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new gorm-backed book store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// NewRepository wraps a gorm store in the domain repository contract.
func NewRepository(db *gorm.DB, opts ...domain.StoreOption) *domain.StoreRepository {
	return domain.NewStoreRepository(NewStore(db), opts...)
}

// Insert creates a new row. The id must already be set on the record.
func (s *Store) Insert(ctx context.Context, record domain.Record) error {
	model := modelFromRecord(record)
	return s.db.WithContext(ctx).Create(&model).Error
}

// FindByID loads a row by primary key. A missing row is reported as
// found == false, any other gorm error is returned unchanged.
func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (domain.Record, bool, error) {
	var model BookModel
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Record{}, false, nil
	}
	if err != nil {
		return domain.Record{}, false, err
	}
	return model.toRecord(), true, nil
}
