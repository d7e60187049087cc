package books

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Record is the storage-neutral row shape shared by all Store backends.
type Record struct {
	ID             uuid.UUID
	Author         string
	Title          string
	PublishingDate time.Time
}

// RecordFromEntity converts a domain book into a storage record.
func RecordFromEntity(book *entities.Book) Record {
	return Record{
		ID:             book.ID,
		Author:         book.Author,
		Title:          book.Title,
		PublishingDate: book.PublishingDate,
	}
}

// ToEntity converts a storage record back into a domain book.
func (r Record) ToEntity() *entities.Book {
	return &entities.Book{
		ID:             r.ID,
		Title:          r.Title,
		Author:         r.Author,
		PublishingDate: r.PublishingDate,
	}
}

// Store is the narrow client a storage engine has to provide.
//
// FindByID reports absence with found == false and a nil error. A non-nil
// error always means the store itself failed.
type Store interface {
	Insert(ctx context.Context, record Record) error
	FindByID(ctx context.Context, id uuid.UUID) (record Record, found bool, err error)
}

// StoreRepository adapts a Store to the Repository contract.
type StoreRepository struct {
	store  Store
	logger zerolog.Logger
}

// StoreOption configures a StoreRepository.
type StoreOption func(*StoreRepository)

// WithLogger sets the logger used for debug output.
func WithLogger(logger zerolog.Logger) StoreOption {
	return func(r *StoreRepository) {
		r.logger = logger
	}
}

func NewStoreRepository(store Store, opts ...StoreOption) *StoreRepository {
	r := &StoreRepository{
		store:  store,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Save generates the id locally, inserts the record and only then exposes the
// id and the normalized publishing date on book.
func (r *StoreRepository) Save(ctx context.Context, book *entities.Book) error {
	if err := book.Validate(); err != nil {
		return err
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Errorf("failed to generate book id: %w", err)
	}

	record := RecordFromEntity(book)
	record.ID = id
	record.PublishingDate = book.NormalizedPublishingDate()
	if err := r.store.Insert(ctx, record); err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}

	book.ID = id
	book.PublishingDate = record.PublishingDate
	r.logger.Debug().
		Str("book_id", id.String()).
		Str("title", book.Title).
		Msg("Book saved")
	return nil
}

func (r *StoreRepository) Get(ctx context.Context, id uuid.UUID) (*entities.Book, error) {
	record, found, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get book %s: %w", id, err)
	}
	if !found {
		r.logger.Debug().Str("book_id", id.String()).Msg("Book not found")
		return nil, ErrNotFound
	}
	return record.ToEntity(), nil
}
