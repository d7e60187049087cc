package books

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// MemoryRepository keeps books in a map for the lifetime of the process.
// It is the behavioral baseline for the other implementations and the
// repository used in tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	books map[uuid.UUID]entities.Book
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		books: make(map[uuid.UUID]entities.Book),
	}
}

func (r *MemoryRepository) Save(ctx context.Context, book *entities.Book) error {
	if err := book.Validate(); err != nil {
		return err
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Errorf("failed to generate book id: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	book.ID = id
	book.PublishingDate = book.NormalizedPublishingDate()
	r.books[id] = *book
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, id uuid.UUID) (*entities.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &book, nil
}

// Len returns the number of stored books.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.books)
}
