package books

import (
	"github.com/google/uuid"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Lookup reads the backing map directly, bypassing Get.
func (r *MemoryRepository) Lookup(id uuid.UUID) (entities.Book, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	book, ok := r.books[id]
	return book, ok
}

// Put writes book into the backing map under its existing id, bypassing Save.
func (r *MemoryRepository) Put(book entities.Book) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.books[book.ID] = book
}
