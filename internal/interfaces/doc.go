// Package interfaces documents the core abstractions used throughout the application.
//
// # Repository Contract
//
// Defined in internal/books:
//
//   - Reader: Get(ctx, id) loads a saved book or fails with books.ErrNotFound
//   - Writer: Save(ctx, book) assigns a fresh id and stores the book
//   - Repository: Reader + Writer, what callers should depend on
//
// # Storage Client
//
//   - Store: Insert / FindByID over one storage engine (internal/books/store.go)
//
// StoreRepository turns any Store into a Repository and owns the single
// "record absent" to ErrNotFound translation.
//
// # Adding a New Backend
//
//  1. Create a package implementing books.Store
//
//     type Store struct { client *redis.Client }
//
//     func (s *Store) Insert(ctx context.Context, r books.Record) error { ... }
//     func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (books.Record, bool, error) { ... }
//
//  2. Run the conformance suite against it
//
//     booktest.Run(t, booktest.Harness{...})
//
//  3. Add a compile-time check in checks.go and a case in entrypoint.OpenRepository
package interfaces
