package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookshelf/internal/books"
	dbbooks "github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/dynamo"
	"github.com/mrlokans/bookshelf/internal/postgres"
)

// =============================================================================
// Repository Contract
// =============================================================================

var _ books.Repository = (*books.MemoryRepository)(nil)
var _ books.Repository = (*books.StoreRepository)(nil)

// Capability facets can be handed out separately
var _ books.Reader = (*books.MemoryRepository)(nil)
var _ books.Writer = (*books.StoreRepository)(nil)

// =============================================================================
// Storage Backends
// =============================================================================

var _ books.Store = (*dbbooks.Store)(nil)
var _ books.Store = (*postgres.Store)(nil)
var _ books.Store = (*dynamo.Store)(nil)
