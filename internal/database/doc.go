// Package database provides the sqlite-backed data access layer.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup and initial schema creation
//	└── books/           # gorm implementation of books.Store
//
// # Usage
//
//	db, err := database.NewDatabase("./bookshelf.db")
//	defer db.Close()
//
//	repo := books.NewRepository(db.DB)
//	err = repo.Save(ctx, book)
//
// The repository returned by books.NewRepository satisfies the domain
// contract in internal/books and passes the booktest conformance suite.
package database
