package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshelf/internal/database/books"
)

func TestNewDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := NewDatabase(dbPath, WithLogLevel(logger.Silent))
	require.NoError(t, err)
	defer db.Close()

	t.Run("creates books table", func(t *testing.T) {
		assert.True(t, db.DB.Migrator().HasTable(&books.BookModel{}))
		assert.True(t, db.DB.Migrator().HasTable("books"))
	})

	t.Run("creates mirrored columns", func(t *testing.T) {
		for _, column := range []string{"id", "author", "title", "publishing_date"} {
			assert.True(t, db.DB.Migrator().HasColumn(&books.BookModel{}, column), "missing column %s", column)
		}
	})
}

func TestNewDatabase_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	first, err := NewDatabase(dbPath, WithLogLevel(logger.Silent))
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewDatabase(dbPath, WithLogLevel(logger.Silent))
	require.NoError(t, err)
	assert.NoError(t, second.Close())
}

func TestNewDatabase_InvalidPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "missing", "dir", "test.db")

	_, err := NewDatabase(dbPath, WithLogLevel(logger.Silent))
	assert.Error(t, err)
}

func TestNewDatabase_MigrateFailure(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "readonly.db")
	// An empty file is a valid empty sqlite database.
	require.NoError(t, os.WriteFile(dbPath, nil, 0o644))

	_, err := NewDatabase("file:"+dbPath+"?mode=ro", WithLogLevel(logger.Silent))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to migrate database")

	// The failed open must not keep the file locked for a writer.
	db, err := NewDatabase(dbPath, WithLogLevel(logger.Silent))
	require.NoError(t, err)
	assert.NoError(t, db.Close())
}
