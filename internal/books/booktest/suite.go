// Package booktest provides the conformance suite every books.Repository
// implementation must pass unmodified.
//
// A backend plugs in through a Harness:
//
//	booktest.Run(t, booktest.Harness{
//		NewRepository: func(t *testing.T) books.Repository { ... },
//		FetchBook:     func(t *testing.T, id uuid.UUID) (*entities.Book, bool) { ... },
//		InsertBook:    func(t *testing.T, book *entities.Book) { ... },
//	})
//
// FetchBook and InsertBook must reach the backing storage directly, without
// going through the repository's own Get and Save.
package booktest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/books"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// Harness supplies the backend-specific hooks used by the suite.
type Harness struct {
	// NewRepository returns a fresh, empty repository. The remaining hooks
	// operate on the storage behind the most recently returned repository.
	NewRepository func(t *testing.T) books.Repository
	FetchBook     func(t *testing.T, id uuid.UUID) (*entities.Book, bool)
	InsertBook    func(t *testing.T, book *entities.Book)
}

// LordOfTheRings returns a new unsaved book used throughout the suite.
func LordOfTheRings() *entities.Book {
	return &entities.Book{
		Title:          "Lord of the Rings",
		Author:         "J.R.R. Tolkien",
		PublishingDate: time.Date(1954, 7, 29, 0, 0, 0, 0, time.UTC),
	}
}

// Run executes every conformance scenario as a subtest.
func Run(t *testing.T, h Harness) {
	t.Helper()
	require.NotNil(t, h.NewRepository, "Harness.NewRepository is required")
	require.NotNil(t, h.FetchBook, "Harness.FetchBook is required")
	require.NotNil(t, h.InsertBook, "Harness.InsertBook is required")

	t.Run("Save assigns id and persists book", func(t *testing.T) {
		testSave(t, h)
	})
	t.Run("Get returns stored book", func(t *testing.T) {
		testGet(t, h)
	})
	t.Run("Save then Get round-trips", func(t *testing.T) {
		testRoundTrip(t, h)
	})
	t.Run("Save then Get round-trips sub-microsecond dates", func(t *testing.T) {
		testRoundTripPrecision(t, h)
	})
	t.Run("Save assigns unique ids", func(t *testing.T) {
		testUniqueIDs(t, h)
	})
	t.Run("Get unknown id returns ErrNotFound", func(t *testing.T) {
		testGetNonExisting(t, h)
	})
	t.Run("Save twice creates two records", func(t *testing.T) {
		testSaveTwice(t, h)
	})
	t.Run("Save rejects invalid book", func(t *testing.T) {
		testSaveInvalid(t, h)
	})
}

// AssertBookEqual compares books field by field. Publishing dates are
// compared as instants since stores may return a different location.
func AssertBookEqual(t *testing.T, want, got *entities.Book) {
	t.Helper()
	require.NotNil(t, got)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.Author, got.Author)
	assert.True(t, want.PublishingDate.Equal(got.PublishingDate),
		"publishing date: want %s, got %s", want.PublishingDate, got.PublishingDate)
}

func testSave(t *testing.T, h Harness) {
	repo := h.NewRepository(t)
	book := LordOfTheRings()

	err := repo.Save(context.Background(), book)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, book.ID)
	assert.Equal(t, uuid.Version(4), book.ID.Version())

	saved, ok := h.FetchBook(t, book.ID)
	require.True(t, ok, "saved book is not present in storage")
	AssertBookEqual(t, book, saved)
}

func testGet(t *testing.T, h Harness) {
	repo := h.NewRepository(t)
	book := LordOfTheRings()
	book.ID = uuid.New()
	h.InsertBook(t, book)

	got, err := repo.Get(context.Background(), book.ID)
	require.NoError(t, err)
	AssertBookEqual(t, book, got)
}

func testRoundTrip(t *testing.T, h Harness) {
	repo := h.NewRepository(t)
	ctx := context.Background()

	fixtures := []*entities.Book{
		LordOfTheRings(),
		{Title: "The Left Hand of Darkness", Author: "Ursula K. Le Guin", PublishingDate: time.Date(1969, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Title: "Solaris", Author: "Stanisław Lem", PublishingDate: time.Date(1961, 6, 15, 12, 30, 0, 0, time.UTC)},
	}
	for _, book := range fixtures {
		require.NoError(t, repo.Save(ctx, book))
	}

	for _, book := range fixtures {
		got, err := repo.Get(ctx, book.ID)
		require.NoError(t, err)
		AssertBookEqual(t, book, got)
	}
}

func testRoundTripPrecision(t *testing.T, h Harness) {
	repo := h.NewRepository(t)
	ctx := context.Background()

	zone := time.FixedZone("UTC+5", 5*60*60)
	published := time.Date(1954, 7, 29, 10, 0, 0, 123456789, zone)
	book := LordOfTheRings()
	book.PublishingDate = published

	require.NoError(t, repo.Save(ctx, book))

	want := published.Truncate(entities.PublishingDatePrecision)
	assert.True(t, want.Equal(book.PublishingDate),
		"saved book date: want %s, got %s", want, book.PublishingDate)

	got, err := repo.Get(ctx, book.ID)
	require.NoError(t, err)
	AssertBookEqual(t, book, got)

	stored, ok := h.FetchBook(t, book.ID)
	require.True(t, ok)
	AssertBookEqual(t, book, stored)
}

func testUniqueIDs(t *testing.T, h Harness) {
	repo := h.NewRepository(t)
	ctx := context.Background()

	const count = 50
	seen := make(map[uuid.UUID]struct{}, count)
	for i := 0; i < count; i++ {
		book := LordOfTheRings()
		require.NoError(t, repo.Save(ctx, book))
		_, dup := seen[book.ID]
		require.False(t, dup, "duplicate id %s", book.ID)
		seen[book.ID] = struct{}{}
	}
}

func testGetNonExisting(t *testing.T, h Harness) {
	repo := h.NewRepository(t)
	stored := LordOfTheRings()
	stored.ID = uuid.New()
	h.InsertBook(t, stored)

	got, err := repo.Get(context.Background(), uuid.New())
	assert.Nil(t, got)
	require.ErrorIs(t, err, books.ErrNotFound)
	assert.Contains(t, err.Error(), "book not found")
}

func testSaveTwice(t *testing.T, h Harness) {
	repo := h.NewRepository(t)
	ctx := context.Background()
	book := LordOfTheRings()

	require.NoError(t, repo.Save(ctx, book))
	firstID := book.ID
	require.NoError(t, repo.Save(ctx, book))
	secondID := book.ID

	require.NotEqual(t, firstID, secondID)

	first, ok := h.FetchBook(t, firstID)
	require.True(t, ok)
	second, ok := h.FetchBook(t, secondID)
	require.True(t, ok)
	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, firstID, first.ID)
	assert.Equal(t, secondID, second.ID)
}

func testSaveInvalid(t *testing.T, h Harness) {
	repo := h.NewRepository(t)
	book := &entities.Book{Author: "J.R.R. Tolkien"}

	err := repo.Save(context.Background(), book)
	require.ErrorIs(t, err, entities.ErrInvalidBook)
	assert.Equal(t, uuid.Nil, book.ID)
}
