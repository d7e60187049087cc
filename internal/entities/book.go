package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidBook = errors.New("invalid book")

// PublishingDatePrecision is the finest publishing date resolution every
// backend can store (postgres TIMESTAMPTZ keeps microseconds).
const PublishingDatePrecision = time.Microsecond

// Book is the domain entity persisted by the books repositories.
// A zero ID (uuid.Nil) means the book has not been saved yet.
type Book struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Author         string    `json:"author"`
	PublishingDate time.Time `json:"publishing_date"`
}

func (b *Book) IsPersisted() bool {
	return b.ID != uuid.Nil
}

// NormalizedPublishingDate returns the publishing date truncated to
// PublishingDatePrecision. The location is kept.
func (b *Book) NormalizedPublishingDate() time.Time {
	return b.PublishingDate.Truncate(PublishingDatePrecision)
}

// Validate checks the fields a repository requires before storing the book.
func (b *Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidBook)
	}
	if strings.TrimSpace(b.Author) == "" {
		return fmt.Errorf("%w: author is required", ErrInvalidBook)
	}
	return nil
}
