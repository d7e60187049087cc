package books

import (
	"time"

	"github.com/google/uuid"

	domain "github.com/mrlokans/bookshelf/internal/books"
)

// BookModel mirrors the books table.
type BookModel struct {
	ID             uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	Author         string    `gorm:"type:text;not null"`
	Title          string    `gorm:"type:text;not null"`
	PublishingDate time.Time `gorm:"column:publishing_date"`
}

func (BookModel) TableName() string {
	return "books"
}

func modelFromRecord(r domain.Record) BookModel {
	return BookModel{
		ID:             r.ID,
		Author:         r.Author,
		Title:          r.Title,
		PublishingDate: r.PublishingDate,
	}
}

func (m BookModel) toRecord() domain.Record {
	return domain.Record{
		ID:             m.ID,
		Author:         m.Author,
		Title:          m.Title,
		PublishingDate: m.PublishingDate,
	}
}
