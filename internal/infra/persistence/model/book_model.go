package model

import (
	"time"

	"github.com/google/uuid"
)

// BookModel mirrors the 'books' table. AvailableCopies is mutated only through
// guarded UPDATE statements so it can never drift outside [0, total_copies].
type BookModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title           string    `gorm:"type:varchar(255);not null;index"`
	Author          string    `gorm:"type:varchar(255);not null;index"`
	ISBN            string    `gorm:"type:varchar(13);unique;not null"`
	Description     string    `gorm:"type:text"`
	Category        string    `gorm:"type:varchar(32);not null;index"`
	TotalCopies     int       `gorm:"not null"`
	AvailableCopies int       `gorm:"not null"`
	PublicationDate time.Time `gorm:"type:date;not null"`
	Pages           *int
	CreatedAt       time.Time `gorm:"index:idx_books_created_at,sort:desc"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}
