package model

import (
	"time"

	"github.com/google/uuid"
)

// BorrowRecordModel mirrors the 'borrow_records' table. A NULL return_date marks
// an active loan (status borrowed or overdue).
type BorrowRecordModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	BookID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	BorrowDate time.Time  `gorm:"not null"`
	DueDate    time.Time  `gorm:"not null"`
	ReturnDate *time.Time
	Status     string     `gorm:"type:varchar(16);not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Book *BookModel `gorm:"foreignKey:BookID"`
}

// TableName explicitly sets the table name for GORM.
func (BorrowRecordModel) TableName() string {
	return "borrow_records"
}
