// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	"libris/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// borrowRepository implements the repository.BorrowRepository interface.
type borrowRepository struct {
	db *gorm.DB
}

// NewBorrowRepository is the constructor for borrowRepository.
func NewBorrowRepository(db *gorm.DB) repository.BorrowRepository {
	return &borrowRepository{
		db: db,
	}
}

// Create persists a new borrow record.
func (repo *borrowRepository) Create(ctx context.Context, record *entity.BorrowRecord) error {
	recordM := fromBorrowRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrActiveBorrowExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBookNotFound.WrapMessage("invalid book or user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required borrow information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create borrow record")
	}

	// Update the entity with generated values
	record.ID = recordM.ID

	return nil
}

// FindByID retrieves a single borrow record by its unique ID.
func (repo *borrowRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BorrowRecord, error) {
	var recordM model.BorrowRecordModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBorrowRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find borrow record by id")
	}

	return toBorrowRecordDomain(&recordM), nil
}

// FindActiveByUserAndBook retrieves the member's unreturned loan for a book,
// whether borrowed or overdue.
func (repo *borrowRepository) FindActiveByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (*entity.BorrowRecord, error) {
	var recordM model.BorrowRecordModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ? AND return_date IS NULL", userID, bookID).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBorrowRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find active borrow record")
	}

	return toBorrowRecordDomain(&recordM), nil
}

// FindByUser retrieves all of a member's borrow records, newest first, with
// the borrowed book preloaded for dashboard rendering.
func (repo *borrowRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BorrowRecord, error) {
	var recordModels []*model.BorrowRecordModel

	if err := repo.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", userID).
		Order("borrow_date DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list borrow records for user")
	}

	records := make([]*entity.BorrowRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toBorrowRecordDomain(recordM))
	}

	return records, nil
}

// Update persists status and return date changes of an existing record.
func (repo *borrowRepository) Update(ctx context.Context, record *entity.BorrowRecord) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BorrowRecordModel{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"status":      string(record.Status),
			"return_date": record.ReturnDate,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update borrow record")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBorrowRecordNotFound
	}

	return nil
}

// MarkOverdueByUser transitions the member's past-due borrowed records to
// overdue in a single set-based statement. Records already overdue or
// returned are untouched, so repeated calls are harmless.
func (repo *borrowRepository) MarkOverdueByUser(ctx context.Context, userID uuid.UUID, asOf time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BorrowRecordModel{}).
		Where("user_id = ? AND status = ? AND return_date IS NULL AND due_date < ?",
			userID, string(entity.StatusBorrowed), asOf).
		UpdateColumn("status", string(entity.StatusOverdue))
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark overdue borrow records")
	}

	return result.RowsAffected, nil
}

// CountByStatus returns the number of borrow records in the given state.
func (repo *borrowRepository) CountByStatus(ctx context.Context, status entity.BorrowStatus) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BorrowRecordModel{}).
		Where("status = ?", string(status)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count borrow records by status")
	}

	return count, nil
}

// CountOverdue returns the number of unreturned records past due as of the
// given date. It counts by due date rather than status so loans the lazy
// overdue transition has not touched yet are still included.
func (repo *borrowRepository) CountOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BorrowRecordModel{}).
		Where("return_date IS NULL AND due_date < ?", asOf).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count overdue borrow records")
	}

	return count, nil
}

// --- Mapper Functions ---

// toBorrowRecordDomain converts a GORM BorrowRecordModel to a domain BorrowRecord entity.
func toBorrowRecordDomain(data *model.BorrowRecordModel) *entity.BorrowRecord {
	if data == nil {
		return nil
	}

	return &entity.BorrowRecord{
		ID:         data.ID,
		UserID:     data.UserID,
		BookID:     data.BookID,
		BorrowDate: data.BorrowDate,
		DueDate:    data.DueDate,
		ReturnDate: data.ReturnDate,
		Status:     entity.BorrowStatus(data.Status),
		Book:       toBookDomain(data.Book),
	}
}

// fromBorrowRecordDomain converts a domain BorrowRecord entity to a GORM BorrowRecordModel.
func fromBorrowRecordDomain(data *entity.BorrowRecord) *model.BorrowRecordModel {
	if data == nil {
		return nil
	}

	return &model.BorrowRecordModel{
		ID:         data.ID,
		UserID:     data.UserID,
		BookID:     data.BookID,
		BorrowDate: data.BorrowDate,
		DueDate:    data.DueDate,
		ReturnDate: data.ReturnDate,
		Status:     string(data.Status),
	}
}
