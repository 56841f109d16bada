// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	"libris/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// bookRepository implements the repository.BookRepository interface.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{
		db: db,
	}
}

// Create persists a new book entity to the catalog.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	if err := repo.db.WithContext(ctx).Create(bookM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateISBN
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required book information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidCopyCount.WrapMessage("copy counters violate catalog constraints")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	// Update the entity with generated values
	book.ID = bookM.ID
	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

// FindByID retrieves a single book by its unique ID.
func (repo *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var bookM model.BookModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by id")
	}

	return toBookDomain(&bookM), nil
}

// FindByIDForUpdate retrieves a book and takes a row lock held until the
// surrounding transaction commits. Concurrent borrow attempts on the same
// title serialize here.
func (repo *bookRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var bookM model.BookModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&bookM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to lock book row")
	}

	return toBookDomain(&bookM), nil
}

// List retrieves books matching the filter, newest first.
func (repo *bookRepository) List(ctx context.Context, filter repository.BookFilter) ([]*entity.Book, error) {
	query := repo.db.WithContext(ctx).Model(&model.BookModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR author ILIKE ? OR isbn ILIKE ?", pattern, pattern, pattern)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}

	var bookModels []*model.BookModel
	if err := query.Order("created_at DESC").Find(&bookModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	books := make([]*entity.Book, 0, len(bookModels))
	for _, bookM := range bookModels {
		books = append(books, toBookDomain(bookM))
	}

	return books, nil
}

// DecrementAvailable atomically takes one copy off the shelf. The guard in the
// WHERE clause keeps the counter from ever going negative, even under
// concurrent borrows.
func (repo *bookRepository) DecrementAvailable(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ? AND available_copies > 0", id).
		UpdateColumn("available_copies", gorm.Expr("available_copies - 1"))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement available copies")
	}

	// Zero rows means the book is missing or out of copies. Distinguish them.
	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.BookModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check book existence")
		}
		if count == 0 {
			return repository.ErrBookNotFound
		}

		return repository.ErrNoCopiesAvailable
	}

	return nil
}

// IncrementAvailable atomically puts one copy back on the shelf, capped at
// total_copies so double returns cannot inflate the counter.
func (repo *bookRepository) IncrementAvailable(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", id).
		UpdateColumn("available_copies", gorm.Expr("LEAST(available_copies + 1, total_copies)"))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment available copies")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// Stats returns aggregate catalog counters for the homepage and the librarian view.
func (repo *bookRepository) Stats(ctx context.Context) (*repository.CatalogStats, error) {
	var stats repository.CatalogStats

	if err := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Select(
			"COUNT(*) AS total_books",
			"COUNT(*) FILTER (WHERE available_copies > 0) AS available_books",
			"COALESCE(SUM(total_copies), 0) AS total_copies",
		).
		Scan(&stats).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate catalog stats")
	}

	return &stats, nil
}

// --- Mapper Functions ---

// toBookDomain converts a GORM BookModel to a domain Book entity.
func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	return &entity.Book{
		ID:              data.ID,
		Title:           data.Title,
		Author:          data.Author,
		ISBN:            data.ISBN,
		Description:     data.Description,
		Category:        entity.Category(data.Category),
		TotalCopies:     data.TotalCopies,
		AvailableCopies: data.AvailableCopies,
		PublicationDate: data.PublicationDate,
		Pages:           data.Pages,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromBookDomain converts a domain Book entity to a GORM BookModel for persistence.
func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	return &model.BookModel{
		ID:              data.ID,
		Title:           data.Title,
		Author:          data.Author,
		ISBN:            data.ISBN,
		Description:     data.Description,
		Category:        string(data.Category),
		TotalCopies:     data.TotalCopies,
		AvailableCopies: data.AvailableCopies,
		PublicationDate: data.PublicationDate,
		Pages:           data.Pages,
	}
}
