// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "libris/internal/delivery/context"
	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	"libris/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	bookRepo   repository.BookRepository
	borrowRepo repository.BorrowRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	BookRepo   repository.BookRepository
	BorrowRepo repository.BorrowRepository
	UserRepo   repository.UserRepository
	Logger     *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		bookRepo:   params.BookRepo,
		borrowRepo: params.BorrowRepo,
		userRepo:   params.UserRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddBook adds a new title to the catalog.
func (srv *catalogService) AddBook(ctx context.Context, input *usecase.AddBookInput) (*entity.Book, error) {
	srv.log(ctx).Info("Adding book to catalog", slog.String("isbn", input.ISBN))

	if !input.Category.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown category")
	}
	if input.TotalCopies < 1 {
		return nil, errors.Wrap(domainerrors.ErrInvalidCopyCount, "total copies must be at least 1")
	}
	if input.AvailableCopies < 0 || input.AvailableCopies > input.TotalCopies {
		return nil, errors.Wrap(domainerrors.ErrInvalidCopyCount, "available copies must be between 0 and total copies")
	}

	book := &entity.Book{
		Title:           input.Title,
		Author:          input.Author,
		ISBN:            input.ISBN,
		Description:     input.Description,
		Category:        input.Category,
		TotalCopies:     input.TotalCopies,
		AvailableCopies: input.AvailableCopies,
		PublicationDate: input.PublicationDate,
		Pages:           input.Pages,
	}

	if err := srv.bookRepo.Create(ctx, book); err != nil {
		if errors.Is(err, repository.ErrDuplicateISBN) {
			return nil, errors.Wrap(domainerrors.ErrISBNTaken, "failed to add book")
		}
		srv.log(ctx).Error("Failed to add book", slog.String("isbn", input.ISBN), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to add book")
	}

	srv.log(ctx).Debug("Book added", slog.Any("bookID", book.ID))

	return book, nil
}

// ListBooks returns catalog titles matching the filter, newest first.
func (srv *catalogService) ListBooks(ctx context.Context, input *usecase.ListBooksInput) ([]*entity.Book, error) {
	filter := repository.BookFilter{}
	if input != nil {
		filter.Search = input.Search
		filter.Category = input.Category
	}

	books, err := srv.bookRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	return books, nil
}

// GetBook returns a single title by ID.
func (srv *catalogService) GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	book, err := srv.bookRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBookNotFound, "failed to get book")
		}

		return nil, errors.Wrap(err, "failed to get book")
	}

	return book, nil
}

// HomeStats returns the landing page counters.
func (srv *catalogService) HomeStats(ctx context.Context) (*usecase.HomeStats, error) {
	catalogStats, err := srv.bookRepo.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate catalog stats")
	}

	members, err := srv.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count members")
	}

	activeLoans, err := srv.countActiveLoans(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.HomeStats{
		TotalBooks:     catalogStats.TotalBooks,
		AvailableBooks: catalogStats.AvailableBooks,
		TotalMembers:   members,
		ActiveLoans:    activeLoans,
	}, nil
}

// LibrarianStats returns the librarian dashboard counters.
func (srv *catalogService) LibrarianStats(ctx context.Context) (*usecase.LibrarianStats, error) {
	catalogStats, err := srv.bookRepo.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate catalog stats")
	}

	members, err := srv.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count members")
	}

	activeLoans, err := srv.countActiveLoans(ctx)
	if err != nil {
		return nil, err
	}

	// Count overdue by due date so loans the lazy transition has not touched
	// yet are included.
	overdue, err := srv.borrowRepo.CountOverdue(ctx, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to count overdue loans")
	}

	return &usecase.LibrarianStats{
		TotalBooks:     catalogStats.TotalBooks,
		TotalCopies:    catalogStats.TotalCopies,
		AvailableBooks: catalogStats.AvailableBooks,
		ActiveLoans:    activeLoans,
		OverdueLoans:   overdue,
		TotalMembers:   members,
	}, nil
}

// countActiveLoans counts unreturned loans. Active records carry either the
// borrowed or the overdue status, never returned.
func (srv *catalogService) countActiveLoans(ctx context.Context) (int64, error) {
	borrowed, err := srv.borrowRepo.CountByStatus(ctx, entity.StatusBorrowed)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count borrowed loans")
	}

	overdue, err := srv.borrowRepo.CountByStatus(ctx, entity.StatusOverdue)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count overdue loans")
	}

	return borrowed + overdue, nil
}
