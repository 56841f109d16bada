// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"libris/config"
	deliverycontext "libris/internal/delivery/context"
	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	"libris/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// borrowingService implements the BorrowingUsecase interface. All counter
// mutations and status transitions run inside a single transaction with a row
// lock on the book, so a copy can never be lent twice.
type borrowingService struct {
	txManager      repository.TransactionManager
	borrowRepo     repository.BorrowRepository
	userRepo       repository.UserRepository
	loanPeriodDays int
	logger         *slog.Logger
}

// BorrowingServiceParams holds dependencies for borrowingService, injected by Fx.
type BorrowingServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	BorrowRepo repository.BorrowRepository
	UserRepo   repository.UserRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewBorrowingService is the constructor for borrowingService.
func NewBorrowingService(params BorrowingServiceParams) usecase.BorrowingUsecase {
	return &borrowingService{
		txManager:      params.TxManager,
		borrowRepo:     params.BorrowRepo,
		userRepo:       params.UserRepo,
		loanPeriodDays: params.Config.LoanPeriodDays(),
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *borrowingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BorrowBook creates a loan and takes one copy off the shelf atomically.
func (srv *borrowingService) BorrowBook(ctx context.Context, userID, bookID uuid.UUID) (*entity.BorrowRecord, error) {
	srv.log(ctx).Info("Borrowing book", slog.Any("userID", userID), slog.Any("bookID", bookID))

	var record *entity.BorrowRecord
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()
		borrowRepo := repoFactory.BorrowRepo()

		// Lock the book row so concurrent borrows of the same title serialize.
		book, err := bookRepo.FindByIDForUpdate(ctx, bookID)
		if err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return errors.Wrap(domainerrors.ErrBookNotFound, "borrow failed")
			}

			return errors.Wrap(err, "failed to lock book")
		}

		// One active loan per member per title, overdue included.
		if _, err := borrowRepo.FindActiveByUserAndBook(ctx, userID, bookID); err == nil {
			return errors.Wrap(domainerrors.ErrAlreadyBorrowed, "borrow failed")
		} else if !errors.Is(err, repository.ErrBorrowRecordNotFound) {
			return errors.Wrap(err, "failed to check active loans")
		}

		if err := bookRepo.DecrementAvailable(ctx, bookID); err != nil {
			if errors.Is(err, repository.ErrNoCopiesAvailable) {
				return errors.Wrap(domainerrors.ErrBookNotAvailable, "borrow failed")
			}

			return errors.Wrap(err, "failed to take copy off the shelf")
		}

		now := time.Now()
		record = &entity.BorrowRecord{
			UserID:     userID,
			BookID:     bookID,
			BorrowDate: now,
			DueDate:    now.AddDate(0, 0, srv.loanPeriodDays),
			Status:     entity.StatusBorrowed,
			Book:       book,
		}

		if err := borrowRepo.Create(ctx, record); err != nil {
			return errors.Wrap(err, "failed to create borrow record")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Borrow failed", slog.Any("userID", userID), slog.Any("bookID", bookID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Book borrowed", slog.Any("recordID", record.ID), slog.Time("dueDate", record.DueDate))

	return record, nil
}

// ReturnBook completes the member's own loan and puts the copy back on the
// shelf atomically. The increment is capped at total copies by the storage.
func (srv *borrowingService) ReturnBook(ctx context.Context, userID, borrowID uuid.UUID) (*entity.BorrowRecord, error) {
	srv.log(ctx).Info("Returning book", slog.Any("userID", userID), slog.Any("borrowID", borrowID))

	var record *entity.BorrowRecord
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()
		borrowRepo := repoFactory.BorrowRepo()

		var err error
		record, err = borrowRepo.FindByID(ctx, borrowID)
		if err != nil {
			if errors.Is(err, repository.ErrBorrowRecordNotFound) {
				return errors.Wrap(domainerrors.ErrBorrowRecordNotFound, "return failed")
			}

			return errors.Wrap(err, "failed to load borrow record")
		}

		// Members may only return their own loans.
		if record.UserID != userID {
			return errors.Wrap(domainerrors.ErrNotRecordOwner, "return failed")
		}

		if record.Status == entity.StatusReturned {
			return errors.Wrap(domainerrors.ErrAlreadyReturned, "return failed")
		}

		// Lock the book row before touching the counter.
		if _, err := bookRepo.FindByIDForUpdate(ctx, record.BookID); err != nil {
			return errors.Wrap(err, "failed to lock book")
		}

		record.MarkReturned(time.Now())
		if err := borrowRepo.Update(ctx, record); err != nil {
			return errors.Wrap(err, "failed to update borrow record")
		}

		if err := bookRepo.IncrementAvailable(ctx, record.BookID); err != nil {
			return errors.Wrap(err, "failed to put copy back on the shelf")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Return failed", slog.Any("userID", userID), slog.Any("borrowID", borrowID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Book returned", slog.Any("recordID", record.ID))

	return record, nil
}

// Dashboard returns the member's borrow history after lazily transitioning
// past-due loans to overdue. The transition is a single set-based UPDATE and
// is idempotent, so concurrent dashboard loads are harmless.
func (srv *borrowingService) Dashboard(ctx context.Context, userID uuid.UUID) (*usecase.DashboardOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to load member")
		}

		return nil, errors.Wrap(err, "failed to load member")
	}

	now := time.Now()

	var records []*entity.BorrowRecord
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		borrowRepo := repoFactory.BorrowRepo()

		changed, err := borrowRepo.MarkOverdueByUser(ctx, userID, now)
		if err != nil {
			return errors.Wrap(err, "failed to refresh overdue loans")
		}
		if changed > 0 {
			srv.log(ctx).Info("Marked loans overdue", slog.Any("userID", userID), slog.Int64("count", changed))
		}

		records, err = borrowRepo.FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list borrow records")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	output := &usecase.DashboardOutput{
		User:    user,
		Records: records,
	}
	for _, record := range records {
		switch record.Status {
		case entity.StatusBorrowed:
			output.ActiveLoans++
		case entity.StatusOverdue:
			output.ActiveLoans++
			output.OverdueLoans++
		}
	}

	return output, nil
}
