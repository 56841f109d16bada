package impl

import (
	"context"
	"testing"
	"time"

	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	mockRepo "libris/internal/mocks/repository"
	"libris/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// borrowingServiceFixtures holds all test dependencies for borrowing service tests.
type borrowingServiceFixtures struct {
	service    usecase.BorrowingUsecase
	txManager  *mockRepo.MockTransactionManager
	borrowRepo *mockRepo.MockBorrowRepository
	userRepo   *mockRepo.MockUserRepository
}

func createTestBorrowingService(t *testing.T) borrowingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	borrowRepo := mockRepo.NewMockBorrowRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewBorrowingService(BorrowingServiceParams{
		TxManager:  txManager,
		BorrowRepo: borrowRepo,
		UserRepo:   userRepo,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return borrowingServiceFixtures{
		service:    service,
		txManager:  txManager,
		borrowRepo: borrowRepo,
		userRepo:   userRepo,
	}
}

func TestBorrowingService_BorrowBook_Success(t *testing.T) {
	fx := createTestBorrowingService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookID := uuid.New()
	book := &entity.Book{
		ID:              bookID,
		Title:           "The Go Programming Language",
		TotalCopies:     3,
		AvailableCopies: 2,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookRepo := mockRepo.NewMockBookRepository(t)
			mockBorrowRepo := mockRepo.NewMockBorrowRepository(t)

			mockFactory.EXPECT().BookRepo().Return(mockBookRepo)
			mockFactory.EXPECT().BorrowRepo().Return(mockBorrowRepo)

			mockBookRepo.EXPECT().
				FindByIDForUpdate(ctx, bookID).
				Return(book, nil)
			mockBorrowRepo.EXPECT().
				FindActiveByUserAndBook(ctx, userID, bookID).
				Return(nil, repository.ErrBorrowRecordNotFound)
			mockBookRepo.EXPECT().
				DecrementAvailable(ctx, bookID).
				Return(nil)

			mockBorrowRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.BorrowRecord")).
				Run(func(ctx context.Context, record *entity.BorrowRecord) {
					record.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	record, err := fx.service.BorrowBook(ctx, userID, bookID)

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, userID, record.UserID)
	assert.Equal(t, bookID, record.BookID)
	assert.Equal(t, entity.StatusBorrowed, record.Status)
	assert.Equal(t, record.BorrowDate.AddDate(0, 0, 14), record.DueDate)
	assert.Nil(t, record.ReturnDate)
	assert.Equal(t, book, record.Book)
}

func TestBorrowingService_BorrowBook_UnknownBook(t *testing.T) {
	fx := createTestBorrowingService(t)

	ctx := context.Background()
	bookID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookRepo := mockRepo.NewMockBookRepository(t)
			mockBorrowRepo := mockRepo.NewMockBorrowRepository(t)

			mockFactory.EXPECT().BookRepo().Return(mockBookRepo)
			mockFactory.EXPECT().BorrowRepo().Return(mockBorrowRepo)

			mockBookRepo.EXPECT().
				FindByIDForUpdate(ctx, bookID).
				Return(nil, repository.ErrBookNotFound)

			return fn(mockFactory)
		})

	record, err := fx.service.BorrowBook(ctx, uuid.New(), bookID)

	require.Error(t, err)
	assert.Nil(t, record)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

func TestBorrowingService_BorrowBook_AlreadyBorrowed(t *testing.T) {
	fx := createTestBorrowingService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookID := uuid.New()
	activeLoan := &entity.BorrowRecord{
		ID:     uuid.New(),
		UserID: userID,
		BookID: bookID,
		Status: entity.StatusBorrowed,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookRepo := mockRepo.NewMockBookRepository(t)
			mockBorrowRepo := mockRepo.NewMockBorrowRepository(t)

			mockFactory.EXPECT().BookRepo().Return(mockBookRepo)
			mockFactory.EXPECT().BorrowRepo().Return(mockBorrowRepo)

			mockBookRepo.EXPECT().
				FindByIDForUpdate(ctx, bookID).
				Return(&entity.Book{ID: bookID, AvailableCopies: 1, TotalCopies: 1}, nil)
			mockBorrowRepo.EXPECT().
				FindActiveByUserAndBook(ctx, userID, bookID).
				Return(activeLoan, nil)

			// DecrementAvailable and Create must not be reached.
			return fn(mockFactory)
		})

	record, err := fx.service.BorrowBook(ctx, userID, bookID)

	require.Error(t, err)
	assert.Nil(t, record)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyBorrowed))
}

func TestBorrowingService_BorrowBook_NoCopiesAvailable(t *testing.T) {
	fx := createTestBorrowingService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookRepo := mockRepo.NewMockBookRepository(t)
			mockBorrowRepo := mockRepo.NewMockBorrowRepository(t)

			mockFactory.EXPECT().BookRepo().Return(mockBookRepo)
			mockFactory.EXPECT().BorrowRepo().Return(mockBorrowRepo)

			mockBookRepo.EXPECT().
				FindByIDForUpdate(ctx, bookID).
				Return(&entity.Book{ID: bookID, AvailableCopies: 0, TotalCopies: 2}, nil)
			mockBorrowRepo.EXPECT().
				FindActiveByUserAndBook(ctx, userID, bookID).
				Return(nil, repository.ErrBorrowRecordNotFound)
			mockBookRepo.EXPECT().
				DecrementAvailable(ctx, bookID).
				Return(repository.ErrNoCopiesAvailable)

			// Create must not be reached, the shelf stays untouched.
			return fn(mockFactory)
		})

	record, err := fx.service.BorrowBook(ctx, userID, bookID)

	require.Error(t, err)
	assert.Nil(t, record)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotAvailable))
}

func TestBorrowingService_ReturnBook_Success(t *testing.T) {
	fx := createTestBorrowingService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookID := uuid.New()
	borrowID := uuid.New()
	loan := &entity.BorrowRecord{
		ID:         borrowID,
		UserID:     userID,
		BookID:     bookID,
		BorrowDate: time.Now().AddDate(0, 0, -7),
		DueDate:    time.Now().AddDate(0, 0, 7),
		Status:     entity.StatusBorrowed,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookRepo := mockRepo.NewMockBookRepository(t)
			mockBorrowRepo := mockRepo.NewMockBorrowRepository(t)

			mockFactory.EXPECT().BookRepo().Return(mockBookRepo)
			mockFactory.EXPECT().BorrowRepo().Return(mockBorrowRepo)

			mockBorrowRepo.EXPECT().
				FindByID(ctx, borrowID).
				Return(loan, nil)
			mockBookRepo.EXPECT().
				FindByIDForUpdate(ctx, bookID).
				Return(&entity.Book{ID: bookID, AvailableCopies: 0, TotalCopies: 1}, nil)

			mockBorrowRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.BorrowRecord")).
				Run(func(ctx context.Context, record *entity.BorrowRecord) {
					assert.Equal(t, entity.StatusReturned, record.Status)
					assert.NotNil(t, record.ReturnDate)
				}).
				Return(nil)
			mockBookRepo.EXPECT().
				IncrementAvailable(ctx, bookID).
				Return(nil)

			return fn(mockFactory)
		})

	record, err := fx.service.ReturnBook(ctx, userID, borrowID)

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, entity.StatusReturned, record.Status)
	require.NotNil(t, record.ReturnDate)
	assert.False(t, record.IsActive())
}

func TestBorrowingService_ReturnBook_UnknownRecord(t *testing.T) {
	fx := createTestBorrowingService(t)

	ctx := context.Background()
	borrowID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookRepo := mockRepo.NewMockBookRepository(t)
			mockBorrowRepo := mockRepo.NewMockBorrowRepository(t)

			mockFactory.EXPECT().BookRepo().Return(mockBookRepo)
			mockFactory.EXPECT().BorrowRepo().Return(mockBorrowRepo)

			mockBorrowRepo.EXPECT().
				FindByID(ctx, borrowID).
				Return(nil, repository.ErrBorrowRecordNotFound)

			return fn(mockFactory)
		})

	record, err := fx.service.ReturnBook(ctx, uuid.New(), borrowID)

	require.Error(t, err)
	assert.Nil(t, record)
	assert.True(t, errors.Is(err, domainerrors.ErrBorrowRecordNotFound))
}

func TestBorrowingService_ReturnBook_NotRecordOwner(t *testing.T) {
	fx := createTestBorrowingService(t)

	ctx := context.Background()
	borrowID := uuid.New()
	loan := &entity.BorrowRecord{
		ID:     borrowID,
		UserID: uuid.New(),
		BookID: uuid.New(),
		Status: entity.StatusBorrowed,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookRepo := mockRepo.NewMockBookRepository(t)
			mockBorrowRepo := mockRepo.NewMockBorrowRepository(t)

			mockFactory.EXPECT().BookRepo().Return(mockBookRepo)
			mockFactory.EXPECT().BorrowRepo().Return(mockBorrowRepo)

			mockBorrowRepo.EXPECT().
				FindByID(ctx, borrowID).
				Return(loan, nil)

			return fn(mockFactory)
		})

	record, err := fx.service.ReturnBook(ctx, uuid.New(), borrowID)

	require.Error(t, err)
	assert.Nil(t, record)
	assert.True(t, errors.Is(err, domainerrors.ErrNotRecordOwner))
}

func TestBorrowingService_ReturnBook_AlreadyReturned(t *testing.T) {
	fx := createTestBorrowingService(t)

	ctx := context.Background()
	userID := uuid.New()
	borrowID := uuid.New()
	returnDate := time.Now().AddDate(0, 0, -1)
	loan := &entity.BorrowRecord{
		ID:         borrowID,
		UserID:     userID,
		BookID:     uuid.New(),
		Status:     entity.StatusReturned,
		ReturnDate: &returnDate,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookRepo := mockRepo.NewMockBookRepository(t)
			mockBorrowRepo := mockRepo.NewMockBorrowRepository(t)

			mockFactory.EXPECT().BookRepo().Return(mockBookRepo)
			mockFactory.EXPECT().BorrowRepo().Return(mockBorrowRepo)

			mockBorrowRepo.EXPECT().
				FindByID(ctx, borrowID).
				Return(loan, nil)

			// IncrementAvailable must not be reached, the copy is already back.
			return fn(mockFactory)
		})

	record, err := fx.service.ReturnBook(ctx, userID, borrowID)

	require.Error(t, err)
	assert.Nil(t, record)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyReturned))
}

func TestBorrowingService_Dashboard_Success(t *testing.T) {
	fx := createTestBorrowingService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "reader42"}
	returnDate := time.Now().AddDate(0, 0, -30)
	records := []*entity.BorrowRecord{
		{ID: uuid.New(), UserID: userID, Status: entity.StatusOverdue},
		{ID: uuid.New(), UserID: userID, Status: entity.StatusBorrowed},
		{ID: uuid.New(), UserID: userID, Status: entity.StatusReturned, ReturnDate: &returnDate},
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBorrowRepo := mockRepo.NewMockBorrowRepository(t)

			mockFactory.EXPECT().BorrowRepo().Return(mockBorrowRepo)

			mockBorrowRepo.EXPECT().
				MarkOverdueByUser(ctx, userID, mock.AnythingOfType("time.Time")).
				Return(1, nil)
			mockBorrowRepo.EXPECT().
				FindByUser(ctx, userID).
				Return(records, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Dashboard(ctx, userID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, user, output.User)
	assert.Len(t, output.Records, 3)
	assert.Equal(t, 2, output.ActiveLoans)
	assert.Equal(t, 1, output.OverdueLoans)
}

func TestBorrowingService_Dashboard_UnknownUser(t *testing.T) {
	fx := createTestBorrowingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Dashboard(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
