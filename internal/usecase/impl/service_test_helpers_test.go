package impl

import (
	"io"
	"log/slog"

	"libris/config"
	"libris/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Borrowing: &config.BorrowingConfig{
			LoanPeriodDays: 14,
		},
	}
}

func refreshClaims(userID uuid.UUID) *service.Claims {
	return &service.Claims{
		UserID: userID,
		Type:   "refresh",
	}
}
