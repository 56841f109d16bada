// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"libris/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new member account.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	PhoneNumber     string
	Address         string
}

// LoginInput defines the data required for a member to log in.
type LoginInput struct {
	Username string
	Password string
}

// RefreshTokenInput carries the raw refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token of the session being ended.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account with its membership profile
// and assigned library card number.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns a fresh access token. The refresh token itself
// is never rotated.
type RefreshTokenOutput struct {
	AccessToken string
}

// LibraryCardOutput returns the member's card number together with its QR
// code rendered as a PNG image.
type LibraryCardOutput struct {
	CardNumber string
	PNG        []byte
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	LibraryCardQR(ctx context.Context, userID uuid.UUID) (*LibraryCardOutput, error)
}
