package auth

import (
	"strings"
	"testing"

	"libris/config"
	domainerrors "libris/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	// Test valid strong password
	strongPassword := "StrongPhrase123"
	hash, err := hasher.Hash(strongPassword)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, strongPassword, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(strongPassword, hash))
}

func TestBcryptHasher_HashWithWeakPassword(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	// Weak passwords that should fail validation under the default policy
	weakPasswords := []string{
		"123",          // Too short
		"Password123",  // Forbidden word
		"UPPERCASE123", // No lowercase
		"lowercase123", // No uppercase
		"NoNumbersHere", // No digits
	}

	for _, weakPassword := range weakPasswords {
		_, err := hasher.Hash(weakPassword)
		assert.Error(t, err, "Expected error for weak password: %s", weakPassword)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	}
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})
	password := "StrongPhrase123"

	// Generate hash
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPhrase123", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	// Valid under the default policy
	validPasswords := []string{
		"StrongPhrase123",
		"MySecurePass1",
		"ComplexSecret9",
		"ValidPhrase2026",
	}

	for _, password := range validPasswords {
		err := hasher.ValidatePasswordStrength(password)
		assert.NoError(t, err, "Expected no error for valid password: %s", password)
	}

	// Invalid passwords with specific error cases
	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"123", "too short"},
		{"UPPERCASE123", "lowercase letter"},
		{"lowercase123", "uppercase letter"},
		{"NoNumbersHere", "digit"},
		{"MyPassword123", "forbidden word"},
		{"Qwerty123abc", "forbidden word"},
		{strings.Repeat("Aa1", 30), "too long"},
	}

	for _, tc := range testCases {
		err := hasher.ValidatePasswordStrength(tc.password)
		assert.Error(t, err, "Expected error for password: %s", tc.password)
		assert.Contains(t, err.Error(), tc.expectedErr, "Error message should contain: %s", tc.expectedErr)
	}
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: customCost},
	})

	password := "StrongPhrase123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_WithCustomPolicy(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:      12,
			RequireSpecial: true,
		},
	})

	// Meets the default policy but not the custom one
	err := hasher.ValidatePasswordStrength("Shorter12")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "too short")

	err = hasher.ValidatePasswordStrength("LongEnoughBut12")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "special character")

	err = hasher.ValidatePasswordStrength("LongEnough#And12")
	assert.NoError(t, err)
}

func TestBcryptHasher_EdgeCases(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	// Empty password
	err := hasher.ValidatePasswordStrength("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "too short")

	// Unicode characters are fine as long as the policy is met
	unicodePassword := "Pässphräse123"
	err = hasher.ValidatePasswordStrength(unicodePassword)
	assert.NoError(t, err)

	// Only special characters fails the letter and digit requirements
	specialOnlyPassword := "!@#$%^&*()"
	err = hasher.ValidatePasswordStrength(specialOnlyPassword)
	assert.Error(t, err)
}
