// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeLocal is the authentication provider for username/password
// credentials managed by the library itself.
const ProviderTypeLocal = "local"

// Authentication represents a single method of logging in (a credential).
// Today only the "local" provider exists; the shape leaves room for
// federated providers without schema changes.
type Authentication struct {
	ID             uuid.UUID // The unique ID for this specific authentication record.
	UserID         uuid.UUID // Links this authentication method to the User it belongs to.
	Provider       string    // The authentication provider, e.g. "local".
	ProviderUserID string    // The provider-scoped login identifier; the username for "local".
	PasswordHash   string    // The bcrypt-hashed password for the "local" provider.
	CreatedAt      time.Time // Timestamp of when this credential was created.
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new access token after the old one expires,
// without requiring credentials.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token for secure comparison.
	ExpiresAt time.Time // The exact time when this refresh token becomes invalid.
	CreatedAt time.Time // Timestamp of when this session was created.
}
