// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity, representing a unique person known to the
// library. It carries only identity information; membership data lives on the
// associated UserProfile.
type User struct {
	ID        uuid.UUID // The unique identifier of the account.
	Username  string    // The login name, unique across all accounts.
	Email     string    // The contact email, unique across all accounts.
	Profile   *UserProfile // The membership profile. Nil only for accounts created before profile backfill.
	CreatedAt time.Time // Timestamp of when the account was registered.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// IsLibrarian reports whether the account carries librarian privileges.
// Absence of a profile never grants privileges.
func (u *User) IsLibrarian() bool {
	return u.Profile != nil && u.Profile.IsLibrarian
}

// Roles returns the roles encoded in the account for token claims.
func (u *User) Roles() Roles {
	roles := Roles{RoleMember}
	if u.IsLibrarian() {
		roles = append(roles, RoleLibrarian)
	}

	return roles
}

// UserProfile holds library membership data, one-to-one with a User.
type UserProfile struct {
	UserID            uuid.UUID // Foreign key linking the profile to its User.
	LibraryCardNumber string    // The member's card number, "LIB" + zero-padded sequence, unique.
	PhoneNumber       string    // Optional contact phone number.
	Address           string    // Optional postal address.
	IsLibrarian       bool      // Grants inventory-management privileges when set.
	MembershipDate    time.Time // Date the membership was created.
	UpdatedAt         time.Time // Timestamp of the last modification.
}
