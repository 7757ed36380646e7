package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes, role flags, and the stored credential digest.
// The digest must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUID string).
	// Assigned by the server at creation time.
	ID string `json:"id"`

	// FirstName is the optional given name of the user.
	FirstName string `json:"first_name"`

	// LastName is the optional family name of the user.
	LastName string `json:"last_name"`

	// Email is the unique contact address of the user.
	// Uniqueness is enforced by the database at write time.
	Email string `json:"email"`

	// IsAdmin reports whether the user may access administrator-only routes.
	IsAdmin bool `json:"is_admin"`

	// IsActive reports whether the account may authenticate at all.
	// Inactive accounts are rejected during credential verification.
	IsActive bool `json:"is_active"`

	// HashedAPIKey is the SHA-256 hex digest of the user's API key.
	// The plaintext key is never stored; a user always has exactly one
	// current digest, overwritten whenever the key is regenerated.
	HashedAPIKey string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	// Listing orders users by this field ascending.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is the timestamp of the last modification of the account.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate describes a partial modification of a user record.
// Only non-nil fields are applied (partial update support).
type UserUpdate struct {
	// FirstName replaces the user's given name when non-nil.
	FirstName *string `json:"first_name,omitempty"`

	// LastName replaces the user's family name when non-nil.
	LastName *string `json:"last_name,omitempty"`

	// Email replaces the user's email when non-nil. The new value must not
	// collide with a different user's email.
	Email *string `json:"email,omitempty"`

	// IsAdmin toggles the administrator flag when non-nil.
	IsAdmin *bool `json:"is_admin,omitempty"`

	// IsActive toggles the active flag when non-nil.
	IsActive *bool `json:"is_active,omitempty"`

	// HashedAPIKey replaces the stored credential digest when non-nil.
	// Set from a plaintext api_key supplied by an administrator; the old
	// digest is overwritten, immediately invalidating the prior key.
	HashedAPIKey *string `json:"-"`
}

// IsZero reports whether the update contains no fields to apply.
func (u UserUpdate) IsZero() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil &&
		u.IsAdmin == nil && u.IsActive == nil && u.HashedAPIKey == nil
}
