package models

// CreateUserRequest is the JSON body accepted by POST /api/v1/users.
type CreateUserRequest struct {
	// FirstName is the user's given name. Required.
	FirstName string `json:"first_name"`

	// LastName is the user's family name. Required.
	LastName string `json:"last_name"`

	// Email is the unique contact address. Required, validated for format.
	Email string `json:"email"`

	// IsAdmin marks the new user as an administrator. Defaults to false.
	IsAdmin *bool `json:"is_admin,omitempty"`

	// IsActive marks the new user as active. Defaults to true.
	IsActive *bool `json:"is_active,omitempty"`

	// APIKey is an optional explicit plaintext API key for the new user.
	// When absent a key is generated server-side. Either way only the
	// digest is persisted and the plaintext is returned exactly once.
	APIKey string `json:"api_key,omitempty"`
}

// UpdateUserRequest is the JSON body accepted by PATCH /api/v1/users/{id}.
// Absent fields keep their current values.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	IsAdmin   *bool   `json:"is_admin,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`

	// APIKey replaces the user's credential when present. The supplied
	// plaintext is digested before storage; the old key stops working at
	// commit time.
	APIKey *string `json:"api_key,omitempty"`
}
