package models

// TokenResponse is the success body of POST /auth and POST /refresh.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// MessageResponse is the generic success body used by status/check/logout
// and mutation endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body produced at the HTTP boundary.
// Internal failure detail never appears here; it is logged server-side.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreatedUserResponse is the body of a successful POST /users.
// APIKey carries the plaintext key exactly once; it cannot be recovered later.
type CreatedUserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IsActive  bool   `json:"is_active"`
	IsAdmin   bool   `json:"is_admin"`
	APIKey    string `json:"api_key"`
}

// UserAction describes a follow-up operation available on a user resource.
// Returned as part of GET /users/{id} so that API consumers can discover
// mutations without hardcoding routes.
type UserAction struct {
	Name        string `json:"name,omitempty"`
	URI         string `json:"uri"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

// UserDetailResponse is the body of GET /users/{id}.
type UserDetailResponse struct {
	ID        string                `json:"id"`
	FirstName string                `json:"first_name"`
	LastName  string                `json:"last_name"`
	Email     string                `json:"email"`
	IsActive  bool                  `json:"is_active"`
	IsAdmin   bool                  `json:"is_admin"`
	Actions   map[string]UserAction `json:"actions"`
}

// UserListResponse is the paginated body of GET /users.
// NextPage and PrevPage are absolute URLs to the adjacent result windows,
// or null when the window is the first/last one.
type UserListResponse struct {
	Users        []User  `json:"users"`
	TotalPages   int     `json:"total_pages"`
	TotalItems   int     `json:"total_items"`
	ItemsPerPage int     `json:"items_per_page"`
	NextPage     *string `json:"next_page"`
	PrevPage     *string `json:"prev_page"`
}

// UpdatedUserResponse is the body of a successful PATCH /users/{id}.
type UpdatedUserResponse struct {
	Message string `json:"message"`
	User    string `json:"user"`
}

// GeneratedAPIKeyResponse is the body of POST /users/{id}/gen-api-key.
// APIKey carries the newly generated plaintext key exactly once.
type GeneratedAPIKeyResponse struct {
	Message string `json:"message"`
	APIKey  string `json:"api_key"`
}
