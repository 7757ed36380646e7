package service

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

// AuthService resolves raw API keys to user accounts.
type AuthService interface {
	// VerifyAPIKey hashes the presented plaintext key, looks up the matching
	// account and checks that it is active. See errors.go for the failure
	// taxonomy.
	VerifyAPIKey(ctx context.Context, apiKey string) (models.User, error)
}

// TokenService owns the access-token lifecycle: issuance, validation,
// one-time refresh and revocation.
type TokenService interface {
	Issue(ctx context.Context, userID string, fresh bool) (models.Token, error)
	Validate(ctx context.Context, tokenString string) (models.Token, error)
	Refresh(ctx context.Context, token models.Token) (models.Token, error)
	Revoke(ctx context.Context, token models.Token) error
}

// UserService implements the administrative user directory operations.
type UserService interface {
	// CreateUser registers a new account and returns it together with the
	// plaintext API key (supplied by the caller or freshly generated). The
	// plaintext is returned exactly once; only its digest is stored.
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, string, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context, page, perPage int) (models.UserPage, error)
	UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
	// RegenerateAPIKey replaces the user's credential with a fresh key and
	// returns the new plaintext. The old key stops verifying immediately.
	RegenerateAPIKey(ctx context.Context, id string) (models.User, string, error)
	// EnsureSuperuser creates the bootstrap admin account when the directory
	// is empty. It returns the plaintext key on first boot and "" when the
	// directory is already populated.
	EnsureSuperuser(ctx context.Context) (string, error)
}
