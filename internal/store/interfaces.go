package store

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence contract for the user directory.
// Implementations own email uniqueness and make every committed mutation
// visible to subsequent lookups with no staleness window.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindUserByHashedAPIKey(ctx context.Context, digest string) (models.User, error)
	UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
	ListUsers(ctx context.Context, limit, offset int) ([]models.User, error)
	CountUsers(ctx context.Context) (int, error)
}

// RevocationStore tracks revoked token identifiers so that previously
// issued tokens can be invalidated before their natural expiry.
//
// MarkRevoked is an idempotent insert: concurrent calls with the same jti
// converge to the same revoked state.
type RevocationStore interface {
	MarkRevoked(ctx context.Context, jti string) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// ErrorClassificator classifies low-level storage errors as retryable or not.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
