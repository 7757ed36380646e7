package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

// authService is the concrete implementation of AuthService.
// It resolves plaintext API keys to accounts by hashing the key with
// SHA-256 and performing an exact-match lookup on the stored digest.
// Because digests are deterministic and unsalted, the lookup is a single
// indexed query and a regenerated key stops matching the moment the new
// digest is committed.
type authService struct {
	// userRepository is the data-access layer used to look up accounts.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// VerifyAPIKey resolves a plaintext API key to its account.
//
// Returns the matching user record or:
//   - ErrMissingCredential if apiKey is empty.
//   - ErrInvalidCredential if no account carries the digest of apiKey.
//   - ErrInactiveAccount if the account exists but is deactivated.
//   - A wrapped storage error on any other repository failure.
func (a *authService) VerifyAPIKey(ctx context.Context, apiKey string) (models.User, error) {
	log := logger.FromContext(ctx)

	if apiKey == "" {
		return models.User{}, ErrMissingCredential
	}

	user, err := a.userRepository.FindUserByHashedAPIKey(ctx, utils.APIKeyDigest(apiKey))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidCredential
		}
		log.Err(err).Msg("user search by api key digest failed")
		return models.User{}, fmt.Errorf("user search by api key digest failed: %w", err)
	}

	if !user.IsActive {
		log.Warn().Str("email", user.Email).Msg("inactive account presented a valid api key")
		return models.User{}, ErrInactiveAccount
	}

	return user, nil
}
