package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService is the concrete implementation of TokenService.
// It issues HMAC-SHA256 signed access tokens, validates presented tokens
// against both their claims and the revocation registry, and implements the
// one-time refresh exchange.
//
// The revocation registry is an injected dependency, never package state, so
// multiple instances sharing a Redis-backed registry agree on which tokens
// are dead.
type tokenService struct {
	// revocations records jtis that must no longer be accepted.
	revocations store.RevocationStore

	// tokenSignKey is the HMAC secret used to sign and verify access tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewTokenService constructs a TokenService wired to the given revocation
// registry and populated with signing parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewTokenService(revocations store.RevocationStore, cfg config.Auth, logger *logger.Logger) TokenService {
	return &tokenService{
		revocations:   revocations,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Issue creates a signed access token for the given user.
//
// The token carries a unique jti claim for later revocation and a freshness
// marker: fresh is true only when the token is obtained by direct API-key
// exchange, never across a refresh.
func (t *tokenService) Issue(ctx context.Context, userID string, fresh bool) (models.Token, error) {
	token, err := utils.GenerateAccessToken(t.tokenIssuer, userID, fresh, t.tokenDuration, t.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Validate checks a raw token string and returns its decoded form.
//
// The checks run in a fixed order: structural parse and signature/claims
// verification first, then the revocation registry. Failures are classified
// into the service error taxonomy:
//   - ErrTokenMalformed — the string is not a structurally valid token.
//   - ErrTokenExpired   — the exp claim is in the past.
//   - ErrTokenInvalid   — bad signature, wrong issuer, or missing claims.
//   - ErrTokenRevoked   — the jti is present in the revocation registry.
//
// A registry failure is reported as-is (wrapped), not mapped to a token
// error: an unreachable registry must not make revoked tokens valid.
func (t *tokenService) Validate(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseAccessToken(tokenString, t.tokenSignKey, t.tokenIssuer)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return models.Token{}, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Token{}, ErrTokenExpired
		default:
			return models.Token{}, ErrTokenInvalid
		}
	}

	revoked, err := t.revocations.IsRevoked(ctx, token.JTI)
	if err != nil {
		log.Err(err).Str("jti", token.JTI).Msg("revocation check failed")
		return models.Token{}, fmt.Errorf("revocation check failed: %w", err)
	}
	if revoked {
		return models.Token{}, ErrTokenRevoked
	}

	return token, nil
}

// Refresh exchanges a validated token for a new non-fresh one.
//
// The presented jti is revoked before the replacement is issued, so each
// token can be refreshed exactly once; a second exchange of the same token
// fails with ErrTokenRevoked at validation time. Freshness is never carried
// across the exchange.
func (t *tokenService) Refresh(ctx context.Context, token models.Token) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := t.revocations.MarkRevoked(ctx, token.JTI); err != nil {
		log.Err(err).Str("jti", token.JTI).Msg("failed to revoke token on refresh")
		return models.Token{}, fmt.Errorf("failed to revoke token on refresh: %w", err)
	}

	return t.Issue(ctx, token.UserID, false)
}

// Revoke records the token's jti in the revocation registry. Revoking an
// already revoked token is a no-op.
func (t *tokenService) Revoke(ctx context.Context, token models.Token) error {
	log := logger.FromContext(ctx)

	if err := t.revocations.MarkRevoked(ctx, token.JTI); err != nil {
		log.Err(err).Str("jti", token.JTI).Msg("failed to revoke token")
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}
