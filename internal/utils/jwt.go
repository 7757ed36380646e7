package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateAccessToken creates a signed HMAC-SHA256 access token for the
// given user.
//
// The token carries the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - ID        (jti): a fresh UUID, unique per token, used for revocation
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - fresh          : true only for tokens obtained by direct API-key exchange
//
// All string parameters are required and tokenDuration must be non-zero.
//
// Returns:
//
//	models.Token - the signed token string alongside subject, jti and freshness
//	error        - non-nil if parameters are invalid or signing fails
//
// Example usage:
//
//	token, err := utils.GenerateAccessToken("my-service", userID, true, 15*time.Minute, "secret")
func GenerateAccessToken(issuer, userID string, fresh bool, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating access token")
	}

	now := time.Now()
	jti := uuid.NewString()
	claims := &models.AccessTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Fresh: fresh,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing access token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		UserID:       userID,
		JTI:          jti,
		Fresh:        fresh,
	}, nil
}

// ValidateAndParseAccessToken validates the given access-token string and
// extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HMAC only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) and ID (jti) claim presence
//
// The underlying jwt sentinel errors are wrapped, so callers can classify
// failures with errors.Is against [jwt.ErrTokenMalformed],
// [jwt.ErrTokenExpired], and friends.
func ValidateAndParseAccessToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.AccessTokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject in token")
	}
	if claims.ID == "" {
		return models.Token{}, errors.New("empty jti in token")
	}

	return models.Token{
		SignedString: tokenString,
		UserID:       claims.Subject,
		JTI:          claims.ID,
		Fresh:        claims.Fresh,
	}, nil
}
