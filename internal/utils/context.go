// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, access-token generation and validation,
// and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key used to store the authenticated user in the context.
// Populated by the credential middleware after a successful verification.
var UserCtxKey = contextKey("user")

// TokenCtxKey is the key used to store the validated access token in the
// context. Populated by the access-token middleware so that downstream
// handlers (refresh, logout) can reach the token's jti without re-parsing.
var TokenCtxKey = contextKey("token")

// GetUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

// GetTokenFromContext retrieves the validated access token from the context.
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	return token, ok
}
