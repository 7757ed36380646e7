package service

import "errors"

// Credential verification errors. The HTTP layer maps each value to the
// status code and body of the corresponding authorization failure.
var (
	ErrMissingCredential = errors.New("no credential provided")
	ErrInvalidCredential = errors.New("credential does not match any account")
	ErrInactiveAccount   = errors.New("inactive account")
)

// Token lifecycle errors.
var (
	ErrTokenMalformed = errors.New("token is structurally malformed")
	ErrTokenExpired   = errors.New("token is expired")
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenRevoked   = errors.New("token has been revoked")

	ErrTokenCreationFailed = errors.New("token creation failed")
)

// User directory errors.
var (
	ErrMissingRequiredParameters = errors.New("missing required parameters")
	ErrInvalidEmailFormat        = errors.New("invalid email format")
	ErrUserAlreadyExists         = errors.New("user already exists")
	ErrEmailAlreadyExists        = errors.New("email already exists")
	ErrUserNotFound              = errors.New("user not found")
	ErrPageOutOfRange            = errors.New("page out of range")
)
