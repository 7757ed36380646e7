// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, authorization, logging and tracing
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
)

const bearerScheme = "Bearer "

// requireAPIKey is an HTTP middleware that enforces API-key authentication.
//
// It extracts the bearer credential from the "Authorization" header, resolves
// it via [service.AuthService.VerifyAPIKey] and — on success — stores the
// resolved user in the request context before delegating to the next handler.
//
// Rejections follow the credential failure contract exactly:
//   - 401 when the header is absent or carries no Bearer scheme.
//   - 400 when the scheme is present but the credential is empty.
//   - 403 when no account matches, or the account is inactive.
//   - 500 on any storage failure, with a generic body.
func (h *Handler) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		apiKey, ok := credentialFromHeader(r)
		if !ok {
			utils.WriteJSONError(w, msgMissingAuthHeader, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.VerifyAPIKey(ctx, apiKey)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrMissingCredential):
				utils.WriteJSONError(w, msgValidTokenRequired, http.StatusBadRequest)
			case errors.Is(err, service.ErrInvalidCredential):
				utils.WriteJSONError(w, msgValidTokenRequired, http.StatusForbidden)
			case errors.Is(err, service.ErrInactiveAccount):
				utils.WriteJSONError(w, msgInactiveAccount, http.StatusForbidden)
			default:
				log.Err(err).Msg("api key verification failed unexpectedly")
				utils.WriteJSONError(w, msgInternalServerError, http.StatusInternalServerError)
			}
			return
		}

		ctx = context.WithValue(ctx, utils.UserCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAccessToken is an HTTP middleware that enforces access-token
// authentication.
//
// Header parsing mirrors requireAPIKey (401 absent scheme, 400 empty value).
// The token is then checked by [service.TokenService.Validate]:
//   - 422 when the string is not structurally a token.
//   - 401 when the token is expired, revoked, or otherwise invalid.
//
// A valid token must also resolve to an existing active account; the user
// and the decoded token are stored in the request context on success.
func (h *Handler) requireAccessToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, ok := credentialFromHeader(r)
		if !ok {
			utils.WriteJSONError(w, msgMissingAuthHeader, http.StatusUnauthorized)
			return
		}
		if tokenString == "" {
			utils.WriteJSONError(w, msgValidTokenRequired, http.StatusBadRequest)
			return
		}

		ctx := r.Context()
		token, err := h.services.TokenService.Validate(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenMalformed):
				utils.WriteJSONError(w, msgTokenMalformed, http.StatusUnprocessableEntity)
			case errors.Is(err, service.ErrTokenExpired):
				utils.WriteJSONError(w, msgTokenExpired, http.StatusUnauthorized)
			case errors.Is(err, service.ErrTokenRevoked):
				utils.WriteJSONError(w, msgTokenRevoked, http.StatusUnauthorized)
			case errors.Is(err, service.ErrTokenInvalid):
				utils.WriteJSONError(w, msgTokenMalformed, http.StatusUnauthorized)
			default:
				log.Err(err).Msg("token validation failed unexpectedly")
				utils.WriteJSONError(w, msgInternalServerError, http.StatusInternalServerError)
			}
			return
		}

		user, err := h.services.UserService.GetUser(ctx, token.UserID)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				utils.WriteJSONError(w, msgTokenMalformed, http.StatusUnauthorized)
				return
			}
			log.Err(err).Str("user_id", token.UserID).Msg("token subject lookup failed")
			utils.WriteJSONError(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}
		if !user.IsActive {
			utils.WriteJSONError(w, msgInactiveAccount, http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.UserCtxKey, user)
		ctx = context.WithValue(ctx, utils.TokenCtxKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin gates a route to administrator accounts. It must run after
// one of the credential middlewares; a missing identity and a non-admin
// identity produce the same uniform 403 body, never revealing which check
// failed.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetUserFromContext(r.Context())
		if !ok || !user.IsAdmin {
			utils.WriteJSONError(w, msgForbidden, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// credentialFromHeader extracts the bearer credential from the
// "Authorization" header. The second return value is false when the header
// is absent or does not carry the Bearer scheme; an empty (but schemed)
// credential returns ("", true) so callers can distinguish the two cases.
func credentialFromHeader(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, bearerScheme) {
		return "", false
	}

	return strings.TrimSpace(strings.TrimPrefix(authHeader, bearerScheme)), true
}
