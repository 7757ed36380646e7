package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

// authenticate exchanges a verified API key for a fresh access token.
// The requireAPIKey middleware has already resolved the caller's account
// into the request context.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("authenticate reached without a resolved user")
		utils.WriteJSONError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	token, err := h.services.TokenService.Issue(ctx, user.ID, true)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("access token issuance failed")
		utils.WriteJSONError(w, msgCouldNotProcess, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{AccessToken: token.SignedString}, http.StatusOK)
}

// refresh exchanges the presented access token for a new non-fresh one.
// The presented token is revoked as part of the exchange, so it can be
// refreshed at most once.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, ok := utils.GetTokenFromContext(ctx)
	if !ok {
		log.Error().Msg("refresh reached without a validated token")
		utils.WriteJSONError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	refreshed, err := h.services.TokenService.Refresh(ctx, token)
	if err != nil {
		log.Err(err).Str("jti", token.JTI).Msg("token refresh failed")
		utils.WriteJSONError(w, msgCouldNotProcess, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{AccessToken: refreshed.SignedString}, http.StatusOK)
}

// logout revokes the presented access token. Only the presented token dies;
// other tokens issued to the same account stay valid until expiry.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, ok := utils.GetTokenFromContext(ctx)
	if !ok {
		log.Error().Msg("logout reached without a validated token")
		utils.WriteJSONError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	if err := h.services.TokenService.Revoke(ctx, token); err != nil {
		log.Err(err).Str("jti", token.JTI).Msg("token revocation failed")
		utils.WriteJSONError(w, msgCouldNotProcess, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgLoggedOut}, http.StatusOK)
}
