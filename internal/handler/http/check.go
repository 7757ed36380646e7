package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

// status is the unauthenticated liveness probe.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: msgUpAndRunning}, http.StatusOK)
}

// check is the shared success handler behind /check, /admin-check,
// /jwt-check and /jwt-admin-check. Reaching it at all means the guarding
// middleware accepted the presented credential.
func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: msgTokenValid}, http.StatusOK)
}
