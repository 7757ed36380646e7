// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/go-chi/chi/v5"
)

// listUsers serves GET /api/v1/users.
//
// page defaults to 1 and per_page to the configured default; a per_page
// above the configured maximum is a 400 with an explanatory message, and a
// page outside the directory's range is a 404. next_page/prev_page are
// absolute URLs to the adjacent windows, null at the edges.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page := queryInt(r, "page", 1)
	perPage := queryInt(r, "per_page", h.api.DefaultPageSize)

	if perPage > h.api.MaxPageSize {
		utils.WriteJSONError(w,
			fmt.Sprintf("Max items per page is %d, provided value is %d", h.api.MaxPageSize, perPage),
			http.StatusBadRequest)
		return
	}

	userPage, err := h.services.UserService.ListUsers(ctx, page, perPage)
	if err != nil {
		if errors.Is(err, service.ErrPageOutOfRange) {
			utils.WriteJSONError(w, msgNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Msg("listing users failed")
		utils.WriteJSONError(w, msgCouldNotProcess, http.StatusInternalServerError)
		return
	}

	base := requestBaseURL(r)
	var nextPage, prevPage *string
	if userPage.HasNext {
		u := fmt.Sprintf("%s?page=%d&per_page=%d", base, page+1, perPage)
		nextPage = &u
	}
	if userPage.HasPrev {
		u := fmt.Sprintf("%s?page=%d&per_page=%d", base, page-1, perPage)
		prevPage = &u
	}

	utils.WriteJSON(w, models.UserListResponse{
		Users:        userPage.Users,
		TotalPages:   userPage.TotalPages,
		TotalItems:   userPage.TotalItems,
		ItemsPerPage: perPage,
		NextPage:     nextPage,
		PrevPage:     prevPage,
	}, http.StatusOK)
}

// createUser serves POST /api/v1/users. The response carries the plaintext
// API key exactly once.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, apiKey, err := h.services.UserService.CreateUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingRequiredParameters):
			utils.WriteJSONError(w, msgMissingParameters, http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidEmailFormat):
			utils.WriteJSONError(w, msgInvalidEmail, http.StatusBadRequest)
		case errors.Is(err, service.ErrUserAlreadyExists):
			utils.WriteJSONError(w, msgUserExists, http.StatusBadRequest)
		default:
			log.Err(err).Msg("user creation failed")
			utils.WriteJSONError(w, msgCouldNotProcess, http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.CreatedUserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		IsActive:  user.IsActive,
		IsAdmin:   user.IsAdmin,
		APIKey:    apiKey,
	}, http.StatusCreated)
}

// getUser serves GET /api/v1/users/{userID}, returning the account together
// with a discovery map of the mutations available on it.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := chi.URLParam(r, "userID")
	user, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			utils.WriteJSONError(w, msgUserNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Str("user_id", userID).Msg("user lookup failed")
		utils.WriteJSONError(w, msgCouldNotProcess, http.StatusInternalServerError)
		return
	}

	userURI := fmt.Sprintf("%s/api/v1/users/%s", requestHostURL(r), user.ID)
	utils.WriteJSON(w, models.UserDetailResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		IsActive:  user.IsActive,
		IsAdmin:   user.IsAdmin,
		Actions: map[string]models.UserAction{
			"regen-api-key": {
				URI:         userURI + "/gen-api-key",
				Method:      http.MethodPost,
				Description: "Regenerate the user API token and return the newely generated token",
			},
			"get-user-info": {
				URI:         userURI,
				Method:      http.MethodGet,
				Description: "Return the user info",
			},
			"delete-user": {
				Name:        "delete",
				URI:         userURI,
				Method:      http.MethodDelete,
				Description: "Delete the user user",
			},
			"modify-user": {
				Name:        "modify",
				URI:         userURI,
				Method:      http.MethodPatch,
				Description: "Edit the user information",
			},
		},
	}, http.StatusOK)
}

// updateUser serves PATCH /api/v1/users/{userID}.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	userID := chi.URLParam(r, "userID")
	user, err := h.services.UserService.UpdateUser(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			utils.WriteJSONError(w, msgUserNotFound, http.StatusNotFound)
		case errors.Is(err, service.ErrEmailAlreadyExists):
			utils.WriteJSONError(w, msgEmailExists, http.StatusBadRequest)
		default:
			log.Err(err).Str("user_id", userID).Msg("user update failed")
			utils.WriteJSONError(w, msgCouldNotProcess, http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.UpdatedUserResponse{
		Message: msgUserUpdated,
		User:    user.Email,
	}, http.StatusOK)
}

// deleteUser serves DELETE /api/v1/users/{userID}.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := chi.URLParam(r, "userID")
	if err := h.services.UserService.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			utils.WriteJSONError(w, msgUserNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Str("user_id", userID).Msg("user deletion failed")
		utils.WriteJSONError(w, msgCouldNotProcess, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgUserDeleted}, http.StatusOK)
}

// generateUserAPIKey serves POST /api/v1/users/{userID}/gen-api-key.
// The previous key stops verifying immediately; the new plaintext appears in
// this response only.
func (h *Handler) generateUserAPIKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := chi.URLParam(r, "userID")
	_, apiKey, err := h.services.UserService.RegenerateAPIKey(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			utils.WriteJSONError(w, msgUserNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Str("user_id", userID).Msg("api key regeneration failed")
		utils.WriteJSONError(w, msgCouldNotProcess, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.GeneratedAPIKeyResponse{
		Message: msgNewAPIKey,
		APIKey:  apiKey,
	}, http.StatusOK)
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or not a number.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}

// requestHostURL reconstructs scheme://host for the incoming request.
func requestHostURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// requestBaseURL is requestHostURL plus the request path, query excluded.
func requestBaseURL(r *http.Request) string {
	return requestHostURL(r) + r.URL.Path
}
