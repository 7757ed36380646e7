// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

// userService is the concrete implementation of UserService.
// It layers input validation, API-key generation and pagination arithmetic
// on top of the UserRepository.
type userService struct {
	// userRepository is the data-access layer for the users table.
	userRepository store.UserRepository

	// uuidGenerator produces identifiers for newly created accounts.
	uuidGenerator *utils.UUIDGenerator

	// bootstrap holds the first-boot superuser settings.
	bootstrap config.Bootstrap

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, bootstrap config.Bootstrap, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		uuidGenerator:  utils.NewUUIDGenerator(),
		bootstrap:      bootstrap,
		logger:         logger,
	}
}

// CreateUser registers a new account.
//
// first_name, last_name and email are required; the email must pass format
// validation. is_active defaults to true and is_admin to false. When the
// request carries a plaintext api_key it is adopted, otherwise a fresh key is
// generated. Only the SHA-256 digest of the key is persisted; the plaintext
// is returned to the caller exactly once.
//
// Returns:
//   - ErrMissingRequiredParameters if a required field is empty.
//   - ErrInvalidEmailFormat if the email does not match the accepted shape.
//   - ErrUserAlreadyExists if the email is already registered.
func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, string, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.FirstName == "" || req.LastName == "" {
		return models.User{}, "", ErrMissingRequiredParameters
	}
	if !validateEmail(req.Email) {
		return models.User{}, "", ErrInvalidEmailFormat
	}

	user := models.User{
		ID:        s.uuidGenerator.Generate(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsActive:  true,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}

	apiKey := req.APIKey
	if apiKey == "" {
		apiKey = utils.NewAPIKey()
	}
	user.HashedAPIKey = utils.APIKeyDigest(apiKey)

	createdUser, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, "", ErrUserAlreadyExists
		}
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, "", fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("email", createdUser.Email).Msg("user has been added")
	return createdUser, apiKey, nil
}

// GetUser retrieves an account by id. Returns ErrUserNotFound when no such
// account exists.
func (s *userService) GetUser(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("id", id).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// ListUsers returns one page of the directory, ordered by creation time.
//
// Pages are 1-based. A page or perPage below 1, or a page past the end of a
// non-empty directory, yields ErrPageOutOfRange. Page 1 of an empty
// directory is an empty page, not an error.
func (s *userService) ListUsers(ctx context.Context, page, perPage int) (models.UserPage, error) {
	log := logger.FromContext(ctx)

	if page < 1 || perPage < 1 {
		return models.UserPage{}, ErrPageOutOfRange
	}

	total, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		log.Err(err).Msg("counting users failed")
		return models.UserPage{}, fmt.Errorf("counting users failed: %w", err)
	}

	totalPages := (total + perPage - 1) / perPage
	offset := (page - 1) * perPage
	if page > 1 && offset >= total {
		return models.UserPage{}, ErrPageOutOfRange
	}

	users, err := s.userRepository.ListUsers(ctx, perPage, offset)
	if err != nil {
		log.Err(err).Int("page", page).Int("per_page", perPage).Msg("listing users failed")
		return models.UserPage{}, fmt.Errorf("listing users failed: %w", err)
	}

	return models.UserPage{
		Users:      users,
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}, nil
}

// UpdateUser applies a partial update to an existing account.
//
// Absent fields keep their stored values. A supplied api_key replaces the
// stored digest, immediately invalidating the previous key. An update that
// carries no fields at all succeeds and returns the account unchanged.
//
// Returns ErrUserNotFound when the id does not exist and
// ErrEmailAlreadyExists when the new email belongs to another account.
func (s *userService) UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	update := models.UserUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
		IsActive:  req.IsActive,
	}
	if req.APIKey != nil && *req.APIKey != "" {
		digest := utils.APIKeyDigest(*req.APIKey)
		update.HashedAPIKey = &digest
	}

	if update.IsZero() {
		return user, nil
	}

	updatedUser, err := s.userRepository.UpdateUser(ctx, id, update)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return models.User{}, ErrEmailAlreadyExists
		case errors.Is(err, store.ErrNoUserWasFound):
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("id", id).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	log.Info().Str("email", updatedUser.Email).Msg("user has been modified")
	return updatedUser, nil
}

// DeleteUser removes an account by id. Returns ErrUserNotFound when no such
// account exists.
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		log.Err(err).Str("id", id).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	log.Info().Str("id", id).Msg("user has been deleted")
	return nil
}

// RegenerateAPIKey replaces the account's credential with a freshly generated
// key and returns the new plaintext. The previous key stops verifying as
// soon as the new digest is committed.
func (s *userService) RegenerateAPIKey(ctx context.Context, id string) (models.User, string, error) {
	log := logger.FromContext(ctx)

	apiKey := utils.NewAPIKey()
	digest := utils.APIKeyDigest(apiKey)

	updatedUser, err := s.userRepository.UpdateUser(ctx, id, models.UserUpdate{HashedAPIKey: &digest})
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, "", ErrUserNotFound
		}
		log.Err(err).Str("id", id).Msg("api key regeneration ended with error")
		return models.User{}, "", fmt.Errorf("api key regeneration ended with error: %w", err)
	}

	log.Info().Str("email", updatedUser.Email).Msg("user api key has been regenerated")
	return updatedUser, apiKey, nil
}

// EnsureSuperuser creates the bootstrap admin account when the directory is
// empty. The operation is idempotent: a populated directory, or a concurrent
// bootstrap that wins the unique-email race, results in a quiet no-op.
//
// On first boot the plaintext key (configured or generated) is returned so
// the caller can surface it exactly once.
func (s *userService) EnsureSuperuser(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	total, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		return "", fmt.Errorf("counting users failed: %w", err)
	}
	if total > 0 {
		return "", nil
	}

	apiKey := s.bootstrap.SuperuserAPIKey
	if apiKey == "" {
		apiKey = utils.NewAPIKey()
	}

	superuser := models.User{
		ID:           s.uuidGenerator.Generate(),
		FirstName:    "Super",
		LastName:     "User",
		Email:        s.bootstrap.SuperuserEmail,
		IsAdmin:      true,
		IsActive:     true,
		HashedAPIKey: utils.APIKeyDigest(apiKey),
	}

	if _, err := s.userRepository.CreateUser(ctx, superuser); err != nil {
		// another instance bootstrapped first
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return "", nil
		}
		return "", fmt.Errorf("superuser creation ended with error: %w", err)
	}

	log.Info().Str("email", superuser.Email).Msg("superuser has been created")
	return apiKey, nil
}
