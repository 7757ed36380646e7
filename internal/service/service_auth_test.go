// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn          func(ctx context.Context, user models.User) (models.User, error)
	findByIDFn        func(ctx context.Context, id string) (models.User, error)
	findByHashedKeyFn func(ctx context.Context, digest string) (models.User, error)
	updateFn          func(ctx context.Context, id string, update models.UserUpdate) (models.User, error)
	deleteFn          func(ctx context.Context, id string) error
	listFn            func(ctx context.Context, limit, offset int) ([]models.User, error)
	countFn           func(ctx context.Context) (int, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) FindUserByHashedAPIKey(ctx context.Context, digest string) (models.User, error) {
	if m.findByHashedKeyFn != nil {
		return m.findByHashedKeyFn(ctx, digest)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockUserRepository) CountUsers(ctx context.Context) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Tests: VerifyAPIKey
// ─────────────────────────────────────────────

func TestVerifyAPIKey_Success(t *testing.T) {
	const apiKey = "plain-api-key"

	active := models.User{
		ID:           "user-1",
		Email:        "john@example.com",
		IsActive:     true,
		HashedAPIKey: utils.APIKeyDigest(apiKey),
	}

	repo := &mockUserRepository{
		findByHashedKeyFn: func(ctx context.Context, digest string) (models.User, error) {
			// the service must look up the digest, never the plaintext
			require.Equal(t, utils.APIKeyDigest(apiKey), digest)
			return active, nil
		},
	}

	svc := NewAuthService(repo, logger.Nop())

	user, err := svc.VerifyAPIKey(context.Background(), apiKey)
	require.NoError(t, err)
	assert.Equal(t, active.ID, user.ID)
}

func TestVerifyAPIKey_Empty(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{}, logger.Nop())

	_, err := svc.VerifyAPIKey(context.Background(), "")
	require.ErrorIs(t, err, ErrMissingCredential)
}

func TestVerifyAPIKey_NoMatch(t *testing.T) {
	repo := &mockUserRepository{
		findByHashedKeyFn: func(ctx context.Context, digest string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := NewAuthService(repo, logger.Nop())

	_, err := svc.VerifyAPIKey(context.Background(), "unknown-key")
	require.ErrorIs(t, err, ErrInvalidCredential)
}

func TestVerifyAPIKey_InactiveAccount(t *testing.T) {
	repo := &mockUserRepository{
		findByHashedKeyFn: func(ctx context.Context, digest string) (models.User, error) {
			return models.User{ID: "user-1", IsActive: false}, nil
		},
	}
	svc := NewAuthService(repo, logger.Nop())

	_, err := svc.VerifyAPIKey(context.Background(), "some-key")
	require.ErrorIs(t, err, ErrInactiveAccount)
}

func TestVerifyAPIKey_StorageFailure(t *testing.T) {
	repo := &mockUserRepository{
		findByHashedKeyFn: func(ctx context.Context, digest string) (models.User, error) {
			return models.User{}, errors.New("db down")
		},
	}
	svc := NewAuthService(repo, logger.Nop())

	_, err := svc.VerifyAPIKey(context.Background(), "some-key")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredential)
	assert.NotErrorIs(t, err, ErrInactiveAccount)
}

func TestVerifyAPIKey_RegeneratedKeyStopsMatching(t *testing.T) {
	const oldKey = "old-api-key"
	const newKey = "new-api-key"

	// simulate the directory after a key regeneration: only the new digest
	// is stored
	stored := utils.APIKeyDigest(newKey)
	repo := &mockUserRepository{
		findByHashedKeyFn: func(ctx context.Context, digest string) (models.User, error) {
			if digest == stored {
				return models.User{ID: "user-1", IsActive: true}, nil
			}
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := NewAuthService(repo, logger.Nop())

	_, err := svc.VerifyAPIKey(context.Background(), oldKey)
	require.ErrorIs(t, err, ErrInvalidCredential)

	user, err := svc.VerifyAPIKey(context.Background(), newKey)
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}
