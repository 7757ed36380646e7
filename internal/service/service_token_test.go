// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/mock"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTokenService(t *testing.T) (TokenService, *mock.MockRevocationStore) {
	ctrl := gomock.NewController(t)
	revocations := mock.NewMockRevocationStore(ctrl)

	svc := NewTokenService(revocations, config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-auth-gate",
		TokenDuration: 15 * time.Minute,
	}, logger.Nop())

	return svc, revocations
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc, revocations := newTestTokenService(t)
	ctx := context.Background()

	issued, err := svc.Issue(ctx, "user-1", true)
	require.NoError(t, err)
	require.NotEmpty(t, issued.SignedString)
	require.NotEmpty(t, issued.JTI)
	assert.True(t, issued.Fresh)

	revocations.EXPECT().IsRevoked(ctx, issued.JTI).Return(false, nil)

	validated, err := svc.Validate(ctx, issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", validated.UserID)
	assert.Equal(t, issued.JTI, validated.JTI)
	assert.True(t, validated.Fresh)
}

func TestTokenService_Validate_Malformed(t *testing.T) {
	svc, _ := newTestTokenService(t)

	_, err := svc.Validate(context.Background(), "not-a-token")
	require.ErrorIs(t, err, ErrTokenMalformed)
}

func TestTokenService_Validate_Expired(t *testing.T) {
	svc, _ := newTestTokenService(t)
	ctx := context.Background()

	expired, err := utils.GenerateAccessToken("go-auth-gate", "user-1", true, -time.Minute, "test-sign-key")
	require.NoError(t, err)

	_, err = svc.Validate(ctx, expired.SignedString)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_Validate_WrongSignKey(t *testing.T) {
	svc, _ := newTestTokenService(t)
	ctx := context.Background()

	forged, err := utils.GenerateAccessToken("go-auth-gate", "user-1", true, time.Minute, "other-key")
	require.NoError(t, err)

	_, err = svc.Validate(ctx, forged.SignedString)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Validate_Revoked(t *testing.T) {
	svc, revocations := newTestTokenService(t)
	ctx := context.Background()

	issued, err := svc.Issue(ctx, "user-1", true)
	require.NoError(t, err)

	revocations.EXPECT().IsRevoked(ctx, issued.JTI).Return(true, nil)

	_, err = svc.Validate(ctx, issued.SignedString)
	require.ErrorIs(t, err, ErrTokenRevoked)
}

func TestTokenService_Validate_RegistryFailure(t *testing.T) {
	svc, revocations := newTestTokenService(t)
	ctx := context.Background()

	issued, err := svc.Issue(ctx, "user-1", true)
	require.NoError(t, err)

	revocations.EXPECT().IsRevoked(ctx, issued.JTI).Return(false, errors.New("redis down"))

	// an unreachable registry must not make the token pass validation
	_, err = svc.Validate(ctx, issued.SignedString)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTokenRevoked)
}

func TestTokenService_Refresh(t *testing.T) {
	svc, revocations := newTestTokenService(t)
	ctx := context.Background()

	issued, err := svc.Issue(ctx, "user-1", true)
	require.NoError(t, err)

	revocations.EXPECT().MarkRevoked(ctx, issued.JTI).Return(nil)

	refreshed, err := svc.Refresh(ctx, issued)
	require.NoError(t, err)
	assert.Equal(t, "user-1", refreshed.UserID)
	assert.NotEqual(t, issued.JTI, refreshed.JTI)
	assert.False(t, refreshed.Fresh, "a refreshed token is never fresh")
}

func TestTokenService_Refresh_RevokeFails(t *testing.T) {
	svc, revocations := newTestTokenService(t)
	ctx := context.Background()

	issued, err := svc.Issue(ctx, "user-1", true)
	require.NoError(t, err)

	revocations.EXPECT().MarkRevoked(ctx, issued.JTI).Return(errors.New("redis down"))

	// no replacement token may be issued when the old one cannot be revoked
	_, err = svc.Refresh(ctx, issued)
	require.Error(t, err)
}

func TestTokenService_Revoke(t *testing.T) {
	svc, revocations := newTestTokenService(t)
	ctx := context.Background()

	issued, err := svc.Issue(ctx, "user-1", false)
	require.NoError(t, err)

	revocations.EXPECT().MarkRevoked(ctx, issued.JTI).Return(nil)

	require.NoError(t, svc.Revoke(ctx, issued))
}
