package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserFromContext(t *testing.T) {
	user := models.User{ID: "u-1", Email: "user@local"}
	ctx := context.WithValue(context.Background(), UserCtxKey, user)

	got, ok := GetUserFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestGetUserFromContext_Missing(t *testing.T) {
	_, ok := GetUserFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "not-a-user")
	_, ok := GetUserFromContext(ctx)
	assert.False(t, ok)
}

func TestGetTokenFromContext(t *testing.T) {
	token := models.Token{UserID: "u-1", JTI: "jti-1", Fresh: true}
	ctx := context.WithValue(context.Background(), TokenCtxKey, token)

	got, ok := GetTokenFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, token, got)
}

func TestGetTokenFromContext_Missing(t *testing.T) {
	_, ok := GetTokenFromContext(context.Background())
	assert.False(t, ok)
}
