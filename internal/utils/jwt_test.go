package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "test-issuer"
	testSignKey = "test-sign-key"
	testUserID  = "019235aa-5a41-7cc8-8e77-bb37e0ff59a1"
)

func TestGenerateAccessToken_Success(t *testing.T) {
	token, err := GenerateAccessToken(testIssuer, testUserID, true, time.Minute, testSignKey)

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, testUserID, token.UserID)
	assert.NotEmpty(t, token.JTI)
	assert.True(t, token.Fresh)
}

func TestGenerateAccessToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", userID: testUserID, duration: time.Minute, signKey: testSignKey},
		{name: "empty user id", issuer: testIssuer, duration: time.Minute, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, userID: testUserID, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, userID: testUserID, duration: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateAccessToken(tt.issuer, tt.userID, false, tt.duration, tt.signKey)
			require.Error(t, err)
		})
	}
}

func TestGenerateAccessToken_UniqueJTI(t *testing.T) {
	first, err := GenerateAccessToken(testIssuer, testUserID, true, time.Minute, testSignKey)
	require.NoError(t, err)
	second, err := GenerateAccessToken(testIssuer, testUserID, true, time.Minute, testSignKey)
	require.NoError(t, err)

	assert.NotEqual(t, first.JTI, second.JTI)
}

func TestValidateAndParseAccessToken_RoundTrip(t *testing.T) {
	issued, err := GenerateAccessToken(testIssuer, testUserID, false, time.Minute, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseAccessToken(issued.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, testUserID, parsed.UserID)
	assert.Equal(t, issued.JTI, parsed.JTI)
	assert.False(t, parsed.Fresh)
}

func TestValidateAndParseAccessToken_Expired(t *testing.T) {
	issued, err := GenerateAccessToken(testIssuer, testUserID, true, time.Nanosecond, testSignKey)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = ValidateAndParseAccessToken(issued.SignedString, testSignKey, testIssuer)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseAccessToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseAccessToken("not-a-jwt-at-all", testSignKey, testIssuer)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestValidateAndParseAccessToken_WrongSignKey(t *testing.T) {
	issued, err := GenerateAccessToken(testIssuer, testUserID, true, time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseAccessToken(issued.SignedString, "other-key", testIssuer)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseAccessToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateAccessToken("other-service", testUserID, true, time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseAccessToken(issued.SignedString, testSignKey, testIssuer)
	require.Error(t, err)
}
