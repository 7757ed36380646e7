package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenClaims is the claim set carried by every issued access token.
//
// It embeds [jwt.RegisteredClaims] for the standard claim fields
// (iss, sub, jti, iat, exp) and adds the freshness marker distinguishing
// tokens obtained by direct API-key exchange from those obtained via refresh.
type AccessTokenClaims struct {
	jwt.RegisteredClaims

	// Fresh is true only for tokens issued in direct exchange for an API key.
	// Tokens produced by the refresh flow always carry fresh=false.
	Fresh bool `json:"fresh"`
}

// Token wraps a validated access token with the fields the rest of the
// application cares about, so that callers never touch raw JWT claims.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the token subject: the identifier of the user the token
	// was issued for.
	UserID string `json:"-"`

	// JTI is the unique token identifier used by the revocation registry.
	JTI string `json:"-"`

	// Fresh mirrors the freshness claim of the token.
	Fresh bool `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
