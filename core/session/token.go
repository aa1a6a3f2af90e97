package session

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

var (
	NowFunc = time.Now // mockable

	// errors
	ErrMalformedToken = errors.New("malformed token")
)

// Claims are the authorization claims the server embeds in access tokens.
type Claims struct {
	jwt.StandardClaims
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	ProfileID string `json:"profileId,omitempty"`
}

// DecodeToken decodes the claims of an access token without verifying its
// signature. The server is the sole authority on tokens; the client only
// inspects role and expiry to drive navigation and session refresh.
func DecodeToken(token string) (*Claims, error) {
	claims := new(Claims)
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return nil, ErrMalformedToken
	}
	return claims, nil
}

// Expired reports whether the token's expiry has passed.
func (c *Claims) Expired() bool {
	if c.ExpiresAt == 0 {
		return false
	}
	return NowFunc().After(time.Unix(c.ExpiresAt, 0))
}

// FromToken builds a Session out of a raw access token's claims.
func FromToken(access, refresh string) (Session, error) {
	claims, err := DecodeToken(access)
	if err != nil {
		return Session{}, err
	}
	return Session{
		UserID:       claims.Subject,
		ProfileID:    claims.ProfileID,
		Username:     claims.Username,
		Email:        claims.Email,
		Role:         claims.Role,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
