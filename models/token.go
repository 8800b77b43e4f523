package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued by the remote repository.
//
// The client never verifies signatures; it only reads the subject and the
// expiry to decide whether a cached token is worth sending.
type Token struct {
	// Token is the parsed JWT.
	*jwt.Token `json:"-"`

	// RegisteredClaims gives access to sub, exp, iss and friends.
	jwt.RegisteredClaims

	// SignedString is the compact serialization sent in the Authorization header.
	SignedString string `json:"-"`
}

// GetUsername returns the "sub" claim.
func (t *Token) GetUsername() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting username from token: %w", err)
	}
	if sub == "" {
		return "", fmt.Errorf("error extracting username from token: empty subject")
	}
	return sub, nil
}

// String returns the compact JWS serialization.
func (t *Token) String() string {
	return t.SignedString
}
