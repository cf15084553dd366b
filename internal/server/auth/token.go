// Package auth issues and validates the session tokens handed out at signup.
//
// A token is an HS256 JWT signed with the trustchain secret. Everything
// outside this package treats it as an opaque string: it is generated once
// when the account is created, stored on the user record, and returned
// verbatim on login.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"notekeeper/internal/common"
)

// Claims carries the registered claims plus the user id the token was
// issued for.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// Issuer signs tokens on behalf of the configured trustchain.
type Issuer struct {
	trustchainID string
	secret       []byte
}

func NewIssuer(trustchainID, secret string) *Issuer {
	return &Issuer{trustchainID: trustchainID, secret: []byte(secret)}
}

// IssueToken signs a token for userID. The token carries no expiry: it is
// issued once at signup and stays valid for the lifetime of the account.
func (i *Issuer) IssueToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   i.trustchainID,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// UserIDFromToken validates tokenString and returns the user id it was
// issued for. Tampered or foreign tokens fail with common.ErrInvalidToken.
func (i *Issuer) UserIDFromToken(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
