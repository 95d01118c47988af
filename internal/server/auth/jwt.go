// Package auth implements the credential codec (bcrypt) and the bearer
// token service (HS256 JWTs) used by the HTTP layer.
package auth

import (
	"time"

	"github.com/dimaum1001/financas-web/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// clockSkewLeeway absorbs small clock differences between the machine that
// signed a token and the one verifying it.
const clockSkewLeeway = 30 * time.Second

// GenerateToken issues a signed bearer token for userID, expiring after
// validityDuration.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// SubjectFromToken verifies tokenString and returns its subject (the user
// id). Every failure mode (bad signature, malformed input, expiry)
// collapses into common.ErrInvalidToken so callers cannot probe which one
// occurred.
func SubjectFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(clockSkewLeeway),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
