package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chineye-ai/chatserver/internal/common"
)

// Claims carried by an access token. Subject holds the user id; ExpiresAt is
// a numeric seconds-since-epoch timestamp.
type Claims struct {
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 access token whose "sub" claim is userID and
// whose "exp" claim is now + ttl.
func IssueToken(userID string, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	})

	return token.SignedString(secret)
}

// VerifyToken parses and validates tokenString and returns the subject
// claim. Every failure mode (malformed structure, signature mismatch,
// unexpected signing algorithm including "none", expired token, missing
// subject) collapses to common.ErrInvalidToken so callers get no
// verification oracle.
func VerifyToken(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", common.ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
