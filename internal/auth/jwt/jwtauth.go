package jwt

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

// VerifyToken checks the token signature and expiry and returns the subject
// (user id) claim.
func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (string, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return "", err
	}
	if t.Subject() == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return t.Subject(), nil
}

// NewToken creates a JWT carrying the user id as subject. Every record in
// the system is owner scoped, so the subject is mandatory.
func NewToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("empty subject")
	}
	claims := map[string]interface{}{
		"exp": time.Now().Add(ttl).Unix(),
		"sub": userID,
	}
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return ts, err
	}
	return ts, nil
}
