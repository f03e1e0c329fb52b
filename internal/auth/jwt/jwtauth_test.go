package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
)

func TestToken(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)
	tok, err := NewToken(jwtAuth, time.Hour, "user-1")
	assert.NoError(t, err)

	sub, err := VerifyToken(jwtAuth, tok)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}

func TestTokenEmptySubject(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)
	_, err := NewToken(jwtAuth, time.Hour, "")
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)
	tok, err := NewToken(jwtAuth, -time.Minute, "user-1")
	assert.NoError(t, err)

	_, err = VerifyToken(jwtAuth, tok)
	assert.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)
	tok, err := NewToken(jwtAuth, time.Hour, "user-1")
	assert.NoError(t, err)

	other := jwtauth.New("HS256", []byte("other"), nil)
	_, err = VerifyToken(other, tok)
	assert.Error(t, err)
}
