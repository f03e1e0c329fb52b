package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pulsemetrics/analytics-manager/internal/auth/jwt"
	"github.com/pulsemetrics/analytics-manager/internal/auth/pwhash"
	"github.com/pulsemetrics/analytics-manager/internal/dependency"
	gerr "github.com/pulsemetrics/analytics-manager/internal/errors"
)

type contextKey string

// userIDKey carries the authenticated user id through the request context.
const userIDKey contextKey = "userID"

// Server implements registration, login and request authentication.
type Server struct {
	userRepository dependency.Users
	pwhash         *pwhash.PasswordHasher
	JwtAuth        *jwtauth.JWTAuth
	jwtTTL         time.Duration
	c              *Config
}

// Config contains the configuration for the auth server.
type Config struct {
	JWTSecret                string `mapstructure:"jwt_secret"`
	PasswordHasherSaltSize   int    `mapstructure:"password_hasher_salt_size"`
	PasswordHasherIterations int    `mapstructure:"password_hasher_iterations"`
	JWTTTL                   string `mapstructure:"jwt_ttl"`
}

// New creates a new auth server.
func New(c *Config, ur dependency.Users) (*Server, error) {
	ph, err := pwhash.New(c.PasswordHasherSaltSize, c.PasswordHasherIterations)
	if err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(c.JWTTTL)
	if err != nil {
		return nil, err
	}

	return &Server{
		userRepository: ur,
		pwhash:         ph,
		JwtAuth:        jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		jwtTTL:         ttl,
		c:              c,
	}, nil
}

// Register creates a new user and returns an auth token for it.
func (s *Server) Register(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", gerr.ErrMalformedRequest)
	}

	pwHash, err := s.pwhash.HashPassword(password)
	if err != nil {
		return "", err
	}

	user, err := s.userRepository.AddUser(ctx, email, pwHash)
	if err != nil {
		return "", err
	}

	return jwt.NewToken(s.JwtAuth, s.jwtTTL, user.ID)
}

// Login returns an auth token for valid credentials. A missing user and a
// wrong password both map to ErrUnauthenticated.
func (s *Server) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gerr.ErrNotFound) {
			return "", gerr.ErrUnauthenticated
		}
		return "", err
	}

	if err := s.pwhash.Validate(password, user.PasswordHash); err != nil {
		return "", gerr.ErrUnauthenticated
	}

	return jwt.NewToken(s.JwtAuth, s.jwtTTL, user.ID)
}

// WithAuth middleware resolves the bearer token to a user id and stores it
// in the request context.
func (s *Server) WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			http.Error(w, `{"error": "not authenticated"}`, http.StatusUnauthorized)
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		userID, err := jwt.VerifyToken(s.JwtAuth, token)
		if err != nil {
			http.Error(w, `{"error": "not authenticated"}`, http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the authenticated user id set by WithAuth.
func UserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", gerr.ErrUnauthenticated
	}
	return userID, nil
}

// ContextWithUserID is a test helper mirroring what WithAuth injects.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
