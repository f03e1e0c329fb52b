package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pulsemetrics/analytics-manager/internal/dependency"
	"github.com/pulsemetrics/analytics-manager/internal/entity"
	gerr "github.com/pulsemetrics/analytics-manager/internal/errors"
)

type usersStore struct {
	*MYSQLStore
}

// Users returns an object implementing the Users interface.
func (ms *MYSQLStore) Users() dependency.Users {
	return &usersStore{
		MYSQLStore: ms,
	}
}

func (us *usersStore) AddUser(ctx context.Context, email, pwHash string) (*entity.User, error) {
	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: pwHash,
		CreatedAt:    us.Now(),
	}

	query := `
	INSERT INTO users
		(id, email, password_hash, created_at)
	VALUES
		(:id, :email, :passwordHash, :createdAt)`

	err := ExecNamed(ctx, us.db, query, map[string]any{
		"id":           user.ID,
		"email":        user.Email,
		"passwordHash": user.PasswordHash,
		"createdAt":    user.CreatedAt,
	})
	if err != nil {
		if us.IsErrUniqueViolation(err) {
			return nil, gerr.ErrAlreadyExists
		}
		return nil, fmt.Errorf("can't add user: %w", err)
	}
	return user, nil
}

func (us *usersStore) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT * FROM users WHERE email = :email`
	user, err := QueryNamedOne[entity.User](ctx, us.db, query, map[string]any{
		"email": email,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.ErrNotFound
		}
		return nil, fmt.Errorf("can't get user: %w", err)
	}
	return &user, nil
}
