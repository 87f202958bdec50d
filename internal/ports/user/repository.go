package user

import (
	"context"

	"yatube/internal/core/user"

	"github.com/gofrs/uuid"
)

// UserRepository stores and loads accounts.
type UserRepository interface {
	Create(ctx context.Context, user *user.User) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*user.User, error)
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// Claims are what the session token carries about the actor.
type Claims struct {
	UserID   string
	Username string
}
