package store

import (
	"context"

	"github.com/lettercraft/backend/models"
)

// UserRepository provides persistence operations for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}
