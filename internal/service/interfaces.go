package service

import (
	"context"

	"github.com/lettercraft/backend/models"
)

// AuthService covers the account lifecycle: registration, credential
// verification and JWT handling.
type AuthService interface {
	SignUp(ctx context.Context, username, email, password string) (models.User, models.Token, error)
	Login(ctx context.Context, email, password string) (models.User, models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
