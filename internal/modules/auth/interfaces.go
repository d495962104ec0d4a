package auth

import (
	"context"

	"autoloc/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type TokenIssuer interface {
	GenerateToken(userID, userType string) (string, error)
}
