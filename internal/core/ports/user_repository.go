package ports

import (
	"context"

	"github.com/hekmatehsan/geoweather-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence. FindByEmail
// expects a normalized email and returns domain.ErrUserNotFound when no record
// matches. Create must enforce email uniqueness atomically and return
// domain.ErrUserExists on a duplicate.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
