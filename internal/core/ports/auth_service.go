package ports

import (
	"context"

	"github.com/hekmatehsan/geoweather-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, fullName, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
