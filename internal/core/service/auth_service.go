package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/hekmatehsan/geoweather-api/internal/core/domain"
	"github.com/hekmatehsan/geoweather-api/internal/core/ports"
	"github.com/hekmatehsan/geoweather-api/internal/core/token"
)

// bcryptCost matches the 10-round work factor the credentials were
// provisioned with.
const bcryptCost = 10

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	tokens *token.Service
}

func NewAuthService(repo ports.UserRepository, tokens *token.Service) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a user with a hashed password and returns a fresh session
// token alongside the stored record. The email is normalized before the
// existence check and the write; the repository's uniqueness constraint is
// the authoritative guard against concurrent duplicates.
func (s *AuthService) Register(ctx context.Context, fullName, email, password string) (string, *domain.User, error) {
	if fullName == "" || email == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	email = domain.NormalizeEmail(email)

	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return "", nil, domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		// A concurrent registration may win the race between the pre-check
		// and the insert; the store reports it as the same conflict.
		return "", nil, err
	}

	tok, err := s.tokens.Issue(created.ID, created.Email)
	if err != nil {
		return "", nil, err
	}
	return tok, created, nil
}

// Login verifies credentials and returns a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	user, err := s.repo.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return tok, user, nil
}
