package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/thequickanswers/subsite-backend/internal/auth"
	"github.com/thequickanswers/subsite-backend/internal/users/domain"
	"github.com/thequickanswers/subsite-backend/internal/users/repository"
)

const bcryptCost = 10

// UserService handles end-user registration and login.
type UserService struct {
	repo   *repository.UserRepository
	tokens *auth.TokenManager
}

func New(repo *repository.UserRepository, tokens *auth.TokenManager) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.repo.Create(ctx, email, string(hash), name)
}

// Login verifies credentials and issues an access token with role "user".
func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrNotFound
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email, "user")
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
