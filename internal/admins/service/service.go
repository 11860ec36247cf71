package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/thequickanswers/subsite-backend/internal/admins/domain"
	"github.com/thequickanswers/subsite-backend/internal/auth"
)

const bcryptCost = 10

// Repository is the persistence surface the service needs.
type Repository interface {
	Create(ctx context.Context, email, passwordHash, role string) (*domain.Admin, error)
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// AdminService handles admin registration, login and deletion.
type AdminService struct {
	repo   Repository
	tokens *auth.TokenManager
}

func New(repo Repository, tokens *auth.TokenManager) *AdminService {
	return &AdminService{repo: repo, tokens: tokens}
}

// Register creates a new admin with a bcrypt-hashed password.
// An empty role defaults to "admin".
func (s *AdminService) Register(ctx context.Context, email, password, role string) (*domain.Admin, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	if role == "" {
		role = domain.RoleAdmin
	}
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.repo.Create(ctx, email, string(hash), role)
}

// Login verifies credentials and issues an access token.
func (s *AdminService) Login(ctx context.Context, email, password string) (token string, admin *domain.Admin, err error) {
	admin, err = s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrNotFound
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err = s.tokens.Generate(admin.ID, admin.Email, admin.Role)
	if err != nil {
		return "", nil, err
	}

	return token, admin, nil
}

// Delete removes an admin account. Super admins are never deletable,
// regardless of caller privilege.
func (s *AdminService) Delete(ctx context.Context, id uuid.UUID) error {
	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if admin.Role == domain.RoleSuperAdmin {
		return domain.ErrSuperAdminImmutable
	}

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
