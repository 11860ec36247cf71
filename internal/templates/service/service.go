package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/thequickanswers/subsite-backend/internal/templates/domain"
)

// Repository is the persistence surface the service needs.
type Repository interface {
	Create(ctx context.Context, name, appID, description string, structure json.RawMessage) (*domain.Template, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Template, error)
	Update(ctx context.Context, id uuid.UUID, name, description string, structure json.RawMessage) (*domain.Template, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]domain.Template, error)
}

// TemplateService handles template CRUD business rules.
type TemplateService struct {
	repo Repository
}

func New(repo Repository) *TemplateService {
	return &TemplateService{repo: repo}
}

// Create validates and persists a new template.
func (s *TemplateService) Create(ctx context.Context, name, appID, description string, structure json.RawMessage) (*domain.Template, error) {
	if name == "" || appID == "" || len(structure) == 0 {
		return nil, fmt.Errorf("name, amplifyAppId and structure are required")
	}
	return s.repo.Create(ctx, name, appID, description, structure)
}

// Update applies a partial update: absent fields keep their prior values.
func (s *TemplateService) Update(ctx context.Context, id uuid.UUID, name, description string, structure json.RawMessage) (*domain.Template, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = existing.Name
	}
	if description == "" {
		description = existing.Description
	}
	if len(structure) == 0 {
		structure = existing.Structure
	}

	return s.repo.Update(ctx, id, name, description, structure)
}

// Delete removes a template.
func (s *TemplateService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
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

// List returns all templates.
func (s *TemplateService) List(ctx context.Context) ([]domain.Template, error) {
	return s.repo.List(ctx)
}
