package domain

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound         = errors.New("website not found")
	ErrInvalidApp       = errors.New("invalid hosting app")
	ErrNameRequired     = errors.New("name is required")
	ErrSubdomainTaken   = errors.New("subdomain already exists")
	ErrInvalidSubdomain = errors.New("invalid subdomain")
)

// Website is a user's site instance: a subdomain bound to a template's
// app, with a content payload cloned from the template at creation.
type Website struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	UserID     uuid.UUID       `json:"user"`
	Subdomain  string          `json:"subdomain"`
	TemplateID uuid.UUID       `json:"template"`
	Content    json.RawMessage `json:"content"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
