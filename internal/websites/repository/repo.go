package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/thequickanswers/subsite-backend/internal/websites/domain"
)

// WebsiteRepository provides persistence operations for website content.
// The subdomain column's unique constraint is the real uniqueness
// guarantee; Exists is only an advisory pre-check.
type WebsiteRepository struct {
	db *sql.DB
}

func New(db *sql.DB) *WebsiteRepository {
	return &WebsiteRepository{db: db}
}

// Create inserts a website record. A duplicate subdomain maps to
// domain.ErrSubdomainTaken via the unique-constraint violation.
func (r *WebsiteRepository) Create(ctx context.Context, name string, userID uuid.UUID, subdomain string, templateID uuid.UUID, content json.RawMessage) (*domain.Website, error) {
	const q = `
INSERT INTO websites (name, user_id, subdomain, template_id, content)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, user_id, subdomain, template_id, content, created_at, updated_at;
`
	var w domain.Website
	err := r.db.QueryRowContext(ctx, q, name, userID, subdomain, templateID, []byte(content)).
		Scan(&w.ID, &w.Name, &w.UserID, &w.Subdomain, &w.TemplateID, &w.Content, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrSubdomainTaken
		}
		return nil, err
	}
	return &w, nil
}

// GetBySubdomain returns the website provisioned at subdomain.
func (r *WebsiteRepository) GetBySubdomain(ctx context.Context, subdomain string) (*domain.Website, error) {
	const q = `
SELECT id, name, user_id, subdomain, template_id, content, created_at, updated_at
FROM websites
WHERE subdomain = $1;
`
	var w domain.Website
	err := r.db.QueryRowContext(ctx, q, subdomain).
		Scan(&w.ID, &w.Name, &w.UserID, &w.Subdomain, &w.TemplateID, &w.Content, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

// ExistsBySubdomain reports whether any website owns subdomain.
func (r *WebsiteRepository) ExistsBySubdomain(ctx context.Context, subdomain string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM websites WHERE subdomain = $1);`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, subdomain).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// DeleteBySubdomain removes the website at subdomain. Used by the
// provisioning compensation path only.
func (r *WebsiteRepository) DeleteBySubdomain(ctx context.Context, subdomain string) (bool, error) {
	const q = `DELETE FROM websites WHERE subdomain = $1;`
	result, err := r.db.ExecContext(ctx, q, subdomain)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
