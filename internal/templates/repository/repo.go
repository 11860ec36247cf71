package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/thequickanswers/subsite-backend/internal/templates/domain"
)

// TemplateRepository provides persistence operations for templates.
type TemplateRepository struct {
	db *sql.DB
}

func New(db *sql.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// Create inserts a new template. A duplicate app ID maps to domain.ErrAppIDTaken.
func (r *TemplateRepository) Create(ctx context.Context, name, appID, description string, structure json.RawMessage) (*domain.Template, error) {
	const q = `
INSERT INTO templates (name, app_id, description, structure)
VALUES ($1, $2, $3, $4)
RETURNING id, name, app_id, description, structure, created_at, updated_at;
`
	var t domain.Template
	err := r.db.QueryRowContext(ctx, q, name, appID, description, []byte(structure)).
		Scan(&t.ID, &t.Name, &t.AppID, &t.Description, &t.Structure, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAppIDTaken
		}
		return nil, err
	}
	return &t, nil
}

// FindByID returns the template with the given ID.
func (r *TemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
	const q = `
SELECT id, name, app_id, description, structure, created_at, updated_at
FROM templates
WHERE id = $1;
`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

// FindByAppID returns the template owning the given hosting app ID.
// At most one row exists since app_id is unique.
func (r *TemplateRepository) FindByAppID(ctx context.Context, appID string) (*domain.Template, error) {
	const q = `
SELECT id, name, app_id, description, structure, created_at, updated_at
FROM templates
WHERE app_id = $1;
`
	return r.scanOne(r.db.QueryRowContext(ctx, q, appID))
}

// Update overwrites the mutable fields of a template.
func (r *TemplateRepository) Update(ctx context.Context, id uuid.UUID, name, description string, structure json.RawMessage) (*domain.Template, error) {
	const q = `
UPDATE templates
SET name = $2, description = $3, structure = $4, updated_at = now()
WHERE id = $1
RETURNING id, name, app_id, description, structure, created_at, updated_at;
`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id, name, description, []byte(structure)))
}

// Delete removes the template with the given ID.
func (r *TemplateRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `DELETE FROM templates WHERE id = $1;`
	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// List returns all templates, newest first.
func (r *TemplateRepository) List(ctx context.Context) ([]domain.Template, error) {
	const q = `
SELECT id, name, app_id, description, structure, created_at, updated_at
FROM templates
ORDER BY created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Template, 0, 16)
	for rows.Next() {
		var t domain.Template
		if err := rows.Scan(&t.ID, &t.Name, &t.AppID, &t.Description, &t.Structure, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TemplateRepository) scanOne(row *sql.Row) (*domain.Template, error) {
	var t domain.Template
	err := row.Scan(&t.ID, &t.Name, &t.AppID, &t.Description, &t.Structure, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}
