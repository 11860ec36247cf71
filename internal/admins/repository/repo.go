package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/thequickanswers/subsite-backend/internal/admins/domain"
)

// AdminRepository provides persistence operations for admin accounts.
type AdminRepository struct {
	db *sql.DB
}

func New(db *sql.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create inserts a new admin. A duplicate email maps to domain.ErrEmailTaken.
func (r *AdminRepository) Create(ctx context.Context, email, passwordHash, role string) (*domain.Admin, error) {
	const q = `
INSERT INTO admins (email, password_hash, role)
VALUES ($1, $2, $3)
RETURNING id, email, password_hash, role, created_at;
`
	var a domain.Admin
	err := r.db.QueryRowContext(ctx, q, email, passwordHash, role).
		Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return &a, nil
}

// FindByEmail returns the admin with the given email.
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	const q = `
SELECT id, email, password_hash, role, created_at
FROM admins
WHERE email = $1;
`
	var a domain.Admin
	err := r.db.QueryRowContext(ctx, q, email).
		Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindByID returns the admin with the given ID.
func (r *AdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	const q = `
SELECT id, email, password_hash, role, created_at
FROM admins
WHERE id = $1;
`
	var a domain.Admin
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ExistsWithRole reports whether an admin with the given ID currently holds role.
func (r *AdminRepository) ExistsWithRole(ctx context.Context, id uuid.UUID, role string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM admins WHERE id = $1 AND role = $2);`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, id, role).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ExistsSuperAdmin reports whether any super admin account exists.
func (r *AdminRepository) ExistsSuperAdmin(ctx context.Context) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM admins WHERE role = 'super_admin');`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Delete removes the admin with the given ID.
func (r *AdminRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `DELETE FROM admins WHERE id = $1;`
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
