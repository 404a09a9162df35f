package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thaedal/thaedal-admin/internal/models"
	"github.com/thaedal/thaedal-admin/internal/server/storage"
)

// CreateAdmin inserts a console account. Used by the startup seeding.
func (s *Storage) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (id, name, email, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		admin.ID, admin.Name, admin.Email, admin.PasswordHash, admin.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert admin: %w", err)
	}
	return nil
}

// GetAdminByEmail retrieves a console account by email.
func (s *Storage) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM admins WHERE email = ?
	`
	return s.scanAdmin(s.db.QueryRowContext(ctx, query, email))
}

// GetAdminByID retrieves a console account by id.
func (s *Storage) GetAdminByID(ctx context.Context, id string) (*models.Admin, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM admins WHERE id = ?
	`
	return s.scanAdmin(s.db.QueryRowContext(ctx, query, id))
}

func (s *Storage) scanAdmin(row *sql.Row) (*models.Admin, error) {
	admin := &models.Admin{}
	err := row.Scan(&admin.ID, &admin.Name, &admin.Email, &admin.PasswordHash, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return admin, nil
}
