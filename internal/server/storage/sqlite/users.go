package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thaedal/thaedal-admin/internal/models"
	"github.com/thaedal/thaedal-admin/internal/server/storage"
)

// ListUsers returns all end users, newest first.
func (s *Storage) ListUsers(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, name, phone, email, is_subscribed, is_trial_active, subscription_end_date, status, created_at
		FROM users ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// GetUser returns one end user by id.
func (s *Storage) GetUser(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, name, phone, email, is_subscribed, is_trial_active, subscription_end_date, status, created_at
		FROM users WHERE id = ?
	`
	u, err := scanUser(s.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// UpdateUser replaces the mutable fields of a user record.
func (s *Storage) UpdateUser(ctx context.Context, u *models.User) error {
	query := `
		UPDATE users
		SET name = ?, phone = ?, email = ?, is_subscribed = ?, is_trial_active = ?, subscription_end_date = ?, status = ?
		WHERE id = ?
	`
	var endDate sql.NullTime
	if u.SubscriptionEndDate != nil {
		endDate = sql.NullTime{Time: *u.SubscriptionEndDate, Valid: true}
	}
	result, err := s.db.ExecContext(ctx, query, u.Name, u.Phone, u.Email,
		u.IsSubscribed, u.IsTrialActive, endDate, u.Status, u.ID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return requireRowAffected(result)
}

// DeleteUser removes one end user by id.
func (s *Storage) DeleteUser(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return requireRowAffected(result)
}

func scanUser(scan func(...any) error) (*models.User, error) {
	u := &models.User{}
	var endDate sql.NullTime
	err := scan(&u.ID, &u.Name, &u.Phone, &u.Email, &u.IsSubscribed,
		&u.IsTrialActive, &endDate, &u.Status, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	if endDate.Valid {
		u.SubscriptionEndDate = &endDate.Time
	}
	return u, nil
}
