package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/thaedal/thaedal-admin/internal/models"
	"github.com/thaedal/thaedal-admin/internal/server/storage"
)

// Plan features are stored as a JSON array in a text column.

// ListPlans returns all plans ordered by price.
func (s *Storage) ListPlans(ctx context.Context) ([]models.Plan, error) {
	query := `
		SELECT id, name, price, duration_days, features, is_active, subscribers_count
		FROM plans ORDER BY price
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var plans []models.Plan
	for rows.Next() {
		p, err := scanPlan(rows.Scan)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *p)
	}
	return plans, rows.Err()
}

// GetPlan returns one plan by id.
func (s *Storage) GetPlan(ctx context.Context, id string) (*models.Plan, error) {
	query := `
		SELECT id, name, price, duration_days, features, is_active, subscribers_count
		FROM plans WHERE id = ?
	`
	p, err := scanPlan(s.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// CreatePlan inserts a plan.
func (s *Storage) CreatePlan(ctx context.Context, p *models.Plan) error {
	features, err := json.Marshal(p.Features)
	if err != nil {
		return fmt.Errorf("failed to marshal features: %w", err)
	}
	query := `
		INSERT INTO plans (id, name, price, duration_days, features, is_active, subscribers_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := s.db.ExecContext(ctx, query, p.ID, p.Name, p.Price, p.DurationDays,
		string(features), p.IsActive, p.SubscribersCount); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert plan: %w", err)
	}
	return nil
}

// UpdatePlan replaces the stored plan.
func (s *Storage) UpdatePlan(ctx context.Context, p *models.Plan) error {
	features, err := json.Marshal(p.Features)
	if err != nil {
		return fmt.Errorf("failed to marshal features: %w", err)
	}
	query := `
		UPDATE plans
		SET name = ?, price = ?, duration_days = ?, features = ?, is_active = ?
		WHERE id = ?
	`
	result, err := s.db.ExecContext(ctx, query, p.Name, p.Price, p.DurationDays,
		string(features), p.IsActive, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}
	return requireRowAffected(result)
}

// DeletePlan removes one plan by id.
func (s *Storage) DeletePlan(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	return requireRowAffected(result)
}

func scanPlan(scan func(...any) error) (*models.Plan, error) {
	p := &models.Plan{}
	var features string
	err := scan(&p.ID, &p.Name, &p.Price, &p.DurationDays, &features,
		&p.IsActive, &p.SubscribersCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan plan: %w", err)
	}
	if err := json.Unmarshal([]byte(features), &p.Features); err != nil {
		return nil, fmt.Errorf("failed to unmarshal features: %w", err)
	}
	return p, nil
}
