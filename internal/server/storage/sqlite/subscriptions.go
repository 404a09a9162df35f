package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thaedal/thaedal-admin/internal/models"
	"github.com/thaedal/thaedal-admin/internal/server/storage"
)

// ListSubscriptions returns all subscriptions, newest first.
func (s *Storage) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	query := `
		SELECT id, user, plan, start_date, end_date, amount, status
		FROM subscriptions ORDER BY start_date DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []models.Subscription
	for rows.Next() {
		var sub models.Subscription
		if err := rows.Scan(&sub.ID, &sub.User, &sub.Plan, &sub.StartDate,
			&sub.EndDate, &sub.Amount, &sub.Status); err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// GetSubscription returns one subscription by id.
func (s *Storage) GetSubscription(ctx context.Context, id string) (*models.Subscription, error) {
	query := `
		SELECT id, user, plan, start_date, end_date, amount, status
		FROM subscriptions WHERE id = ?
	`
	var sub models.Subscription
	err := s.db.QueryRowContext(ctx, query, id).Scan(&sub.ID, &sub.User, &sub.Plan,
		&sub.StartDate, &sub.EndDate, &sub.Amount, &sub.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return &sub, nil
}

// UpdateSubscriptionStatus sets the status of one subscription.
func (s *Storage) UpdateSubscriptionStatus(ctx context.Context, id, status string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE subscriptions SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update subscription status: %w", err)
	}
	return requireRowAffected(result)
}
