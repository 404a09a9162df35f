package sqlite

import (
	"context"
	"fmt"

	"github.com/thaedal/thaedal-admin/internal/models"
)

// ListNotifications returns the send history, newest first.
func (s *Storage) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	query := `SELECT id, title, body, audience, sent_at FROM notifications ORDER BY sent_at DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.Audience, &n.SentAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// CreateNotification records a sent notification.
func (s *Storage) CreateNotification(ctx context.Context, n *models.Notification) error {
	query := `INSERT INTO notifications (id, title, body, audience, sent_at) VALUES (?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, n.ID, n.Title, n.Body, n.Audience, n.SentAt); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}
