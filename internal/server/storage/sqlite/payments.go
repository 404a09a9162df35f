package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thaedal/thaedal-admin/internal/models"
	"github.com/thaedal/thaedal-admin/internal/server/storage"
)

// ListPayments returns all payments, newest first.
func (s *Storage) ListPayments(ctx context.Context) ([]models.Payment, error) {
	query := `
		SELECT id, user, amount, plan, method, transaction_id, status, date
		FROM payments ORDER BY date DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.User, &p.Amount, &p.Plan, &p.Method,
			&p.TransactionID, &p.Status, &p.Date); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// GetPayment returns one payment by id.
func (s *Storage) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	query := `
		SELECT id, user, amount, plan, method, transaction_id, status, date
		FROM payments WHERE id = ?
	`
	var p models.Payment
	err := s.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.User, &p.Amount,
		&p.Plan, &p.Method, &p.TransactionID, &p.Status, &p.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &p, nil
}
