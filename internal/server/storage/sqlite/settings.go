package sqlite

import (
	"context"
	"fmt"

	"github.com/thaedal/thaedal-admin/internal/models"
)

// Payment settings live in a single fixed row.

// GetPaymentSettings returns the payment gateway configuration.
func (s *Storage) GetPaymentSettings(ctx context.Context) (*models.PaymentSettings, error) {
	query := `
		SELECT upi_enabled, card_enabled, net_banking_enabled, gateway_key
		FROM payment_settings WHERE id = 1
	`
	var settings models.PaymentSettings
	err := s.db.QueryRowContext(ctx, query).Scan(&settings.UPIEnabled,
		&settings.CardEnabled, &settings.NetBankingEnabled, &settings.GatewayKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment settings: %w", err)
	}
	return &settings, nil
}

// UpdatePaymentSettings replaces the payment gateway configuration.
func (s *Storage) UpdatePaymentSettings(ctx context.Context, settings *models.PaymentSettings) error {
	query := `
		UPDATE payment_settings
		SET upi_enabled = ?, card_enabled = ?, net_banking_enabled = ?, gateway_key = ?
		WHERE id = 1
	`
	if _, err := s.db.ExecContext(ctx, query, settings.UPIEnabled,
		settings.CardEnabled, settings.NetBankingEnabled, settings.GatewayKey); err != nil {
		return fmt.Errorf("failed to update payment settings: %w", err)
	}
	return nil
}
