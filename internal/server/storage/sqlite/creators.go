package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thaedal/thaedal-admin/internal/models"
	"github.com/thaedal/thaedal-admin/internal/server/storage"
)

// ListCreators returns all creators ordered by name.
func (s *Storage) ListCreators(ctx context.Context) ([]models.Creator, error) {
	query := `
		SELECT id, name, avatar, bio, videos_count, total_views, is_verified
		FROM creators ORDER BY name
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list creators: %w", err)
	}
	defer rows.Close()

	var creators []models.Creator
	for rows.Next() {
		var c models.Creator
		if err := rows.Scan(&c.ID, &c.Name, &c.Avatar, &c.Bio,
			&c.VideosCount, &c.TotalViews, &c.IsVerified); err != nil {
			return nil, fmt.Errorf("failed to scan creator: %w", err)
		}
		creators = append(creators, c)
	}
	return creators, rows.Err()
}

// GetCreator returns one creator by id.
func (s *Storage) GetCreator(ctx context.Context, id string) (*models.Creator, error) {
	query := `
		SELECT id, name, avatar, bio, videos_count, total_views, is_verified
		FROM creators WHERE id = ?
	`
	var c models.Creator
	err := s.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Avatar,
		&c.Bio, &c.VideosCount, &c.TotalViews, &c.IsVerified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get creator: %w", err)
	}
	return &c, nil
}

// CreateCreator inserts a creator.
func (s *Storage) CreateCreator(ctx context.Context, c *models.Creator) error {
	query := `
		INSERT INTO creators (id, name, avatar, bio, videos_count, total_views, is_verified)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query, c.ID, c.Name, c.Avatar, c.Bio,
		c.VideosCount, c.TotalViews, c.IsVerified)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert creator: %w", err)
	}
	return nil
}

// UpdateCreator replaces the stored creator.
func (s *Storage) UpdateCreator(ctx context.Context, c *models.Creator) error {
	query := `
		UPDATE creators
		SET name = ?, avatar = ?, bio = ?, is_verified = ?
		WHERE id = ?
	`
	result, err := s.db.ExecContext(ctx, query, c.Name, c.Avatar, c.Bio, c.IsVerified, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update creator: %w", err)
	}
	return requireRowAffected(result)
}

// DeleteCreator removes one creator by id.
func (s *Storage) DeleteCreator(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM creators WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete creator: %w", err)
	}
	return requireRowAffected(result)
}
