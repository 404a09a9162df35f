package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thaedal/thaedal-admin/internal/models"
	"github.com/thaedal/thaedal-admin/internal/server/storage"
)

// ListCategories returns all categories ordered by name.
func (s *Storage) ListCategories(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT id, name, name_tamil, slug, icon, color, videos_count, is_active
		FROM categories ORDER BY name
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.NameTamil, &c.Slug, &c.Icon,
			&c.Color, &c.VideosCount, &c.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetCategory returns one category by id.
func (s *Storage) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	query := `
		SELECT id, name, name_tamil, slug, icon, color, videos_count, is_active
		FROM categories WHERE id = ?
	`
	var c models.Category
	err := s.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.NameTamil,
		&c.Slug, &c.Icon, &c.Color, &c.VideosCount, &c.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &c, nil
}

// CreateCategory inserts a category. Slugs are unique.
func (s *Storage) CreateCategory(ctx context.Context, c *models.Category) error {
	query := `
		INSERT INTO categories (id, name, name_tamil, slug, icon, color, videos_count, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query, c.ID, c.Name, c.NameTamil, c.Slug,
		c.Icon, c.Color, c.VideosCount, c.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

// UpdateCategory replaces the stored category.
func (s *Storage) UpdateCategory(ctx context.Context, c *models.Category) error {
	query := `
		UPDATE categories
		SET name = ?, name_tamil = ?, slug = ?, icon = ?, color = ?, is_active = ?
		WHERE id = ?
	`
	result, err := s.db.ExecContext(ctx, query, c.Name, c.NameTamil, c.Slug,
		c.Icon, c.Color, c.IsActive, c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	return requireRowAffected(result)
}

// DeleteCategory removes one category by id.
func (s *Storage) DeleteCategory(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return requireRowAffected(result)
}
