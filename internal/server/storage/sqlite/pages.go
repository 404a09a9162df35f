package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thaedal/thaedal-admin/internal/models"
	"github.com/thaedal/thaedal-admin/internal/server/storage"
)

// ListLegalPages returns all legal documents.
func (s *Storage) ListLegalPages(ctx context.Context) ([]models.LegalPage, error) {
	query := `SELECT page_type, title, content, updated_at FROM legal_pages ORDER BY page_type`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list legal pages: %w", err)
	}
	defer rows.Close()

	var pages []models.LegalPage
	for rows.Next() {
		var p models.LegalPage
		if err := rows.Scan(&p.PageType, &p.Title, &p.Content, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan legal page: %w", err)
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// GetLegalPage returns one legal document by page type.
func (s *Storage) GetLegalPage(ctx context.Context, pageType string) (*models.LegalPage, error) {
	query := `SELECT page_type, title, content, updated_at FROM legal_pages WHERE page_type = ?`
	var p models.LegalPage
	err := s.db.QueryRowContext(ctx, query, pageType).Scan(&p.PageType, &p.Title, &p.Content, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get legal page: %w", err)
	}
	return &p, nil
}

// UpdateLegalPage replaces the title and content of one legal document.
func (s *Storage) UpdateLegalPage(ctx context.Context, p *models.LegalPage) error {
	query := `
		UPDATE legal_pages SET title = ?, content = ?, updated_at = ?
		WHERE page_type = ?
	`
	result, err := s.db.ExecContext(ctx, query, p.Title, p.Content, p.UpdatedAt, p.PageType)
	if err != nil {
		return fmt.Errorf("failed to update legal page: %w", err)
	}
	return requireRowAffected(result)
}
