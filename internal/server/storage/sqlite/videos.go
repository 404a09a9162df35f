package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thaedal/thaedal-admin/internal/models"
	"github.com/thaedal/thaedal-admin/internal/server/storage"
)

// ListVideos returns all videos, newest first.
func (s *Storage) ListVideos(ctx context.Context) ([]models.Video, error) {
	query := `
		SELECT id, title, thumbnail, category, creator, views, likes, duration, status, created_at
		FROM videos ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	defer rows.Close()

	var videos []models.Video
	for rows.Next() {
		var v models.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.Thumbnail, &v.Category, &v.Creator,
			&v.Views, &v.Likes, &v.Duration, &v.Status, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// GetVideo returns one video by id.
func (s *Storage) GetVideo(ctx context.Context, id string) (*models.Video, error) {
	query := `
		SELECT id, title, thumbnail, category, creator, views, likes, duration, status, created_at
		FROM videos WHERE id = ?
	`
	var v models.Video
	err := s.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Title, &v.Thumbnail,
		&v.Category, &v.Creator, &v.Views, &v.Likes, &v.Duration, &v.Status, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get video: %w", err)
	}
	return &v, nil
}

// CreateVideo inserts a video with its server-assigned id.
func (s *Storage) CreateVideo(ctx context.Context, v *models.Video) error {
	query := `
		INSERT INTO videos (id, title, thumbnail, category, creator, views, likes, duration, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query, v.ID, v.Title, v.Thumbnail, v.Category,
		v.Creator, v.Views, v.Likes, v.Duration, v.Status, v.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert video: %w", err)
	}
	return nil
}

// UpdateVideo replaces the stored video.
func (s *Storage) UpdateVideo(ctx context.Context, v *models.Video) error {
	query := `
		UPDATE videos
		SET title = ?, thumbnail = ?, category = ?, creator = ?, views = ?, likes = ?, duration = ?, status = ?
		WHERE id = ?
	`
	result, err := s.db.ExecContext(ctx, query, v.Title, v.Thumbnail, v.Category,
		v.Creator, v.Views, v.Likes, v.Duration, v.Status, v.ID)
	if err != nil {
		return fmt.Errorf("failed to update video: %w", err)
	}
	return requireRowAffected(result)
}

// DeleteVideo removes one video by id.
func (s *Storage) DeleteVideo(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM videos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	return requireRowAffected(result)
}

// requireRowAffected maps zero-row writes to ErrNotFound.
func requireRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
