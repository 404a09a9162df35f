package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thaedal/thaedal-admin/internal/models"
	"github.com/thaedal/thaedal-admin/internal/server/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func TestMigrations_SeedDataPresent(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	videos, err := s.ListVideos(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, videos)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, users)

	pages, err := s.ListLegalPages(ctx)
	require.NoError(t, err)
	assert.Len(t, pages, 3)
}

func TestVideoCRUD(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	video := &models.Video{
		ID:        "vid_test",
		Title:     "Pongal Special",
		Category:  "Food",
		Creator:   "Meena Vlogs",
		Duration:  "12:30",
		Status:    models.VideoStatusDraft,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.CreateVideo(ctx, video))

	got, err := s.GetVideo(ctx, "vid_test")
	require.NoError(t, err)
	assert.Equal(t, "Pongal Special", got.Title)
	assert.Equal(t, models.VideoStatusDraft, got.Status)

	got.Status = models.VideoStatusPublished
	require.NoError(t, s.UpdateVideo(ctx, got))

	updated, err := s.GetVideo(ctx, "vid_test")
	require.NoError(t, err)
	assert.Equal(t, models.VideoStatusPublished, updated.Status)

	require.NoError(t, s.DeleteVideo(ctx, "vid_test"))

	_, err = s.GetVideo(ctx, "vid_test")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateVideo_MissingRowIsNotFound(t *testing.T) {
	s := newTestStorage(t)

	err := s.UpdateVideo(context.Background(), &models.Video{ID: "vid_missing"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCreateCategory_DuplicateSlug(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	err := s.CreateCategory(ctx, &models.Category{ID: "cat_x", Name: "Comedy 2", Slug: "comedy"})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestPlanFeaturesRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	plan := &models.Plan{
		ID:           "pln_test",
		Name:         "Quarterly",
		Price:        249,
		DurationDays: 90,
		Features:     []string{"HD streaming", "3 devices"},
		IsActive:     true,
	}
	require.NoError(t, s.CreatePlan(ctx, plan))

	got, err := s.GetPlan(ctx, "pln_test")
	require.NoError(t, err)
	assert.Equal(t, plan.Features, got.Features)
}

func TestUpdateSubscriptionStatus(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.UpdateSubscriptionStatus(ctx, "sub_1", models.SubscriptionStatusCancelled))

	sub, err := s.GetSubscription(ctx, "sub_1")
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionStatusCancelled, sub.Status)

	err = s.UpdateSubscriptionStatus(ctx, "sub_missing", models.SubscriptionStatusActive)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetStats_CountsSeedData(t *testing.T) {
	s := newTestStorage(t)

	stats, err := s.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalUsers)
	assert.Equal(t, 2, stats.ActiveSubscriptions)
	assert.Equal(t, 4, stats.TotalVideos)
	// Revenue counts successful payments only: 999 + 99.
	assert.InDelta(t, 1098, stats.Revenue, 0.001)
}

func TestAdminAccount(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	admin := &models.Admin{
		ID:           "adm_1",
		Name:         "Admin",
		Email:        "admin@thaedal.com",
		PasswordHash: "$2a$10$fakehash",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.CreateAdmin(ctx, admin))
	assert.ErrorIs(t, s.CreateAdmin(ctx, admin), storage.ErrAlreadyExists)

	got, err := s.GetAdminByEmail(ctx, "admin@thaedal.com")
	require.NoError(t, err)
	assert.Equal(t, "adm_1", got.ID)

	_, err = s.GetAdminByEmail(ctx, "nobody@thaedal.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
