// Package storage defines the persistence interfaces of the admin API.
// Implementations return ErrNotFound for missing records so handlers can
// map failures uniformly.
package storage

import (
	"context"

	"github.com/thaedal/thaedal-admin/internal/models"
	"github.com/thaedal/thaedal-admin/pkg/api"
)

// AdminStorage holds console accounts.
type AdminStorage interface {
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetAdminByID(ctx context.Context, id string) (*models.Admin, error)
}

// VideoStorage persists videos.
type VideoStorage interface {
	ListVideos(ctx context.Context) ([]models.Video, error)
	GetVideo(ctx context.Context, id string) (*models.Video, error)
	CreateVideo(ctx context.Context, video *models.Video) error
	UpdateVideo(ctx context.Context, video *models.Video) error
	DeleteVideo(ctx context.Context, id string) error
}

// CategoryStorage persists categories.
type CategoryStorage interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id string) error
}

// CreatorStorage persists creators.
type CreatorStorage interface {
	ListCreators(ctx context.Context) ([]models.Creator, error)
	GetCreator(ctx context.Context, id string) (*models.Creator, error)
	CreateCreator(ctx context.Context, creator *models.Creator) error
	UpdateCreator(ctx context.Context, creator *models.Creator) error
	DeleteCreator(ctx context.Context, id string) error
}

// UserStorage persists end users. Users register through the app, so
// there is no create here; the console only reads and moderates.
type UserStorage interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id string) error
}

// PlanStorage persists subscription plans.
type PlanStorage interface {
	ListPlans(ctx context.Context) ([]models.Plan, error)
	GetPlan(ctx context.Context, id string) (*models.Plan, error)
	CreatePlan(ctx context.Context, plan *models.Plan) error
	UpdatePlan(ctx context.Context, plan *models.Plan) error
	DeletePlan(ctx context.Context, id string) error
}

// SubscriptionStorage persists subscriptions. They are created by the
// payment flow; the console reads them and flips their status.
type SubscriptionStorage interface {
	ListSubscriptions(ctx context.Context) ([]models.Subscription, error)
	GetSubscription(ctx context.Context, id string) (*models.Subscription, error)
	UpdateSubscriptionStatus(ctx context.Context, id, status string) error
}

// PaymentStorage reads immutable payment records.
type PaymentStorage interface {
	ListPayments(ctx context.Context) ([]models.Payment, error)
	GetPayment(ctx context.Context, id string) (*models.Payment, error)
}

// LegalPageStorage persists the editable legal documents, keyed by page
// type (terms, privacy, refund).
type LegalPageStorage interface {
	ListLegalPages(ctx context.Context) ([]models.LegalPage, error)
	GetLegalPage(ctx context.Context, pageType string) (*models.LegalPage, error)
	UpdateLegalPage(ctx context.Context, page *models.LegalPage) error
}

// SettingsStorage persists the payment gateway configuration (a single
// row).
type SettingsStorage interface {
	GetPaymentSettings(ctx context.Context) (*models.PaymentSettings, error)
	UpdatePaymentSettings(ctx context.Context, settings *models.PaymentSettings) error
}

// NotificationStorage persists the push notification history.
type NotificationStorage interface {
	ListNotifications(ctx context.Context) ([]models.Notification, error)
	CreateNotification(ctx context.Context, notification *models.Notification) error
}

// StatsStorage computes the dashboard summary.
type StatsStorage interface {
	GetStats(ctx context.Context) (*api.StatsResponse, error)
}
