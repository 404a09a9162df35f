// Package models holds the admin-facing records of the Thaedal platform.
// Identifiers are opaque strings assigned by the server; clients never
// invent them.
package models

import "time"

// Video is one piece of video content.
type Video struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Thumbnail string    `json:"thumbnail"`
	Category  string    `json:"category"`
	Creator   string    `json:"creator"`
	Views     int64     `json:"views"`
	Likes     int64     `json:"likes"`
	Duration  string    `json:"duration"` // mm:ss as shown in the player
	Status    string    `json:"status"`   // published or draft
	CreatedAt time.Time `json:"created_at"`
}

// Video statuses.
const (
	VideoStatusPublished = "published"
	VideoStatusDraft     = "draft"
)

// Category groups videos. NameTamil carries the localized display name.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NameTamil   string `json:"name_tamil"`
	Slug        string `json:"slug"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	VideosCount int    `json:"videos_count"`
	IsActive    bool   `json:"is_active"`
}

// Creator is a content author shown on videos.
type Creator struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	Bio         string `json:"bio"`
	VideosCount int    `json:"videos_count"`
	TotalViews  int64  `json:"total_views"`
	IsVerified  bool   `json:"is_verified"`
}

// User is an end user of the platform.
type User struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Phone               string     `json:"phone"`
	Email               string     `json:"email"`
	IsSubscribed        bool       `json:"is_subscribed"`
	IsTrialActive       bool       `json:"is_trial_active"`
	SubscriptionEndDate *time.Time `json:"subscription_end_date,omitempty"`
	Status              string     `json:"status"` // active or inactive
	CreatedAt           time.Time  `json:"created_at"`
}

// User statuses.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// Plan is a purchasable subscription plan.
type Plan struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Price            float64  `json:"price"`
	DurationDays     int      `json:"duration_days"`
	Features         []string `json:"features"`
	IsActive         bool     `json:"is_active"`
	SubscribersCount int      `json:"subscribers_count"`
}

// Subscription is a user's purchase of a plan.
type Subscription struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Plan      string    `json:"plan"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"` // active, expired or cancelled
}

// Subscription statuses.
const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusExpired   = "expired"
	SubscriptionStatusCancelled = "cancelled"
)

// Payment is one payment attempt against a plan.
type Payment struct {
	ID            string    `json:"id"`
	User          string    `json:"user"`
	Amount        float64   `json:"amount"`
	Plan          string    `json:"plan"`
	Method        string    `json:"method"` // UPI, Card, Net Banking
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status"` // success, failed or pending
	Date          time.Time `json:"date"`
}

// Payment statuses.
const (
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
	PaymentStatusPending = "pending"
)

// LegalPage is an editable legal document (terms, privacy, refund).
type LegalPage struct {
	PageType  string    `json:"page_type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PaymentSettings controls which payment methods are offered.
type PaymentSettings struct {
	UPIEnabled        bool   `json:"upi_enabled"`
	CardEnabled       bool   `json:"card_enabled"`
	NetBankingEnabled bool   `json:"net_banking_enabled"`
	GatewayKey        string `json:"gateway_key"`
}

// Notification is one push notification sent to users.
type Notification struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Audience string    `json:"audience"`
	SentAt   time.Time `json:"sent_at"`
}

// Admin is a console account. PasswordHash is bcrypt and never leaves
// the server.
type Admin struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
