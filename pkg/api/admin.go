package api

// ListResponse wraps a resource collection. Total reflects the full
// server-side count before pagination.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// StatsResponse is the dashboard summary returned by GET /admin/stats.
type StatsResponse struct {
	TotalUsers          int     `json:"total_users"`
	ActiveSubscriptions int     `json:"active_subscriptions"`
	TotalVideos         int     `json:"total_videos"`
	TotalCategories     int     `json:"total_categories"`
	TotalCreators       int     `json:"total_creators"`
	Revenue             float64 `json:"revenue"`
}

// SubscriptionStatusRequest is the body of POST /admin/subscriptions/{id}/status.
type SubscriptionStatusRequest struct {
	Status string `json:"status"`
}

// SendNotificationRequest is the body of POST /admin/notifications/send.
type SendNotificationRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Audience string `json:"audience"` // all, subscribers, trial
}
