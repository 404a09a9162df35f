package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/thaedal/thaedal-admin/internal/models"
	pkgapi "github.com/thaedal/thaedal-admin/pkg/api"
)

// Non-collection endpoints of the admin API: authentication, dashboard
// stats, the odd per-resource action and the settings screens.

// Login exchanges the admin credential pair for a token.
func (c *Client) Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
	var resp pkgapi.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/login", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Logout notifies the server that the session ended. Best effort; local
// credential cleanup does not depend on this succeeding.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodPost, "/logout", nil, nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// Profile resolves the current credential to an identity.
func (c *Client) Profile(ctx context.Context) (*pkgapi.ProfileResponse, error) {
	var resp pkgapi.ProfileResponse
	if err := c.doRequest(ctx, http.MethodGet, "/profile", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	return &resp, nil
}

// Stats returns the dashboard summary.
func (c *Client) Stats(ctx context.Context) (*pkgapi.StatsResponse, error) {
	var resp pkgapi.StatsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/stats", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("stats request failed: %w", err)
	}
	return &resp, nil
}

// ToggleUserSubscription flips the subscription flag of one user and
// returns the updated record.
func (c *Client) ToggleUserSubscription(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	path := "/users/" + url.PathEscape(id) + "/toggle-subscription"
	if err := c.doRequest(ctx, http.MethodPost, path, nil, nil, &user); err != nil {
		return nil, fmt.Errorf("toggle subscription failed: %w", err)
	}
	return &user, nil
}

// UpdateSubscriptionStatus sets the status of one subscription.
func (c *Client) UpdateSubscriptionStatus(ctx context.Context, id, status string) (*models.Subscription, error) {
	var sub models.Subscription
	path := "/subscriptions/" + url.PathEscape(id) + "/status"
	req := pkgapi.SubscriptionStatusRequest{Status: status}
	if err := c.doRequest(ctx, http.MethodPost, path, nil, req, &sub); err != nil {
		return nil, fmt.Errorf("update subscription status failed: %w", err)
	}
	return &sub, nil
}

// LegalPages lists the editable legal documents.
func (c *Client) LegalPages(ctx context.Context) ([]models.LegalPage, error) {
	var resp pkgapi.ListResponse[models.LegalPage]
	if err := c.doRequest(ctx, http.MethodGet, "/legal-pages", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("legal pages request failed: %w", err)
	}
	return resp.Items, nil
}

// LegalPage returns one legal document by page type.
func (c *Client) LegalPage(ctx context.Context, pageType string) (*models.LegalPage, error) {
	var page models.LegalPage
	path := "/legal-pages/" + url.PathEscape(pageType)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &page); err != nil {
		return nil, fmt.Errorf("legal page request failed: %w", err)
	}
	return &page, nil
}

// UpdateLegalPage replaces the content of one legal document.
func (c *Client) UpdateLegalPage(ctx context.Context, pageType string, page models.LegalPage) (*models.LegalPage, error) {
	var updated models.LegalPage
	path := "/legal-pages/" + url.PathEscape(pageType)
	if err := c.doRequest(ctx, http.MethodPut, path, nil, page, &updated); err != nil {
		return nil, fmt.Errorf("update legal page failed: %w", err)
	}
	return &updated, nil
}

// PaymentSettings returns the payment gateway configuration.
func (c *Client) PaymentSettings(ctx context.Context) (*models.PaymentSettings, error) {
	var settings models.PaymentSettings
	if err := c.doRequest(ctx, http.MethodGet, "/payment-settings", nil, nil, &settings); err != nil {
		return nil, fmt.Errorf("payment settings request failed: %w", err)
	}
	return &settings, nil
}

// UpdatePaymentSettings replaces the payment gateway configuration.
func (c *Client) UpdatePaymentSettings(ctx context.Context, settings models.PaymentSettings) (*models.PaymentSettings, error) {
	var updated models.PaymentSettings
	if err := c.doRequest(ctx, http.MethodPut, "/payment-settings", nil, settings, &updated); err != nil {
		return nil, fmt.Errorf("update payment settings failed: %w", err)
	}
	return &updated, nil
}

// Notifications returns the send history, newest first.
func (c *Client) Notifications(ctx context.Context) ([]models.Notification, error) {
	var resp pkgapi.ListResponse[models.Notification]
	if err := c.doRequest(ctx, http.MethodGet, "/notifications", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("notifications request failed: %w", err)
	}
	return resp.Items, nil
}

// SendNotification pushes a notification to the selected audience.
func (c *Client) SendNotification(ctx context.Context, req pkgapi.SendNotificationRequest) (*models.Notification, error) {
	var sent models.Notification
	if err := c.doRequest(ctx, http.MethodPost, "/notifications/send", nil, req, &sent); err != nil {
		return nil, fmt.Errorf("send notification failed: %w", err)
	}
	return &sent, nil
}
