package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/xid"

	"github.com/thaedal/thaedal-admin/internal/models"
	"github.com/thaedal/thaedal-admin/internal/server/storage"
	"github.com/thaedal/thaedal-admin/internal/validation"
	"github.com/thaedal/thaedal-admin/pkg/api"
)

// SettingsHandler serves the settings screens: legal pages, payment
// gateway configuration and the notification history.
type SettingsHandler struct {
	logger        *slog.Logger
	pages         storage.LegalPageStorage
	settings      storage.SettingsStorage
	notifications storage.NotificationStorage
}

func NewSettingsHandler(
	logger *slog.Logger,
	pages storage.LegalPageStorage,
	settings storage.SettingsStorage,
	notifications storage.NotificationStorage,
) *SettingsHandler {
	return &SettingsHandler{
		logger:        logger,
		pages:         pages,
		settings:      settings,
		notifications: notifications,
	}
}

// ListLegalPages handles GET /legal-pages.
func (h *SettingsHandler) ListLegalPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.pages.ListLegalPages(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list legal pages", "error", err)
		sendError(w, "internal", "internal server error", http.StatusInternalServerError)
		return
	}
	sendJSON(w, api.ListResponse[models.LegalPage]{Items: pages, Total: len(pages)}, http.StatusOK)
}

// GetLegalPage handles GET /legal-pages/{type}.
func (h *SettingsHandler) GetLegalPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.pages.GetLegalPage(r.Context(), chi.URLParam(r, "type"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(w, "not_found", "legal page not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "legal page storage failure", "error", err)
		sendError(w, "internal", "internal server error", http.StatusInternalServerError)
		return
	}
	sendJSON(w, page, http.StatusOK)
}

// UpdateLegalPage handles PUT /legal-pages/{type}.
func (h *SettingsHandler) UpdateLegalPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var page models.LegalPage
	if !decodeJSON(w, r, h.logger, &page) {
		return
	}
	if err := validation.ValidateRequired("title", page.Title); err != nil {
		sendValidation(w, map[string]string{"title": err.Error()})
		return
	}

	page.PageType = chi.URLParam(r, "type")
	page.UpdatedAt = time.Now().UTC()

	if err := h.pages.UpdateLegalPage(ctx, &page); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(w, "not_found", "legal page not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update legal page", "error", err)
		sendError(w, "internal", "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "legal page updated", "page_type", page.PageType)
	sendJSON(w, page, http.StatusOK)
}

// GetPaymentSettings handles GET /payment-settings.
func (h *SettingsHandler) GetPaymentSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.GetPaymentSettings(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to get payment settings", "error", err)
		sendError(w, "internal", "internal server error", http.StatusInternalServerError)
		return
	}
	sendJSON(w, settings, http.StatusOK)
}

// UpdatePaymentSettings handles PUT /payment-settings.
func (h *SettingsHandler) UpdatePaymentSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var settings models.PaymentSettings
	if !decodeJSON(w, r, h.logger, &settings) {
		return
	}

	if err := h.settings.UpdatePaymentSettings(ctx, &settings); err != nil {
		h.logger.ErrorContext(ctx, "failed to update payment settings", "error", err)
		sendError(w, "internal", "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "payment settings updated")
	sendJSON(w, settings, http.StatusOK)
}

// ListNotifications handles GET /notifications.
func (h *SettingsHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notifications.ListNotifications(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list notifications", "error", err)
		sendError(w, "internal", "internal server error", http.StatusInternalServerError)
		return
	}
	sendJSON(w, api.ListResponse[models.Notification]{Items: notifications, Total: len(notifications)}, http.StatusOK)
}

// SendNotification handles POST /notifications/send. Delivery to
// devices is out of scope; the record is stored as history.
func (h *SettingsHandler) SendNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SendNotificationRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	fields := make(map[string]string)
	if err := validation.ValidateRequired("title", req.Title); err != nil {
		fields["title"] = err.Error()
	}
	if err := validation.ValidateOneOf("audience", req.Audience, "all", "subscribers", "trial"); err != nil {
		fields["audience"] = err.Error()
	}
	if len(fields) > 0 {
		sendValidation(w, fields)
		return
	}

	notification := models.Notification{
		ID:       "ntf_" + xid.New().String(),
		Title:    req.Title,
		Body:     req.Body,
		Audience: req.Audience,
		SentAt:   time.Now().UTC(),
	}
	if err := h.notifications.CreateNotification(ctx, &notification); err != nil {
		h.logger.ErrorContext(ctx, "failed to store notification", "error", err)
		sendError(w, "internal", "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "notification sent", "id", notification.ID, "audience", notification.Audience)
	sendJSON(w, notification, http.StatusCreated)
}
