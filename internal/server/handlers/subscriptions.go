package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/xid"

	"github.com/thaedal/thaedal-admin/internal/models"
	"github.com/thaedal/thaedal-admin/internal/server/storage"
	"github.com/thaedal/thaedal-admin/internal/validation"
	"github.com/thaedal/thaedal-admin/pkg/api"
)

// SubscriptionHandler serves /subscriptions and the nested
// /subscriptions/plans collection.
type SubscriptionHandler struct {
	logger        *slog.Logger
	subscriptions storage.SubscriptionStorage
	plans         storage.PlanStorage
}

func NewSubscriptionHandler(logger *slog.Logger, subscriptions storage.SubscriptionStorage, plans storage.PlanStorage) *SubscriptionHandler {
	return &SubscriptionHandler{logger: logger, subscriptions: subscriptions, plans: plans}
}

// List handles GET /subscriptions.
func (h *SubscriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subscriptions.ListSubscriptions(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list subscriptions", "error", err)
		sendError(w, "internal", "internal server error", http.StatusInternalServerError)
		return
	}
	sendJSON(w, api.ListResponse[models.Subscription]{Items: subs, Total: len(subs)}, http.StatusOK)
}

// Get handles GET /subscriptions/{id}.
func (h *SubscriptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sub, err := h.subscriptions.GetSubscription(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.replyStorageError(w, r, err, "subscription")
		return
	}
	sendJSON(w, sub, http.StatusOK)
}

// UpdateStatus handles POST /subscriptions/{id}/status.
func (h *SubscriptionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var req api.SubscriptionStatusRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}
	if err := validation.ValidateOneOf("status", req.Status,
		models.SubscriptionStatusActive,
		models.SubscriptionStatusExpired,
		models.SubscriptionStatusCancelled); err != nil {
		sendValidation(w, map[string]string{"status": err.Error()})
		return
	}

	if err := h.subscriptions.UpdateSubscriptionStatus(ctx, id, req.Status); err != nil {
		h.replyStorageError(w, r, err, "subscription")
		return
	}

	sub, err := h.subscriptions.GetSubscription(ctx, id)
	if err != nil {
		h.replyStorageError(w, r, err, "subscription")
		return
	}

	h.logger.InfoContext(ctx, "subscription status updated", "id", id, "status", req.Status)
	sendJSON(w, sub, http.StatusOK)
}

func validatePlan(p *models.Plan) map[string]string {
	fields := make(map[string]string)
	if err := validation.ValidateRequired("name", p.Name); err != nil {
		fields["name"] = err.Error()
	}
	if p.Price < 0 {
		fields["price"] = "price must not be negative"
	}
	if p.DurationDays <= 0 {
		fields["duration_days"] = "duration must be positive"
	}
	return fields
}

// ListPlans handles GET /subscriptions/plans.
func (h *SubscriptionHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.plans.ListPlans(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list plans", "error", err)
		sendError(w, "internal", "internal server error", http.StatusInternalServerError)
		return
	}
	sendJSON(w, api.ListResponse[models.Plan]{Items: plans, Total: len(plans)}, http.StatusOK)
}

// GetPlan handles GET /subscriptions/plans/{id}.
func (h *SubscriptionHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.plans.GetPlan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.replyStorageError(w, r, err, "plan")
		return
	}
	sendJSON(w, plan, http.StatusOK)
}

// CreatePlan handles POST /subscriptions/plans.
func (h *SubscriptionHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var plan models.Plan
	if !decodeJSON(w, r, h.logger, &plan) {
		return
	}
	if fields := validatePlan(&plan); len(fields) > 0 {
		sendValidation(w, fields)
		return
	}

	plan.ID = "pln_" + xid.New().String()
	if err := h.plans.CreatePlan(r.Context(), &plan); err != nil {
		h.replyStorageError(w, r, err, "plan")
		return
	}
	sendJSON(w, plan, http.StatusCreated)
}

// UpdatePlan handles PUT /subscriptions/plans/{id}.
func (h *SubscriptionHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	var plan models.Plan
	if !decodeJSON(w, r, h.logger, &plan) {
		return
	}
	if fields := validatePlan(&plan); len(fields) > 0 {
		sendValidation(w, fields)
		return
	}

	plan.ID = chi.URLParam(r, "id")
	if err := h.plans.UpdatePlan(r.Context(), &plan); err != nil {
		h.replyStorageError(w, r, err, "plan")
		return
	}

	stored, err := h.plans.GetPlan(r.Context(), plan.ID)
	if err != nil {
		h.replyStorageError(w, r, err, "plan")
		return
	}
	sendJSON(w, stored, http.StatusOK)
}

// DeletePlan handles DELETE /subscriptions/plans/{id}.
func (h *SubscriptionHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	if err := h.plans.DeletePlan(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.replyStorageError(w, r, err, "plan")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SubscriptionHandler) replyStorageError(w http.ResponseWriter, r *http.Request, err error, kind string) {
	if errors.Is(err, storage.ErrNotFound) {
		sendError(w, "not_found", kind+" not found", http.StatusNotFound)
		return
	}
	h.logger.ErrorContext(r.Context(), "subscription storage failure", "error", err)
	sendError(w, "internal", "internal server error", http.StatusInternalServerError)
}
