package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/thaedal/thaedal-admin/internal/models"
	"github.com/thaedal/thaedal-admin/internal/server/storage"
	"github.com/thaedal/thaedal-admin/pkg/api"
)

// PaymentHandler serves the read-only /payments collection.
type PaymentHandler struct {
	logger   *slog.Logger
	payments storage.PaymentStorage
}

func NewPaymentHandler(logger *slog.Logger, payments storage.PaymentStorage) *PaymentHandler {
	return &PaymentHandler{logger: logger, payments: payments}
}

// List handles GET /payments.
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	payments, err := h.payments.ListPayments(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list payments", "error", err)
		sendError(w, "internal", "internal server error", http.StatusInternalServerError)
		return
	}
	sendJSON(w, api.ListResponse[models.Payment]{Items: payments, Total: len(payments)}, http.StatusOK)
}

// Get handles GET /payments/{id}.
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	payment, err := h.payments.GetPayment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(w, "not_found", "payment not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "payment storage failure", "error", err)
		sendError(w, "internal", "internal server error", http.StatusInternalServerError)
		return
	}
	sendJSON(w, payment, http.StatusOK)
}
