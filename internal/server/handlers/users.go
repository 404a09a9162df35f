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

// UserHandler serves the /users collection. No create or full update:
// users register through the app, the console only moderates them.
type UserHandler struct {
	logger *slog.Logger
	users  storage.UserStorage
}

func NewUserHandler(logger *slog.Logger, users storage.UserStorage) *UserHandler {
	return &UserHandler{logger: logger, users: users}
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list users", "error", err)
		sendError(w, "internal", "internal server error", http.StatusInternalServerError)
		return
	}
	sendJSON(w, api.ListResponse[models.User]{Items: users, Total: len(users)}, http.StatusOK)
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.replyStorageError(w, r, err)
		return
	}
	sendJSON(w, user, http.StatusOK)
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.users.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.replyStorageError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleSubscription handles POST /users/{id}/toggle-subscription and
// returns the updated record.
func (h *UserHandler) ToggleSubscription(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.users.GetUser(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.replyStorageError(w, r, err)
		return
	}

	user.IsSubscribed = !user.IsSubscribed
	if user.IsSubscribed {
		user.IsTrialActive = false
	}

	if err := h.users.UpdateUser(ctx, user); err != nil {
		h.replyStorageError(w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "toggled user subscription",
		"user_id", user.ID, "is_subscribed", user.IsSubscribed)
	sendJSON(w, user, http.StatusOK)
}

func (h *UserHandler) replyStorageError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		sendError(w, "not_found", "user not found", http.StatusNotFound)
		return
	}
	h.logger.ErrorContext(r.Context(), "user storage failure", "error", err)
	sendError(w, "internal", "internal server error", http.StatusInternalServerError)
}
