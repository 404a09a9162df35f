package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/thaedal/thaedal-admin/internal/server/jwt"
	"github.com/thaedal/thaedal-admin/internal/server/middleware"
	"github.com/thaedal/thaedal-admin/internal/server/storage"
	"github.com/thaedal/thaedal-admin/internal/validation"
	"github.com/thaedal/thaedal-admin/pkg/api"
)

// AuthHandler serves login, logout and profile.
type AuthHandler struct {
	logger *slog.Logger
	admins storage.AdminStorage
	tokens *jwt.Service
}

func NewAuthHandler(logger *slog.Logger, admins storage.AdminStorage, tokens *jwt.Service) *AuthHandler {
	return &AuthHandler{logger: logger, admins: admins, tokens: tokens}
}

// Login handles POST /api/v1/admin/login. Wrong email and wrong
// password are indistinguishable to the caller.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		sendValidation(w, map[string]string{"email": err.Error()})
		return
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		sendValidation(w, map[string]string{"password": err.Error()})
		return
	}

	admin, err := h.admins.GetAdminByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.logger.WarnContext(ctx, "login for unknown email", "email", req.Email)
			sendError(w, "unauthorized", "Invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to load admin", "error", err)
		sendError(w, "internal", "internal server error", http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		h.logger.WarnContext(ctx, "login with wrong password", "email", req.Email)
		sendError(w, "unauthorized", "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, expiresIn, err := h.tokens.Generate(admin.ID, admin.Name, admin.Email)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue token", "error", err)
		sendError(w, "internal", "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "admin logged in", "email", admin.Email)
	sendJSON(w, api.TokenResponse{
		Token:     token,
		Name:      admin.Name,
		Email:     admin.Email,
		ExpiresIn: expiresIn,
	}, http.StatusOK)
}

// Logout handles POST /api/v1/admin/logout. Tokens are stateless, so
// this only acknowledges; the client discards its credential.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.logger.InfoContext(r.Context(), "admin logged out", "admin_id", middleware.AdminID(r.Context()))
	sendJSON(w, map[string]string{"message": "logged out"}, http.StatusOK)
}

// Profile handles GET /api/v1/admin/profile.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	admin, err := h.admins.GetAdminByID(ctx, middleware.AdminID(ctx))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(w, "unauthorized", "account no longer exists", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to load admin", "error", err)
		sendError(w, "internal", "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(w, api.ProfileResponse{Name: admin.Name, Email: admin.Email}, http.StatusOK)
}
