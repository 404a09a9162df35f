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

// CategoryHandler serves the /categories collection.
type CategoryHandler struct {
	logger     *slog.Logger
	categories storage.CategoryStorage
}

func NewCategoryHandler(logger *slog.Logger, categories storage.CategoryStorage) *CategoryHandler {
	return &CategoryHandler{logger: logger, categories: categories}
}

func validateCategory(c *models.Category) map[string]string {
	fields := make(map[string]string)
	if err := validation.ValidateRequired("name", c.Name); err != nil {
		fields["name"] = err.Error()
	}
	if err := validation.ValidateSlug(c.Slug); err != nil {
		fields["slug"] = err.Error()
	}
	if err := validation.ValidateHexColor(c.Color); err != nil {
		fields["color"] = err.Error()
	}
	return fields
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.ListCategories(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list categories", "error", err)
		sendError(w, "internal", "internal server error", http.StatusInternalServerError)
		return
	}
	sendJSON(w, api.ListResponse[models.Category]{Items: categories, Total: len(categories)}, http.StatusOK)
}

// Get handles GET /categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	category, err := h.categories.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.replyStorageError(w, r, err)
		return
	}
	sendJSON(w, category, http.StatusOK)
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if !decodeJSON(w, r, h.logger, &category) {
		return
	}
	if fields := validateCategory(&category); len(fields) > 0 {
		sendValidation(w, fields)
		return
	}

	category.ID = "cat_" + xid.New().String()
	if err := h.categories.CreateCategory(r.Context(), &category); err != nil {
		h.replyStorageError(w, r, err)
		return
	}
	sendJSON(w, category, http.StatusCreated)
}

// Update handles PUT /categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if !decodeJSON(w, r, h.logger, &category) {
		return
	}
	if fields := validateCategory(&category); len(fields) > 0 {
		sendValidation(w, fields)
		return
	}

	category.ID = chi.URLParam(r, "id")
	if err := h.categories.UpdateCategory(r.Context(), &category); err != nil {
		h.replyStorageError(w, r, err)
		return
	}

	stored, err := h.categories.GetCategory(r.Context(), category.ID)
	if err != nil {
		h.replyStorageError(w, r, err)
		return
	}
	sendJSON(w, stored, http.StatusOK)
}

// Delete handles DELETE /categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.categories.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.replyStorageError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) replyStorageError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		sendError(w, "not_found", "category not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrAlreadyExists):
		sendValidation(w, map[string]string{"slug": "slug is already taken"})
	default:
		h.logger.ErrorContext(r.Context(), "category storage failure", "error", err)
		sendError(w, "internal", "internal server error", http.StatusInternalServerError)
	}
}
