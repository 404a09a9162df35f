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

// CreatorHandler serves the /creators collection.
type CreatorHandler struct {
	logger   *slog.Logger
	creators storage.CreatorStorage
}

func NewCreatorHandler(logger *slog.Logger, creators storage.CreatorStorage) *CreatorHandler {
	return &CreatorHandler{logger: logger, creators: creators}
}

// List handles GET /creators.
func (h *CreatorHandler) List(w http.ResponseWriter, r *http.Request) {
	creators, err := h.creators.ListCreators(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list creators", "error", err)
		sendError(w, "internal", "internal server error", http.StatusInternalServerError)
		return
	}
	sendJSON(w, api.ListResponse[models.Creator]{Items: creators, Total: len(creators)}, http.StatusOK)
}

// Get handles GET /creators/{id}.
func (h *CreatorHandler) Get(w http.ResponseWriter, r *http.Request) {
	creator, err := h.creators.GetCreator(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.replyStorageError(w, r, err)
		return
	}
	sendJSON(w, creator, http.StatusOK)
}

// Create handles POST /creators.
func (h *CreatorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var creator models.Creator
	if !decodeJSON(w, r, h.logger, &creator) {
		return
	}
	if err := validation.ValidateRequired("name", creator.Name); err != nil {
		sendValidation(w, map[string]string{"name": err.Error()})
		return
	}

	creator.ID = "cre_" + xid.New().String()
	if err := h.creators.CreateCreator(r.Context(), &creator); err != nil {
		h.replyStorageError(w, r, err)
		return
	}
	sendJSON(w, creator, http.StatusCreated)
}

// Update handles PUT /creators/{id}.
func (h *CreatorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var creator models.Creator
	if !decodeJSON(w, r, h.logger, &creator) {
		return
	}
	if err := validation.ValidateRequired("name", creator.Name); err != nil {
		sendValidation(w, map[string]string{"name": err.Error()})
		return
	}

	creator.ID = chi.URLParam(r, "id")
	if err := h.creators.UpdateCreator(r.Context(), &creator); err != nil {
		h.replyStorageError(w, r, err)
		return
	}

	stored, err := h.creators.GetCreator(r.Context(), creator.ID)
	if err != nil {
		h.replyStorageError(w, r, err)
		return
	}
	sendJSON(w, stored, http.StatusOK)
}

// Delete handles DELETE /creators/{id}.
func (h *CreatorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.creators.DeleteCreator(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.replyStorageError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CreatorHandler) replyStorageError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		sendError(w, "not_found", "creator not found", http.StatusNotFound)
		return
	}
	h.logger.ErrorContext(r.Context(), "creator storage failure", "error", err)
	sendError(w, "internal", "internal server error", http.StatusInternalServerError)
}
