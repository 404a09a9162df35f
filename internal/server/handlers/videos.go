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

// VideoHandler serves the /videos collection.
type VideoHandler struct {
	logger *slog.Logger
	videos storage.VideoStorage
}

func NewVideoHandler(logger *slog.Logger, videos storage.VideoStorage) *VideoHandler {
	return &VideoHandler{logger: logger, videos: videos}
}

func validateVideo(v *models.Video) map[string]string {
	fields := make(map[string]string)
	if err := validation.ValidateRequired("title", v.Title); err != nil {
		fields["title"] = err.Error()
	}
	if err := validation.ValidateOneOf("status", v.Status,
		models.VideoStatusPublished, models.VideoStatusDraft); err != nil {
		fields["status"] = err.Error()
	}
	return fields
}

// List handles GET /videos.
func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	videos, err := h.videos.ListVideos(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list videos", "error", err)
		sendError(w, "internal", "internal server error", http.StatusInternalServerError)
		return
	}
	sendJSON(w, api.ListResponse[models.Video]{Items: videos, Total: len(videos)}, http.StatusOK)
}

// Get handles GET /videos/{id}.
func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	video, err := h.videos.GetVideo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.replyStorageError(w, r, err)
		return
	}
	sendJSON(w, video, http.StatusOK)
}

// Create handles POST /videos. The id is assigned here; ids sent by the
// client are ignored.
func (h *VideoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var video models.Video
	if !decodeJSON(w, r, h.logger, &video) {
		return
	}
	if fields := validateVideo(&video); len(fields) > 0 {
		sendValidation(w, fields)
		return
	}

	video.ID = "vid_" + xid.New().String()
	video.CreatedAt = time.Now().UTC()

	if err := h.videos.CreateVideo(r.Context(), &video); err != nil {
		h.replyStorageError(w, r, err)
		return
	}
	sendJSON(w, video, http.StatusCreated)
}

// Update handles PUT /videos/{id}.
func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var video models.Video
	if !decodeJSON(w, r, h.logger, &video) {
		return
	}
	if fields := validateVideo(&video); len(fields) > 0 {
		sendValidation(w, fields)
		return
	}

	video.ID = chi.URLParam(r, "id")
	if err := h.videos.UpdateVideo(r.Context(), &video); err != nil {
		h.replyStorageError(w, r, err)
		return
	}

	stored, err := h.videos.GetVideo(r.Context(), video.ID)
	if err != nil {
		h.replyStorageError(w, r, err)
		return
	}
	sendJSON(w, stored, http.StatusOK)
}

// Delete handles DELETE /videos/{id}.
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.videos.DeleteVideo(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.replyStorageError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *VideoHandler) replyStorageError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		sendError(w, "not_found", "video not found", http.StatusNotFound)
		return
	}
	h.logger.ErrorContext(r.Context(), "video storage failure", "error", err)
	sendError(w, "internal", "internal server error", http.StatusInternalServerError)
}
