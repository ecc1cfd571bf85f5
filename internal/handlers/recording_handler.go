package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/nursingskill/backend/internal/middlewares"
	"github.com/nursingskill/backend/internal/models"
	"go.uber.org/zap"
)

// RecordingService is the interface that wraps methods of the video capture flow.
type RecordingService interface {
	// Method List returns the recording status of every skill.
	List(ctx context.Context) []models.RecordingStatus
	// Method Open selects the skill and acquires the camera if the skill has no clip.
	//
	// On camera failure an error wrapping models.ErrCameraUnavailable is returned together with
	// the status holding the reason. Calling Open again retries.
	Open(ctx context.Context, skillID string) (*models.RecordingStatus, error)
	// Method Start starts recording the selected skill.
	//
	// Operations in a wrong state return an error wrapping models.ErrInvalidCaptureState.
	Start(ctx context.Context, skillID, mimeType string) (*models.RecordingStatus, error)
	// Method WriteChunk appends a recorded chunk to the running recording.
	WriteChunk(ctx context.Context, skillID string, chunk []byte) error
	// Method Stop finishes the recording and releases the camera.
	Stop(ctx context.Context, skillID string) (*models.RecordingStatus, error)
	// Method Retry discards the clip of the selected skill and reopens the camera.
	Retry(ctx context.Context, skillID string) (*models.RecordingStatus, error)
	// Method ToggleCheck toggles a reviewed step of a recorded skill.
	ToggleCheck(ctx context.Context, skillID string, stepID int) (*models.RecordingStatus, error)
	// Method Download opens the clip of a skill. The caller must close the reader.
	//
	// If the skill has no clip, models.ErrRecordingNotFound is returned.
	Download(ctx context.Context, skillID string) (io.ReadSeekCloser, *models.Clip, error)
}

// startRecordingRequest represents a request to start recording
type startRecordingRequest struct {
	MimeType string `json:"mimeType"`
}

// RecordingHandler handles HTTP requests for the video view
type RecordingHandler struct {
	BaseHandler
	service RecordingService
}

// NewRecordingHandler creates a new recording handler
func NewRecordingHandler(svc RecordingService, logger *zap.Logger) *RecordingHandler {
	return &RecordingHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all recording handler routes
func (h *RecordingHandler) RegisterRoutes(r chi.Router) {
	r.Route("/recordings", func(r chi.Router) {
		r.Get("/", h.List)
		r.Route("/{skillId}", func(r chi.Router) {
			// Chunks carry raw video, every other body is small JSON
			r.With(middlewares.RequestSizeLimitMiddleware(middlewares.MaxChunkSize)).Post("/chunks", h.WriteChunk)

			r.Group(func(r chi.Router) {
				r.Use(middlewares.RequestSizeLimitMiddleware(middlewares.DefaultMaxRequestSize))
				r.Get("/", h.Download)
				r.Delete("/", h.Retry)
				r.Post("/camera", h.Open)
				r.Post("/start", h.Start)
				r.Post("/stop", h.Stop)
				r.Put("/checks/{stepId}", h.ToggleCheck)
			})
		})
	})
}

// List handles GET /api/v1/recordings
// @Summary List recordings
// @Tags recordings
// @Produce json
// @Success 200 {array} models.RecordingStatus
// @Failure 401 {object} map[string]string
// @Router /recordings [get]
func (h *RecordingHandler) List(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.List(r.Context()))
}

// Open handles POST /api/v1/recordings/{skillId}/camera
// @Summary Open camera
// @Description Select the skill and acquire the camera. On 503 the body holds the status with the failure reason.
// @Tags recordings
// @Produce json
// @Param skillId path string true "Skill ID"
// @Success 200 {object} models.RecordingStatus
// @Failure 404 {object} map[string]string
// @Failure 503 {object} models.RecordingStatus
// @Router /recordings/{skillId}/camera [post]
func (h *RecordingHandler) Open(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.Open(r.Context(), chi.URLParam(r, "skillId"))
	if err != nil {
		if errors.Is(err, models.ErrCameraUnavailable) && status != nil {
			h.respondJSON(w, http.StatusServiceUnavailable, status)
			return
		}
		h.respondServiceError(w, r, err, "failed to open camera")
		return
	}

	h.respondJSON(w, http.StatusOK, status)
}

// Start handles POST /api/v1/recordings/{skillId}/start
// @Summary Start recording
// @Tags recordings
// @Accept json
// @Produce json
// @Param skillId path string true "Skill ID"
// @Param request body startRecordingRequest false "Recorder MIME type, default: video/webm"
// @Success 200 {object} models.RecordingStatus
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /recordings/{skillId}/start [post]
func (h *RecordingHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRecordingRequest
	if r.ContentLength != 0 && !h.decodeJSON(w, r, &req) {
		return
	}

	status, err := h.service.Start(r.Context(), chi.URLParam(r, "skillId"), req.MimeType)
	h.respondStatus(w, r, status, err)
}

// WriteChunk handles POST /api/v1/recordings/{skillId}/chunks
// @Summary Upload chunk
// @Description Append raw recorder data to the running recording
// @Tags recordings
// @Accept application/octet-stream
// @Param skillId path string true "Skill ID"
// @Success 204
// @Failure 409 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Router /recordings/{skillId}/chunks [post]
func (h *RecordingHandler) WriteChunk(w http.ResponseWriter, r *http.Request) {
	chunk, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge, "chunk too large")
			return
		}
		h.respondError(w, http.StatusBadRequest, "failed to read chunk")
		return
	}

	if err := h.service.WriteChunk(r.Context(), chi.URLParam(r, "skillId"), chunk); err != nil {
		h.respondServiceError(w, r, err, "failed to write chunk")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Stop handles POST /api/v1/recordings/{skillId}/stop
// @Summary Stop recording
// @Tags recordings
// @Produce json
// @Param skillId path string true "Skill ID"
// @Success 200 {object} models.RecordingStatus
// @Failure 409 {object} map[string]string
// @Router /recordings/{skillId}/stop [post]
func (h *RecordingHandler) Stop(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.Stop(r.Context(), chi.URLParam(r, "skillId"))
	h.respondStatus(w, r, status, err)
}

// Retry handles DELETE /api/v1/recordings/{skillId}
// @Summary Discard recording
// @Description Discard the clip and reopen the camera to record again
// @Tags recordings
// @Produce json
// @Param skillId path string true "Skill ID"
// @Success 200 {object} models.RecordingStatus
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /recordings/{skillId} [delete]
func (h *RecordingHandler) Retry(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.Retry(r.Context(), chi.URLParam(r, "skillId"))
	h.respondStatus(w, r, status, err)
}

// ToggleCheck handles PUT /api/v1/recordings/{skillId}/checks/{stepId}
// @Summary Toggle review check
// @Tags recordings
// @Produce json
// @Param skillId path string true "Skill ID"
// @Param stepId path int true "Step ID"
// @Success 200 {object} models.RecordingStatus
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /recordings/{skillId}/checks/{stepId} [put]
func (h *RecordingHandler) ToggleCheck(w http.ResponseWriter, r *http.Request) {
	stepID, ok := h.intParam(w, r, "stepId")
	if !ok {
		return
	}
	status, err := h.service.ToggleCheck(r.Context(), chi.URLParam(r, "skillId"), stepID)
	h.respondStatus(w, r, status, err)
}

// Download handles GET /api/v1/recordings/{skillId}
// @Summary Download recording
// @Tags recordings
// @Produce video/webm
// @Param skillId path string true "Skill ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string
// @Router /recordings/{skillId} [get]
func (h *RecordingHandler) Download(w http.ResponseWriter, r *http.Request) {
	skillID := chi.URLParam(r, "skillId")
	reader, clip, err := h.service.Download(r.Context(), skillID)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to download recording")
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", clip.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", skillID+"_recording"+filepath.Ext(clip.FileName)))
	http.ServeContent(w, r, clip.FileName, clip.CreatedAt, reader)
}

func (h *RecordingHandler) respondStatus(w http.ResponseWriter, r *http.Request, status *models.RecordingStatus, err error) {
	if err != nil {
		h.respondServiceError(w, r, err, "failed to update recording")
		return
	}
	h.respondJSON(w, http.StatusOK, status)
}
