package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nursingskill/backend/internal/models"
	"github.com/nursingskill/backend/internal/middlewares"
	"go.uber.org/zap"
)

type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// clientErrors maps domain errors to HTTP statuses. The first match wins.
var clientErrors = []struct {
	err    error
	status int
}{
	{models.ErrSkillNotFound, http.StatusNotFound},
	{models.ErrRecordingNotFound, http.StatusNotFound},
	{models.ErrNoActiveGame, http.StatusNotFound},
	{models.ErrNoPractice, http.StatusNotFound},
	{models.ErrProfileNotFound, http.StatusNotFound},
	{models.ErrIncompleteEvaluation, http.StatusBadRequest},
	{models.ErrInvalidMark, http.StatusBadRequest},
	{models.ErrInvalidProfile, http.StatusBadRequest},
	{models.ErrInvalidGameKind, http.StatusBadRequest},
	{models.ErrInvalidItem, http.StatusBadRequest},
	{models.ErrInvalidStep, http.StatusBadRequest},
	{models.ErrInvalidView, http.StatusBadRequest},
	{models.ErrInvalidExportFormat, http.StatusBadRequest},
	{models.ErrGameFinished, http.StatusConflict},
	{models.ErrInvalidCaptureState, http.StatusConflict},
	{models.ErrCameraUnavailable, http.StatusServiceUnavailable},
}

// respondServiceError maps a service error to a status and sends it.
// Unknown errors are logged and reported as 500 with a generic message.
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	for _, ce := range clientErrors {
		if errors.Is(err, ce.err) {
			h.respondError(w, ce.status, err.Error())
			return
		}
	}

	h.logger.Error(message,
		zap.String("request_id", middlewares.GetRequestID(r.Context())),
		zap.Error(err))
	h.respondError(w, http.StatusInternalServerError, message)
}

// decodeJSON decodes the request body into v
func (h *BaseHandler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// intParam parses an integer URL parameter
func (h *BaseHandler) intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return value, true
}
