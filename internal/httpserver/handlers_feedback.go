package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sprintops/sprintops/internal/domain"
	"github.com/sprintops/sprintops/internal/service"
)

type feedbackRequest struct {
	Type    string    `json:"type"`
	Source  string    `json:"source"`
	Content string    `json:"content"`
	Context string    `json:"context"`
	Date    time.Time `json:"date"`
}

func (req feedbackRequest) validate() (service.FeedbackInput, string) {
	if req.Type == "" || req.Source == "" || req.Content == "" {
		return service.FeedbackInput{}, "type, source and content are required"
	}
	return service.FeedbackInput{
		Type:    domain.FeedbackType(req.Type),
		Source:  domain.FeedbackSource(req.Source),
		Content: req.Content,
		Context: domain.FeedbackContext(req.Context),
		Date:    req.Date,
	}, ""
}

func (h *handler) handleListFeedback(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListFeedback(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "sprintID"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", list)
}

func (h *handler) handleCreateFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}
	input, msg := req.validate()
	if msg != "" {
		writeValidationError(w, msg)
		return
	}

	fb, err := h.svc.CreateFeedback(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "sprintID"), input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "Feedback added", fb)
}

func (h *handler) handleUpdateFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}
	input, msg := req.validate()
	if msg != "" {
		writeValidationError(w, msg)
		return
	}

	fb, err := h.svc.UpdateFeedback(r.Context(), userIDFrom(r.Context()),
		chi.URLParam(r, "sprintID"), chi.URLParam(r, "id"), input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Feedback updated", fb)
}

func (h *handler) handleDeleteFeedback(w http.ResponseWriter, r *http.Request) {
	err := h.svc.DeleteFeedback(r.Context(), userIDFrom(r.Context()),
		chi.URLParam(r, "sprintID"), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Feedback deleted", nil)
}
