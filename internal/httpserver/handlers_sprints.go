package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sprintops/sprintops/internal/service"
)

type sprintRequest struct {
	Name      string    `json:"name"`
	Goal      string    `json:"goal"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

func (req sprintRequest) validate() (service.SprintInput, string) {
	if req.Name == "" {
		return service.SprintInput{}, "name is required"
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return service.SprintInput{}, "startDate and endDate are required"
	}
	return service.SprintInput{
		Name:      req.Name,
		Goal:      req.Goal,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}, ""
}

func (h *handler) handleListSprints(w http.ResponseWriter, r *http.Request) {
	sprints, err := h.svc.ListSprints(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", sprints)
}

func (h *handler) handleGetSprint(w http.ResponseWriter, r *http.Request) {
	sprint, err := h.svc.GetSprint(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "sprintID"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", sprint)
}

func (h *handler) handleCreateSprint(w http.ResponseWriter, r *http.Request) {
	var req sprintRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}
	input, msg := req.validate()
	if msg != "" {
		writeValidationError(w, msg)
		return
	}

	sprint, err := h.svc.CreateSprint(r.Context(), userIDFrom(r.Context()), input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "Sprint created", sprint)
}

func (h *handler) handleUpdateSprint(w http.ResponseWriter, r *http.Request) {
	var req sprintRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}
	input, msg := req.validate()
	if msg != "" {
		writeValidationError(w, msg)
		return
	}

	sprint, err := h.svc.UpdateSprint(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "sprintID"), input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Sprint updated", sprint)
}

func (h *handler) handleDeleteSprint(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteSprint(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "sprintID")); err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Sprint deleted", nil)
}
