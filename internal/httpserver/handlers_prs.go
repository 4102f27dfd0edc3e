package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sprintops/sprintops/internal/domain"
	"github.com/sprintops/sprintops/internal/service"
)

type pullRequestRequest struct {
	Title      string   `json:"title"`
	Purpose    string   `json:"purpose"`
	Summary    string   `json:"summary"`
	Challenges string   `json:"challenges"`
	SkillsUsed []string `json:"skillsUsed"`
	Status     string   `json:"status"`
}

func (req pullRequestRequest) validate() (service.PullRequestInput, string) {
	if req.Title == "" {
		return service.PullRequestInput{}, "title is required"
	}
	return service.PullRequestInput{
		Title:      req.Title,
		Purpose:    req.Purpose,
		Summary:    req.Summary,
		Challenges: req.Challenges,
		SkillsUsed: req.SkillsUsed,
		Status:     domain.PullRequestStatus(req.Status),
	}, ""
}

func (h *handler) handleListPullRequests(w http.ResponseWriter, r *http.Request) {
	prs, err := h.svc.ListPullRequests(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "sprintID"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", prs)
}

func (h *handler) handleCreatePullRequest(w http.ResponseWriter, r *http.Request) {
	var req pullRequestRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}
	input, msg := req.validate()
	if msg != "" {
		writeValidationError(w, msg)
		return
	}

	pr, err := h.svc.CreatePullRequest(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "sprintID"), input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "PR created", pr)
}

func (h *handler) handleUpdatePullRequest(w http.ResponseWriter, r *http.Request) {
	var req pullRequestRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}
	input, msg := req.validate()
	if msg != "" {
		writeValidationError(w, msg)
		return
	}

	pr, err := h.svc.UpdatePullRequest(r.Context(), userIDFrom(r.Context()),
		chi.URLParam(r, "sprintID"), chi.URLParam(r, "id"), input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "PR updated", pr)
}

func (h *handler) handleDeletePullRequest(w http.ResponseWriter, r *http.Request) {
	err := h.svc.DeletePullRequest(r.Context(), userIDFrom(r.Context()),
		chi.URLParam(r, "sprintID"), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "PR deleted", nil)
}
