package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sprintops/sprintops/internal/domain"
	"github.com/sprintops/sprintops/internal/service"
)

type taskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	StoryPoints int      `json:"storyPoints"`
	Skills      []string `json:"skills"`
	Status      string   `json:"status"`
}

func (req taskRequest) validate() (service.TaskInput, string) {
	if req.Title == "" {
		return service.TaskInput{}, "title is required"
	}
	return service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		StoryPoints: req.StoryPoints,
		Skills:      req.Skills,
		Status:      domain.TaskStatus(req.Status),
	}, ""
}

func (h *handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.ListTasks(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "sprintID"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", tasks)
}

func (h *handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.svc.GetTask(r.Context(), userIDFrom(r.Context()),
		chi.URLParam(r, "sprintID"), chi.URLParam(r, "taskID"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", task)
}

func (h *handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}
	input, msg := req.validate()
	if msg != "" {
		writeValidationError(w, msg)
		return
	}

	task, err := h.svc.CreateTask(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "sprintID"), input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "Task created", task)
}

func (h *handler) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}
	input, msg := req.validate()
	if msg != "" {
		writeValidationError(w, msg)
		return
	}

	task, err := h.svc.UpdateTask(r.Context(), userIDFrom(r.Context()),
		chi.URLParam(r, "sprintID"), chi.URLParam(r, "taskID"), input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Task updated", task)
}

func (h *handler) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	err := h.svc.DeleteTask(r.Context(), userIDFrom(r.Context()),
		chi.URLParam(r, "sprintID"), chi.URLParam(r, "taskID"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Task deleted", nil)
}

func (h *handler) handleAddTaskLog(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Summary          string   `json:"summary"`
		SkillsUsed       []string `json:"skillsUsed"`
		TimeSpentMinutes int      `json:"timeSpentMinutes"`
		ProgressPercent  int      `json:"progressPercent"`
	}
	if err := decodeJSON(r.Body, &req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}

	log, err := h.svc.AddTaskLog(r.Context(), userIDFrom(r.Context()),
		chi.URLParam(r, "sprintID"), chi.URLParam(r, "taskID"), service.TaskLogInput{
			Summary:          req.Summary,
			SkillsUsed:       req.SkillsUsed,
			TimeSpentMinutes: req.TimeSpentMinutes,
			ProgressPercent:  req.ProgressPercent,
		})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "Log added", log)
}

func (h *handler) handleListTaskLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.svc.ListTaskLogs(r.Context(), userIDFrom(r.Context()),
		chi.URLParam(r, "sprintID"), chi.URLParam(r, "taskID"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", logs)
}
