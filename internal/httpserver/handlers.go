package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/sprintops/sprintops/internal/service"
	"go.uber.org/zap"
)

type handler struct {
	svc         Service
	logger      *zap.Logger
	db          Pinger
	jwtSecret   []byte
	demoEmail   string
	environment string
	version     string
	startedAt   time.Time
}

func (h *handler) writeServiceError(w http.ResponseWriter, err error) {
	status, message := mapServiceError(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("service error", zap.Error(err))
	}
	writeFailure(w, status, message)
}

func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrSprintNotFound):
		return http.StatusNotFound, "Sprint not found"
	case errors.Is(err, service.ErrTaskNotFound):
		return http.StatusNotFound, "Task not found"
	case errors.Is(err, service.ErrPullRequestNotFound):
		return http.StatusNotFound, "PR not found"
	case errors.Is(err, service.ErrFeedbackNotFound):
		return http.StatusNotFound, "Feedback not found"
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusBadRequest, "Email already registered"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid credentials"
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

func writeValidationError(w http.ResponseWriter, message string) {
	writeFailure(w, http.StatusBadRequest, message)
}
