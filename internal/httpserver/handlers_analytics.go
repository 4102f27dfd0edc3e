package httpserver

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sprintops/sprintops/internal/report"
)

func (h *handler) handleGlobalAnalytics(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.GlobalAnalytics(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", data)
}

func (h *handler) handleSprintAnalytics(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.SprintAnalytics(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", data)
}

func (h *handler) handleAnalyticsExport(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r.Context())

	user, err := h.svc.GetUser(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	data, err := h.svc.GlobalAnalytics(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	pdf, err := report.Render(user.Name, data)
	if err != nil {
		h.writeServiceError(w, fmt.Errorf("render report: %w", err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="sprintops-analytics.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
