package httpserver

import (
	"net/http"
	"runtime"
	"time"
)

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbOK := true
	var latencyMs any

	if h.db != nil {
		start := time.Now()
		if err := h.db.Ping(r.Context()); err != nil {
			dbOK = false
		} else {
			latencyMs = time.Since(start).Milliseconds()
		}
	}

	dbStatus := "connected"
	if !dbOK {
		dbStatus = "disconnected"
	}

	status := "ok"
	code := http.StatusOK
	if !dbOK {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]any{
		"status":      status,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.environment,
		"version":     h.version,
		"goVersion":   runtime.Version(),
		"uptime": map[string]any{
			"seconds": int64(time.Since(h.startedAt).Seconds()),
		},
		"database": map[string]any{
			"status":    dbStatus,
			"ok":        dbOK,
			"latencyMs": latencyMs,
		},
	})
}
