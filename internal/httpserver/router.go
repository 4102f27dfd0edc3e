package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sprintops/sprintops/internal/config"
	"go.uber.org/zap"
)

func newRouter(cfg config.Config, logger *zap.Logger, svc Service, db Pinger) http.Handler {
	h := &handler{
		svc:         svc,
		logger:      logger,
		db:          db,
		jwtSecret:   []byte(cfg.JWTSecret),
		demoEmail:   cfg.DemoEmail,
		environment: cfg.Environment,
		version:     cfg.AppVersion,
		startedAt:   time.Now(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(zapRequestLogger(logger))

	r.Get("/health", h.handleHealth)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.handleRegister)
		r.Post("/login", h.handleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.authenticate)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.handleListUsers)
			r.With(restrictDemo).Post("/", h.handleCreateUser)
			r.Get("/{id}", h.handleGetUser)
			r.With(restrictDemo).Put("/{id}", h.handleUpdateUser)
			r.With(restrictDemo).Delete("/{id}", h.handleDeleteUser)
		})

		r.Route("/sprints", func(r chi.Router) {
			r.Get("/", h.handleListSprints)
			r.With(restrictDemo).Post("/", h.handleCreateSprint)

			r.Route("/{sprintID}", func(r chi.Router) {
				r.Get("/", h.handleGetSprint)
				r.With(restrictDemo).Put("/", h.handleUpdateSprint)
				r.With(restrictDemo).Delete("/", h.handleDeleteSprint)

				r.Route("/tasks", func(r chi.Router) {
					r.Get("/", h.handleListTasks)
					r.With(restrictDemo).Post("/", h.handleCreateTask)
					r.Get("/{taskID}", h.handleGetTask)
					r.With(restrictDemo).Put("/{taskID}", h.handleUpdateTask)
					r.With(restrictDemo).Delete("/{taskID}", h.handleDeleteTask)
					r.With(restrictDemo).Post("/{taskID}/logs", h.handleAddTaskLog)
					r.Get("/{taskID}/logs", h.handleListTaskLogs)
				})

				r.Route("/prs", func(r chi.Router) {
					r.Get("/", h.handleListPullRequests)
					r.With(restrictDemo).Post("/", h.handleCreatePullRequest)
					r.With(restrictDemo).Put("/{id}", h.handleUpdatePullRequest)
					r.With(restrictDemo).Delete("/{id}", h.handleDeletePullRequest)
				})

				r.Route("/feedback", func(r chi.Router) {
					r.Get("/", h.handleListFeedback)
					r.With(restrictDemo).Post("/", h.handleCreateFeedback)
					r.With(restrictDemo).Put("/{id}", h.handleUpdateFeedback)
					r.With(restrictDemo).Delete("/{id}", h.handleDeleteFeedback)
				})
			})
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/global", h.handleGlobalAnalytics)
			r.Get("/sprint/{id}", h.handleSprintAnalytics)
			r.Get("/export", h.handleAnalyticsExport)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeFailure(w, http.StatusForbidden, "Access forbidden")
	})

	return r
}
