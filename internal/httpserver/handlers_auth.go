package httpserver

import (
	"net/http"

	"github.com/sprintops/sprintops/internal/domain"
)

type userPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func mapUserPayload(u domain.User) userPayload {
	return userPayload{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (h *handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r.Body, &req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeValidationError(w, "Name, email and password are required")
		return
	}

	user, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "User registered", mapUserPayload(user))
}

func (h *handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r.Body, &req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeValidationError(w, "Email and password are required")
		return
	}

	token, user, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Login successful", map[string]any{
		"token": token,
		"user":  mapUserPayload(user),
	})
}
