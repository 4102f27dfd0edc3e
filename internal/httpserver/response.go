package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// apiEnvelope is the uniform response wrapper. All three fields are
// always emitted, matching what the SPA binds to.
type apiEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeEnvelope(w, status, apiEnvelope{Success: true, Message: message, Data: data})
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	writeEnvelope(w, status, apiEnvelope{Success: false, Message: message, Data: nil})
}

func writeEnvelope(w http.ResponseWriter, status int, env apiEnvelope) {
	writeJSON(w, status, env)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(body io.ReadCloser, dst any) error {
	defer body.Close()
	dec := json.NewDecoder(body)

	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return errors.New("unexpected extra JSON input")
		}
		return err
	}
	return nil
}
