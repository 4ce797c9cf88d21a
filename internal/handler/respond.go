// Package handler exposes the JSON API. Every response uses the same
// envelope; every request flows gate → validators → input shaper →
// persistence → output shaper.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tinselworks/noel/internal/apperr"
	"github.com/tinselworks/noel/internal/transform"
)

// envelope is the uniform response wrapper.
type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	Data       any             `json:"data,omitzero"`
	Error      string          `json:"error,omitempty"`
	Details    any             `json:"details,omitempty"`
	Pagination *transform.Meta `json:"pagination,omitempty"`
}

// responder carries the one piece of response policy that varies by
// environment: whether internal error detail may reach the caller.
type responder struct {
	verbose bool
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (re responder) data(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

func (re responder) message(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, envelope{Success: true, Data: data, Message: message})
}

func (re responder) list(w http.ResponseWriter, data any, meta transform.Meta) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data, Pagination: &meta})
}

// err translates the error taxonomy to a status code and the error
// envelope. Internal failures log the cause and withhold it from the caller
// unless verbose mode (development) is on.
func (re responder) err(w http.ResponseWriter, err error) {
	var validationErr *apperr.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusBadRequest, envelope{
			Success: false,
			Error:   validationErr.Message,
			Details: map[string]string{"field": validationErr.Field},
		})
		return
	}

	var unauthenticatedErr *apperr.UnauthenticatedError
	if errors.As(err, &unauthenticatedErr) {
		writeJSON(w, http.StatusUnauthorized, envelope{Success: false, Error: unauthenticatedErr.Message})
		return
	}

	var forbiddenErr *apperr.ForbiddenError
	if errors.As(err, &forbiddenErr) {
		writeJSON(w, http.StatusForbidden, envelope{Success: false, Error: forbiddenErr.Message})
		return
	}

	var notFoundErr *apperr.NotFoundError
	if errors.As(err, &notFoundErr) {
		writeJSON(w, http.StatusNotFound, envelope{Success: false, Error: notFoundErr.Error()})
		return
	}

	var conflictErr *apperr.ConflictError
	if errors.As(err, &conflictErr) {
		writeJSON(w, http.StatusConflict, envelope{Success: false, Error: conflictErr.Message})
		return
	}

	slog.Error("request failed", "error", err)
	message := "internal server error"
	if re.verbose {
		message = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, envelope{Success: false, Error: message})
}

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// decodeBody reads a JSON object body into a raw map for the shapers. The
// map form keeps key presence observable, which sparse patches rely on.
func decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var raw map[string]any
	err := json.NewDecoder(r.Body).Decode(&raw)
	if err != nil {
		return nil, apperr.Validation("body", "invalid JSON body")
	}
	return raw, nil
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.Validation("id", "id must be a positive number")
	}
	return id, nil
}
