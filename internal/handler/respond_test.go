package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tinselworks/noel/internal/apperr"
)

func TestErrorTranslation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperr.Validation("name", "name is required"), http.StatusBadRequest},
		{"unauthenticated", apperr.Unauthenticated("authentication required"), http.StatusUnauthorized},
		{"forbidden", apperr.Forbidden("invalid or expired token"), http.StatusForbidden},
		{"not found", apperr.NotFound("todo"), http.StatusNotFound},
		{"conflict", apperr.Conflict("already registered"), http.StatusConflict},
		{"unknown", errors.New("db exploded"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			responder{}.err(rec, tt.err)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestInternalErrorMasked(t *testing.T) {
	rec := httptest.NewRecorder()
	responder{verbose: false}.err(rec, errors.New("pq: connection refused at 10.0.0.5"))

	if strings.Contains(rec.Body.String(), "10.0.0.5") {
		t.Errorf("production response leaks internals: %s", rec.Body)
	}
	if !strings.Contains(rec.Body.String(), "internal server error") {
		t.Errorf("body = %s", rec.Body)
	}
}

func TestInternalErrorVerbose(t *testing.T) {
	rec := httptest.NewRecorder()
	responder{verbose: true}.err(rec, errors.New("pq: connection refused"))

	if !strings.Contains(rec.Body.String(), "connection refused") {
		t.Errorf("verbose mode should surface the cause: %s", rec.Body)
	}
}

func TestValidationDetailNamesField(t *testing.T) {
	rec := httptest.NewRecorder()
	responder{}.err(rec, apperr.Validation("email", "invalid email address"))

	body := decodeEnvelope(t, rec)
	details, _ := body["details"].(map[string]any)
	if details["field"] != "email" {
		t.Errorf("details = %+v", details)
	}
}

func TestPathID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/todos/7", nil)
	req.SetPathValue("id", "7")
	id, err := pathID(req)
	if err != nil || id != 7 {
		t.Errorf("pathID = %d, %v", id, err)
	}

	for _, bad := range []string{"abc", "0", "-3", "1.5", ""} {
		req := httptest.NewRequest(http.MethodGet, "/todos/x", nil)
		req.SetPathValue("id", bad)
		_, err := pathID(req)
		if err == nil {
			t.Errorf("pathID(%q) should fail", bad)
		}
	}
}
