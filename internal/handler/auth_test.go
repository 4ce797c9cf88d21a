package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tinselworks/noel/internal/apperr"
	"github.com/tinselworks/noel/internal/model"
	"github.com/tinselworks/noel/internal/transform"
)

type stubAuthService struct {
	registered *transform.RegistrationRecord
	login      string
	user       *model.User
	err        error
}

func (s *stubAuthService) Register(rec transform.RegistrationRecord) (*model.User, error) {
	s.registered = &rec
	return s.user, s.err
}

func (s *stubAuthService) Login(login, password string) (*model.User, error) {
	s.login = login
	return s.user, s.err
}

func (s *stubAuthService) ByID(id int64) (*model.User, error) {
	return s.user, s.err
}

func (s *stubAuthService) IssueToken(user *model.User) (string, time.Time, error) {
	return "stub-token", time.Now().Add(time.Hour), nil
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing username", `{"email":"a@b.co","password":"secret1"}`},
		{"short username", `{"username":"ab","email":"a@b.co","password":"secret1"}`},
		{"missing email", `{"username":"nick","password":"secret1"}`},
		{"bad email", `{"username":"nick","email":"not-an-email","password":"secret1"}`},
		{"missing password", `{"username":"nick","email":"a@b.co"}`},
		{"short password", `{"username":"nick","email":"a@b.co","password":"abc"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubAuthService{}
			h := NewAuthHandler(svc, false)

			rec := httptest.NewRecorder()
			h.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tt.body)))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if svc.registered != nil {
				t.Error("service must not be reached on validation failure")
			}
		})
	}
}

func TestRegisterRejectsOverlongMultibytePassword(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, false)

	// 40 runes but 80 bytes; bcrypt caps passwords at 72 bytes, so this must
	// fail validation rather than reach hashing.
	password := strings.Repeat("é", 40)
	body := `{"username":"nick","email":"a@b.co","password":"` + password + `"}`
	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if svc.registered != nil {
		t.Error("service must not be reached")
	}
}

func TestRegisterSuccess(t *testing.T) {
	svc := &stubAuthService{user: &model.User{ID: 1, Username: "nick", Email: "nick@northpole.dev"}}
	h := NewAuthHandler(svc, false)

	body := `{"username":"nick","email":"Nick@NorthPole.DEV","password":"secret1"}`
	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if svc.registered == nil {
		t.Fatal("service not called")
	}
	if svc.registered.Email != "nick@northpole.dev" {
		t.Errorf("email should reach the service lowercased, got %q", svc.registered.Email)
	}

	envelope := decodeEnvelope(t, rec)
	data, _ := envelope["data"].(map[string]any)
	if data["token"] != "stub-token" {
		t.Errorf("data = %+v, want a token", data)
	}
	user, _ := data["user"].(map[string]any)
	if _, leaked := user["password_hash"]; leaked {
		t.Error("response leaks the password hash")
	}
}

func TestRegisterConflict(t *testing.T) {
	svc := &stubAuthService{err: apperr.Conflict("username or email already registered")}
	h := NewAuthHandler(svc, false)

	body := `{"username":"nick","email":"a@b.co","password":"secret1"}`
	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body)))

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := &stubAuthService{err: apperr.Unauthenticated("invalid credentials")}
	h := NewAuthHandler(svc, false)

	body := `{"username":"nick","password":"wrong"}`
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body)))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestLoginAcceptsEmailField(t *testing.T) {
	svc := &stubAuthService{user: &model.User{ID: 1, Username: "nick", Email: "a@b.co"}}
	h := NewAuthHandler(svc, false)

	body := `{"email":"a@b.co","password":"secret1"}`
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if svc.login != "a@b.co" {
		t.Errorf("login = %q, want the email field value", svc.login)
	}
}

func TestMeWithIdentity(t *testing.T) {
	svc := &stubAuthService{user: &model.User{ID: 1, Username: "nick", Email: "a@b.co"}}
	h := NewAuthHandler(svc, false)

	rec := httptest.NewRecorder()
	h.Me(rec, authedRequest(http.MethodGet, "/auth/me", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	data, _ := envelope["data"].(map[string]any)
	if data["username"] != "nick" {
		t.Errorf("data = %+v", data)
	}
}

func TestMeVanishedAccount(t *testing.T) {
	svc := &stubAuthService{err: apperr.NotFound("user")}
	h := NewAuthHandler(svc, false)

	rec := httptest.NewRecorder()
	h.Me(rec, authedRequest(http.MethodGet, "/auth/me", ""))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
