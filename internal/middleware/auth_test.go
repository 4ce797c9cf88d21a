package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tinselworks/noel/internal/ctxkeys"
	"github.com/tinselworks/noel/internal/service"
)

type stubVerifier struct {
	identity *service.Identity
	err      error
}

func (s stubVerifier) VerifyToken(token string) (*service.Identity, error) {
	return s.identity, s.err
}

func TestRequireAuthNoCredential(t *testing.T) {
	gate := RequireAuth(stubVerifier{identity: &service.Identity{ID: 1}})

	called := false
	handler := gate(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/todos", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Error("handler must not run without a credential")
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	gate := RequireAuth(stubVerifier{err: errors.New("bad signature")})

	called := false
	handler := gate(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if called {
		t.Error("handler must not run with an invalid token")
	}
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	gate := RequireAuth(stubVerifier{err: errors.New("bad")})
	handler := gate(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	handler(rec, req)

	// A non-bearer header is a presented-but-bad credential, not a missing one.
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	identity := &service.Identity{ID: 42, Username: "nick"}
	gate := RequireAuth(stubVerifier{identity: identity})

	var got *service.Identity
	handler := gate(func(w http.ResponseWriter, r *http.Request) {
		got = ctxkeys.Identity(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if got == nil || got.ID != 42 {
		t.Errorf("identity on context = %+v, want id 42", got)
	}
}

func TestOptionalAuthAnonymous(t *testing.T) {
	gate := OptionalAuth(stubVerifier{err: errors.New("should not matter")})

	var got *service.Identity
	ran := false
	handler := gate(func(w http.ResponseWriter, r *http.Request) {
		ran = true
		got = ctxkeys.Identity(r.Context())
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/wishes", nil))

	if !ran {
		t.Fatal("optional gate must admit anonymous requests")
	}
	if got != nil {
		t.Error("anonymous request should carry no identity")
	}
}

func TestOptionalAuthBadTokenStillAdmits(t *testing.T) {
	gate := OptionalAuth(stubVerifier{err: errors.New("expired")})

	ran := false
	handler := gate(func(w http.ResponseWriter, r *http.Request) {
		ran = true
		if ctxkeys.Identity(r.Context()) != nil {
			t.Error("invalid token must not attach an identity")
		}
	})

	req := httptest.NewRequest(http.MethodPost, "/wishes", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if !ran || rec.Code != http.StatusOK {
		t.Errorf("ran=%v status=%d, optional gate must never reject", ran, rec.Code)
	}
}

func TestOptionalAuthValidToken(t *testing.T) {
	identity := &service.Identity{ID: 7}
	gate := OptionalAuth(stubVerifier{identity: identity})

	var got *service.Identity
	handler := gate(func(w http.ResponseWriter, r *http.Request) {
		got = ctxkeys.Identity(r.Context())
	})

	req := httptest.NewRequest(http.MethodPost, "/wishes", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if got == nil || got.ID != 7 {
		t.Errorf("identity = %+v, want id 7", got)
	}
}
