package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tinselworks/noel/internal/apperr"
	"github.com/tinselworks/noel/internal/model"
	"github.com/tinselworks/noel/internal/transform"
)

func TestRegisterOverlongPasswordIsValidationError(t *testing.T) {
	auth := NewAuthService(nil, nil, nil, "test-secret", time.Hour)

	// 80 bytes; bcrypt refuses anything over 72. The failure must surface as
	// a field validation error, not an internal one.
	rec := transform.RegistrationRecord{
		Username: "nick",
		Email:    "nick@northpole.dev",
		Password: strings.Repeat("é", 40),
	}

	_, err := auth.Register(rec)
	var validationErr *apperr.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if validationErr.Field != "password" {
		t.Errorf("field = %q, want password", validationErr.Field)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	auth := NewAuthService(nil, nil, nil, "test-secret", time.Hour)

	user := &model.User{ID: 42, Username: "nick", Email: "nick@northpole.dev"}

	token, expiresAt, err := auth.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if time.Until(expiresAt) < 59*time.Minute {
		t.Errorf("expiry %v not about an hour out", expiresAt)
	}

	identity, err := auth.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if identity.ID != 42 || identity.Username != "nick" || identity.Email != "nick@northpole.dev" {
		t.Errorf("identity = %+v", identity)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	issuer := NewAuthService(nil, nil, nil, "secret-a", time.Hour)
	verifier := NewAuthService(nil, nil, nil, "secret-b", time.Hour)

	token, _, err := issuer.IssueToken(&model.User{ID: 1, Username: "x", Email: "x@y.co"})
	if err != nil {
		t.Fatal(err)
	}

	_, err = verifier.VerifyToken(token)
	if err == nil {
		t.Error("token signed with another secret must not verify")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	auth := NewAuthService(nil, nil, nil, "test-secret", -time.Minute)

	token, _, err := auth.IssueToken(&model.User{ID: 1, Username: "x", Email: "x@y.co"})
	if err != nil {
		t.Fatal(err)
	}

	_, err = auth.VerifyToken(token)
	if err == nil {
		t.Error("expired token must not verify")
	}
}

func TestVerifyTokenGarbage(t *testing.T) {
	auth := NewAuthService(nil, nil, nil, "test-secret", time.Hour)
	_, err := auth.VerifyToken("not.a.token")
	if err == nil {
		t.Error("garbage must not verify")
	}
}
