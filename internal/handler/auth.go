package handler

import (
	"net/http"
	"time"

	"github.com/tinselworks/noel/internal/apperr"
	"github.com/tinselworks/noel/internal/ctxkeys"
	"github.com/tinselworks/noel/internal/model"
	"github.com/tinselworks/noel/internal/transform"
	"github.com/tinselworks/noel/internal/validation"
)

// AuthService is the slice of the auth service the handler needs.
type AuthService interface {
	Register(rec transform.RegistrationRecord) (*model.User, error)
	Login(login, password string) (*model.User, error)
	ByID(id int64) (*model.User, error)
	IssueToken(user *model.User) (string, time.Time, error)
}

type AuthHandler struct {
	responder
	auth AuthService
}

func NewAuthHandler(auth AuthService, verbose bool) *AuthHandler {
	return &AuthHandler{responder: responder{verbose: verbose}, auth: auth}
}

type sessionPayload struct {
	User      transform.UserView `json:"user"`
	Token     string             `json:"token"`
	ExpiresAt string             `json:"expires_at"`
}

func (h *AuthHandler) session(user *model.User) (*sessionPayload, error) {
	token, expiresAt, err := h.auth.IssueToken(user)
	if err != nil {
		return nil, err
	}
	return &sessionPayload{
		User:      transform.NewUserView(user),
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	}, nil
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeBody(w, r)
	if err != nil {
		h.err(w, err)
		return
	}

	rec := transform.Registration(raw)

	for _, err := range []error{
		validation.Required(rec.Username, "username"),
		validation.Length(rec.Username, 3, 50, "username"),
		validation.Required(rec.Email, "email"),
		validation.Email(rec.Email),
		validation.Required(rec.Password, "password"),
		validation.ByteLength(rec.Password, 6, 72, "password"),
	} {
		if err != nil {
			h.err(w, err)
			return
		}
	}

	user, err := h.auth.Register(rec)
	if err != nil {
		h.err(w, err)
		return
	}

	payload, err := h.session(user)
	if err != nil {
		h.err(w, err)
		return
	}
	h.message(w, http.StatusCreated, payload, "registration successful")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeBody(w, r)
	if err != nil {
		h.err(w, err)
		return
	}

	// The login field accepts either a username or an email address.
	login := transform.SanitizeString(raw["username"])
	if login == "" {
		login = transform.SanitizeString(raw["email"])
	}
	password, _ := raw["password"].(string)

	if err := validation.Required(login, "username"); err != nil {
		h.err(w, err)
		return
	}
	if err := validation.Required(password, "password"); err != nil {
		h.err(w, err)
		return
	}

	user, err := h.auth.Login(login, password)
	if err != nil {
		h.err(w, err)
		return
	}

	payload, err := h.session(user)
	if err != nil {
		h.err(w, err)
		return
	}
	h.message(w, http.StatusOK, payload, "login successful")
}

// Me returns a fresh record for the authenticated user. The gate guarantees
// an identity is on the context, but the account may have vanished since the
// token was issued.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity := ctxkeys.Identity(r.Context())
	if identity == nil {
		h.err(w, apperr.Unauthenticated("authentication required"))
		return
	}

	user, err := h.auth.ByID(identity.ID)
	if err != nil {
		h.err(w, err)
		return
	}
	h.data(w, http.StatusOK, transform.NewUserView(user))
}
