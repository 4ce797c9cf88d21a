package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tinselworks/noel/internal/apperr"
	"github.com/tinselworks/noel/internal/model"
	"github.com/tinselworks/noel/internal/repository"
	"github.com/tinselworks/noel/internal/transform"
	"golang.org/x/crypto/bcrypt"
)

// Identity is the decoded subject of a verified token. It comes entirely
// from the token claims; verification does no store lookups.
type Identity struct {
	ID       int64
	Username string
	Email    string
}

type AuthService struct {
	userRepository repository.UserRepository
	emailService   *EmailService
	statsService   *StatsService
	jwtSecret      string
	jwtExpiry      time.Duration
}

func NewAuthService(
	userRepository repository.UserRepository,
	emailService *EmailService,
	statsService *StatsService,
	jwtSecret string,
	jwtExpiry time.Duration,
) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		emailService:   emailService,
		statsService:   statsService,
		jwtSecret:      jwtSecret,
		jwtExpiry:      jwtExpiry,
	}
}

// Register creates an account from an already-validated, shaped record. The
// password is hashed here; nothing upstream ever stores or logs it.
func (s *AuthService) Register(rec transform.RegistrationRecord) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(rec.Password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperr.Validation("password", "password must be at most 72 bytes")
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     rec.Username,
		Email:        rec.Email,
		PasswordHash: string(hash),
		Avatar:       rec.Avatar,
		CreatedAt:    time.Now(),
	}

	err = s.userRepository.Create(user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict("username or email already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.statsService.RecordActiveUser()

	err = s.emailService.SendWelcomeEmail(user.Email, user.Username)
	if err != nil {
		slog.Warn("failed to send welcome email", "error", err, "email", user.Email)
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login authenticates by username (or email) and password.
func (s *AuthService) Login(login, password string) (*model.User, error) {
	user, err := s.userRepository.ByUsername(login)
	if errors.Is(err, repository.ErrUserNotFound) {
		user, err = s.userRepository.ByEmail(login)
	}
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.Unauthenticated("invalid credentials")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, apperr.Unauthenticated("invalid credentials")
	}

	s.statsService.RecordActiveUser()

	slog.Info("user logged in", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// ByID fetches a fresh user record for a verified identity.
func (s *AuthService) ByID(id int64) (*model.User, error) {
	user, err := s.userRepository.ByID(id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, apperr.NotFound("user")
	}
	return user, err
}

// IssueToken signs a time-limited HS256 bearer token for the user.
func (s *AuthService) IssueToken(user *model.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.jwtExpiry)
	claims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"exp":      expiresAt.Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// VerifyToken is a pure symmetric-key check: signature plus expiry, no
// session state, no store access.
func (s *AuthService) VerifyToken(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return nil, errors.New("invalid token subject")
	}
	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)

	return &Identity{
		ID:       int64(id),
		Username: username,
		Email:    email,
	}, nil
}
