// Package service contains the business logic layer. Services depend on the
// port interfaces and are wired with concrete repositories and adapters at
// bootstrap time.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/vitaltrack/vitaltrack/internal/data"
	domainauth "github.com/vitaltrack/vitaltrack/internal/domain/auth"
	"github.com/vitaltrack/vitaltrack/internal/domain/model"
	apperrors "github.com/vitaltrack/vitaltrack/internal/errors"
	"github.com/vitaltrack/vitaltrack/internal/ports"
	"github.com/vitaltrack/vitaltrack/internal/security"
)

const (
	minPasswordLength = 8
	// bcrypt silently ignores bytes past 72; reject instead of truncating.
	maxPasswordLength = 72
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Users  ports.UserRepository   // Required: user repository
	Hasher *security.Hasher       // Required: password hasher
	Tokens *security.TokenService // Required: token issue/verify
	Logger *slog.Logger           // Optional: structured logger
}

// AuthService implements registration, login, and password management.
type AuthService struct {
	users  ports.UserRepository
	hasher *security.Hasher
	tokens *security.TokenService
	logger *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) (*AuthService, error) {
	if opts.Users == nil {
		return nil, errors.New("UserRepository is required")
	}
	if opts.Hasher == nil {
		return nil, errors.New("Hasher is required")
	}
	if opts.Tokens == nil {
		return nil, errors.New("TokenService is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "auth_service")
	}

	return &AuthService{
		users:  opts.Users,
		hasher: opts.Hasher,
		tokens: opts.Tokens,
		logger: logger,
	}, nil
}

// Register creates an account and returns the user plus a fresh identity
// token so the caller is signed in immediately.
func (s *AuthService) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, "", err
	}
	if err := validatePassword(password); err != nil {
		return nil, "", err
	}

	hash, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, email, hash)
	if errors.Is(err, data.ErrEmailExists) {
		return nil, "", apperrors.Conflict("Email already registered")
	}
	if err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "user registered", "user_id", user.ID)
	}
	return user, token, nil
}

// Login verifies credentials and returns the user plus a fresh identity
// token. An unknown email and a wrong password produce the same error so the
// response does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, data.ErrUserNotFound) {
		// Burn a comparison anyway to keep timing comparable between
		// unknown-email and wrong-password failures.
		_ = s.hasher.Compare(dummyHash, []byte(password))
		return nil, "", apperrors.Unauthorized(domainauth.MsgInvalidCredentials)
	}
	if err != nil {
		return nil, "", fmt.Errorf("get user by email: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, "", apperrors.Unauthorized(domainauth.MsgInvalidCredentials)
		}
		return nil, "", fmt.Errorf("compare password: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "user logged in", "user_id", user.ID)
	}
	return user, token, nil
}

// ChangePassword verifies the current password and stores a hash of the new
// one. Previously issued tokens stay valid until they expire.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	if newPassword == currentPassword {
		return apperrors.ValidationField("newPassword", "New password must differ from the current password")
	}

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, data.ErrUserNotFound) {
		return apperrors.Unauthorized(domainauth.MsgInvalidCredentials)
	}
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, []byte(currentPassword)); err != nil {
		return apperrors.Unauthorized(domainauth.MsgInvalidCredentials)
	}

	hash, err := s.hasher.Hash([]byte(newPassword))
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "password changed", "user_id", userID)
	}
	return nil
}

// IssueToken mints a fresh identity token for userID. Used after a password
// change so the session cookie gets a full new lifetime.
func (s *AuthService) IssueToken(userID string) (string, error) {
	return s.tokens.Issue(userID)
}

// GetUser loads the account for an authenticated identity.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, data.ErrUserNotFound) {
		return nil, apperrors.NotFound("User not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// dummyHash is a valid bcrypt hash of a random string, used to equalize the
// cost of login attempts against unknown emails.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

func validateEmail(email string) error {
	if email == "" {
		return apperrors.ValidationField("email", "Email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return apperrors.ValidationField("email", "Email is not valid")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return apperrors.ValidationField("password",
			fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	}
	if len(password) > maxPasswordLength {
		return apperrors.ValidationField("password",
			fmt.Sprintf("Password must be at most %d characters", maxPasswordLength))
	}
	return nil
}
