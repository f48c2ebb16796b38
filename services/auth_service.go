package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/Jenilvaghasiya/deploy-DG-sub007/domain"
	apperrors "github.com/Jenilvaghasiya/deploy-DG-sub007/errors"
	"github.com/Jenilvaghasiya/deploy-DG-sub007/internal/audit"
	"github.com/Jenilvaghasiya/deploy-DG-sub007/internal/metrics"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the response does not leak which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountInactive rejects logins for deactivated accounts.
	ErrAccountInactive = errors.New("account is inactive, contact the administrator")

	// ErrAccountNotVerified rejects logins until email verification completes.
	ErrAccountNotVerified = errors.New("account is not verified")

	// ErrEmailAlreadyRegistered rejects duplicate registrations.
	ErrEmailAlreadyRegistered = errors.New("email is already registered")
)

// AuthService drives the login/logout flow: credential checks against the
// user store, then session lifecycle through the SessionService.
type AuthService struct {
	userRepo       domain.UserRepository
	sessionService *SessionService
	passwordHasher PasswordHasher
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo domain.UserRepository, sessionService *SessionService, passwordHasher PasswordHasher) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		sessionService: sessionService,
		passwordHasher: passwordHasher,
	}
}

// LoginResult carries the authenticated user and the freshly created session.
type LoginResult struct {
	User    *domain.User
	Session *domain.Session
}

// Login authenticates by email and password and creates a session on
// success. Every attempt, failed or not, bumps the user's login_attempt
// counter when the account exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	log.Debug().Str("email", email).Msg("Login attempt")

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		log.Warn().Err(err).Str("email", email).Msg("Login: user not found")
		audit.Log("AuthService", "Login", email, "", "User not found or DB error", false, err)
		metrics.LoginFailureTotal.Inc()
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		log.Warn().Str("userID", user.ID).Msg("Login: account inactive")
		audit.Log("AuthService", "Login", user.ID, user.ID, "Account inactive", false, ErrAccountInactive)
		metrics.LoginFailureTotal.Inc()
		return nil, ErrAccountInactive
	}

	user.LoginAttempt++
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		// Attempt counting is best effort; the login itself proceeds.
		log.Warn().Err(err).Str("userID", user.ID).Msg("Login: failed to record login attempt")
	}

	if err := s.passwordHasher.Verify(user.PasswordHash, password); err != nil {
		log.Warn().Str("userID", user.ID).Msg("Login: incorrect password")
		audit.Log("AuthService", "Login", user.ID, user.ID, "Incorrect password", false, err)
		metrics.LoginFailureTotal.Inc()
		return nil, ErrInvalidCredentials
	}

	if !user.IsVerified {
		log.Warn().Str("userID", user.ID).Msg("Login: account not verified")
		audit.Log("AuthService", "Login", user.ID, user.ID, "Account not verified", false, ErrAccountNotVerified)
		metrics.LoginFailureTotal.Inc()
		return nil, ErrAccountNotVerified
	}

	session, err := s.sessionService.CreateSession(ctx, user.ID)
	if err != nil {
		audit.Log("AuthService", "Login", user.ID, user.ID, "Session creation failed", false, err)
		metrics.LoginFailureTotal.Inc()
		return nil, err
	}

	audit.Log("AuthService", "Login", user.ID, session.ID, "User logged in", true, nil)
	metrics.LoginSuccessTotal.Inc()
	return &LoginResult{User: user, Session: session}, nil
}

// Logout records the logout time on the session. Unknown session IDs
// surface errors.ErrSessionNotFound unchanged.
func (s *AuthService) Logout(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessionService.UpdateSessionLogoutTime(ctx, sessionID)
	if err != nil {
		audit.Log("AuthService", "Logout", "", sessionID, "Logout failed", false, err)
		return nil, err
	}

	audit.Log("AuthService", "Logout", session.UserID, session.ID, "User logged out", true, nil)
	return session, nil
}

// RegisterInput is the payload for Register.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	RoleID   string
	TenantID string
}

// Register creates a new unverified user account. Duplicate emails are
// rejected regardless of tenant; the original product keeps one account per
// email across tenants.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	existing, err := s.userRepo.GetUserByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, apperrors.NewCreationError("user", err)
	}
	if existing != nil {
		audit.Log("AuthService", "Register", in.Email, "", "Duplicate email", false, ErrEmailAlreadyRegistered)
		return nil, ErrEmailAlreadyRegistered
	}

	hash, err := s.passwordHasher.Hash(in.Password)
	if err != nil {
		return nil, apperrors.NewCreationError("user", err)
	}

	user := &domain.User{
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: hash,
		RoleID:       in.RoleID,
		TenantID:     in.TenantID,
		IsActive:     true,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		log.Error().Err(err).Str("email", in.Email).Msg("Register: failed to create user")
		return nil, apperrors.NewCreationError("user", err)
	}

	audit.Log("AuthService", "Register", user.ID, user.ID, "User registered", true, nil)
	return user, nil
}
