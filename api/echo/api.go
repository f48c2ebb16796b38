// Package echo exposes the session/auth surface over HTTP. The handlers are
// a thin translation layer; all behavior lives in the services package.
package echo

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/Jenilvaghasiya/deploy-DG-sub007/cache"
	"github.com/Jenilvaghasiya/deploy-DG-sub007/domain"
	apperrors "github.com/Jenilvaghasiya/deploy-DG-sub007/errors"
	"github.com/Jenilvaghasiya/deploy-DG-sub007/services"
)

// HealthChecker reports backend storage health, satisfied by mongodb.Ping.
type HealthChecker func(ctx context.Context) error

// AuthAPI holds the handler dependencies.
type AuthAPI struct {
	authService    *services.AuthService
	sessionService *services.SessionService
	sessionReader  *cache.ReadThroughSessionReader
	healthCheck    HealthChecker
}

// NewAuthAPI initializes the auth/session API.
func NewAuthAPI(
	authService *services.AuthService,
	sessionService *services.SessionService,
	sessionReader *cache.ReadThroughSessionReader,
	healthCheck HealthChecker,
) *AuthAPI {
	return &AuthAPI{
		authService:    authService,
		sessionService: sessionService,
		sessionReader:  sessionReader,
		healthCheck:    healthCheck,
	}
}

// RegisterRoutes registers the HTTP routes.
func (a *AuthAPI) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.Recover())

	e.POST("/api/auth/register", a.RegisterHandler)
	e.POST("/api/auth/login", a.LoginHandler)
	e.POST("/api/auth/logout", a.LogoutHandler)
	e.GET("/api/auth/sessions/:id", a.GetSessionHandler)
	e.GET("/api/users/:id/sessions", a.ListUserSessionsHandler, RequireSession(a.sessionReader))

	e.GET("/healthz", a.HealthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

type errorResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   string `json:"roleId"`
	TenantID string `json:"tenantId"`
}

// RegisterHandler creates a new unverified account.
func (a *AuthAPI) RegisterHandler(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "email and password are required"})
	}

	user, err := a.authService.Register(c.Request().Context(), services.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
		TenantID: req.TenantID,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyRegistered) {
			return c.JSON(http.StatusConflict, errorResponse{Message: err.Error()})
		}
		log.Error().Err(err).Msg("Registration failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Message: "registration failed"})
	}

	return c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User    *domain.User    `json:"user"`
	Session *domain.Session `json:"session"`
}

// LoginHandler authenticates and opens a session.
func (a *AuthAPI) LoginHandler(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "email and password are required"})
	}

	result, err := a.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, errorResponse{Message: err.Error()})
		case errors.Is(err, services.ErrAccountInactive):
			return c.JSON(http.StatusMethodNotAllowed, errorResponse{Message: err.Error()})
		case errors.Is(err, services.ErrAccountNotVerified):
			return c.JSON(http.StatusForbidden, errorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Msg("Login failed")
			return c.JSON(http.StatusInternalServerError, errorResponse{Message: "login failed"})
		}
	}

	return c.JSON(http.StatusOK, loginResponse{User: result.User, Session: result.Session})
}

type logoutRequest struct {
	SessionID string `json:"sessionId"`
}

// LogoutHandler records the logout time on the session and drops it from the
// read cache.
func (a *AuthAPI) LogoutHandler(c echo.Context) error {
	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	if req.SessionID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "sessionId is required"})
	}

	session, err := a.authService.Logout(c.Request().Context(), req.SessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Message: "session not found"})
		}
		log.Error().Err(err).Str("sessionID", req.SessionID).Msg("Logout failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Message: "logout failed"})
	}

	if a.sessionReader != nil {
		a.sessionReader.Invalidate(c.Request().Context(), session.ID)
	}

	return c.JSON(http.StatusOK, session)
}

// GetSessionHandler serves one session, preferring the read cache.
func (a *AuthAPI) GetSessionHandler(c echo.Context) error {
	id := c.Param("id")

	session, err := a.sessionReader.GetSessionByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Message: "session not found"})
		}
		log.Error().Err(err).Str("sessionID", id).Msg("Session lookup failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Message: "session lookup failed"})
	}

	return c.JSON(http.StatusOK, session)
}

// ListUserSessionsHandler lists a user's sessions, newest login first.
// ?active=true narrows to sessions without a logout time.
func (a *AuthAPI) ListUserSessionsHandler(c echo.Context) error {
	userID := c.Param("id")
	filter := domain.SessionFilter{
		ActiveOnly: c.QueryParam("active") == "true",
	}

	sessions, err := a.sessionService.ListUserSessions(c.Request().Context(), userID, filter)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Session listing failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Message: "session listing failed"})
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}

	return c.JSON(http.StatusOK, sessions)
}

// HealthHandler reports storage health.
func (a *AuthAPI) HealthHandler(c echo.Context) error {
	if a.healthCheck != nil {
		if err := a.healthCheck(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, errorResponse{Message: "storage unavailable"})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
