package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Jenilvaghasiya/deploy-DG-sub007/cache"
	apperrors "github.com/Jenilvaghasiya/deploy-DG-sub007/errors"
)

// sessionContextKey is the echo context key carrying the validated session.
const sessionContextKey = "auth_session"

// RequireSession guards routes behind a live session. The caller presents
// the session ID in the X-Session-ID header; sessions that are unknown or
// already logged out are rejected.
func RequireSession(reader *cache.ReadThroughSessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := c.Request().Header.Get("X-Session-ID")
			if sessionID == "" {
				return c.JSON(http.StatusUnauthorized, errorResponse{Message: "missing session"})
			}

			session, err := reader.GetSessionByID(c.Request().Context(), sessionID)
			if err != nil {
				if errors.Is(err, apperrors.ErrSessionNotFound) {
					return c.JSON(http.StatusUnauthorized, errorResponse{Message: "invalid session"})
				}
				return c.JSON(http.StatusInternalServerError, errorResponse{Message: "session lookup failed"})
			}
			if session.LogoutTime != nil {
				return c.JSON(http.StatusUnauthorized, errorResponse{Message: "session has ended"})
			}

			c.Set(sessionContextKey, session)
			return next(c)
		}
	}
}
