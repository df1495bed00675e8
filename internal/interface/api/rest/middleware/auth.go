package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fileshare-api/internal/application/ports"
	"fileshare-api/internal/domain/user"
)

const (
	CtxUserID       = "userID"
	CtxUsername     = "username"
	CtxSessionToken = "sessionToken"

	// SessionCookie carries the opaque token; UserIDCookie mirrors the id
	// for the frontend and is never trusted for authentication.
	SessionCookie = "session_token"
	UserIDCookie  = "user_id"

	sessionHeader = "X-Session-Token"
)

// TokenFromRequest reads the session token from the cookie, falling back to
// the header for non-browser clients.
func TokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		return token
	}
	return c.GetHeader(sessionHeader)
}

// SessionAuth is the access gate: it resolves the session token to a live
// user before the handler runs, or stops the request with 401.
func SessionAuth(sessions ports.SessionService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "authentication required"},
			)
			return
		}

		u, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			logger.Error("session resolve error", zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to verify session"},
			)
			return
		}
		if u == nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "authentication required"},
			)
			return
		}

		c.Set(CtxUserID, u.ID)
		c.Set(CtxUsername, u.Username)
		c.Set(CtxSessionToken, token)

		c.Next()
	}
}

// CurrentUserID returns the gate-resolved user id for the request.
func CurrentUserID(c *gin.Context) (user.ID, bool) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(user.ID)
	return id, ok
}
