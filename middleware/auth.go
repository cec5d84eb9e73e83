package middleware

import (
	"context"
	"net/http"
	"strings"

	"bookit/models"

	"github.com/gin-gonic/gin"
)

// SessionResolver resolves a bearer token to the caller's session. A failed
// check yields an unauthenticated session, never an error.
type SessionResolver interface {
	CheckAuth(ctx context.Context, token string) *models.Session
}

// extractToken pulls the auth token from the "token" cookie or, failing
// that, from a Bearer authorization header.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// resolveSession runs the auth check once per request and caches the result
// in the gin context.
func resolveSession(c *gin.Context, sessions SessionResolver) *models.Session {
	if v, exists := c.Get("session"); exists {
		if session, ok := v.(*models.Session); ok {
			return session
		}
	}
	session := sessions.CheckAuth(c.Request.Context(), extractToken(c))
	c.Set("session", session)
	if session.IsAuthenticated {
		c.Set("userID", session.UserID)
	}
	return session
}

// RequireAuth guards a page route: unauthenticated callers are redirected
// to the login page, authenticated but unverified callers to the email
// verification page.
func RequireAuth(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := resolveSession(c, sessions)
		if !session.IsAuthenticated {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if !session.User.IsVerified {
			c.Redirect(http.StatusFound, "/verify-email")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectIfAuthenticated guards the auth pages: a signed-in, verified
// caller has no business on login/signup/reset pages and is sent home.
func RedirectIfAuthenticated(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := resolveSession(c, sessions)
		if session.IsAuthenticated && session.User.IsVerified {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ResolveSession runs the auth check and stores the result without
// enforcing it, for endpoints that report session state rather than
// require one.
func ResolveSession(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		resolveSession(c, sessions)
		c.Next()
	}
}

// RequireSession guards JSON API routes: unauthenticated callers get a 401
// instead of a redirect.
func RequireSession(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := resolveSession(c, sessions)
		if !session.IsAuthenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		c.Next()
	}
}
