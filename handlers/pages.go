package handlers

import (
	"net/http"

	"bookit/models"

	"github.com/gin-gonic/gin"
)

// PageHandler responds with a page descriptor. The SPA owns rendering; the
// server's job on page routes is the guard semantics, so the body is a
// minimal marker the client can hydrate from.
func PageHandler(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": name})
	}
}

// DashboardHomeHandler returns the dashboard shell data: the signed-in
// user's identity for the sidebar.
func DashboardHomeHandler(c *gin.Context) {
	v, _ := c.Get("session")
	session, ok := v.(*models.Session)
	if !ok || !session.IsAuthenticated {
		// RequireAuth runs before this handler; reaching here without a
		// session is a wiring bug.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": "dashboard", "user": session.User})
}
