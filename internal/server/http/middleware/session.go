package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// WorkspaceContextKey is a gin context key for the session workspace ID.
	WorkspaceContextKey = "workspaceID"
	sessionCookieName   = "salwa_session"
)

// SessionFacade describes the session capabilities required by middleware.
type SessionFacade interface {
	ParseSessionToken(token string) (string, error)
	HasWorkspace(ctx context.Context, workspaceID string) bool
	OpenWorkspace(ctx context.Context) (string, string, error)
}

// Session binds every request to a workspace. A missing, invalid, or expired
// token transparently opens a fresh seeded workspace, which is what a new
// page load does.
func Session(facade SessionFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if token := extractToken(c); token != "" {
			if workspaceID, err := facade.ParseSessionToken(token); err == nil && facade.HasWorkspace(ctx, workspaceID) {
				c.Set(WorkspaceContextKey, workspaceID)
				c.Next()
				return
			}
		}

		workspaceID, token, err := facade.OpenWorkspace(ctx)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		SetSessionCookie(c, token)
		c.Set(WorkspaceContextKey, workspaceID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetSessionCookie writes the session token cookie to the response.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
