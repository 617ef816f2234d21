package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/calebsoh/menucard/internal/middleware"
	"github.com/calebsoh/menucard/internal/models"
)

// requestContext safely returns the request context with a background fallback for tests.
func requestContext(c *gin.Context) context.Context {
	if c == nil {
		return context.Background()
	}
	if req := c.Request; req != nil {
		return req.Context()
	}
	return context.Background()
}

// currentUser returns the session user resolved by the middleware chain.
// Handlers behind RequireSession can rely on a non-nil result.
func currentUser(c *gin.Context) *models.User {
	return middleware.SessionUser(c)
}
