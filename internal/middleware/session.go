package middleware

import (
	"github.com/gin-gonic/gin"

	iauth "github.com/calebsoh/menucard/internal/auth"
	"github.com/calebsoh/menucard/internal/models"
	"github.com/calebsoh/menucard/pkg/errors"
	"github.com/calebsoh/menucard/pkg/response"
)

const (
	CtxUserKey   = "sessionUser"
	CtxUserIDKey = "userID"
)

// RequireSession enforces a valid session cookie using the supplied session
// service. A cookie naming a user that no longer exists is treated the same
// as no cookie at all.
func RequireSession(sessions *iauth.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessions.Resolve(c)
		if err != nil {
			response.Error(c, errors.ErrInternalServer.WithInternal(err))
			c.Abort()
			return
		}
		if user == nil {
			response.Error(c, errors.ErrUnauthorized)
			c.Abort()
			return
		}

		// Propagate identity into request context
		c.Set(CtxUserKey, user)
		c.Set(CtxUserIDKey, user.ID)

		c.Next()
	}
}

// SessionUser returns the user stored by RequireSession, or nil when the
// route was not guarded.
func SessionUser(c *gin.Context) *models.User {
	value, ok := c.Get(CtxUserKey)
	if !ok {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
