package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	iauth "github.com/calebsoh/menucard/internal/auth"
)

// Page prefixes that require a session cookie to view.
var protectedPrefixes = []string{"/dashboard", "/admin", "/restaurant"}

const (
	loginPage     = "/auth/login"
	dashboardPage = "/dashboard"
)

// PageGuard redirects browser navigation based on cookie presence alone: it
// never validates the session against the store. Protected pages without a
// cookie bounce to the login page, and auth pages with a cookie bounce to
// the dashboard so a signed-in user cannot land back on the login form.
// Logout is exempt so a signed-in user can always reach it.
func PageGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		cookie, err := c.Cookie(iauth.SessionCookieName)
		hasCookie := err == nil && cookie != ""

		if !hasCookie && hasProtectedPrefix(path) {
			c.Redirect(http.StatusFound, loginPage)
			c.Abort()
			return
		}

		if hasCookie && strings.HasPrefix(path, "/auth/") && path != "/auth/logout" {
			c.Redirect(http.StatusFound, dashboardPage)
			c.Abort()
			return
		}

		c.Next()
	}
}

func hasProtectedPrefix(path string) bool {
	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
