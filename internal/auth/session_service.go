package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/calebsoh/menucard/internal/models"
)

// SessionCookieName is the cookie carrying the session. Its value is the
// raw user id; there is no signing and no server-side session table, so the
// cookie itself is the whole session. A known trust-boundary gap, kept for
// compatibility with existing clients.
const SessionCookieName = "userId"

// Sessions live as long as the cookie unless the user logs out.
const sessionMaxAge = 30 * 24 * time.Hour

// SessionConfig controls cookie attributes.
type SessionConfig struct {
	// Production toggles the HttpOnly and Secure flags. Development keeps
	// both off and pins the cookie to localhost.
	Production bool
}

// SessionService issues, clears, and resolves cookie sessions.
type SessionService struct {
	db  *gorm.DB
	cfg SessionConfig
}

// NewSessionService constructs a session service once a database handle is supplied.
func NewSessionService(db *gorm.DB, cfg SessionConfig) (*SessionService, error) {
	if db == nil {
		return nil, errors.New("session service: db is required")
	}
	return &SessionService{db: db, cfg: cfg}, nil
}

// Issue sets the session cookie for the given user id.
func (s *SessionService) Issue(c *gin.Context, userID string) {
	domain := "localhost"
	if s.cfg.Production {
		domain = ""
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, userID, int(sessionMaxAge.Seconds()), "/", domain, s.cfg.Production, s.cfg.Production)
}

// Clear deletes the session cookie. Clearing an absent cookie is a no-op,
// so the operation is idempotent.
func (s *SessionService) Clear(c *gin.Context) {
	domain := "localhost"
	if s.cfg.Production {
		domain = ""
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", domain, s.cfg.Production, s.cfg.Production)
}

// Resolve reads the session cookie and loads the matching user. A missing
// cookie and a cookie pointing at a deleted user both mean "no session"
// (nil, nil); only store failures surface as errors.
func (s *SessionService) Resolve(c *gin.Context) (*models.User, error) {
	userID, err := c.Cookie(SessionCookieName)
	if err != nil || userID == "" {
		return nil, nil
	}

	var user models.User
	if err := s.db.WithContext(c.Request.Context()).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("session service: resolve user: %w", err)
	}

	return &user, nil
}
