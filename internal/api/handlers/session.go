package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionCookie = "eld_session"

// Cookies issues and reads the per-browser session id.
type Cookies struct {
	Secure bool
	MaxAge int
}

// SessionID returns the browser's session id, issuing a new one when the
// cookie is missing or malformed.
func (k Cookies) SessionID(c *gin.Context) string {
	if v, err := c.Cookie(SessionCookie); err == nil {
		if _, err := uuid.Parse(v); err == nil {
			return v
		}
	}

	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, id, k.MaxAge, "/", "", k.Secure, true)
	return id
}
