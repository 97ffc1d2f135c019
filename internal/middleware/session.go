package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SessionConfig controls the browser session cookie. The session only identifies whose
// dashboard preferences to load; it carries no identity or credentials.
type SessionConfig struct {
	AllowCrossSiteDev bool
	IsProduction      bool
}

const (
	SessionCookieName = "clinic.sid"
	sessionIDLocal    = "session_id"
	sessionMaxAge     = 30 * 24 * time.Hour
)

// Session reads the session id from the cookie, or starts a new session when the cookie
// is missing or not a UUID. New sessions get a cookie on the response.
func Session(cfg SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(SessionCookieName)
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.New().String()
			cookie := SessionCookieConfig(cfg)
			cookie.Value = sid
			c.Cookie(&cookie)
		}
		c.Locals(sessionIDLocal, sid)
		return c.Next()
	}
}

// GetSessionID returns the current session id ("" outside the Session middleware).
func GetSessionID(c *fiber.Ctx) string {
	sid, _ := c.Locals(sessionIDLocal).(string)
	return sid
}

// SessionCookieConfig returns the cookie options for the session cookie.
func SessionCookieConfig(cfg SessionConfig) fiber.Cookie {
	sameSite := "Lax"
	if cfg.AllowCrossSiteDev {
		sameSite = "None"
	}
	return fiber.Cookie{
		Name:     SessionCookieName,
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		HTTPOnly: true,
		Secure:   cfg.IsProduction || cfg.AllowCrossSiteDev,
		SameSite: sameSite,
	}
}
