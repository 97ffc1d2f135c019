package middleware

import (
	"clinic-dashboard/internal/infrastructure/prefstore"
	"clinic-dashboard/internal/rolefilter"

	"github.com/gofiber/fiber/v2"
)

const roleFilterLocal = "role_filter"

// RoleScope builds the session's role filter from its stored preference and makes it
// available to handlers through RoleFilter and the request context. Must run after Session.
func RoleScope(provider prefstore.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := rolefilter.New(provider.ForSession(GetSessionID(c)))
		f.Initialize(c.UserContext())
		c.Locals(roleFilterLocal, f)
		c.SetUserContext(rolefilter.WithFilter(c.UserContext(), f))
		return c.Next()
	}
}

// RoleFilter returns the request's role filter. It panics when RoleScope did not run for
// this route, since that means the route was registered outside the role scope.
func RoleFilter(c *fiber.Ctx) *rolefilter.Filter {
	if f, ok := c.Locals(roleFilterLocal).(*rolefilter.Filter); ok && f != nil {
		return f
	}
	return rolefilter.MustFromContext(c.UserContext())
}
