package roles

import (
	navsvc "clinic-dashboard/internal/application/navigation"
	"clinic-dashboard/internal/middleware"
	"clinic-dashboard/internal/pkg/constants"
	"clinic-dashboard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers serves the role switcher.
type Handlers struct{}

// ChangeRoleRequest body for PUT /roles/current.
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// List GET /api/v1/roles: current role and the roles the switcher offers.
func (h *Handlers) List(c *fiber.Ctx) error {
	f := middleware.RoleFilter(c)
	return response.Success(c, "Roles retrieved", navsvc.Roles(f), nil)
}

// Change PUT /api/v1/roles/current: switch the session's role. An unknown role leaves the
// current one in place and reports changed=false; it is not an error.
func (h *Handlers) Change(c *fiber.Ctx) error {
	var req ChangeRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	f := middleware.RoleFilter(c)
	before := f.CurrentRole()

	role := constants.Role(req.Role)
	if err := f.ChangeRole(c.UserContext(), role); err != nil {
		// The switch already applied for this request; only persistence failed.
		middleware.Logger(c).Warn().Err(err).
			Str("role", string(role)).
			Msg("roles: persisting role change failed")
	}

	view := navsvc.Roles(f)
	return response.Success(c, "Role updated", fiber.Map{
		"changed":  f.CurrentRole() != before,
		"role":     view,
		"previous": string(before),
	}, nil)
}
