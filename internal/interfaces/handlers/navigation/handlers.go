package navigation

import (
	navsvc "clinic-dashboard/internal/application/navigation"
	"clinic-dashboard/internal/domain"
	"clinic-dashboard/internal/middleware"
	"clinic-dashboard/internal/pkg/response"
	"clinic-dashboard/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// Handlers serves the filtered sidebar and permission queries.
type Handlers struct{}

// FilterRequest body for POST /navigation/filter.
type FilterRequest struct {
	Items domain.NavItems `json:"items"`
}

// Menu GET /api/v1/navigation: the dashboard sidebar filtered for the session's role.
func (h *Handlers) Menu(c *fiber.Ctx) error {
	f := middleware.RoleFilter(c)
	return response.Success(c, "Navigation retrieved", fiber.Map{
		"role":  string(f.CurrentRole()),
		"items": navsvc.Menu(f),
	}, nil)
}

// Filter POST /api/v1/navigation/filter: filter a caller-supplied menu for the session's role.
func (h *Handlers) Filter(c *fiber.Ctx) error {
	var req FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid navigation items: "+err.Error())
	}
	f := middleware.RoleFilter(c)
	return response.Success(c, "Navigation filtered", fiber.Map{
		"role":  string(f.CurrentRole()),
		"items": f.FilterNavigation(req.Items),
	}, nil)
}

// Permissions GET /api/v1/permissions: the active role's permission tokens.
func (h *Handlers) Permissions(c *fiber.Ctx) error {
	return response.Success(c, "Permissions retrieved", navsvc.Permissions(middleware.RoleFilter(c)), nil)
}

// Check GET /api/v1/permissions/check?route=/x: whether a single route is visible.
func (h *Handlers) Check(c *fiber.Ctx) error {
	route := c.Query("route")
	if route == "" {
		return response.BadRequest(c, "route query parameter is required")
	}
	if !validation.IsValidRoute(route) {
		return response.BadRequest(c, "route is not a valid path")
	}
	return response.Success(c, "Permission checked", navsvc.Check(middleware.RoleFilter(c), route), nil)
}
