package health

import (
	healthsvc "clinic-dashboard/internal/application/health"
	"clinic-dashboard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Handlers holds dependencies for health endpoints.
type Handlers struct {
	Rdb            *redis.Client
	DB             healthsvc.DBPinger
	HealthAdminKey string
}

// JSON GET /health/json: service status, dependencies and request statistics.
func (h *Handlers) JSON(c *fiber.Ctx) error {
	result := healthsvc.Collect(c.UserContext(), h.Rdb, h.DB)
	return c.JSON(fiber.Map{
		"service":      "clinic-dashboard",
		"status":       result.Status,
		"runtime":      result.Runtime,
		"traffic":      result.Traffic,
		"dependencies": result.Dependencies,
	})
}

// Reset GET /health/reset?key=: clears request statistics. Requires HEALTH_ADMIN_KEY.
func (h *Handlers) Reset(c *fiber.Ctx) error {
	key := c.Query("key")
	if h.HealthAdminKey == "" || key != h.HealthAdminKey {
		return response.Error(c, "Unauthorized", fiber.StatusForbidden, nil)
	}
	if h.Rdb == nil {
		return response.Error(c, "Statistics are disabled (no Redis configured)", fiber.StatusConflict, nil)
	}
	if err := healthsvc.Reset(c.UserContext(), h.Rdb); err != nil {
		return response.Error(c, err.Error(), fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Stats reset successfully", fiber.Map{"success": true}, nil)
}
