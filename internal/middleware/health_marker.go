package middleware

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Redis keys for request statistics, shared with the health service.
const (
	KeyReqTotal  = "health:clinic:req_total"
	KeyReqErrors = "health:clinic:req_errors"
	KeyResTime   = "health:clinic:res_time_total"
	KeyResCount  = "health:clinic:res_count"
	KeyStartTime = "health:clinic:start_time"
	KeyLastReq   = "health:clinic:last_request"
)

// StatsKeys lists every statistics key (for resets).
var StatsKeys = []string{KeyReqTotal, KeyReqErrors, KeyResTime, KeyResCount, KeyStartTime, KeyLastReq}

// HealthMarker records request counters in Redis, skipping /health* and favicon requests.
// A nil client disables it. Counter failures are logged and never fail the request.
func HealthMarker(rdb *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if rdb == nil || strings.HasPrefix(path, "/health") || strings.HasPrefix(path, "/favicon") {
			return c.Next()
		}

		start := time.Now()
		ctx := context.Background()
		lastReq, _ := json.Marshal(map[string]interface{}{
			"time":   start,
			"path":   c.OriginalURL(),
			"method": c.Method(),
		})
		pipe := rdb.Pipeline()
		pipe.Set(ctx, KeyLastReq, lastReq, 0)
		pipe.Incr(ctx, KeyReqTotal)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Debug().Err(err).Msg("health marker: recording request failed")
		}

		err := c.Next()

		pipe = rdb.Pipeline()
		pipe.Incr(ctx, KeyResCount)
		pipe.IncrByFloat(ctx, KeyResTime, float64(time.Since(start).Milliseconds()))
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			pipe.Incr(ctx, KeyReqErrors)
		}
		if _, perr := pipe.Exec(ctx); perr != nil {
			log.Debug().Err(perr).Msg("health marker: recording response failed")
		}
		return err
	}
}
