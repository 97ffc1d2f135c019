package bootstrap

import (
	"clinic-dashboard/internal/config"
	"clinic-dashboard/internal/interfaces/router"
	"clinic-dashboard/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// New loads configuration, sets up logging and builds the app with its dependencies.
func New() (*fiber.App, *config.Config, router.Deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, router.Deps{}, err
	}
	logger.Setup(cfg.Env, cfg.LogLevel)
	app, deps, err := router.CreateApp(cfg)
	if err != nil {
		return nil, cfg, deps, err
	}
	return app, cfg, deps, nil
}
