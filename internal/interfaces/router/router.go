package router

import (
	"net/http"

	navsvc "clinic-dashboard/internal/application/navigation"
	"clinic-dashboard/internal/config"
	"clinic-dashboard/internal/infrastructure/database"
	"clinic-dashboard/internal/infrastructure/prefstore"
	healthhandler "clinic-dashboard/internal/interfaces/handlers/health"
	navhandler "clinic-dashboard/internal/interfaces/handlers/navigation"
	rolehandler "clinic-dashboard/internal/interfaces/handlers/roles"
	"clinic-dashboard/internal/middleware"
	"clinic-dashboard/internal/pkg/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Deps are the external clients the app runs on. DB and Rdb are nil when not configured.
type Deps struct {
	DB          *gorm.DB
	Rdb         *redis.Client
	Preferences prefstore.Provider
}

// Connect opens the configured Redis and Postgres clients and selects the preference store.
func Connect(cfg *config.Config) (Deps, error) {
	var deps Deps
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return deps, err
		}
		deps.Rdb = redis.NewClient(opt)
	}
	if cfg.DatabaseURL != "" {
		db, err := database.Open(cfg.DatabaseURL)
		if err != nil {
			return deps, err
		}
		if cfg.PreferenceStore == prefstore.BackendPostgres {
			if err := database.AutoMigrate(db); err != nil {
				return deps, err
			}
		}
		deps.DB = db
	}
	p, err := prefstore.NewProvider(cfg.PreferenceStore, deps.Rdb, deps.DB)
	if err != nil {
		return deps, err
	}
	deps.Preferences = p
	log.Info().Str("preference_store", cfg.PreferenceStore).
		Bool("redis", deps.Rdb != nil).
		Bool("database", deps.DB != nil).
		Msg("dependencies ready")
	return deps, nil
}

// NewApp builds the Fiber app with global middleware and routes over deps.
func NewApp(cfg *config.Config, deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(recover.New())
	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))
	app.Use(middleware.Tracing())
	app.Use(middleware.Session(middleware.SessionConfig{
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.IsProduction(),
	}))
	app.Use(middleware.HealthMarker(deps.Rdb))
	app.Use(middleware.RouteLogger())

	hh := &healthhandler.Handlers{Rdb: deps.Rdb, HealthAdminKey: cfg.HealthAdminKey}
	if deps.DB != nil {
		hh.DB = &database.Pinger{DB: deps.DB}
	}
	app.Get("/health/json", hh.JSON)
	app.Get("/health/reset", hh.Reset)

	preferences := deps.Preferences
	if preferences == nil {
		preferences = prefstore.NewMemoryProvider()
	}
	api := app.Group("/api/v1", middleware.RoleScope(preferences))

	rh := &rolehandler.Handlers{}
	api.Get("/roles", rh.List)
	api.Put("/roles/current", rh.Change)

	checkMenuCoverage()

	nh := &navhandler.Handlers{}
	api.Get("/navigation", nh.Menu)
	api.Post("/navigation/filter", nh.Filter)
	api.Get("/permissions", nh.Permissions)
	api.Get("/permissions/check", nh.Check)

	return app
}

// checkMenuCoverage warns about permissions of a role that no sidebar entry links to.
func checkMenuCoverage() {
	for _, role := range constants.AvailableRoles {
		if missing := navsvc.Unreachable(role); len(missing) > 0 {
			log.Warn().Str("role", string(role)).Strs("tokens", missing).Msg("permissions without a menu entry")
		}
	}
}

// CreateApp connects dependencies and builds the app.
func CreateApp(cfg *config.Config) (*fiber.App, Deps, error) {
	deps, err := Connect(cfg)
	if err != nil {
		return nil, deps, err
	}
	return NewApp(cfg, deps), deps, nil
}

// Handler returns the app as a net/http handler.
func Handler(app *fiber.App) http.Handler {
	return adaptor.FiberApp(app)
}
