package app

import (
	"metrodir-backend/internal/config"
	"metrodir-backend/internal/database"
	"metrodir-backend/internal/geocoding"
	"metrodir-backend/internal/geoquery"
	"metrodir-backend/internal/intake"
	"metrodir-backend/internal/listings"
	"metrodir-backend/internal/middleware"
	"metrodir-backend/internal/moderation"
	"metrodir-backend/internal/search"
	"metrodir-backend/internal/similarity"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app: global middleware, database bootstrap and
// every route group. The DB and Redis clients are returned so main can ping
// them before announcing the server.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		rdb = redis.NewClient(opt)
	}

	app.Use(middleware.CORS(middleware.CORSConfig{AllowedSuffix: cfg.FrontendURLEndsWith}))
	app.Use(middleware.Session(middleware.SessionConfig{CookieName: cfg.SessionCookie, Rdb: rdb}))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, nil, nil, err
	}
	if err := database.Bootstrap(db); err != nil {
		return nil, nil, nil, err
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	var cache *geocoding.Cache
	if rdb != nil {
		cache = &geocoding.Cache{Rdb: rdb, TTL: geocoding.DefaultCacheTTL}
	}
	geocoder := &geocoding.MapboxClient{Token: cfg.MapboxToken, Cache: cache}
	matcher := &similarity.Matcher{Store: &similarity.GormStore{DB: db}}

	intakeHandlers := &intake.Handlers{Service: &intake.Service{
		DB:       db,
		Geocoder: geocoder,
		Matcher:  matcher,
	}}
	listingHandlers := &listings.Handlers{Service: &listings.Service{DB: db}}
	searchHandlers := &search.Handlers{Service: &search.Service{Store: &search.GormStore{DB: db}}}
	geoHandlers := &geoquery.Handlers{Service: &geoquery.Service{Store: &geoquery.GormStore{DB: db}}}
	moderationHandlers := &moderation.Handlers{Service: &moderation.Service{DB: db}}

	api := app.Group("/api/v1")
	api.Post("/submissions", intakeHandlers.Submit)
	api.Get("/listings", listingHandlers.GetAll)
	api.Get("/listings/:id", listingHandlers.GetByID)
	api.Get("/search", searchHandlers.Search)
	api.Get("/geo", geoHandlers.Points)

	admin := api.Group("/admin", middleware.RequireAdmin(cfg.AdminAPIKeyHash))
	admin.Get("/submissions", moderationHandlers.Pending)
	admin.Post("/submissions/:id/approve", moderationHandlers.Approve)
	admin.Post("/submissions/:id/reject", moderationHandlers.Reject)
	admin.Post("/listings", listingHandlers.Create)
	admin.Put("/listings/:id", listingHandlers.Update)
	admin.Delete("/listings/:id", listingHandlers.Delete)

	return app, db, rdb, nil
}
