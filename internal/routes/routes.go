package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/village360/village360-backend/internal/config"
	"github.com/village360/village360-backend/internal/handlers"
	"github.com/village360/village360-backend/internal/middleware"
	"github.com/village360/village360-backend/internal/store"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	st store.Store,
	authHandler *handlers.AuthHandler,
	villageHandler *handlers.VillageHandler,
	projectHandler *handlers.ProjectHandler,
	reportHandler *handlers.ReportHandler,
	dashboardHandler *handlers.DashboardHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)

	// Villages — reads are public, writes need a token
	api.Get("/villages", villageHandler.List)
	api.Get("/villages/:id", villageHandler.Get)
	api.Get("/villages/:id/projects", villageHandler.ListProjects)
	api.Get("/villages/:id/amenities", villageHandler.ListAmenities)
	api.Post("/villages", middleware.JWTProtected(cfg), villageHandler.Create)
	api.Put("/villages/:id", middleware.JWTProtected(cfg), villageHandler.Update)
	api.Delete("/villages/:id", middleware.JWTProtected(cfg), villageHandler.Delete)
	api.Put("/villages/:id/amenities", middleware.JWTProtected(cfg), villageHandler.UpsertAmenity)

	// Projects
	api.Get("/projects", projectHandler.List)
	api.Get("/projects/:id", projectHandler.Get)
	api.Get("/projects/:id/reports", projectHandler.ListReports)
	api.Post("/projects", middleware.JWTProtected(cfg), projectHandler.Create)
	api.Put("/projects/:id", middleware.JWTProtected(cfg), projectHandler.Update)
	api.Delete("/projects/:id", middleware.JWTProtected(cfg), projectHandler.Delete)

	// Reports
	api.Get("/reports", reportHandler.List)
	api.Get("/reports/:id", reportHandler.Get)
	api.Post("/reports", middleware.JWTProtected(cfg), reportHandler.Create)
	api.Delete("/reports/:id", middleware.JWTProtected(cfg), reportHandler.Delete)

	api.Get("/dashboard/stats", dashboardHandler.Stats)

	// Admin panel
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(st, cfg))
	admin.Get("/users", adminHandler.ListUsers)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
}
