// Package http содержит HTTP сервер API блога.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"

	"blogcore/internal/blog/adapters/http/dto"
	"blogcore/internal/blog/adapters/http/handlers"
	"blogcore/internal/blog/adapters/http/middleware"
	"blogcore/internal/blog/config"
	"blogcore/internal/blog/ports/api"
	"blogcore/pkg/metrics"
)

// Services - use case'ы, которые обслуживает HTTP API.
type Services struct {
	Credentials api.CredentialUseCase
	Profiles    api.ProfileUseCase
	Content     api.ContentUseCase
	Comments    api.CommentUseCase
	Analytics   api.AnalyticsUseCase
}

// NewApp создает fiber-приложение с таймаутами из cfg и настроенными маршрутами.
func NewApp(cfg *config.HTTPConfig, services Services) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "blog",
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
		IdleTimeout:  cfg.GetIdleTimeout(),
		ErrorHandler: handlers.ErrorHandler,
	})

	var httpMetrics *metrics.HTTP
	if cfg.MetricsEnabled {
		httpMetrics = metrics.NewHTTP("blog")
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	SetupRouter(app, services, httpMetrics, limiter)

	return app
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
// nil httpMetrics отключает /metrics, nil limiter отключает ограничение частоты.
func SetupRouter(app *fiber.App, services Services, httpMetrics *metrics.HTTP, limiter *middleware.RateLimiter) {
	userHandler := handlers.NewUserHandler(services.Credentials, services.Profiles, services.Content, services.Comments)
	blogHandler := handlers.NewBlogHandler(services.Content, services.Comments)
	analyticsHandler := handlers.NewAnalyticsHandler(services.Analytics)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	if httpMetrics != nil {
		app.Use(middleware.NewMetricsMiddleware(httpMetrics))
		app.Get("/metrics", adaptor.HTTPHandler(httpMetrics.Handler()))
	}
	app.Use(middleware.NewLoggerMiddleware())
	if limiter != nil {
		app.Use(limiter.Handler())
	}
	app.Use(middleware.NewRecoveryMiddleware())

	apiV1 := app.Group("/api/v1")

	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", userHandler.Register)
	authRoutes.Post("/login", userHandler.Login)

	userRoutes := apiV1.Group("/users")
	userRoutes.Get("/:username", userHandler.GetProfile)
	userRoutes.Get("/:username/quota", userHandler.GetQuota)

	blogRoutes := apiV1.Group("/blogs")
	blogRoutes.Post("/", blogHandler.CreateBlog)
	blogRoutes.Get("/", blogHandler.SearchBlogs)
	blogRoutes.Get("/:id", blogHandler.GetBlog)
	blogRoutes.Post("/:id/comments", blogHandler.AddComment)
	blogRoutes.Get("/:id/comments", blogHandler.ListComments)

	analyticsRoutes := apiV1.Group("/analytics")
	analyticsRoutes.Get("/tag-pair", analyticsHandler.TagPair)
	analyticsRoutes.Get("/top-authors", analyticsHandler.TopAuthors)
	analyticsRoutes.Get("/common-followees", analyticsHandler.CommonFollowees)
	analyticsRoutes.Get("/silent-users", analyticsHandler.SilentUsers)
	analyticsRoutes.Get("/praised-blogs", analyticsHandler.PraisedBlogs)
	analyticsRoutes.Get("/critical-commenters", analyticsHandler.CriticalCommenters)
	analyticsRoutes.Get("/unscathed-authors", analyticsHandler.UnscathedAuthors)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: handlers.ErrorRouteNotFound})
	})
}
