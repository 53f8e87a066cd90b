// Package http собирает fiber приложение API.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	authapi "notemark/internal/auth/ports/api"
	"notemark/internal/config"
	"notemark/internal/gateway/adapters/http/handlers"
	"notemark/internal/gateway/adapters/http/middleware"
	itemsapi "notemark/internal/items/ports/api"
)

// Dependencies - сценарии и проверки, которые обслуживает API.
type Dependencies struct {
	Auth         authapi.AuthUseCase
	Users        authapi.UserUseCase
	Notes        itemsapi.NoteUseCase
	Bookmarks    itemsapi.BookmarkUseCase
	HealthChecks map[string]handlers.HealthCheck
	CORSOrigins  []string
}

// NewApp создает fiber приложение с таймаутами и обработчиком ошибок API.
func NewApp(cfg *config.HTTPConfig) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      config.ServiceName,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: handlers.ErrorHandler,
	})
}

// SetupRouter регистрирует middleware и маршруты.
func SetupRouter(app *fiber.App, deps Dependencies) {
	authHandler := handlers.NewAuthHandler(deps.Auth)
	notesHandler := handlers.NewNotesHandler(deps.Notes)
	bookmarksHandler := handlers.NewBookmarksHandler(deps.Bookmarks)
	healthHandler := handlers.NewHealthHandler(deps.HealthChecks)

	origins := deps.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete, fiber.MethodOptions},
		AllowHeaders:  []string{fiber.HeaderOrigin, fiber.HeaderContentType, fiber.HeaderAccept, fiber.HeaderAuthorization},
		ExposeHeaders: []string{middleware.HeaderRequestID},
	}))

	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")

	// Публичные маршруты.
	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)

	// Защищенные маршруты.
	requireAuth := middleware.NewAuthMiddleware(deps.Users)

	notes := api.Group("/notes", requireAuth)
	notes.Post("/", notesHandler.Create)
	notes.Get("/", notesHandler.List)
	notes.Get("/:id", notesHandler.Get)
	notes.Put("/:id", notesHandler.Update)
	notes.Delete("/:id", notesHandler.Delete)
	notes.Patch("/:id/favorite", notesHandler.ToggleFavorite)

	bookmarks := api.Group("/bookmarks", requireAuth)
	bookmarks.Post("/", bookmarksHandler.Create)
	bookmarks.Get("/", bookmarksHandler.List)
	bookmarks.Get("/:id", bookmarksHandler.Get)
	bookmarks.Put("/:id", bookmarksHandler.Update)
	bookmarks.Delete("/:id", bookmarksHandler.Delete)
	bookmarks.Patch("/:id/favorite", bookmarksHandler.ToggleFavorite)

	// Обработчик для несуществующих маршрутов.
	app.Use(handlers.NewNotFoundHandler())
}
