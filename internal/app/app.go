package app

import (
	"time"

	"moodboard/internal/config"
	"moodboard/internal/handlers"
	"moodboard/internal/middleware"
	"moodboard/internal/repositories"
	"moodboard/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sessionCookie = "moodboard_session"

// Deps are the collaborators the HTTP application is built from. Events and
// PhotoSearcher are optional.
type Deps struct {
	fx.In

	Config        *config.Config
	DB            *gorm.DB
	Logger        *zap.SugaredLogger
	Events        services.EventPublisher `optional:"true"`
	PhotoSearcher services.PhotoSearcher  `optional:"true"`
}

// New wires repositories, services, handlers and middleware into a fiber app.
func New(deps Deps) *fiber.App {
	cfg := deps.Config

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(deps.DB)
	moodRepo := repositories.NewGORMMoodRepository(deps.DB)
	boardRepo := repositories.NewGORMMoodboardRepository(deps.DB)
	photoRepo := repositories.NewGORMPhotoRepository(deps.DB)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.SecretKey, cfg.SessionTTL, deps.Logger)
	moodboardService := services.NewMoodboardService(boardRepo, photoRepo, moodRepo, deps.Events, deps.Logger)
	searchService := services.NewPhotoSearchService(deps.PhotoSearcher, deps.Logger)

	// --- Sessions ---
	sessions := session.New(session.Config{
		Expiration:     cfg.SessionTTL,
		KeyLookup:      "cookie:" + sessionCookie,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.Env == config.EnvProduction,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService, sessions, deps.Logger)
	moodboardHandler := handlers.NewMoodboardHandler(moodboardService, deps.Logger)
	searchHandler := handlers.NewPhotoSearchHandler(searchService, deps.Logger)

	app := fiber.New(fiber.Config{
		AppName:      "moodboard",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: cfg.SecretKey,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")
	requireAuth := middleware.AuthRequired(sessions, authService, deps.Logger)

	authHandler.RegisterRoutes(apiV1, requireAuth)

	moodboardHandler.RegisterRoutes(apiV1, requireAuth)
	searchHandler.RegisterRoutes(apiV1, requireAuth)

	return app
}
