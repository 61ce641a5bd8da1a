package app

import (
	"context"

	"moodboard/internal/config"
	"moodboard/internal/database"
	"moodboard/internal/logging"
	"moodboard/internal/services"
	"moodboard/pkg/rabbitmq"
	"moodboard/pkg/unsplash"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module provides the whole service to an fx application.
var Module = fx.Options(
	fx.Provide(
		config.New,
		logging.NewFromConfig,
		logging.Sugar,
		database.New,
		NewEventPublisher,
		NewPhotoSearcher,
		New,
	),
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),
	fx.Invoke(RegisterLifecycle),
)

// NewEventPublisher connects to RabbitMQ when RABBITMQ_URL is set. Without
// it, events are disabled and a nil publisher is returned.
func NewEventPublisher(lc fx.Lifecycle, cfg *config.Config, log *zap.SugaredLogger) (services.EventPublisher, error) {
	if cfg.RabbitMQURL == "" {
		log.Infow("RabbitMQ not configured, moodboard events disabled")
		return nil, nil
	}

	client, err := rabbitmq.NewClient(rabbitmq.Config{
		URL:      cfg.RabbitMQURL,
		Exchange: cfg.RabbitMQExchange,
	}, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

// NewPhotoSearcher builds the Unsplash client. A missing access key leaves
// search disabled rather than failing startup.
func NewPhotoSearcher(cfg *config.Config, log *zap.SugaredLogger) services.PhotoSearcher {
	client, err := unsplash.NewClient(unsplash.Config{
		AccessKey: cfg.UnsplashAccessKey,
		BaseURL:   cfg.UnsplashBaseURL,
		Timeout:   cfg.UnsplashTimeout,
	})
	if err != nil {
		log.Warnw("photo search disabled", "error", err)
		return nil
	}
	return client
}

// RegisterLifecycle starts the HTTP listener with the application and shuts
// it down, then closes the database, when the application stops.
func RegisterLifecycle(lc fx.Lifecycle, app *fiber.App, cfg *config.Config, db *gorm.DB, log *zap.SugaredLogger) {
	if cfg.GeneratedSecret {
		log.Warnw("SECRET_KEY not set, using a generated key; sessions will not survive a restart")
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow("starting server", "addr", cfg.AppPort)
				if err := app.Listen(cfg.AppPort); err != nil {
					log.Errorw("server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("shutting down server")
			if err := app.ShutdownWithContext(ctx); err != nil {
				log.Errorw("error during fiber shutdown", "error", err)
			}
			return database.Close(db)
		},
	})
}
