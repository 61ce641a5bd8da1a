package database

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"moodboard/internal/config"
	"moodboard/internal/models"
	"moodboard/internal/repositories"
)

// zapWriter feeds gorm's logger into zap.
type zapWriter struct {
	log *zap.SugaredLogger
}

func (w zapWriter) Printf(format string, args ...interface{}) {
	w.log.Debugf(format, args...)
}

// New opens the database, migrates the schema and seeds the mood vocabulary.
func New(cfg *config.Config, log *zap.SugaredLogger) (*gorm.DB, error) {
	db, err := Open(cfg.DatabaseDSN, log)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := SeedMoods(context.Background(), db); err != nil {
		return nil, err
	}
	return db, nil
}

// Open connects to Postgres when the DSN looks like a Postgres DSN and to a
// SQLite file otherwise. A "sqlite:" prefix is stripped.
func Open(dsn string, log *zap.SugaredLogger) (*gorm.DB, error) {
	gormLogger := logger.New(zapWriter{log: log}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
	gormCfg := &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	}

	if isPostgres(dsn) {
		db, err := gorm.Open(postgres.Open(dsn), gormCfg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to connect postgres")
		}
		return db, nil
	}

	db, err := gorm.Open(sqlite.Open(strings.TrimPrefix(dsn, "sqlite:")), gormCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "sqlite handle")
	}
	// sqlite allows a single writer; one connection avoids "database is locked".
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, errors.Wrap(err, "enable sqlite foreign keys")
	}
	return db, nil
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

// Migrate creates or updates the four tables and their foreign keys.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Mood{}); err != nil {
		return errors.Wrap(err, "migrate users and moods")
	}
	if err := db.AutoMigrate(&models.Moodboard{}); err != nil {
		return errors.Wrap(err, "migrate moodboards")
	}
	if err := db.AutoMigrate(&models.Photo{}); err != nil {
		return errors.Wrap(err, "migrate photos")
	}
	return nil
}

// SeedMoods makes sure every default mood exists.
func SeedMoods(ctx context.Context, db *gorm.DB) error {
	if err := repositories.NewGORMMoodRepository(db).EnsureSeeded(ctx, models.DefaultMoods); err != nil {
		return errors.Wrap(err, "seed moods")
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "sql handle")
	}
	return sqlDB.Close()
}
