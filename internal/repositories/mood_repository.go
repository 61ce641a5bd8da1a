package repositories

import (
	"context"

	"moodboard/internal/models"
)

// MoodRepository defines read access to the mood vocabulary plus the
// idempotent seeding used at startup.
type MoodRepository interface {
	GetAll(ctx context.Context) ([]models.Mood, error)
	GetByName(ctx context.Context, name string) (*models.Mood, error)
	EnsureSeeded(ctx context.Context, names []string) error
}
