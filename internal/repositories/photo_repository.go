package repositories

import (
	"context"

	"moodboard/internal/models"
)

// PhotoRepository defines the interface for photo data access.
type PhotoRepository interface {
	GetByID(ctx context.Context, id string) (*models.Photo, error)
	FindByMoodboardID(ctx context.Context, moodboardID string) ([]models.Photo, error)
	Delete(ctx context.Context, id string) error
}
