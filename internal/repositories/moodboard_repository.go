package repositories

import (
	"context"

	"moodboard/internal/models"
)

// MoodboardRepository defines the interface for moodboard data access. Every
// method that writes both a board and its photos does so in one transaction.
type MoodboardRepository interface {
	GetByID(ctx context.Context, id string) (*models.Moodboard, error)
	ListSummariesByOwner(ctx context.Context, ownerID string) ([]models.MoodboardSummary, error)
	CreateWithPhotos(ctx context.Context, board *models.Moodboard, photos []models.Photo) error
	UpdateWithPhotos(ctx context.Context, board *models.Moodboard, deletePhotoIDs []string, newPhotos []models.Photo) error
	DeleteWithPhotos(ctx context.Context, id string) error
}
