package repositories

import (
	"context"
	"fmt"

	"moodboard/internal/models"

	"gorm.io/gorm"
)

// GORMPhotoRepository is a GORM implementation of PhotoRepository.
type GORMPhotoRepository struct {
	db *gorm.DB
}

// NewGORMPhotoRepository creates a new instance of GORMPhotoRepository.
func NewGORMPhotoRepository(db *gorm.DB) *GORMPhotoRepository {
	return &GORMPhotoRepository{db: db}
}

// GetByID retrieves a single photo.
func (r *GORMPhotoRepository) GetByID(ctx context.Context, id string) (*models.Photo, error) {
	var photo models.Photo
	if err := r.db.WithContext(ctx).First(&photo, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get photo %s: %w", id, translateError(err))
	}
	return &photo, nil
}

// FindByMoodboardID returns the photos attached to a board in the order they
// were submitted.
func (r *GORMPhotoRepository) FindByMoodboardID(ctx context.Context, moodboardID string) ([]models.Photo, error) {
	photos := make([]models.Photo, 0)
	err := r.db.WithContext(ctx).
		Where("moodboard_id = ?", moodboardID).
		Order("position").Order("id").
		Find(&photos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get photos for moodboard %s: %w", moodboardID, err)
	}
	return photos, nil
}

// Delete removes a photo by its ID.
func (r *GORMPhotoRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Photo{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete photo %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("photo %s not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}
