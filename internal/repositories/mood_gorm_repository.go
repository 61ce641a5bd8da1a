package repositories

import (
	"context"
	"fmt"

	"moodboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMMoodRepository is a GORM implementation of MoodRepository.
type GORMMoodRepository struct {
	db *gorm.DB
}

// NewGORMMoodRepository creates a new instance of GORMMoodRepository.
func NewGORMMoodRepository(db *gorm.DB) *GORMMoodRepository {
	return &GORMMoodRepository{db: db}
}

// GetAll returns every mood ordered by name.
func (r *GORMMoodRepository) GetAll(ctx context.Context) ([]models.Mood, error) {
	moods := make([]models.Mood, 0)
	if err := r.db.WithContext(ctx).Order("name").Find(&moods).Error; err != nil {
		return nil, fmt.Errorf("failed to get moods: %w", err)
	}
	return moods, nil
}

// GetByName resolves a mood by its exact name.
func (r *GORMMoodRepository) GetByName(ctx context.Context, name string) (*models.Mood, error) {
	var mood models.Mood
	if err := r.db.WithContext(ctx).First(&mood, "name = ?", name).Error; err != nil {
		return nil, fmt.Errorf("failed to get mood %q: %w", name, translateError(err))
	}
	return &mood, nil
}

// EnsureSeeded inserts any of names that are not stored yet. Existing rows
// keep their IDs.
func (r *GORMMoodRepository) EnsureSeeded(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	moods := make([]models.Mood, len(names))
	for i, name := range names {
		moods[i] = models.Mood{ID: uuid.New().String(), Name: name}
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&moods).Error
	if err != nil {
		return fmt.Errorf("failed to seed moods: %w", err)
	}
	return nil
}
