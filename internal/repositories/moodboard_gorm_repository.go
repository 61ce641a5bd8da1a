package repositories

import (
	"context"
	"fmt"
	"time"

	"moodboard/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMMoodboardRepository is a GORM implementation of MoodboardRepository.
type GORMMoodboardRepository struct {
	db *gorm.DB
}

// NewGORMMoodboardRepository creates a new instance of GORMMoodboardRepository.
func NewGORMMoodboardRepository(db *gorm.DB) *GORMMoodboardRepository {
	return &GORMMoodboardRepository{db: db}
}

// GetByID retrieves a board with its mood resolved. Photos are left empty.
func (r *GORMMoodboardRepository) GetByID(ctx context.Context, id string) (*models.Moodboard, error) {
	var board models.Moodboard
	if err := r.db.WithContext(ctx).Preload("Mood").First(&board, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get moodboard %s: %w", id, translateError(err))
	}
	return &board, nil
}

// ListSummariesByOwner returns the owner's boards, oldest first, with mood
// name and photo count.
func (r *GORMMoodboardRepository) ListSummariesByOwner(ctx context.Context, ownerID string) ([]models.MoodboardSummary, error) {
	sql, args, err := squirrel.
		Select(
			"m.id", "m.title", "m.description", "m.user_id",
			"mo.name AS mood_name", "COUNT(p.id) AS photo_count",
		).
		From("moodboards m").
		Join("moods mo ON mo.id = m.mood_id").
		LeftJoin("photos p ON p.moodboard_id = m.id").
		Where(squirrel.Eq{"m.user_id": ownerID}).
		GroupBy("m.id", "m.title", "m.description", "m.user_id", "mo.name", "m.created_at").
		OrderBy("m.created_at", "m.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build moodboard list query: %w", err)
	}

	summaries := make([]models.MoodboardSummary, 0)
	if err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to list moodboards for user %s: %w", ownerID, err)
	}
	return summaries, nil
}

// CreateWithPhotos inserts the board and its photos atomically. IDs are
// generated for rows that have none.
func (r *GORMMoodboardRepository) CreateWithPhotos(ctx context.Context, board *models.Moodboard, photos []models.Photo) error {
	if board.ID == "" {
		board.ID = uuid.New().String()
	}
	preparePhotos(board.ID, photos, 0)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(board).Error; err != nil {
			return translateError(err)
		}
		if len(photos) > 0 {
			if err := tx.Omit(clause.Associations).Create(&photos).Error; err != nil {
				return translateError(err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create moodboard: %w", err)
	}
	return nil
}

// UpdateWithPhotos writes the board's scalar fields, removes the listed photos
// of this board and appends the new ones, all in one transaction. Photo IDs
// that belong to another board are ignored. A new URL already on the board
// fails with ErrDuplicateEntry.
func (r *GORMMoodboardRepository) UpdateWithPhotos(ctx context.Context, board *models.Moodboard, deletePhotoIDs []string, newPhotos []models.Photo) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Moodboard{}).
			Where("id = ?", board.ID).
			Updates(map[string]interface{}{
				"title":       board.Title,
				"description": board.Description,
				"mood_id":     board.MoodID,
				"updated_at":  time.Now(),
			})
		if res.Error != nil {
			return translateError(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		if len(deletePhotoIDs) > 0 {
			err := tx.Where("moodboard_id = ? AND id IN ?", board.ID, deletePhotoIDs).
				Delete(&models.Photo{}).Error
			if err != nil {
				return err
			}
		}
		if len(newPhotos) > 0 {
			var last int
			err := tx.Model(&models.Photo{}).
				Where("moodboard_id = ?", board.ID).
				Select("COALESCE(MAX(position), -1)").
				Scan(&last).Error
			if err != nil {
				return err
			}
			preparePhotos(board.ID, newPhotos, last+1)
			if err := tx.Omit(clause.Associations).Create(&newPhotos).Error; err != nil {
				return translateError(err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update moodboard %s: %w", board.ID, err)
	}
	return nil
}

// DeleteWithPhotos removes every photo of the board and then the board.
func (r *GORMMoodboardRepository) DeleteWithPhotos(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("moodboard_id = ?", id).Delete(&models.Photo{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Moodboard{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete moodboard %s: %w", id, err)
	}
	return nil
}

// preparePhotos assigns IDs, the owning board and positions counting up from
// start.
func preparePhotos(moodboardID string, photos []models.Photo, start int) {
	for i := range photos {
		if photos[i].ID == "" {
			photos[i].ID = uuid.New().String()
		}
		photos[i].MoodboardID = moodboardID
		photos[i].Position = start + i
	}
}
