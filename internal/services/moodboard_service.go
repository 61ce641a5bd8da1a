package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"moodboard/internal/models"
	"moodboard/internal/repositories"

	"go.uber.org/zap"
)

// MoodboardService handles business logic related to moodboards and their
// photos. Every mutating operation checks the requester against the owner.
type MoodboardService struct {
	boards repositories.MoodboardRepository
	photos repositories.PhotoRepository
	moods  repositories.MoodRepository
	events EventPublisher
	logger *zap.SugaredLogger
}

// NewMoodboardService creates a new MoodboardService. events may be nil.
func NewMoodboardService(
	boards repositories.MoodboardRepository,
	photos repositories.PhotoRepository,
	moods repositories.MoodRepository,
	events EventPublisher,
	logger *zap.SugaredLogger,
) *MoodboardService {
	return &MoodboardService{
		boards: boards,
		photos: photos,
		moods:  moods,
		events: events,
		logger: logger,
	}
}

// ListMoods returns the mood vocabulary.
func (s *MoodboardService) ListMoods(ctx context.Context) ([]models.Mood, error) {
	return s.moods.GetAll(ctx)
}

// CreateMoodboard creates a board owned by ownerID with one photo per
// distinct URL. The board and its photos are written atomically.
func (s *MoodboardService) CreateMoodboard(ctx context.Context, ownerID, title, description, moodName string, photoURLs []string) (*models.Moodboard, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}
	mood, err := s.resolveMood(ctx, moodName)
	if err != nil {
		return nil, err
	}

	board := &models.Moodboard{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		UserID:      ownerID,
		MoodID:      mood.ID,
	}
	urls := normalizeURLs(photoURLs)
	photos := make([]models.Photo, len(urls))
	for i, u := range urls {
		photos[i] = models.Photo{URL: u}
	}

	if err := s.boards.CreateWithPhotos(ctx, board, photos); err != nil {
		s.logger.Errorw("moodboard creation failed", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrCreationFailed, err)
	}

	board.Mood = mood
	board.Photos = photos
	s.logger.Infow("moodboard created", "moodboard_id", board.ID, "owner_id", ownerID, "photos", len(photos))
	s.publish(ctx, EventMoodboardCreated, board)
	return board, nil
}

// GetMoodboard returns a board with its mood and photos resolved.
func (s *MoodboardService) GetMoodboard(ctx context.Context, id string) (*models.Moodboard, error) {
	board, err := s.loadBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	photos, err := s.photos.FindByMoodboardID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load photos: %w", err)
	}
	board.Photos = photos
	return board, nil
}

// ListMoodboardsByOwner returns summaries of every board owned by ownerID.
func (s *MoodboardService) ListMoodboardsByOwner(ctx context.Context, ownerID string) ([]models.MoodboardSummary, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}
	return s.boards.ListSummariesByOwner(ctx, ownerID)
}

// UpdateMoodboard replaces the board's title, description and mood and
// reconciles its photo set against photoURLs. Photos whose URL is kept are
// left untouched; photos of other boards are never read or written.
func (s *MoodboardService) UpdateMoodboard(ctx context.Context, id, requesterID, title, description, moodName string, photoURLs []string) (*models.Moodboard, error) {
	board, err := s.ownedBoard(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}
	mood, err := s.resolveMood(ctx, moodName)
	if err != nil {
		return nil, err
	}

	current, err := s.photos.FindByMoodboardID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpdateFailed, err)
	}
	oldURLs := make([]string, len(current))
	for i, p := range current {
		oldURLs[i] = p.URL
	}
	toDelete, toCreate := Reconcile(oldURLs, normalizeURLs(photoURLs))

	deleteSet := make(map[string]struct{}, len(toDelete))
	for _, u := range toDelete {
		deleteSet[u] = struct{}{}
	}
	var deleteIDs []string
	kept := make([]models.Photo, 0, len(current))
	for _, p := range current {
		if _, gone := deleteSet[p.URL]; gone {
			deleteIDs = append(deleteIDs, p.ID)
			continue
		}
		kept = append(kept, p)
	}
	created := make([]models.Photo, len(toCreate))
	for i, u := range toCreate {
		created[i] = models.Photo{URL: u}
	}

	board.Title = strings.TrimSpace(title)
	board.Description = strings.TrimSpace(description)
	board.MoodID = mood.ID
	board.Mood = mood

	if err := s.boards.UpdateWithPhotos(ctx, board, deleteIDs, created); err != nil {
		s.logger.Errorw("moodboard update failed", "moodboard_id", id, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpdateFailed, err)
	}

	board.Photos = append(kept, created...)
	s.logger.Infow("moodboard updated", "moodboard_id", id, "removed", len(deleteIDs), "added", len(created))
	s.publish(ctx, EventMoodboardUpdated, board)
	return board, nil
}

// DeleteMoodboard removes the board and all of its photos.
func (s *MoodboardService) DeleteMoodboard(ctx context.Context, id, requesterID string) error {
	board, err := s.ownedBoard(ctx, id, requesterID)
	if err != nil {
		return err
	}
	// loaded for the event body only
	photos, err := s.photos.FindByMoodboardID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeletionFailed, err)
	}
	board.Photos = photos

	if err := s.boards.DeleteWithPhotos(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Errorw("moodboard deletion failed", "moodboard_id", id, "error", err)
		return fmt.Errorf("%w: %v", ErrDeletionFailed, err)
	}

	s.logger.Infow("moodboard deleted", "moodboard_id", id)
	s.publish(ctx, EventMoodboardDeleted, board)
	return nil
}

// DeletePhoto detaches and deletes one photo from a board the requester owns.
// A photo that exists but belongs to another board is reported as not found.
func (s *MoodboardService) DeletePhoto(ctx context.Context, moodboardID, photoID, requesterID string) error {
	if _, err := s.ownedBoard(ctx, moodboardID, requesterID); err != nil {
		return err
	}

	photo, err := s.photos.GetByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load photo: %w", err)
	}
	if photo.MoodboardID != moodboardID {
		return ErrNotFound
	}

	if err := s.photos.Delete(ctx, photoID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	s.logger.Infow("photo removed", "moodboard_id", moodboardID, "photo_id", photoID)
	return nil
}

func (s *MoodboardService) loadBoard(ctx context.Context, id string) (*models.Moodboard, error) {
	board, err := s.boards.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load moodboard: %w", err)
	}
	return board, nil
}

func (s *MoodboardService) ownedBoard(ctx context.Context, id, requesterID string) (*models.Moodboard, error) {
	if requesterID == "" {
		return nil, ErrUnauthenticated
	}
	board, err := s.loadBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	if board.UserID != requesterID {
		return nil, ErrForbidden
	}
	return board, nil
}

func (s *MoodboardService) resolveMood(ctx context.Context, name string) (*models.Mood, error) {
	mood, err := s.moods.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnknownMood
		}
		return nil, fmt.Errorf("failed to resolve mood: %w", err)
	}
	return mood, nil
}
