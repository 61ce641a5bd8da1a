package services_test

import (
	"context"

	"moodboard/internal/models"
	"moodboard/pkg/unsplash"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByName(ctx context.Context, name string) (*models.User, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockMoodRepository is a mock implementation of repositories.MoodRepository
type MockMoodRepository struct {
	mock.Mock
}

func (m *MockMoodRepository) GetAll(ctx context.Context) ([]models.Mood, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Mood), args.Error(1)
}

func (m *MockMoodRepository) GetByName(ctx context.Context, name string) (*models.Mood, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mood), args.Error(1)
}

func (m *MockMoodRepository) EnsureSeeded(ctx context.Context, names []string) error {
	args := m.Called(ctx, names)
	return args.Error(0)
}

// MockMoodboardRepository is a mock implementation of repositories.MoodboardRepository
type MockMoodboardRepository struct {
	mock.Mock
}

func (m *MockMoodboardRepository) GetByID(ctx context.Context, id string) (*models.Moodboard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Moodboard), args.Error(1)
}

func (m *MockMoodboardRepository) ListSummariesByOwner(ctx context.Context, ownerID string) ([]models.MoodboardSummary, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]models.MoodboardSummary), args.Error(1)
}

func (m *MockMoodboardRepository) CreateWithPhotos(ctx context.Context, board *models.Moodboard, photos []models.Photo) error {
	args := m.Called(ctx, board, photos)
	return args.Error(0)
}

func (m *MockMoodboardRepository) UpdateWithPhotos(ctx context.Context, board *models.Moodboard, deletePhotoIDs []string, newPhotos []models.Photo) error {
	args := m.Called(ctx, board, deletePhotoIDs, newPhotos)
	return args.Error(0)
}

func (m *MockMoodboardRepository) DeleteWithPhotos(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPhotoRepository is a mock implementation of repositories.PhotoRepository
type MockPhotoRepository struct {
	mock.Mock
}

func (m *MockPhotoRepository) GetByID(ctx context.Context, id string) (*models.Photo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Photo), args.Error(1)
}

func (m *MockPhotoRepository) FindByMoodboardID(ctx context.Context, moodboardID string) ([]models.Photo, error) {
	args := m.Called(ctx, moodboardID)
	return args.Get(0).([]models.Photo), args.Error(1)
}

func (m *MockPhotoRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventPublisher records published lifecycle events
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	args := m.Called(ctx, routingKey, body)
	return args.Error(0)
}

// MockPhotoSearcher is a mock image search provider
type MockPhotoSearcher struct {
	mock.Mock
}

func (m *MockPhotoSearcher) SearchPhotos(ctx context.Context, query string, page, perPage int) (*unsplash.SearchResult, error) {
	args := m.Called(ctx, query, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*unsplash.SearchResult), args.Error(1)
}
