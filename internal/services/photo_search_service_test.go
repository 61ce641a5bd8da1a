package services_test

import (
	"context"
	"errors"
	"testing"

	"moodboard/internal/services"
	"moodboard/pkg/unsplash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPhotoSearchService_SearchPhotos(t *testing.T) {
	ctx := context.Background()
	searcher := new(MockPhotoSearcher)
	service := services.NewPhotoSearchService(searcher, zap.NewNop().Sugar())

	result := &unsplash.SearchResult{Total: 1, TotalPages: 1, Results: []unsplash.Photo{{ID: "abc"}}}

	// Test defaults
	searcher.On("SearchPhotos", ctx, "beach", 1, 10).Return(result, nil).Once()
	got, err := service.SearchPhotos(ctx, "beach", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "abc", got.Results[0].ID)

	// Test per-page cap
	searcher.On("SearchPhotos", ctx, "beach", 2, 30).Return(result, nil).Once()
	_, err = service.SearchPhotos(ctx, "beach", 2, 500)
	assert.NoError(t, err)

	// Test provider failure
	searcher.On("SearchPhotos", ctx, "storm", 1, 10).Return(nil, &unsplash.StatusError{StatusCode: 401}).Once()
	_, err = service.SearchPhotos(ctx, "storm", 1, 10)
	assert.ErrorIs(t, err, services.ErrProviderUnavailable)

	searcher.AssertExpectations(t)
}

func TestPhotoSearchService_NoCredential(t *testing.T) {
	service := services.NewPhotoSearchService(nil, zap.NewNop().Sugar())

	_, err := service.SearchPhotos(context.Background(), "beach", 1, 10)
	assert.True(t, errors.Is(err, services.ErrProviderUnavailable))
}
