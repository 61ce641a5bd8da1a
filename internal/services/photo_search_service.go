package services

import (
	"context"
	"fmt"

	"moodboard/pkg/unsplash"

	"go.uber.org/zap"
)

const (
	defaultPerPage = 10
	maxPerPage     = 30
)

// PhotoSearcher is the external image search provider. *unsplash.Client
// satisfies it.
type PhotoSearcher interface {
	SearchPhotos(ctx context.Context, query string, page, perPage int) (*unsplash.SearchResult, error)
}

// PhotoSearchService relays search queries to the provider.
type PhotoSearchService struct {
	searcher PhotoSearcher
	logger   *zap.SugaredLogger
}

// NewPhotoSearchService creates a new PhotoSearchService. A nil searcher means
// no credential was configured and every search fails with
// ErrProviderUnavailable.
func NewPhotoSearchService(searcher PhotoSearcher, logger *zap.SugaredLogger) *PhotoSearchService {
	return &PhotoSearchService{
		searcher: searcher,
		logger:   logger,
	}
}

// SearchPhotos forwards one query to the provider. page defaults to 1 and
// perPage to 10, capped at 30.
func (s *PhotoSearchService) SearchPhotos(ctx context.Context, query string, page, perPage int) (*unsplash.SearchResult, error) {
	if s.searcher == nil {
		return nil, fmt.Errorf("%w: no API credential configured", ErrProviderUnavailable)
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	result, err := s.searcher.SearchPhotos(ctx, query, page, perPage)
	if err != nil {
		s.logger.Warnw("photo search failed", "query", query, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	return result, nil
}
