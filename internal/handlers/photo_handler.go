package handlers

import (
	"strings"

	"moodboard/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PhotoSearchHandler exposes the image search gateway.
type PhotoSearchHandler struct {
	service *services.PhotoSearchService
	logger  *zap.SugaredLogger
}

// NewPhotoSearchHandler creates a new PhotoSearchHandler.
func NewPhotoSearchHandler(service *services.PhotoSearchService, logger *zap.SugaredLogger) *PhotoSearchHandler {
	return &PhotoSearchHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the search route.
func (h *PhotoSearchHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	router.Get("/photos/search", requireAuth, h.HandleSearch)
}

// HandleSearch relays ?query=&page=&per_page= to the provider and returns
// {"photos": [...]}.
func (h *PhotoSearchHandler) HandleSearch(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fiber.Map{"query": "Field 'query' failed on the 'required' tag"},
		})
	}

	result, err := h.service.SearchPhotos(c.UserContext(), query, c.QueryInt("page", 1), c.QueryInt("per_page", 0))
	if err != nil {
		return respondError(c, h.logger, err, "Photo search failed")
	}

	return c.JSON(fiber.Map{
		"photos":      result.Results,
		"total":       result.Total,
		"total_pages": result.TotalPages,
	})
}
