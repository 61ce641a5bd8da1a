package handlers

import (
	"moodboard/internal/middleware"
	"moodboard/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MoodboardHandler handles HTTP requests for moodboards, their photos and the
// mood vocabulary.
type MoodboardHandler struct {
	service  *services.MoodboardService
	validate *validator.Validate
	logger   *zap.SugaredLogger
}

// NewMoodboardHandler creates a new MoodboardHandler.
func NewMoodboardHandler(service *services.MoodboardService, logger *zap.SugaredLogger) *MoodboardHandler {
	return &MoodboardHandler{
		service:  service,
		validate: newValidator(),
		logger:   logger,
	}
}

// RegisterRoutes registers the public mood list and the board routes, which
// all run behind requireAuth.
func (h *MoodboardHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	router.Get("/moods", h.HandleListMoods)

	boardRoutes := router.Group("/moodboards", requireAuth)
	boardRoutes.Get("/", h.HandleListMoodboards)
	boardRoutes.Post("/", h.HandleCreateMoodboard)
	boardRoutes.Get("/:id", h.HandleGetMoodboard)
	boardRoutes.Put("/:id", h.HandleUpdateMoodboard)
	boardRoutes.Delete("/:id", h.HandleDeleteMoodboard)
	boardRoutes.Delete("/:id/photos/:photoId", h.HandleDeletePhoto)
}

// MoodboardRequest is the body of create and edit requests. Photos is the
// complete desired set of image URLs.
type MoodboardRequest struct {
	Title       string   `json:"title" validate:"required,notblank,max=255"`
	Description string   `json:"description" validate:"omitempty,max=5000"`
	Mood        string   `json:"mood" validate:"required,notblank"`
	Photos      []string `json:"photos" validate:"omitempty,dive,required,url,max=2048"`
}

// HandleListMoods returns the mood vocabulary.
func (h *MoodboardHandler) HandleListMoods(c *fiber.Ctx) error {
	moods, err := h.service.ListMoods(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve moods")
	}
	return c.JSON(moods)
}

// HandleListMoodboards lists the caller's boards.
func (h *MoodboardHandler) HandleListMoodboards(c *fiber.Ctx) error {
	boards, err := h.service.ListMoodboardsByOwner(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve moodboards")
	}
	return c.JSON(boards)
}

// HandleCreateMoodboard creates a board owned by the caller.
func (h *MoodboardHandler) HandleCreateMoodboard(c *fiber.Ctx) error {
	var req MoodboardRequest
	if ok, err := bindRequest(c, h.validate, &req); !ok {
		return err
	}

	board, err := h.service.CreateMoodboard(c.UserContext(), middleware.UserID(c), req.Title, req.Description, req.Mood, req.Photos)
	if err != nil {
		return respondError(c, h.logger, err, "Could not create moodboard")
	}
	return c.Status(fiber.StatusCreated).JSON(board)
}

// HandleGetMoodboard returns one board with its photos.
func (h *MoodboardHandler) HandleGetMoodboard(c *fiber.Ctx) error {
	board, err := h.service.GetMoodboard(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve moodboard")
	}
	return c.JSON(board)
}

// HandleUpdateMoodboard edits a board the caller owns.
func (h *MoodboardHandler) HandleUpdateMoodboard(c *fiber.Ctx) error {
	var req MoodboardRequest
	if ok, err := bindRequest(c, h.validate, &req); !ok {
		return err
	}

	board, err := h.service.UpdateMoodboard(c.UserContext(), c.Params("id"), middleware.UserID(c), req.Title, req.Description, req.Mood, req.Photos)
	if err != nil {
		return respondError(c, h.logger, err, "Could not update moodboard")
	}
	return c.JSON(board)
}

// HandleDeleteMoodboard deletes a board the caller owns.
func (h *MoodboardHandler) HandleDeleteMoodboard(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteMoodboard(c.UserContext(), id, middleware.UserID(c)); err != nil {
		return respondError(c, h.logger, err, "Could not delete moodboard")
	}
	return c.JSON(fiber.Map{
		"message": "Moodboard " + id + " deleted successfully",
	})
}

// HandleDeletePhoto removes one photo from a board the caller owns.
func (h *MoodboardHandler) HandleDeletePhoto(c *fiber.Ctx) error {
	id, photoID := c.Params("id"), c.Params("photoId")
	if err := h.service.DeletePhoto(c.UserContext(), id, photoID, middleware.UserID(c)); err != nil {
		return respondError(c, h.logger, err, "Could not delete photo")
	}
	return c.JSON(fiber.Map{
		"message": "Photo " + photoID + " deleted successfully",
	})
}
