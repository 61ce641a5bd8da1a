package handlers

import (
	"moodboard/internal/middleware"
	"moodboard/internal/models"
	"moodboard/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	sessions    *session.Store
	validate    *validator.Validate
	logger      *zap.SugaredLogger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, sessions *session.Store, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		validate:    newValidator(),
		logger:      logger,
	}
}

// RegisterRoutes registers the authentication routes. requireAuth guards the
// routes that need an identity.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Post("/logout", h.HandleLogout)
	authRoutes.Get("/me", requireAuth, h.HandleMe)
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,notblank,max=255"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleRegister creates a user and logs them in.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if ok, err := bindRequest(c, h.validate, &req); !ok {
		return err
	}

	user, err := h.authService.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return respondError(c, h.logger, err, "Registration failed")
	}

	return h.loggedIn(c, fiber.StatusCreated, "User registered successfully", user)
}

// HandleLogin checks credentials and opens a session.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if ok, err := bindRequest(c, h.validate, &req); !ok {
		return err
	}

	user, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		h.logger.Infow("login rejected", "ip", c.IP())
		return respondError(c, h.logger, err, "Authentication failed")
	}

	return h.loggedIn(c, fiber.StatusOK, "Login successful", user)
}

// HandleLogout clears the session. It succeeds whether or not one exists.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	if err := endSession(c, h.sessions); err != nil {
		h.logger.Warnw("failed to destroy session", "error", err)
	}
	return c.JSON(fiber.Map{
		"message": "Logged out",
	})
}

// HandleMe returns the authenticated user.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	user, err := h.authService.CurrentUser(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.logger, err, "Could not load current user")
	}
	return c.JSON(user)
}

func (h *AuthHandler) loggedIn(c *fiber.Ctx, status int, message string, user *models.User) error {
	if err := startSession(c, h.sessions, user.ID); err != nil {
		h.logger.Errorw("failed to start session", "user_id", user.ID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not start session",
		})
	}

	token, err := h.authService.IssueToken(user)
	if err != nil {
		h.logger.Errorw("failed to issue token", "user_id", user.ID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not issue token",
		})
	}

	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"user":    user,
		"token":   token,
	})
}
