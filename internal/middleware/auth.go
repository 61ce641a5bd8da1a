package middleware

import (
	"errors"
	"strings"

	"moodboard/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
)

// UserIDKey is the session key and fiber local holding the authenticated
// user's ID.
const UserIDKey = "user_id"

// AuthRequired resolves the request identity from a bearer token or, when no
// Authorization header is sent, from the server-side session. Requests
// without an identity, or whose user no longer exists, are rejected with 401.
func AuthRequired(sessions *session.Store, authService *services.AuthService, logger *zap.SugaredLogger) fiber.Handler {
	authenticate := func(c *fiber.Ctx, userID string) error {
		if _, err := authService.CurrentUser(c.UserContext(), userID); err != nil {
			if errors.Is(err, services.ErrUnauthenticated) {
				return unauthenticated(c)
			}
			logger.Errorw("failed to resolve user", "user_id", userID, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not resolve user",
				"error":   "internal server error",
			})
		}
		c.Locals(UserIDKey, userID)
		return c.Next()
	}

	return func(c *fiber.Ctx) error {
		if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
			// Expected format: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if !(len(parts) == 2 && parts[0] == "Bearer") {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"message": "Authorization header format must be 'Bearer <token>'",
				})
			}

			userID, err := authService.ValidateToken(parts[1])
			if err != nil {
				logger.Debugw("token validation failed", "error", err)
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"message": "Invalid or expired token",
					"error":   err.Error(),
				})
			}
			return authenticate(c, userID)
		}

		sess, err := sessions.Get(c)
		if err != nil {
			logger.Warnw("session lookup failed", "error", err)
			return unauthenticated(c)
		}
		userID, _ := sess.Get(UserIDKey).(string)
		if userID == "" {
			return unauthenticated(c)
		}
		return authenticate(c, userID)
	}
}

// UserID returns the identity stored by AuthRequired, or "" when the route is
// not protected.
func UserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(UserIDKey).(string)
	return userID
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Authentication required",
		"error":   services.ErrUnauthenticated.Error(),
	})
}
