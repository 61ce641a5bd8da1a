package handlers

import (
	"moodboard/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// startSession binds a fresh session to userID. The session ID is rotated so
// a pre-login cookie cannot be reused.
func startSession(c *fiber.Ctx, store *session.Store, userID string) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(middleware.UserIDKey, userID)
	return sess.Save()
}

// endSession destroys the server-side session. Calling it without a session
// is a no-op.
func endSession(c *fiber.Ctx, store *session.Store) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
