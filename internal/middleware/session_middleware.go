package middleware

import (
	"github.com/gofiber/fiber/v2"

	"estoque/internal/sessions"
)

// LoginRequerido is a Fiber middleware guarding routes that require an
// authenticated session. The wrapped handler never runs without one.
func LoginRequerido(store *sessions.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := store.CurrentUserID(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"erro": "Login requerido",
			})
		}

		// Store the user ID for subsequent handlers.
		c.Locals("usuario_id", userID)

		return c.Next()
	}
}
