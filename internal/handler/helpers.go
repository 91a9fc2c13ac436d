package handler

import (
	"errors"

	"go-cafe-pos/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helpers to read user info from the JWT context (set by RequireAuth)
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system"
	}
	return userID.(string)
}

func getUserNombre(c *fiber.Ctx) string {
	nombre := c.Locals("user_nombre")
	if nombre == nil {
		return "Sistema"
	}
	return nombre.(string)
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// respondError maps service errors onto the HTTP taxonomy. Internal
// errors carry the underlying error text in the body, matching the
// behavior the original system exposed.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case service.IsValidation(err):
		return c.Status(400).JSON(fiber.Map{"success": false, "message": err.Error()})
	case errors.Is(err, service.ErrCredencialesInvalidas),
		errors.Is(err, service.ErrUsuarioInactivo):
		return c.Status(401).JSON(fiber.Map{"success": false, "message": err.Error()})
	case errors.Is(err, service.ErrNoEncontrado),
		errors.Is(err, service.ErrUsuarioNoEncontrado):
		return c.Status(404).JSON(fiber.Map{"success": false, "message": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
}
