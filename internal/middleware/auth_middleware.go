package middleware

import (
	"strings"

	"go-cafe-pos/internal/repository"
	"go-cafe-pos/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the JWT and sets user info in the request
// context. Authorization lives here, server-side; nothing the browser
// stores is trusted.
func RequireAuth(usuarioRepo repository.UsuarioRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"success": false, "message": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"success": false, "message": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"success": false, "message": "Invalid or expired token"})
		}

		// Strict session check against the database
		usuario, err := usuarioRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"success": false, "message": "Usuario no encontrado"})
		}

		if usuario.TokenVersion != claims.TokenVersion {
			return c.Status(401).JSON(fiber.Map{"success": false, "message": "Sesión expirada (inicio de sesión en otro dispositivo)"})
		}

		c.Locals("user_id", claims.UserID.String())
		c.Locals("user_correo", claims.Correo)
		c.Locals("user_nombre", claims.Nombre)
		c.Locals("user_privilegios", claims.Privilegios)

		return c.Next()
	}
}

// RequirePrivilege gates a route behind one privilege code
func RequirePrivilege(requiredPrivilege string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		privilegios, ok := c.Locals("user_privilegios").([]string)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"success": false, "message": "No privileges found"})
		}

		for _, p := range privilegios {
			if p == requiredPrivilege {
				return c.Next()
			}
		}

		return c.Status(403).JSON(fiber.Map{
			"success": false,
			"message": "Forbidden: requires '" + requiredPrivilege + "' privilege",
		})
	}
}
