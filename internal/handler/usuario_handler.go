package handler

import (
	"go-cafe-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UsuarioHandler struct {
	service service.UsuarioService
}

func NewUsuarioHandler(s service.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{service: s}
}

// GetUsuarios lists every user without credentials
// GET /api/usuarios
func (h *UsuarioHandler) GetUsuarios(c *fiber.Ctx) error {
	usuarios, err := h.service.Usuarios()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error al obtener usuarios"})
	}
	return c.JSON(usuarios)
}

// GetUsuario returns one user
// GET /api/usuarios/:id
func (h *UsuarioHandler) GetUsuario(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "ID de usuario inválido"})
	}

	usuario, err := h.service.UsuarioPorID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(usuario)
}

// CrearUsuario registers an employee
// POST /api/usuarios
func (h *UsuarioHandler) CrearUsuario(c *fiber.Ctx) error {
	var req service.CrearUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid JSON"})
	}

	usuario, err := h.service.CrearUsuario(&req, getUserID(c))
	if err != nil {
		if err == service.ErrCorreoExiste {
			return c.Status(400).JSON(fiber.Map{"success": false, "message": "El correo ya está registrado."})
		}
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "id": usuario.ID, "message": "Usuario creado exitosamente."})
}

// ActualizarUsuario updates an employee
// PUT /api/usuarios/:id
func (h *UsuarioHandler) ActualizarUsuario(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "ID de usuario inválido"})
	}

	var req service.ActualizarUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid JSON"})
	}

	if _, err := h.service.ActualizarUsuario(id, &req, getUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Usuario actualizado correctamente."})
}

// EliminarUsuario removes an employee
// DELETE /api/usuarios/:id
func (h *UsuarioHandler) EliminarUsuario(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "ID de usuario inválido"})
	}

	if err := h.service.EliminarUsuario(id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Usuario eliminado correctamente."})
}
