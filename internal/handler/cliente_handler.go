package handler

import (
	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ClienteHandler struct {
	service service.ClienteService
}

func NewClienteHandler(s service.ClienteService) *ClienteHandler {
	return &ClienteHandler{service: s}
}

// CrearCliente registers a client, created on demand during order
// placement
// POST /api/clientes
func (h *ClienteHandler) CrearCliente(c *fiber.Ctx) error {
	var cliente model.Cliente
	if err := c.BodyParser(&cliente); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid JSON"})
	}

	if err := h.service.CrearCliente(&cliente, getUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "id": cliente.ID})
}

// Buscar searches clients by partial name
// GET /api/clientes?nombre=An
func (h *ClienteHandler) Buscar(c *fiber.Ctx) error {
	clientes, err := h.service.Buscar(c.Query("nombre"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error al obtener clientes"})
	}
	return c.JSON(clientes)
}
