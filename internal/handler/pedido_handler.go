package handler

import (
	"go-cafe-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PedidoHandler struct {
	service service.PedidoService
}

func NewPedidoHandler(s service.PedidoService) *PedidoHandler {
	return &PedidoHandler{service: s}
}

// GetPendientes lists pending orders for the panel
// GET /api/pedidos
func (h *PedidoHandler) GetPendientes(c *fiber.Ctx) error {
	pedidos, err := h.service.Pendientes()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error al obtener lista de pedidos"})
	}
	return c.JSON(pedidos)
}

// GetCompletados lists completed orders
// GET /api/pedidos/completados
func (h *PedidoHandler) GetCompletados(c *fiber.Ctx) error {
	pedidos, err := h.service.Completados()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error al obtener pedidos completados"})
	}
	return c.JSON(pedidos)
}

// GetDetalle returns the ticket lines of one order
// GET /api/pedidos/:id/detalle
func (h *PedidoHandler) GetDetalle(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de pedido inválido"})
	}

	detalles, err := h.service.Detalle(id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error al obtener detalles del pedido"})
	}
	return c.JSON(detalles)
}

// RegistrarPedido places a new order atomically
// POST /api/pedidos
func (h *PedidoHandler) RegistrarPedido(c *fiber.Ctx) error {
	var req service.RegistrarPedidoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid JSON"})
	}

	pedido, err := h.service.RegistrarPedido(&req, getUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Pedido registrado correctamente",
		"idPedido": pedido.ID,
	})
}

// Completar marks an order as completed
// PUT /api/pedidos/:id/completar
func (h *PedidoHandler) Completar(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "ID de pedido inválido"})
	}

	if err := h.service.Completar(id, getUserID(c)); err != nil {
		if err == service.ErrNoEncontrado {
			return c.Status(404).JSON(fiber.Map{"success": false, "message": "Pedido no encontrado."})
		}
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Estado del pedido actualizado a Completado."})
}
