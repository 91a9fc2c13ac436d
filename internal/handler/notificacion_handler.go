package handler

import (
	"go-cafe-pos/internal/mailer"
	"go-cafe-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type NotificacionHandler struct {
	mailer        mailer.Mailer
	pedidoService service.PedidoService
}

func NewNotificacionHandler(m mailer.Mailer, pedidoService service.PedidoService) *NotificacionHandler {
	return &NotificacionHandler{
		mailer:        m,
		pedidoService: pedidoService,
	}
}

// OrdenCompraRequest is the restock-request payload
type OrdenCompraRequest struct {
	Producto      string `json:"producto"`
	Cantidad      int    `json:"cantidad"`
	Motivo        string `json:"motivo"`
	Destino       string `json:"destino"`
	UsuarioNombre string `json:"usuarioNombre"`
}

// EnviarOrdenCompra emails a restock request to a supplier
// POST /api/ordenar
func (h *NotificacionHandler) EnviarOrdenCompra(c *fiber.Ctx) error {
	var req OrdenCompraRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid JSON"})
	}

	if req.Producto == "" || req.Cantidad <= 0 || req.Destino == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Datos incompletos: producto, cantidad y destino son requeridos"})
	}

	usuarioNombre := req.UsuarioNombre
	if usuarioNombre == "" {
		usuarioNombre = getUserNombre(c)
	}

	orden := mailer.OrdenCompra{
		Producto:      req.Producto,
		Cantidad:      req.Cantidad,
		Motivo:        req.Motivo,
		Destino:       req.Destino,
		UsuarioNombre: usuarioNombre,
	}

	if err := h.mailer.EnviarOrdenCompra(orden); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Fallo al enviar el correo de orden. Revise credenciales en .env."})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Orden de compra enviada por correo con éxito."})
}

// TicketRequest asks for the receipt of one order to be mailed
type TicketRequest struct {
	IDPedido string `json:"idPedido"`
	Destino  string `json:"destino"`
}

// EnviarTicket emails the itemized purchase ticket of an order
// POST /api/ticket
func (h *NotificacionHandler) EnviarTicket(c *fiber.Ctx) error {
	var req TicketRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid JSON"})
	}

	if req.Destino == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Datos incompletos: destino es requerido"})
	}

	id, err := parseUUID(req.IDPedido)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "ID de pedido inválido"})
	}

	pedido, err := h.pedidoService.ObtenerPedido(id)
	if err != nil {
		return respondError(c, err)
	}

	ticket := mailer.Ticket{
		Destino:       req.Destino,
		Fecha:         pedido.Fecha,
		Total:         pedido.Total,
		IVA:           pedido.IVA,
		TotalConIVA:   pedido.TotalConIVA,
		UsuarioNombre: getUserNombre(c),
	}
	if pedido.Cliente != nil {
		ticket.Cliente = pedido.Cliente.Nombre
	}
	if pedido.Usuario != nil {
		ticket.UsuarioNombre = pedido.Usuario.Nombre
	}
	for _, detalle := range pedido.Detalles {
		linea := mailer.TicketLinea{
			Cantidad: detalle.Cantidad,
			Subtotal: detalle.Subtotal,
		}
		if detalle.Producto != nil {
			linea.Producto = detalle.Producto.Nombre
			linea.PrecioUnitario = detalle.Producto.Precio
		}
		ticket.Lineas = append(ticket.Lineas, linea)
	}

	if err := h.mailer.EnviarTicket(ticket); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Fallo al enviar el ticket de compra."})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Ticket de compra enviado por correo con éxito."})
}
