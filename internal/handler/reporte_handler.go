package handler

import (
	"time"

	"go-cafe-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReporteHandler struct {
	pedidoService     service.PedidoService
	inventarioService service.InventarioService
}

func NewReporteHandler(pedidoService service.PedidoService, inventarioService service.InventarioService) *ReporteHandler {
	return &ReporteHandler{
		pedidoService:     pedidoService,
		inventarioService: inventarioService,
	}
}

// TopProductosRequest is the report date range
type TopProductosRequest struct {
	Inicio string `json:"inicio"`
	Fin    string `json:"fin"`
}

// TopProductos returns the five best-selling products in a date range
// POST /api/reportes/top
func (h *ReporteHandler) TopProductos(c *fiber.Ctx) error {
	var req TopProductosRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	inicio, err := time.Parse("2006-01-02", req.Inicio)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Fecha de inicio inválida, use YYYY-MM-DD"})
	}
	fin, err := time.Parse("2006-01-02", req.Fin)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Fecha de fin inválida, use YYYY-MM-DD"})
	}
	// include the whole end day
	fin = fin.Add(24*time.Hour - time.Second)

	vendidos, err := h.pedidoService.TopProductos(inicio, fin)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error al generar el reporte"})
	}

	return c.JSON(vendidos)
}

// StockBajo returns every inventory item under the fixed threshold with
// its derived status
// GET /api/reportes/stock-bajo
func (h *ReporteHandler) StockBajo(c *fiber.Ctx) error {
	items, err := h.inventarioService.StockBajo()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error al generar el reporte"})
	}
	return c.JSON(items)
}
