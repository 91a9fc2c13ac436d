package handler

import (
	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type MenuHandler struct {
	service service.MenuService
}

func NewMenuHandler(s service.MenuService) *MenuHandler {
	return &MenuHandler{service: s}
}

// GetMenu returns every product joined with its category name
// GET /api/menu
func (h *MenuHandler) GetMenu(c *fiber.Ctx) error {
	items, err := h.service.Menu()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error interno del servidor al obtener el menú"})
	}
	return c.JSON(items)
}

// GetCategorias lists menu categories
// GET /api/categorias_menu
func (h *MenuHandler) GetCategorias(c *fiber.Ctx) error {
	categorias, err := h.service.Categorias()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error al obtener categorías"})
	}
	return c.JSON(categorias)
}

// GetBebidas lists the drink products
// GET /api/inventario/bebidas
func (h *MenuHandler) GetBebidas(c *fiber.Ctx) error {
	productos, err := h.service.Bebidas()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error al obtener bebidas"})
	}
	return c.JSON(productos)
}

// CrearProducto creates a menu product together with its recipe lines
// POST /api/inventario/productos
func (h *MenuHandler) CrearProducto(c *fiber.Ctx) error {
	var producto model.Producto
	if err := c.BodyParser(&producto); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid JSON"})
	}

	if err := h.service.CrearProducto(&producto, getUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "id": producto.ID})
}

// ActualizarStockRequest carries the new stock value
type ActualizarStockRequest struct {
	Stock *int `json:"stock"`
}

// ActualizarStock sets the stock of one menu product
// PUT /api/inventario/productos/:id
func (h *MenuHandler) ActualizarStock(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "ID de producto inválido"})
	}

	var req ActualizarStockRequest
	if err := c.BodyParser(&req); err != nil || req.Stock == nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Dato inválido: stock debe ser un número entero"})
	}

	if err := h.service.ActualizarStock(id, *req.Stock, getUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

// EliminarProducto removes a menu product
// DELETE /api/inventario/productos/:id
func (h *MenuHandler) EliminarProducto(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "ID de producto inválido"})
	}

	if err := h.service.EliminarProducto(id, getUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Producto eliminado correctamente"})
}
