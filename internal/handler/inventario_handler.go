package handler

import (
	"strconv"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventarioHandler struct {
	service service.InventarioService
}

func NewInventarioHandler(s service.InventarioService) *InventarioHandler {
	return &InventarioHandler{service: s}
}

// GetInsumo returns one inventory item
// GET /api/inventario/producto/:id
func (h *InventarioHandler) GetInsumo(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "ID inválido"})
	}

	insumo, err := h.service.ObtenerInsumo(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "producto": insumo})
}

// AjustarCantidad sets the quantity of one inventory item
// PUT /api/inventario/producto/:id
func (h *InventarioHandler) AjustarCantidad(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "ID inválido"})
	}

	// Accept both a JSON number and a numeric string, like the original
	var raw struct {
		Cantidad interface{} `json:"cantidad"`
	}
	if err := c.BodyParser(&raw); err != nil || raw.Cantidad == nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Datos incompletos: cantidad es requerida"})
	}

	cantidad, ok := parseCantidad(raw.Cantidad)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Dato inválido: cantidad debe ser un número entero"})
	}

	insumo, err := h.service.AjustarCantidad(id, cantidad, getUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":              true,
		"message":              "Producto actualizado correctamente",
		"cantidad_actualizada": cantidad,
		"producto": fiber.Map{
			"id":       insumo.ID,
			"nombre":   insumo.Nombre,
			"cantidad": insumo.Cantidad,
		},
	})
}

func parseCantidad(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// CrearInsumo registers a new inventory item
// POST /api/inventario/producto
func (h *InventarioHandler) CrearInsumo(c *fiber.Ctx) error {
	var insumo model.Insumo
	if err := c.BodyParser(&insumo); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid JSON"})
	}

	if err := h.service.CrearInsumo(&insumo, getUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Producto creado correctamente",
		"id":      insumo.ID,
	})
}

// EliminarInsumo removes an inventory item
// DELETE /api/inventario/producto/:id
func (h *InventarioHandler) EliminarInsumo(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "ID inválido"})
	}

	if err := h.service.EliminarInsumo(id, getUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Producto eliminado correctamente"})
}

// GetPorCategoria lists inventory items of one category
// GET /api/inventario/categoria/:idCategoria
func (h *InventarioHandler) GetPorCategoria(c *fiber.Ctx) error {
	categoriaID, err := parseUUID(c.Params("idCategoria"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de categoría inválido"})
	}

	insumos, err := h.service.PorCategoria(categoriaID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error al obtener productos", "detalles": err.Error()})
	}

	return c.JSON(insumos)
}

// GetCategorias lists inventory categories
// GET /api/inventario/categorias
func (h *InventarioHandler) GetCategorias(c *fiber.Ctx) error {
	categorias, err := h.service.Categorias()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error al obtener categorías", "detalles": err.Error()})
	}
	return c.JSON(categorias)
}

// Status is the inventory health probe
// GET /api/inventario/status
func (h *InventarioHandler) Status(c *fiber.Ctx) error {
	status, err := h.service.Status()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "error": err.Error()})
	}
	return c.JSON(status)
}
