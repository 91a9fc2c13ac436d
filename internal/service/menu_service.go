package service

import (
	"errors"
	"fmt"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/repository"
	"go-cafe-pos/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoriaBebidas is the category name behind /api/inventario/bebidas
const CategoriaBebidas = "Bebidas"

type MenuService interface {
	Menu() ([]model.MenuItem, error)
	Categorias() ([]model.CategoriaMenu, error)
	Bebidas() ([]model.Producto, error)
	CrearProducto(producto *model.Producto, operadorID string) error
	ActualizarStock(id uuid.UUID, stock int, operadorID string) error
	EliminarProducto(id uuid.UUID, operadorID string) error
}

type menuService struct {
	productoRepo repository.ProductoRepository
	db           *gorm.DB
}

func NewMenuService(productoRepo repository.ProductoRepository, db *gorm.DB) MenuService {
	return &menuService{productoRepo: productoRepo, db: db}
}

func (s *menuService) Menu() ([]model.MenuItem, error) {
	return s.productoRepo.FindMenu()
}

func (s *menuService) Categorias() ([]model.CategoriaMenu, error) {
	return s.productoRepo.FindCategorias()
}

func (s *menuService) Bebidas() ([]model.Producto, error) {
	return s.productoRepo.FindByCategoriaNombre(CategoriaBebidas)
}

// CrearProducto inserts the product and its recipe lines together
func (s *menuService) CrearProducto(producto *model.Producto, operadorID string) error {
	if errs := validator.ValidateStruct(producto); len(errs) > 0 {
		firstErr := errs[0]
		return NewValidationError(fmt.Sprintf(
			"Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag))
	}

	producto.CreatedBy = operadorID
	producto.UpdatedBy = operadorID
	for i := range producto.Receta {
		producto.Receta[i].CreatedBy = operadorID
		producto.Receta[i].UpdatedBy = operadorID
	}

	return s.productoRepo.Create(producto)
}

func (s *menuService) ActualizarStock(id uuid.UUID, stock int, operadorID string) error {
	if err := s.productoRepo.UpdateStock(s.db, id, stock, operadorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}
	return nil
}

func (s *menuService) EliminarProducto(id uuid.UUID, operadorID string) error {
	if err := s.productoRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}
	return nil
}
