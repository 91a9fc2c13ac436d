package service

import (
	"errors"
	"fmt"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/repository"
	"go-cafe-pos/internal/ws"
	"go-cafe-pos/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventarioService interface {
	ObtenerInsumo(id uuid.UUID) (*model.Insumo, error)
	AjustarCantidad(id uuid.UUID, cantidad int, operadorID string) (*model.Insumo, error)
	CrearInsumo(insumo *model.Insumo, operadorID string) error
	EliminarInsumo(id uuid.UUID, operadorID string) error
	PorCategoria(categoriaID uuid.UUID) ([]model.Insumo, error)
	Categorias() ([]model.CategoriaInsumo, error)
	StockBajo() ([]model.StockBajoItem, error)
	Status() (map[string]interface{}, error)
}

type inventarioService struct {
	insumoRepo repository.InsumoRepository
	db         *gorm.DB
	wsHub      *ws.Hub
}

func NewInventarioService(insumoRepo repository.InsumoRepository, db *gorm.DB, hub *ws.Hub) InventarioService {
	return &inventarioService{
		insumoRepo: insumoRepo,
		db:         db,
		wsHub:      hub,
	}
}

func (s *inventarioService) ObtenerInsumo(id uuid.UUID) (*model.Insumo, error) {
	insumo, err := s.insumoRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	return insumo, nil
}

// AjustarCantidad sets the quantity and returns the updated row. Last
// writer wins.
func (s *inventarioService) AjustarCantidad(id uuid.UUID, cantidad int, operadorID string) (*model.Insumo, error) {
	if err := s.insumoRepo.UpdateCantidad(id, cantidad, operadorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}

	insumo, err := s.insumoRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	s.wsHub.PublishEvent(ws.EventStockAjustado, map[string]interface{}{
		"insumo_id": insumo.ID,
		"nombre":    insumo.Nombre,
		"cantidad":  insumo.Cantidad,
	})

	return insumo, nil
}

func (s *inventarioService) CrearInsumo(insumo *model.Insumo, operadorID string) error {
	if errs := validator.ValidateStruct(insumo); len(errs) > 0 {
		firstErr := errs[0]
		return NewValidationError(fmt.Sprintf(
			"Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag))
	}

	insumo.CreatedBy = operadorID
	insumo.UpdatedBy = operadorID
	return s.insumoRepo.Create(insumo)
}

func (s *inventarioService) EliminarInsumo(id uuid.UUID, operadorID string) error {
	if err := s.insumoRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}
	return nil
}

func (s *inventarioService) PorCategoria(categoriaID uuid.UUID) ([]model.Insumo, error) {
	return s.insumoRepo.FindByCategoria(categoriaID)
}

func (s *inventarioService) Categorias() ([]model.CategoriaInsumo, error) {
	return s.insumoRepo.FindCategorias()
}

func (s *inventarioService) StockBajo() ([]model.StockBajoItem, error) {
	return s.insumoRepo.StockBajo()
}

// Status reports database reachability and the item count, the health
// probe the inventory screens poll
func (s *inventarioService) Status() (map[string]interface{}, error) {
	sqlDB, err := s.db.DB()
	if err != nil {
		return nil, err
	}
	dbState := "conectado"
	if err := sqlDB.Ping(); err != nil {
		dbState = "error"
	}

	total, err := s.insumoRepo.Count()
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"status":          "ok",
		"database":        dbState,
		"total_productos": total,
	}, nil
}
