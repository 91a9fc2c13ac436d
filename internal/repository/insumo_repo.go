package repository

import (
	"go-cafe-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InsumoRepository interface {
	Create(insumo *model.Insumo) error
	FindByID(id uuid.UUID) (*model.Insumo, error)
	FindByCategoria(categoriaID uuid.UUID) ([]model.Insumo, error)
	FindCategorias() ([]model.CategoriaInsumo, error)
	UpdateCantidad(id uuid.UUID, cantidad int, updatedBy string) error
	Delete(id uuid.UUID) error
	StockBajo() ([]model.StockBajoItem, error)
	Count() (int64, error)
}

type insumoRepo struct {
	db *gorm.DB
}

func NewInsumoRepo(db *gorm.DB) InsumoRepository {
	return &insumoRepo{db}
}

func (r *insumoRepo) Create(insumo *model.Insumo) error {
	return r.db.Create(insumo).Error
}

func (r *insumoRepo) FindByID(id uuid.UUID) (*model.Insumo, error) {
	var insumo model.Insumo
	err := r.db.Preload("CategoriaInsumo").First(&insumo, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &insumo, nil
}

func (r *insumoRepo) FindByCategoria(categoriaID uuid.UUID) ([]model.Insumo, error) {
	var insumos []model.Insumo
	err := r.db.Preload("CategoriaInsumo").
		Where("categoria_insumo_id = ?", categoriaID).
		Order("nombre").
		Find(&insumos).Error
	return insumos, err
}

func (r *insumoRepo) FindCategorias() ([]model.CategoriaInsumo, error) {
	var categorias []model.CategoriaInsumo
	err := r.db.Order("nombre").Find(&categorias).Error
	return categorias, err
}

// UpdateCantidad sets the quantity outright. No negative guard and no
// optimistic-concurrency check: the last writer wins.
func (r *insumoRepo) UpdateCantidad(id uuid.UUID, cantidad int, updatedBy string) error {
	result := r.db.Model(&model.Insumo{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"cantidad":   cantidad,
			"updated_by": updatedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *insumoRepo) Delete(id uuid.UUID) error {
	result := r.db.Delete(&model.Insumo{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// StockBajo returns every item under the fixed threshold tagged with its
// derived status, mirroring the report view of the original database
func (r *insumoRepo) StockBajo() ([]model.StockBajoItem, error) {
	var insumos []model.Insumo
	err := r.db.Preload("CategoriaInsumo").
		Where("cantidad < ?", model.UmbralStockBajo).
		Order("cantidad ASC, nombre").
		Find(&insumos).Error
	if err != nil {
		return nil, err
	}

	items := make([]model.StockBajoItem, len(insumos))
	for i, insumo := range insumos {
		categoria := ""
		if insumo.CategoriaInsumo != nil {
			categoria = insumo.CategoriaInsumo.Nombre
		}
		items[i] = model.StockBajoItem{
			ID:        insumo.ID,
			Nombre:    insumo.Nombre,
			Cantidad:  insumo.Cantidad,
			Categoria: categoria,
			Estado:    insumo.EstadoStock(),
		}
	}
	return items, nil
}

func (r *insumoRepo) Count() (int64, error) {
	var total int64
	err := r.db.Model(&model.Insumo{}).Count(&total).Error
	return total, err
}
