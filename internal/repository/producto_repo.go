package repository

import (
	"go-cafe-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductoRepository interface {
	Create(producto *model.Producto) error
	FindMenu() ([]model.MenuItem, error)
	FindByCategoriaNombre(nombre string) ([]model.Producto, error)
	FindByID(id uuid.UUID) (*model.Producto, error)
	FindCategorias() ([]model.CategoriaMenu, error)
	UpdateStock(tx *gorm.DB, id uuid.UUID, stock int, updatedBy string) error
	Update(producto *model.Producto) error
	Delete(id uuid.UUID) error
}

type productoRepo struct {
	db *gorm.DB
}

func NewProductoRepo(db *gorm.DB) ProductoRepository {
	return &productoRepo{db}
}

// Create inserts the product together with its recipe lines
func (r *productoRepo) Create(producto *model.Producto) error {
	return r.db.Create(producto).Error
}

// FindMenu returns every product joined with its category name, ordered
// by category then product name
func (r *productoRepo) FindMenu() ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.Model(&model.Producto{}).
		Select(`productos.id, productos.nombre, productos.descripcion,
			productos.precio, productos.stock, productos.imagen_url,
			categorias_menu.nombre AS categoria`).
		Joins("JOIN categorias_menu ON categorias_menu.id = productos.categoria_id").
		Order("categorias_menu.nombre, productos.nombre").
		Scan(&items).Error
	return items, err
}

func (r *productoRepo) FindByCategoriaNombre(nombre string) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.
		Joins("JOIN categorias_menu ON categorias_menu.id = productos.categoria_id").
		Where("categorias_menu.nombre = ?", nombre).
		Order("productos.nombre").
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) FindByID(id uuid.UUID) (*model.Producto, error) {
	var producto model.Producto
	err := r.db.Preload("Categoria").Preload("Receta").First(&producto, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &producto, nil
}

func (r *productoRepo) FindCategorias() ([]model.CategoriaMenu, error) {
	var categorias []model.CategoriaMenu
	err := r.db.Order("nombre").Find(&categorias).Error
	return categorias, err
}

// UpdateStock accepts a *gorm.DB so it can run inside a transaction
func (r *productoRepo) UpdateStock(tx *gorm.DB, id uuid.UUID, stock int, updatedBy string) error {
	result := tx.Model(&model.Producto{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock":      stock,
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

func (r *productoRepo) Update(producto *model.Producto) error {
	return r.db.Save(producto).Error
}

func (r *productoRepo) Delete(id uuid.UUID) error {
	result := r.db.Delete(&model.Producto{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
