package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoriaMenu groups menu products (Bebidas, Comida, Postres, ...)
type CategoriaMenu struct {
	BaseModel
	Nombre string `gorm:"type:varchar(100);uniqueIndex;not null" json:"nombre" validate:"required"`
}

func (CategoriaMenu) TableName() string {
	return "categorias_menu"
}

// Producto is a sellable menu item
type Producto struct {
	BaseModel
	Nombre      string          `gorm:"type:varchar(255);not null" json:"nombre" validate:"required"`
	Descripcion string          `gorm:"type:text" json:"descripcion"`
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio"`
	Stock       int             `gorm:"default:0" json:"stock"`
	ImagenURL   string          `gorm:"type:varchar(500)" json:"imagen_url"`

	CategoriaID uuid.UUID      `gorm:"type:uuid;not null;index" json:"categoria_id" validate:"uuid_required"`
	Categoria   *CategoriaMenu `gorm:"foreignKey:CategoriaID" json:"categoria,omitempty"`

	// Receta lines are created together with the product and never
	// mutated independently
	Receta []Receta `gorm:"foreignKey:ProductoID" json:"receta,omitempty"`
}

func (Producto) TableName() string {
	return "productos"
}

// MenuItem is the flattened row returned by /api/menu
type MenuItem struct {
	ID          uuid.UUID       `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	ImagenURL   string          `json:"imagen_url"`
	Categoria   string          `json:"categoria"`
}

// Receta maps a product to the inventory supplies it consumes per unit sold
type Receta struct {
	BaseModel
	ProductoID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"producto_id"`
	InsumoID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"insumo_id" validate:"uuid_required"`
	Insumo            *Insumo         `gorm:"foreignKey:InsumoID" json:"insumo,omitempty"`
	CantidadPorUnidad decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"cantidad_por_unidad"`
}

func (Receta) TableName() string {
	return "recetas"
}
