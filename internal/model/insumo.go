package model

import "github.com/google/uuid"

// Stock thresholds for the low-stock report. The original system derived
// these in a database view; the contract (below 5 = low, 2 or less =
// critical) is kept here.
const (
	UmbralStockBajo    = 5
	UmbralStockCritico = 2
)

// Estado labels attached to low-stock rows
const (
	EstadoStockBajo    = "Bajo"
	EstadoStockCritico = "Crítico"
)

// CategoriaInsumo groups raw inventory supplies (Bebidas, Comida,
// Envases, Limpieza)
type CategoriaInsumo struct {
	BaseModel
	Nombre      string `gorm:"type:varchar(100);uniqueIndex;not null" json:"nombre" validate:"required"`
	Descripcion string `gorm:"type:text" json:"descripcion"`
}

func (CategoriaInsumo) TableName() string {
	return "categorias_inventario"
}

// Insumo is a raw inventory supply item. Cantidad is mutated directly on
// restock and consumption; there is no negative-quantity guard, the last
// writer wins.
type Insumo struct {
	BaseModel
	Nombre   string `gorm:"type:varchar(255);not null" json:"nombre" validate:"required"`
	Cantidad int    `gorm:"default:0" json:"cantidad"`

	CategoriaInsumoID uuid.UUID        `gorm:"type:uuid;not null;index" json:"categoria_insumo_id" validate:"uuid_required"`
	CategoriaInsumo   *CategoriaInsumo `gorm:"foreignKey:CategoriaInsumoID" json:"categoria_insumo,omitempty"`
}

func (Insumo) TableName() string {
	return "inventario"
}

// EstadoStock derives the report label for this item's quantity
func (i *Insumo) EstadoStock() string {
	if i.Cantidad <= UmbralStockCritico {
		return EstadoStockCritico
	}
	return EstadoStockBajo
}

// StockBajoItem is a low-stock report row
type StockBajoItem struct {
	ID        uuid.UUID `json:"id"`
	Nombre    string    `json:"nombre"`
	Cantidad  int       `json:"cantidad"`
	Categoria string    `json:"categoria"`
	Estado    string    `json:"estado"`
}
