package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estado values for Pedido
const (
	PedidoPendiente  = "Pendiente"
	PedidoCompletado = "Completado"
)

// Pedido is an order header. It is created inside a transaction together
// with all of its DetallePedido rows; a header without its lines must
// never be observable.
type Pedido struct {
	BaseModel
	ClienteID uuid.UUID `gorm:"type:uuid;not null;index" json:"cliente_id"`
	Cliente   *Cliente  `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`
	UsuarioID uuid.UUID `gorm:"type:uuid;not null;index" json:"usuario_id"`
	Usuario   *Usuario  `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`

	Fecha time.Time `gorm:"not null" json:"fecha"`

	// Total is the pre-tax amount sent by the caller; IVA and
	// TotalConIVA are computed at placement time at the fixed rate.
	Total       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	IVA         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"iva"`
	TotalConIVA decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_con_iva"`

	Estado string `gorm:"type:varchar(20);not null;default:'Pendiente';index" json:"estado"`

	Detalles []DetallePedido `gorm:"foreignKey:PedidoID" json:"detalles,omitempty"`
}

func (Pedido) TableName() string {
	return "pedidos"
}

// DetallePedido is an order line item, immutable after creation
type DetallePedido struct {
	BaseModel
	PedidoID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"pedido_id"`
	ProductoID uuid.UUID       `gorm:"type:uuid;not null;index" json:"producto_id"`
	Producto   *Producto       `gorm:"foreignKey:ProductoID" json:"producto,omitempty"`
	Cantidad   int             `gorm:"not null" json:"cantidad"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
}

func (DetallePedido) TableName() string {
	return "detalle_pedidos"
}

// PedidoResumen is the joined row shown on the order panel
type PedidoResumen struct {
	ID            uuid.UUID       `json:"id"`
	NombreCliente string          `json:"nombre_cliente"`
	Fecha         time.Time       `json:"fecha"`
	Total         decimal.Decimal `json:"total"`
	TotalConIVA   decimal.Decimal `json:"total_con_iva"`
	NombreUsuario string          `json:"nombre_usuario"`
	Estado        string          `json:"estado"`
}

// DetalleResumen is a line of the ticket view for one order
type DetalleResumen struct {
	NombreProducto string          `json:"nombre_producto"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Cantidad       int             `json:"cantidad"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// ProductoVendido is a row of the top-products sales report
type ProductoVendido struct {
	ProductoID     uuid.UUID `json:"producto_id"`
	NombreProducto string    `json:"nombre_producto"`
	TotalVendido   int       `json:"total_vendido"`
}
