package repository

import (
	"time"

	"go-cafe-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PedidoRepository interface {
	FindByEstado(estado string) ([]model.PedidoResumen, error)
	FindByID(id uuid.UUID) (*model.Pedido, error)
	FindDetalle(pedidoID uuid.UUID) ([]model.DetalleResumen, error)
	Completar(id uuid.UUID, updatedBy string) error
	TopProductos(inicio, fin time.Time, limit int) ([]model.ProductoVendido, error)
}

type pedidoRepo struct {
	db *gorm.DB
}

func NewPedidoRepo(db *gorm.DB) PedidoRepository {
	return &pedidoRepo{db}
}

// FindByEstado returns the joined panel rows (client and employee names)
// for orders in the given state, newest first
func (r *pedidoRepo) FindByEstado(estado string) ([]model.PedidoResumen, error) {
	var resumen []model.PedidoResumen
	err := r.db.Model(&model.Pedido{}).
		Select(`pedidos.id, clientes.nombre AS nombre_cliente, pedidos.fecha,
			pedidos.total, pedidos.total_con_iva,
			usuarios.nombre AS nombre_usuario, pedidos.estado`).
		Joins("JOIN clientes ON clientes.id = pedidos.cliente_id").
		Joins("JOIN usuarios ON usuarios.id = pedidos.usuario_id").
		Where("pedidos.estado = ?", estado).
		Order("pedidos.fecha DESC").
		Scan(&resumen).Error
	return resumen, err
}

func (r *pedidoRepo) FindByID(id uuid.UUID) (*model.Pedido, error) {
	var pedido model.Pedido
	err := r.db.Preload("Cliente").Preload("Usuario").
		Preload("Detalles").Preload("Detalles.Producto").
		First(&pedido, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pedido, nil
}

// FindDetalle returns the ticket lines for one order
func (r *pedidoRepo) FindDetalle(pedidoID uuid.UUID) ([]model.DetalleResumen, error) {
	var detalles []model.DetalleResumen
	err := r.db.Model(&model.DetallePedido{}).
		Select(`productos.nombre AS nombre_producto,
			productos.precio AS precio_unitario,
			detalle_pedidos.cantidad, detalle_pedidos.subtotal`).
		Joins("JOIN productos ON productos.id = detalle_pedidos.producto_id").
		Where("detalle_pedidos.pedido_id = ?", pedidoID).
		Scan(&detalles).Error
	return detalles, err
}

// Completar is a single UPDATE; zero rows affected means the order does
// not exist
func (r *pedidoRepo) Completar(id uuid.UUID, updatedBy string) error {
	result := r.db.Model(&model.Pedido{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"estado":     model.PedidoCompletado,
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

// TopProductos aggregates quantity sold per product over a date range.
// The original database did this in a stored procedure; the aggregation
// lives here instead.
func (r *pedidoRepo) TopProductos(inicio, fin time.Time, limit int) ([]model.ProductoVendido, error) {
	var vendidos []model.ProductoVendido
	err := r.db.Model(&model.DetallePedido{}).
		Select(`detalle_pedidos.producto_id,
			productos.nombre AS nombre_producto,
			SUM(detalle_pedidos.cantidad) AS total_vendido`).
		Joins("JOIN productos ON productos.id = detalle_pedidos.producto_id").
		Joins("JOIN pedidos ON pedidos.id = detalle_pedidos.pedido_id").
		Where("pedidos.fecha BETWEEN ? AND ?", inicio, fin).
		Group("detalle_pedidos.producto_id, productos.nombre").
		Order("total_vendido DESC").
		Limit(limit).
		Scan(&vendidos).Error
	return vendidos, err
}
