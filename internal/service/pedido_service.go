package service

import (
	"errors"
	"fmt"
	"time"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/repository"
	"go-cafe-pos/internal/ws"
	"go-cafe-pos/pkg/config"
	"go-cafe-pos/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PedidoService interface {
	RegistrarPedido(req *RegistrarPedidoRequest, operadorID string) (*model.Pedido, error)
	Completar(id uuid.UUID, operadorID string) error
	Pendientes() ([]model.PedidoResumen, error)
	Completados() ([]model.PedidoResumen, error)
	Detalle(id uuid.UUID) ([]model.DetalleResumen, error)
	ObtenerPedido(id uuid.UUID) (*model.Pedido, error)
	TopProductos(inicio, fin time.Time) ([]model.ProductoVendido, error)
}

// LineaPedido is one requested line item, field names matching the
// original wire contract
type LineaPedido struct {
	ID       uuid.UUID       `json:"id" validate:"uuid_required"`
	Cantidad int             `json:"cantidad" validate:"required,gt=0"`
	Subtotal decimal.Decimal `json:"subtotal" validate:"decimal_gte_zero"`
}

// RegistrarPedidoRequest is the order-placement payload
type RegistrarPedidoRequest struct {
	IDCliente uuid.UUID       `json:"idCliente" validate:"uuid_required"`
	Total     decimal.Decimal `json:"total" validate:"decimal_gte_zero"`
	IDUsuario uuid.UUID       `json:"idUsuario" validate:"uuid_required"`
	Productos []LineaPedido   `json:"productos" validate:"required,min=1,dive"`
}

type pedidoService struct {
	pedidoRepo   repository.PedidoRepository
	productoRepo repository.ProductoRepository
	db           *gorm.DB
	opts         config.Options
	wsHub        *ws.Hub
}

func NewPedidoService(pedidoRepo repository.PedidoRepository, productoRepo repository.ProductoRepository,
	db *gorm.DB, opts config.Options, hub *ws.Hub) PedidoService {
	return &pedidoService{
		pedidoRepo:   pedidoRepo,
		productoRepo: productoRepo,
		db:           db,
		opts:         opts,
		wsHub:        hub,
	}
}

// RegistrarPedido executes the order-placement workflow as one atomic
// unit: compute IVA, insert the header, insert every line, optionally
// decrement stock. On any failure everything rolls back and the database
// error is surfaced to the caller unchanged.
func (s *pedidoService) RegistrarPedido(req *RegistrarPedidoRequest, operadorID string) (*model.Pedido, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, NewValidationError(fmt.Sprintf(
			"Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag))
	}

	iva := req.Total.Mul(s.opts.IVARate).Round(2)
	pedido := &model.Pedido{
		ClienteID:   req.IDCliente,
		UsuarioID:   req.IDUsuario,
		Fecha:       time.Now(),
		Total:       req.Total,
		IVA:         iva,
		TotalConIVA: req.Total.Add(iva),
		Estado:      model.PedidoPendiente,
	}
	pedido.CreatedBy = operadorID
	pedido.UpdatedBy = operadorID

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pedido).Error; err != nil {
			return err
		}

		for _, linea := range req.Productos {
			detalle := &model.DetallePedido{
				PedidoID:   pedido.ID,
				ProductoID: linea.ID,
				Cantidad:   linea.Cantidad,
				Subtotal:   linea.Subtotal,
			}
			detalle.CreatedBy = operadorID
			detalle.UpdatedBy = operadorID
			if err := tx.Create(detalle).Error; err != nil {
				return err
			}

			// Stock decrement is disabled by default; placing an order
			// leaves product stock untouched unless the named flag
			// DECREMENT_STOCK_ON_ORDER is on.
			if s.opts.DecrementStockOnOrder {
				if err := tx.Model(&model.Producto{}).
					Where("id = ?", linea.ID).
					Update("stock", gorm.Expr("stock - ?", linea.Cantidad)).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.wsHub.PublishEvent(ws.EventPedidoCreado, map[string]interface{}{
		"pedido_id":     pedido.ID,
		"total_con_iva": pedido.TotalConIVA,
		"estado":        pedido.Estado,
	})

	return pedido, nil
}

func (s *pedidoService) Completar(id uuid.UUID, operadorID string) error {
	if err := s.pedidoRepo.Completar(id, operadorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}

	s.wsHub.PublishEvent(ws.EventPedidoCompletado, map[string]interface{}{
		"pedido_id": id,
	})
	return nil
}

func (s *pedidoService) Pendientes() ([]model.PedidoResumen, error) {
	return s.pedidoRepo.FindByEstado(model.PedidoPendiente)
}

func (s *pedidoService) Completados() ([]model.PedidoResumen, error) {
	return s.pedidoRepo.FindByEstado(model.PedidoCompletado)
}

func (s *pedidoService) Detalle(id uuid.UUID) ([]model.DetalleResumen, error) {
	return s.pedidoRepo.FindDetalle(id)
}

func (s *pedidoService) ObtenerPedido(id uuid.UUID) (*model.Pedido, error) {
	pedido, err := s.pedidoRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	return pedido, nil
}

func (s *pedidoService) TopProductos(inicio, fin time.Time) ([]model.ProductoVendido, error) {
	return s.pedidoRepo.TopProductos(inicio, fin, 5)
}
