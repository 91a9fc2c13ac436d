package mailer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOrdenCompraBody(t *testing.T) {
	body, err := BuildOrdenCompraBody(OrdenCompra{
		Producto:      "Café en grano",
		Cantidad:      20,
		Motivo:        "Stock crítico",
		Destino:       "proveedor@example.com",
		UsuarioNombre: "Laura",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Café en grano")
	assert.Contains(t, body, "20 unidades")
	assert.Contains(t, body, "Stock crítico")
	assert.Contains(t, body, "Laura")
}

func TestBuildOrdenCompraBody_Defaults(t *testing.T) {
	body, err := BuildOrdenCompraBody(OrdenCompra{Producto: "Leche", Cantidad: 5})
	require.NoError(t, err)

	assert.Contains(t, body, "Sistema")
	assert.Contains(t, body, "No especificado")
}

func TestBuildTicketBody(t *testing.T) {
	precio := decimal.RequireFromString("25.00")
	body, err := BuildTicketBody(Ticket{
		Destino: "ana@example.com",
		Cliente: "Ana",
		Fecha:   time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		Lineas: []TicketLinea{
			{Producto: "Latte", Cantidad: 2, PrecioUnitario: precio, Subtotal: decimal.RequireFromString("50.00")},
			{Producto: "Croissant", Cantidad: 1, PrecioUnitario: decimal.RequireFromString("30.00"), Subtotal: decimal.RequireFromString("30.00")},
		},
		Total:         decimal.RequireFromString("80.00"),
		IVA:           decimal.RequireFromString("12.80"),
		TotalConIVA:   decimal.RequireFromString("92.80"),
		UsuarioNombre: "Laura",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Ana")
	assert.Contains(t, body, "2026-03-14 10:30")
	assert.Contains(t, body, "Latte")
	assert.Contains(t, body, "Croissant")
	assert.Contains(t, body, "$80")
	assert.Contains(t, body, "$12.8")
	assert.Contains(t, body, "$92.8")
}
