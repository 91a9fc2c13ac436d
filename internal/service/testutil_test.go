package service_test

import (
	"testing"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/ws"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory sqlite database with foreign keys
// enforced and migrates the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.CategoriaMenu{}, &model.Producto{}, &model.Receta{},
		&model.CategoriaInsumo{}, &model.Insumo{},
		&model.Cliente{}, &model.Pedido{}, &model.DetallePedido{},
		&model.Usuario{}, &model.Rol{}, &model.Privilegio{},
	)
	require.NoError(t, err)

	return db
}

func newTestHub() *ws.Hub {
	hub := ws.NewHub()
	go hub.Run()
	return hub
}

func seedCliente(t *testing.T, db *gorm.DB, nombre string, correo *string) *model.Cliente {
	t.Helper()
	cliente := &model.Cliente{Nombre: nombre, Correo: correo}
	require.NoError(t, db.Create(cliente).Error)
	return cliente
}

func seedUsuario(t *testing.T, db *gorm.DB, nombre, correo, password string) *model.Usuario {
	t.Helper()
	usuario := &model.Usuario{Nombre: nombre, Correo: correo, Activo: true}
	require.NoError(t, usuario.SetPassword(password))
	require.NoError(t, db.Create(usuario).Error)
	return usuario
}

func seedProducto(t *testing.T, db *gorm.DB, nombre string, precio string, stock int) *model.Producto {
	t.Helper()
	categoria := &model.CategoriaMenu{Nombre: "Bebidas-" + nombre}
	require.NoError(t, db.Create(categoria).Error)

	producto := &model.Producto{
		Nombre:      nombre,
		Precio:      decimal.RequireFromString(precio),
		Stock:       stock,
		CategoriaID: categoria.ID,
	}
	require.NoError(t, db.Create(producto).Error)
	return producto
}

func seedInsumo(t *testing.T, db *gorm.DB, nombre string, cantidad int) *model.Insumo {
	t.Helper()
	categoria := &model.CategoriaInsumo{Nombre: "Categoria-" + nombre}
	require.NoError(t, db.Create(categoria).Error)

	insumo := &model.Insumo{
		Nombre:            nombre,
		Cantidad:          cantidad,
		CategoriaInsumoID: categoria.ID,
	}
	require.NoError(t, db.Create(insumo).Error)
	return insumo
}
