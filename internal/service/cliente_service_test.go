package service_test

import (
	"testing"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/repository"
	"go-cafe-pos/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearClienteYBuscarPorNombreParcial(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewClienteService(repository.NewClienteRepo(db))

	// Walk-in client without email
	ana := &model.Cliente{Nombre: "Ana"}
	require.NoError(t, svc.CrearCliente(ana, "system"))
	assert.Nil(t, ana.Correo)

	correo := "bruno@example.com"
	require.NoError(t, svc.CrearCliente(&model.Cliente{Nombre: "Bruno", Correo: &correo}, "system"))

	encontrados, err := svc.Buscar("An")
	require.NoError(t, err)
	require.Len(t, encontrados, 1)
	assert.Equal(t, "Ana", encontrados[0].Nombre)
	assert.Equal(t, ana.ID, encontrados[0].ID)
}

func TestBuscarSinFiltroListaTodos(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewClienteService(repository.NewClienteRepo(db))

	seedCliente(t, db, "Ana", nil)
	seedCliente(t, db, "Bruno", nil)

	todos, err := svc.Buscar("  ")
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestBuscarEsInsensibleAMayusculas(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewClienteService(repository.NewClienteRepo(db))

	seedCliente(t, db, "Ana María", nil)

	encontrados, err := svc.Buscar("ana")
	require.NoError(t, err)
	require.Len(t, encontrados, 1)
	assert.Equal(t, "Ana María", encontrados[0].Nombre)
}

func TestCrearCliente_NombreObligatorio(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewClienteService(repository.NewClienteRepo(db))

	err := svc.CrearCliente(&model.Cliente{}, "system")
	assert.True(t, service.IsValidation(err))
}
