package service_test

import (
	"testing"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/repository"
	"go-cafe-pos/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUsuarioService(t *testing.T) (service.UsuarioService, *repositoryPair) {
	t.Helper()
	db := setupTestDB(t)

	rolRepo := repository.NewRolRepo(db)
	require.NoError(t, rolRepo.SeedDefaults())

	return service.NewUsuarioService(repository.NewUsuarioRepo(db), rolRepo), &repositoryPair{
		usuarios: repository.NewUsuarioRepo(db),
		roles:    rolRepo,
	}
}

type repositoryPair struct {
	usuarios repository.UsuarioRepository
	roles    repository.RolRepository
}

func TestCrearUsuario(t *testing.T) {
	svc, repos := newUsuarioService(t)

	creado, err := svc.CrearUsuario(&service.CrearUsuarioRequest{
		Nombre:     "Laura",
		Correo:     "laura@cafeteria.local",
		Contrasena: "cafecito1",
		Rol:        model.RolCajero,
	}, "system")
	require.NoError(t, err)
	assert.True(t, creado.Activo)
	assert.Equal(t, model.RolCajero, creado.RolCode())
	assert.NotEqual(t, "cafecito1", creado.Password) // stored hashed

	guardado, err := repos.usuarios.FindByCorreo("laura@cafeteria.local")
	require.NoError(t, err)
	assert.True(t, guardado.CheckPassword("cafecito1"))
}

func TestCrearUsuario_CorreoDuplicado(t *testing.T) {
	svc, _ := newUsuarioService(t)

	req := &service.CrearUsuarioRequest{
		Nombre: "Laura", Correo: "laura@cafeteria.local",
		Contrasena: "cafecito1", Rol: model.RolCajero,
	}
	_, err := svc.CrearUsuario(req, "system")
	require.NoError(t, err)

	_, err = svc.CrearUsuario(req, "system")
	assert.ErrorIs(t, err, service.ErrCorreoExiste)
}

func TestCrearUsuario_RolDesconocido(t *testing.T) {
	svc, _ := newUsuarioService(t)

	_, err := svc.CrearUsuario(&service.CrearUsuarioRequest{
		Nombre: "Laura", Correo: "laura@cafeteria.local",
		Contrasena: "cafecito1", Rol: "GERENTE",
	}, "system")
	assert.True(t, service.IsValidation(err))
}

func TestActualizarUsuario(t *testing.T) {
	svc, _ := newUsuarioService(t)

	creado, err := svc.CrearUsuario(&service.CrearUsuarioRequest{
		Nombre: "Laura", Correo: "laura@cafeteria.local",
		Contrasena: "cafecito1", Rol: model.RolCajero,
	}, "system")
	require.NoError(t, err)

	inactivo := false
	actualizado, err := svc.ActualizarUsuario(creado.ID, &service.ActualizarUsuarioRequest{
		Nombre: "Laura G.",
		Correo: "laura@cafeteria.local",
		Rol:    model.RolEncargado,
		Activo: &inactivo,
	}, "admin")
	require.NoError(t, err)
	assert.Equal(t, "Laura G.", actualizado.Nombre)
	assert.Equal(t, model.RolEncargado, actualizado.RolCode())
	assert.False(t, actualizado.Activo)
}

func TestActualizarUsuario_NoEncontrado(t *testing.T) {
	svc, _ := newUsuarioService(t)

	_, err := svc.ActualizarUsuario(uuid.New(), &service.ActualizarUsuarioRequest{
		Nombre: "X", Correo: "x@y.z", Rol: model.RolCajero,
	}, "admin")
	assert.ErrorIs(t, err, service.ErrUsuarioNoEncontrado)
}

func TestEliminarUsuarioYListar(t *testing.T) {
	svc, _ := newUsuarioService(t)

	creado, err := svc.CrearUsuario(&service.CrearUsuarioRequest{
		Nombre: "Laura", Correo: "laura@cafeteria.local",
		Contrasena: "cafecito1", Rol: model.RolAdministrador,
	}, "system")
	require.NoError(t, err)

	usuarios, err := svc.Usuarios()
	require.NoError(t, err)
	assert.Len(t, usuarios, 1)

	require.NoError(t, svc.EliminarUsuario(creado.ID))

	usuarios, err = svc.Usuarios()
	require.NoError(t, err)
	assert.Empty(t, usuarios)

	_, err = svc.UsuarioPorID(creado.ID)
	assert.ErrorIs(t, err, service.ErrUsuarioNoEncontrado)
}
