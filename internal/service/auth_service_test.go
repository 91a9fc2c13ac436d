package service_test

import (
	"testing"

	"go-cafe-pos/internal/repository"
	"go-cafe-pos/internal/service"
	"go-cafe-pos/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewAuthService(repository.NewUsuarioRepo(db))

	usuario := seedUsuario(t, db, "Laura", "laura@cafeteria.local", "cafecito1")

	t.Run("credenciales correctas", func(t *testing.T) {
		resp, err := svc.Login("laura@cafeteria.local", "cafecito1")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, usuario.ID, resp.Usuario.ID)
		assert.Equal(t, "Laura", resp.Usuario.Nombre)
		assert.Equal(t, "laura@cafeteria.local", resp.Usuario.Correo)

		claims, err := jwt.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, usuario.ID, claims.UserID)
	})

	t.Run("contraseña incorrecta", func(t *testing.T) {
		resp, err := svc.Login("laura@cafeteria.local", "otra")
		assert.ErrorIs(t, err, service.ErrCredencialesInvalidas)
		assert.Nil(t, resp)
	})

	t.Run("correo desconocido", func(t *testing.T) {
		resp, err := svc.Login("nadie@cafeteria.local", "cafecito1")
		assert.ErrorIs(t, err, service.ErrCredencialesInvalidas)
		assert.Nil(t, resp)
	})
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewAuthService(repository.NewUsuarioRepo(db))

	usuario := seedUsuario(t, db, "Pedro", "pedro@cafeteria.local", "cafecito1")
	require.NoError(t, db.Model(usuario).Update("activo", false).Error)

	_, err := svc.Login("pedro@cafeteria.local", "cafecito1")
	assert.ErrorIs(t, err, service.ErrUsuarioInactivo)
}

func TestLogin_RotaTokenVersion(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUsuarioRepo(db)
	svc := service.NewAuthService(repo)

	usuario := seedUsuario(t, db, "Marta", "marta@cafeteria.local", "cafecito1")

	first, err := svc.Login("marta@cafeteria.local", "cafecito1")
	require.NoError(t, err)

	_, err = svc.Login("marta@cafeteria.local", "cafecito1")
	require.NoError(t, err)

	// the first session stops validating after the second login
	_, err = svc.ValidateToken(first.Token)
	assert.Error(t, err)

	reloaded, err := repo.FindByID(usuario.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, reloaded.TokenVersion)
}

func TestResetPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewAuthService(repository.NewUsuarioRepo(db))

	seedUsuario(t, db, "Nora", "nora@cafeteria.local", "vieja123")

	err := svc.ResetPassword("nora@cafeteria.local", "equivocada", "nueva123")
	assert.ErrorIs(t, err, service.ErrPasswordIncorrecta)

	require.NoError(t, svc.ResetPassword("nora@cafeteria.local", "vieja123", "nueva123"))

	_, err = svc.Login("nora@cafeteria.local", "vieja123")
	assert.ErrorIs(t, err, service.ErrCredencialesInvalidas)

	_, err = svc.Login("nora@cafeteria.local", "nueva123")
	assert.NoError(t, err)
}
