package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()
	privilegios := []string{"menu:view", "pedido:create"}

	token, err := GenerateToken(userID, "laura@cafeteria.local", "Laura", "CAJERO", privilegios, "v1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "laura@cafeteria.local", claims.Correo)
	assert.Equal(t, "Laura", claims.Nombre)
	assert.Equal(t, "CAJERO", claims.RolCode)
	assert.Equal(t, privilegios, claims.Privilegios)
	assert.Equal(t, "v1", claims.TokenVersion)
	assert.Equal(t, "go-cafe-pos", claims.Issuer)
}

func TestValidateToken_Malformado(t *testing.T) {
	_, err := ValidateToken("no-es-un-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_FirmaIncorrecta(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-a")
	token, err := GenerateToken(uuid.New(), "x@y.z", "X", "", nil, "")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secreto-b")
	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
