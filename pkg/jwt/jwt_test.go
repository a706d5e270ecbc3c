package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/pkg/jwt"
)

const secret = "jwt-test-secret"

func TestGenerateYParse(t *testing.T) {
	tok, err := jwt.Generate(secret, "user-1", "bodeguero", "almacen-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "bodeguero", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := jwt.Generate(secret, "user-1", "admin", "almacen-test", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro-secreto", tok)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := jwt.Generate(secret, "user-1", "admin", "almacen-test", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse(secret, tok)
	assert.Error(t, err, "un token vencido debe rechazarse")
}

func TestParse_Basura(t *testing.T) {
	_, _, err := jwt.Parse(secret, "no-es-un-jwt")
	assert.Error(t, err)
}
