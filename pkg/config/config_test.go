package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvVarsTienenPrioridad(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("JWT_EXPIRATION_MINUTES", "15")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 15, cfg.JWT.Expiration)
	assert.Equal(t, "production", cfg.App.Env)
}

// Un entero ilegible en el entorno no puede degradar a 0: el servidor no debe
// terminar escuchando en un puerto aleatorio por un typo en HTTP_PORT.
func TestLoad_EnteroIlegibleConservaElDefault(t *testing.T) {
	t.Setenv("HTTP_PORT", "abc")
	t.Setenv("JWT_EXPIRATION_MINUTES", "quince")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 60, cfg.JWT.Expiration)
}

func TestLoad_EnteroConEspaciosSeAcepta(t *testing.T) {
	t.Setenv("HTTP_PORT", " 9091 ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9091, cfg.HTTP.Port)
}
