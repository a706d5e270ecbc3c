package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/localdb"
	pkgjwt "github.com/jhoicas/almacen-api/pkg/jwt"
	"github.com/jhoicas/almacen-api/pkg/logger"
	"github.com/jhoicas/almacen-api/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "auth-test-secret"
	testIssuer = "almacen-test"
)

type authEnv struct {
	uc     *auth.AuthUseCase
	users  *localdb.UserRepository
	audits *localdb.AuditRepository
}

// newAuthEnv levanta el caso de uso sobre un almacén en memoria con un
// usuario activo (maria/secreta12) y uno inactivo (pedro/secreta12).
func newAuthEnv(t *testing.T) *authEnv {
	t.Helper()
	store, err := localdb.NewStore(localdb.NewMemoryKV(), logger.Nop())
	require.NoError(t, err)

	users := localdb.NewUserRepository(store)
	audits := localdb.NewAuditRepository(store)
	recorder := audit.NewRecorder(audits, logger.Nop())

	// Cost mínimo: los tests no miden seguridad del hash.
	hasher := password.Bcrypt{Cost: bcrypt.MinCost}
	hash, err := hasher.Hash("secreta12")
	require.NoError(t, err)

	require.NoError(t, users.Create(&entity.User{
		Username: "maria", Email: "maria@almacen.com",
		PasswordHash: hash, Role: "bodeguero", Status: entity.StatusActive,
	}))
	require.NoError(t, users.Create(&entity.User{
		Username: "pedro", Email: "pedro@almacen.com",
		PasswordHash: hash, Role: "trabajador", Status: entity.StatusInactive,
	}))

	uc := auth.NewAuthUseCase(users, hasher, hasher, recorder, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
	return &authEnv{uc: uc, users: users, audits: audits}
}

// auditActions devuelve las acciones del registro de auditoría en orden.
func (e *authEnv) auditActions(t *testing.T) []string {
	t.Helper()
	logs, err := e.audits.List()
	require.NoError(t, err)
	actions := make([]string, 0, len(logs))
	for _, l := range logs {
		actions = append(actions, l.Action)
	}
	return actions
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	env := newAuthEnv(t)

	resp, err := env.uc.Login(dto.LoginRequest{Username: "maria", Password: "secreta12"})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "maria", resp.User.Username)
	assert.Equal(t, "bodeguero", resp.User.Role)

	// El token lleva identidad y rol del usuario.
	userID, role, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, "bodeguero", role)

	// La identidad de sesión queda fijada.
	current := env.uc.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, "maria", current.Username)

	assert.Equal(t, []string{"login"}, env.auditActions(t))
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	env := newAuthEnv(t)

	_, err := env.uc.Login(dto.LoginRequest{Username: "nadie", Password: "secreta12"})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, env.uc.CurrentUser())
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	env := newAuthEnv(t)

	_, err := env.uc.Login(dto.LoginRequest{Username: "maria", Password: "otra"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, env.uc.CurrentUser())
	assert.Empty(t, env.auditActions(t), "un login fallido no se audita como login")
}

// El usuario inactivo falla después de validar credenciales: la contraseña
// correcta de una cuenta inactiva reporta cuenta inactiva, no credenciales.
func TestLogin_UsuarioInactivo(t *testing.T) {
	env := newAuthEnv(t)

	_, err := env.uc.Login(dto.LoginRequest{Username: "pedro", Password: "secreta12"})
	require.ErrorIs(t, err, domain.ErrInactiveUser)
	assert.Nil(t, env.uc.CurrentUser())
}

// Un login reemplaza la identidad anterior sin exigir logout.
func TestLogin_ReemplazaSesionAnterior(t *testing.T) {
	env := newAuthEnv(t)

	_, err := env.uc.Register(dto.RegisterRequest{
		Username: "ana", Email: "ana@almacen.com", Password: "secreta12", Role: "auditor",
	})
	require.NoError(t, err)

	_, err = env.uc.Login(dto.LoginRequest{Username: "maria", Password: "secreta12"})
	require.NoError(t, err)
	_, err = env.uc.Login(dto.LoginRequest{Username: "ana", Password: "secreta12"})
	require.NoError(t, err)

	current := env.uc.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, "ana", current.Username)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_AuditaAntesDeLimpiar(t *testing.T) {
	env := newAuthEnv(t)

	_, err := env.uc.Login(dto.LoginRequest{Username: "maria", Password: "secreta12"})
	require.NoError(t, err)

	env.uc.Logout()

	assert.Nil(t, env.uc.CurrentUser())
	assert.Equal(t, []string{"login", "logout"}, env.auditActions(t))

	logs, err := env.audits.List()
	require.NoError(t, err)
	assert.NotEmpty(t, logs[1].UserID, "el logout debe quedar atribuido al actor")
}

func TestLogout_SinSesionEsNoOp(t *testing.T) {
	env := newAuthEnv(t)

	env.uc.Logout()

	assert.Nil(t, env.uc.CurrentUser())
	assert.Empty(t, env.auditActions(t), "logout sin sesión no genera auditoría")
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioSinIniciarSesion(t *testing.T) {
	env := newAuthEnv(t)

	resp, err := env.uc.Register(dto.RegisterRequest{
		Username: "carlos", Email: "carlos@almacen.com", Password: "secreta12", Role: "comprador",
	})
	require.NoError(t, err)
	assert.Equal(t, "comprador", resp.Role)
	assert.Equal(t, entity.StatusActive, resp.Status)

	assert.Nil(t, env.uc.CurrentUser(), "register no inicia sesión")

	stored, err := env.users.GetByUsername("carlos")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta12", stored.PasswordHash, "la contraseña nunca se guarda en claro")

	assert.Equal(t, []string{"register"}, env.auditActions(t))
}

func TestRegister_RolPorDefectoTrabajador(t *testing.T) {
	env := newAuthEnv(t)

	resp, err := env.uc.Register(dto.RegisterRequest{
		Username: "lucia", Email: "lucia@almacen.com", Password: "secreta12",
	})
	require.NoError(t, err)
	assert.Equal(t, "trabajador", resp.Role)
}

func TestRegister_RolDesconocidoRechazado(t *testing.T) {
	env := newAuthEnv(t)

	_, err := env.uc.Register(dto.RegisterRequest{
		Username: "eva", Email: "eva@almacen.com", Password: "secreta12", Role: "gerente",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	env := newAuthEnv(t)

	_, err := env.uc.Register(dto.RegisterRequest{
		Username: "maria", Email: "maria2@almacen.com", Password: "secreta12",
	})
	require.ErrorIs(t, err, domain.ErrUsernameTaken)
}
