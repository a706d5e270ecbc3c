package auth

import (
	"fmt"
	"sync"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/rbac"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/almacen-api/pkg/jwt"
	"github.com/jhoicas/almacen-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autenticación e identidad de sesión: login, logout y registro.
// Mantiene a lo sumo una identidad activa por proceso, protegida por mutex
// para embebidos con handlers concurrentes.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	comparator password.Comparator
	hasher     password.Hasher
	recorder   *audit.Recorder
	jwtCfg     JWTConfig

	mu      sync.Mutex
	current *entity.User
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	comparator password.Comparator,
	hasher password.Hasher,
	recorder *audit.Recorder,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		comparator: comparator,
		hasher:     hasher,
		recorder:   recorder,
		jwtCfg:     jwtCfg,
	}
}

// Login verifica username/password, fija la identidad de sesión, registra la
// entrada de auditoría y genera el JWT. El orden de fallos es: usuario no
// encontrado, credenciales inválidas, usuario inactivo.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !uc.comparator.Compare(user.PasswordHash, in.Password) {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Status != entity.StatusActive {
		return nil, domain.ErrInactiveUser
	}

	uc.mu.Lock()
	uc.current = user
	uc.mu.Unlock()

	uc.recorder.BestEffort(user.ID, "login", "user", user.ID,
		fmt.Sprintf("Usuario %s inició sesión", user.Username))

	token, err := pkgjwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Logout limpia la identidad de sesión. Si había identidad, primero escribe
// la entrada de auditoría para que el actor siga siendo atribuible.
func (uc *AuthUseCase) Logout() {
	uc.mu.Lock()
	user := uc.current
	uc.mu.Unlock()

	if user != nil {
		uc.recorder.BestEffort(user.ID, "logout", "user", user.ID,
			fmt.Sprintf("Usuario %s cerró sesión", user.Username))
	}

	uc.mu.Lock()
	uc.current = nil
	uc.mu.Unlock()
}

// CurrentUser devuelve la identidad activa o nil.
func (uc *AuthUseCase) CurrentUser() *entity.User {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		return nil
	}
	cp := *uc.current
	return &cp
}

// Register crea un usuario nuevo y registra la entrada de auditoría.
// No inicia sesión. Devuelve ErrUsernameTaken si el username ya existe
// (coincidencia exacta, sensible a mayúsculas).
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	role := in.Role
	if role == "" {
		role = string(rbac.RoleTrabajador)
	}
	if _, ok := rbac.ParseRole(role); !ok {
		return nil, domain.ErrInvalidInput
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		Status:       entity.StatusActive,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	uc.recorder.BestEffort(user.ID, "register", "user", user.ID,
		fmt.Sprintf("Nuevo usuario registrado: %s", user.Username))
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
