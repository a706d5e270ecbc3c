package usecase

import (
	"fmt"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/rbac"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/password"
)

// UserUseCase CRUD de usuarios. Cada mutación confirmada emite una entrada
// de auditoría atribuida al actor.
type UserUseCase struct {
	repo     repository.UserRepository
	hasher   password.Hasher
	recorder *audit.Recorder
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, hasher password.Hasher, recorder *audit.Recorder) *UserUseCase {
	return &UserUseCase{repo: repo, hasher: hasher, recorder: recorder}
}

// Create crea un usuario nuevo. Devuelve ErrUsernameTaken si el username ya existe.
func (uc *UserUseCase) Create(actorID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, ok := rbac.ParseRole(in.Role); !ok {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}
	user := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		Status:       status,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	uc.recorder.BestEffort(actorID, "create", "user", user.ID,
		fmt.Sprintf("Usuario creado: %s (%s)", user.Username, user.Role))
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario por ID; (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil || user == nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List devuelve todos los usuarios.
func (uc *UserUseCase) List() ([]*dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Update aplica cambios parciales. El cambio de rol lo controla el llamador
// vía la matriz de permisos (users.edit).
func (uc *UserUseCase) Update(actorID, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Role != nil {
		if _, ok := rbac.ParseRole(*in.Role); !ok {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Status != nil {
		if *in.Status != entity.StatusActive && *in.Status != entity.StatusInactive {
			return nil, domain.ErrInvalidInput
		}
		user.Status = *in.Status
	}
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	uc.recorder.BestEffort(actorID, "update", "user", user.ID,
		fmt.Sprintf("Usuario actualizado: %s", user.Username))
	return toUserResponse(user), nil
}

// Delete elimina en firme; false si el id no existe.
func (uc *UserUseCase) Delete(actorID, id string) (bool, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	deleted, err := uc.repo.Delete(id)
	if err != nil || !deleted {
		return deleted, err
	}
	uc.recorder.BestEffort(actorID, "delete", "user", id,
		fmt.Sprintf("Usuario eliminado: %s", user.Username))
	return true, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
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
