package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// MovementUseCase consulta de movimientos. El registro de movimientos nuevos
// es responsabilidad exclusiva del motor (inventory.RegisterMovementUseCase).
type MovementUseCase struct {
	repo repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// List devuelve todos los movimientos en orden de inserción.
func (uc *MovementUseCase) List() ([]*dto.MovementResponse, error) {
	movements, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

// ListByItem devuelve los movimientos de un artículo.
func (uc *MovementUseCase) ListByItem(itemID string) ([]*dto.MovementResponse, error) {
	movements, err := uc.repo.ListByItem(itemID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}
