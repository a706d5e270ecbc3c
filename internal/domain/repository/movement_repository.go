package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para Movement (DIP).
// Los movimientos son inmutables: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	List() ([]*entity.Movement, error)
	ListByItem(itemID string) ([]*entity.Movement, error)
}
