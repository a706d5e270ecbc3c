package localdb

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// MovementRepository implementa repository.MovementRepository sobre el Store.
// Los movimientos son inmutables: solo Create y lecturas.
type MovementRepository struct {
	store *Store
}

// NewMovementRepository construye el repositorio.
func NewMovementRepository(store *Store) *MovementRepository {
	return &MovementRepository{store: store}
}

// Create asigna ID y CreatedAt y agrega el movimiento al dataset.
func (r *MovementRepository) Create(movement *entity.Movement) error {
	return r.store.Update(func(d *dataset) error {
		appendMovement(d, movement)
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *MovementRepository) GetByID(id string) (*entity.Movement, error) {
	var found *entity.Movement
	err := r.store.View(func(d *dataset) error {
		for _, m := range d.Movements {
			if m.ID == id {
				cp := *m
				found = &cp
				return nil
			}
		}
		return nil
	})
	return found, err
}

// List devuelve los movimientos en orden de inserción.
func (r *MovementRepository) List() ([]*entity.Movement, error) {
	var out []*entity.Movement
	err := r.store.View(func(d *dataset) error {
		for _, m := range d.Movements {
			cp := *m
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

// ListByItem devuelve los movimientos de un artículo en orden de inserción.
func (r *MovementRepository) ListByItem(itemID string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	err := r.store.View(func(d *dataset) error {
		for _, m := range d.Movements {
			if m.ItemID == itemID {
				cp := *m
				out = append(out, &cp)
			}
		}
		return nil
	})
	return out, err
}

// txMovementRepository variante atada a un dataset ya cargado dentro de RunTx.
type txMovementRepository struct {
	d *dataset
}

func (r *txMovementRepository) Create(movement *entity.Movement) error {
	appendMovement(r.d, movement)
	return nil
}

func (r *txMovementRepository) GetByID(id string) (*entity.Movement, error) {
	for _, m := range r.d.Movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *txMovementRepository) List() ([]*entity.Movement, error) {
	out := make([]*entity.Movement, 0, len(r.d.Movements))
	for _, m := range r.d.Movements {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *txMovementRepository) ListByItem(itemID string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.d.Movements {
		if m.ItemID == itemID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func appendMovement(d *dataset, movement *entity.Movement) {
	if movement.ID == "" {
		movement.ID = NewID()
	}
	if movement.CreatedAt.IsZero() {
		movement.CreatedAt = time.Now()
	}
	d.Movements = append(d.Movements, movement)
}
