package localdb

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// PurchaseOrderRepository implementa repository.PurchaseOrderRepository sobre el Store.
type PurchaseOrderRepository struct {
	store *Store
}

// NewPurchaseOrderRepository construye el repositorio.
func NewPurchaseOrderRepository(store *Store) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{store: store}
}

// Create asigna ID y timestamps y agrega la orden al dataset.
func (r *PurchaseOrderRepository) Create(order *entity.PurchaseOrder) error {
	return r.store.Update(func(d *dataset) error {
		if order.ID == "" {
			order.ID = NewID()
		}
		now := time.Now()
		order.CreatedAt = now
		order.UpdatedAt = now
		d.PurchaseOrders = append(d.PurchaseOrders, order)
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *PurchaseOrderRepository) GetByID(id string) (*entity.PurchaseOrder, error) {
	var found *entity.PurchaseOrder
	err := r.store.View(func(d *dataset) error {
		for _, o := range d.PurchaseOrders {
			if o.ID == id {
				cp := *o
				found = &cp
				return nil
			}
		}
		return nil
	})
	return found, err
}

// List devuelve las órdenes en orden de inserción.
func (r *PurchaseOrderRepository) List() ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	err := r.store.View(func(d *dataset) error {
		for _, o := range d.PurchaseOrders {
			cp := *o
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

// Update reemplaza los campos de la orden, re-estampa UpdatedAt y preserva CreatedAt.
func (r *PurchaseOrderRepository) Update(order *entity.PurchaseOrder) error {
	return r.store.Update(func(d *dataset) error {
		for i, o := range d.PurchaseOrders {
			if o.ID == order.ID {
				order.CreatedAt = o.CreatedAt
				order.UpdatedAt = time.Now()
				cp := *order
				d.PurchaseOrders[i] = &cp
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// Delete elimina en firme; devuelve false si el id no existe.
func (r *PurchaseOrderRepository) Delete(id string) (bool, error) {
	deleted := false
	err := r.store.Update(func(d *dataset) error {
		for i, o := range d.PurchaseOrders {
			if o.ID == id {
				d.PurchaseOrders = append(d.PurchaseOrders[:i], d.PurchaseOrders[i+1:]...)
				deleted = true
				return nil
			}
		}
		return nil
	})
	return deleted, err
}
