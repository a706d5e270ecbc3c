package localdb

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// SupplierRepository implementa repository.SupplierRepository sobre el Store.
type SupplierRepository struct {
	store *Store
}

// NewSupplierRepository construye el repositorio.
func NewSupplierRepository(store *Store) *SupplierRepository {
	return &SupplierRepository{store: store}
}

// Create asigna ID y timestamps y agrega el proveedor al dataset.
func (r *SupplierRepository) Create(supplier *entity.Supplier) error {
	return r.store.Update(func(d *dataset) error {
		if supplier.ID == "" {
			supplier.ID = NewID()
		}
		now := time.Now()
		supplier.CreatedAt = now
		supplier.UpdatedAt = now
		d.Suppliers = append(d.Suppliers, supplier)
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *SupplierRepository) GetByID(id string) (*entity.Supplier, error) {
	var found *entity.Supplier
	err := r.store.View(func(d *dataset) error {
		for _, s := range d.Suppliers {
			if s.ID == id {
				cp := *s
				found = &cp
				return nil
			}
		}
		return nil
	})
	return found, err
}

// List devuelve los proveedores en orden de inserción.
func (r *SupplierRepository) List() ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	err := r.store.View(func(d *dataset) error {
		for _, s := range d.Suppliers {
			cp := *s
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

// Update reemplaza los campos del proveedor, re-estampa UpdatedAt y preserva CreatedAt.
func (r *SupplierRepository) Update(supplier *entity.Supplier) error {
	return r.store.Update(func(d *dataset) error {
		for i, s := range d.Suppliers {
			if s.ID == supplier.ID {
				supplier.CreatedAt = s.CreatedAt
				supplier.UpdatedAt = time.Now()
				cp := *supplier
				d.Suppliers[i] = &cp
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// Delete elimina en firme; devuelve false si el id no existe.
func (r *SupplierRepository) Delete(id string) (bool, error) {
	deleted := false
	err := r.store.Update(func(d *dataset) error {
		for i, s := range d.Suppliers {
			if s.ID == id {
				d.Suppliers = append(d.Suppliers[:i], d.Suppliers[i+1:]...)
				deleted = true
				return nil
			}
		}
		return nil
	})
	return deleted, err
}
