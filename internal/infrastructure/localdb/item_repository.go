package localdb

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ItemRepository implementa repository.ItemRepository sobre el Store.
type ItemRepository struct {
	store *Store
}

// NewItemRepository construye el repositorio.
func NewItemRepository(store *Store) *ItemRepository {
	return &ItemRepository{store: store}
}

// Create asigna ID y timestamps y agrega el artículo al dataset.
func (r *ItemRepository) Create(item *entity.InventoryItem) error {
	return r.store.Update(func(d *dataset) error {
		if item.ID == "" {
			item.ID = NewID()
		}
		now := time.Now()
		item.CreatedAt = now
		item.UpdatedAt = now
		d.InventoryItems = append(d.InventoryItems, item)
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ItemRepository) GetByID(id string) (*entity.InventoryItem, error) {
	var found *entity.InventoryItem
	err := r.store.View(func(d *dataset) error {
		found = findItem(d, id)
		return nil
	})
	return found, err
}

// GetBySKU devuelve (nil, nil) si no existe.
func (r *ItemRepository) GetBySKU(sku string) (*entity.InventoryItem, error) {
	var found *entity.InventoryItem
	err := r.store.View(func(d *dataset) error {
		for _, it := range d.InventoryItems {
			if it.SKU == sku {
				cp := *it
				found = &cp
				return nil
			}
		}
		return nil
	})
	return found, err
}

// List devuelve los artículos en orden de inserción.
func (r *ItemRepository) List() ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	err := r.store.View(func(d *dataset) error {
		for _, it := range d.InventoryItems {
			cp := *it
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

// Update reemplaza los campos del artículo, re-estampa UpdatedAt y preserva CreatedAt.
func (r *ItemRepository) Update(item *entity.InventoryItem) error {
	return r.store.Update(func(d *dataset) error {
		return updateItem(d, item)
	})
}

// Delete elimina en firme; devuelve false si el id no existe.
func (r *ItemRepository) Delete(id string) (bool, error) {
	deleted := false
	err := r.store.Update(func(d *dataset) error {
		for i, it := range d.InventoryItems {
			if it.ID == id {
				d.InventoryItems = append(d.InventoryItems[:i], d.InventoryItems[i+1:]...)
				deleted = true
				return nil
			}
		}
		return nil
	})
	return deleted, err
}

// txItemRepository variante atada a un dataset ya cargado dentro de RunTx.
// No toma el mutex ni persiste: eso lo hace la sección crítica que la envuelve.
type txItemRepository struct {
	d *dataset
}

func (r *txItemRepository) Create(item *entity.InventoryItem) error {
	if item.ID == "" {
		item.ID = NewID()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.d.InventoryItems = append(r.d.InventoryItems, item)
	return nil
}

func (r *txItemRepository) GetByID(id string) (*entity.InventoryItem, error) {
	return findItem(r.d, id), nil
}

func (r *txItemRepository) GetBySKU(sku string) (*entity.InventoryItem, error) {
	for _, it := range r.d.InventoryItems {
		if it.SKU == sku {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *txItemRepository) List() ([]*entity.InventoryItem, error) {
	out := make([]*entity.InventoryItem, 0, len(r.d.InventoryItems))
	for _, it := range r.d.InventoryItems {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *txItemRepository) Update(item *entity.InventoryItem) error {
	return updateItem(r.d, item)
}

func (r *txItemRepository) Delete(id string) (bool, error) {
	for i, it := range r.d.InventoryItems {
		if it.ID == id {
			r.d.InventoryItems = append(r.d.InventoryItems[:i], r.d.InventoryItems[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func findItem(d *dataset, id string) *entity.InventoryItem {
	for _, it := range d.InventoryItems {
		if it.ID == id {
			cp := *it
			return &cp
		}
	}
	return nil
}

func updateItem(d *dataset, item *entity.InventoryItem) error {
	for i, it := range d.InventoryItems {
		if it.ID == item.ID {
			item.CreatedAt = it.CreatedAt
			item.UpdatedAt = time.Now()
			cp := *item
			d.InventoryItems[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}
