package localdb

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// UserRepository implementa repository.UserRepository sobre el Store.
type UserRepository struct {
	store *Store
}

// NewUserRepository construye el repositorio.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create asigna ID y timestamps y agrega el usuario al dataset.
func (r *UserRepository) Create(user *entity.User) error {
	return r.store.Update(func(d *dataset) error {
		if user.ID == "" {
			user.ID = NewID()
		}
		now := time.Now()
		user.CreatedAt = now
		user.UpdatedAt = now
		d.Users = append(d.Users, user)
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	var found *entity.User
	err := r.store.View(func(d *dataset) error {
		for _, u := range d.Users {
			if u.ID == id {
				cp := *u
				found = &cp
				return nil
			}
		}
		return nil
	})
	return found, err
}

// GetByUsername busca por coincidencia exacta, sensible a mayúsculas.
func (r *UserRepository) GetByUsername(username string) (*entity.User, error) {
	var found *entity.User
	err := r.store.View(func(d *dataset) error {
		for _, u := range d.Users {
			if u.Username == username {
				cp := *u
				found = &cp
				return nil
			}
		}
		return nil
	})
	return found, err
}

// List devuelve los usuarios en orden de inserción.
func (r *UserRepository) List() ([]*entity.User, error) {
	var out []*entity.User
	err := r.store.View(func(d *dataset) error {
		for _, u := range d.Users {
			cp := *u
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

// Update reemplaza los campos del usuario, re-estampa UpdatedAt y preserva CreatedAt.
func (r *UserRepository) Update(user *entity.User) error {
	return r.store.Update(func(d *dataset) error {
		for i, u := range d.Users {
			if u.ID == user.ID {
				user.CreatedAt = u.CreatedAt
				user.UpdatedAt = time.Now()
				cp := *user
				d.Users[i] = &cp
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// Delete elimina en firme; devuelve false si el id no existe.
func (r *UserRepository) Delete(id string) (bool, error) {
	deleted := false
	err := r.store.Update(func(d *dataset) error {
		for i, u := range d.Users {
			if u.ID == id {
				d.Users = append(d.Users[:i], d.Users[i+1:]...)
				deleted = true
				return nil
			}
		}
		return nil
	})
	return deleted, err
}
