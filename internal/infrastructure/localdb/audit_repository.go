package localdb

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// AuditRepository implementa repository.AuditRepository sobre el Store.
// Solo agrega y lista: el puerto no expone actualización ni borrado.
type AuditRepository struct {
	store *Store
}

// NewAuditRepository construye el repositorio.
func NewAuditRepository(store *Store) *AuditRepository {
	return &AuditRepository{store: store}
}

// Create asigna ID y Timestamp y agrega la entrada al dataset.
func (r *AuditRepository) Create(log *entity.AuditLog) error {
	return r.store.Update(func(d *dataset) error {
		if log.ID == "" {
			log.ID = NewID()
		}
		if log.Timestamp.IsZero() {
			log.Timestamp = time.Now()
		}
		d.AuditLogs = append(d.AuditLogs, log)
		return nil
	})
}

// List devuelve las entradas en orden de inserción.
func (r *AuditRepository) List() ([]*entity.AuditLog, error) {
	var out []*entity.AuditLog
	err := r.store.View(func(d *dataset) error {
		for _, l := range d.AuditLogs {
			cp := *l
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}
