package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// AuditRepository define el puerto de persistencia para AuditLog (DIP).
// Solo agregar y listar: las entradas nunca se modifican ni se eliminan.
type AuditRepository interface {
	Create(log *entity.AuditLog) error
	List() ([]*entity.AuditLog, error)
}
