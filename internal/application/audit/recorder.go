package audit

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// Recorder agrega entradas inmutables de auditoría. Las entradas nunca se
// modifican ni se eliminan.
type Recorder struct {
	repo repository.AuditRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.AuditRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record agrega una entrada y la devuelve. El error solo puede venir del
// almacenamiento subyacente.
func (r *Recorder) Record(actorID, action, entityName, entityID, details string) (*entity.AuditLog, error) {
	log := &entity.AuditLog{
		UserID:    actorID,
		Action:    action,
		Entity:    entityName,
		EntityID:  entityID,
		Details:   details,
		Timestamp: time.Now(),
	}
	if err := r.repo.Create(log); err != nil {
		return nil, err
	}
	return log, nil
}

// BestEffort registra la entrada de una operación ya confirmada. Un fallo de
// escritura de auditoría no revierte la operación de negocio: se reporta como
// warning y se sigue adelante.
func (r *Recorder) BestEffort(actorID, action, entityName, entityID, details string) {
	if _, err := r.Record(actorID, action, entityName, entityID, details); err != nil {
		r.log.Warn().Err(err).
			Str("actor", actorID).
			Str("action", action).
			Str("entity", entityName).
			Msg("no se pudo escribir la entrada de auditoría")
	}
}
