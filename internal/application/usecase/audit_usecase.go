package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// AuditUseCase consulta del registro de auditoría. Solo lectura: las
// entradas se escriben únicamente a través del Recorder.
type AuditUseCase struct {
	repo repository.AuditRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(repo repository.AuditRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

// List devuelve las entradas de auditoría, las más recientes primero.
func (uc *AuditUseCase) List() ([]*dto.AuditLogResponse, error) {
	logs, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AuditLogResponse, 0, len(logs))
	for i := len(logs) - 1; i >= 0; i-- {
		out = append(out, toAuditLogResponse(logs[i]))
	}
	return out, nil
}

func toAuditLogResponse(l *entity.AuditLog) *dto.AuditLogResponse {
	return &dto.AuditLogResponse{
		ID:        l.ID,
		UserID:    l.UserID,
		Action:    l.Action,
		Entity:    l.Entity,
		EntityID:  l.EntityID,
		Details:   l.Details,
		Timestamp: l.Timestamp,
	}
}
