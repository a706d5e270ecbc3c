package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// AuditHandler consulta del registro de auditoría.
type AuditHandler struct {
	uc *usecase.AuditUseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *usecase.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Listar registro de auditoría
// @Description  Entradas ordenadas de la más reciente a la más antigua.
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AuditLogResponse
// @Router       /api/audit [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	logs, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(logs)
}
