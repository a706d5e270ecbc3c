package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// MovementHandler registra y consulta movimientos de inventario.
type MovementHandler struct {
	register *inventory.RegisterMovementUseCase
	query    *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(register *inventory.RegisterMovementUseCase, query *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{register: register, query: query}
}

// Register godoc
// @Summary      Registrar movimiento de inventario
// @Description  entrada suma, salida resta, ajuste fija la existencia. El movimiento y la existencia del artículo se confirman juntos o no se confirma nada.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterMovementRequest  true  "item_id, type, quantity, location, reason"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.register.RegisterMovement(inventory.MovementInput{
		ItemID:      in.ItemID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Location:    in.Location,
		Responsible: GetUserID(c),
		Reason:      in.Reason,
	})
	if err != nil {
		return respondError(c, err)
	}
	m := result.Movement
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		ID:               m.ID,
		ItemID:           m.ItemID,
		Type:             m.Type,
		Quantity:         m.Quantity,
		PreviousQuantity: m.PreviousQuantity,
		NewQuantity:      m.NewQuantity,
		Location:         m.Location,
		Responsible:      m.Responsible,
		Reason:           m.Reason,
		CreatedAt:        m.CreatedAt,
	})
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        item_id  query     string  false  "filtrar por artículo"
// @Success      200      {array}   dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	if itemID := c.Query("item_id"); itemID != "" {
		movements, err := h.query.ListByItem(itemID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(movements)
	}
	movements, err := h.query.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movements)
}
