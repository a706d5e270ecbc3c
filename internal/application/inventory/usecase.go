package inventory

import (
	"fmt"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// RegisterMovementUseCase es el motor de movimientos: deriva la existencia
// nueva de un artículo a partir de su existencia actual, el tipo de
// movimiento y la cantidad solicitada, y aplica artículo y movimiento como
// una sola unidad lógica.
//
// Transiciones sobre la existencia q del artículo:
//
//	entrada: q' = q + cantidad
//	salida:  q' = q - cantidad
//	ajuste:  q' = cantidad (valor absoluto objetivo)
//
// Un resultado negativo se rechaza sin mutar nada.
type RegisterMovementUseCase struct {
	tx       TxRunner
	recorder *audit.Recorder
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(tx TxRunner, recorder *audit.Recorder) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{tx: tx, recorder: recorder}
}

// MovementInput entrada para registrar un movimiento.
type MovementInput struct {
	ItemID      string
	Type        string // entrada, salida, ajuste
	Quantity    int    // magnitud, o existencia objetivo en ajuste; nunca negativa
	Location    string // vacío = ubicación del artículo
	Responsible string // UserID del actor
	Reason      string
}

// MovementResult artículo actualizado más el movimiento registrado.
type MovementResult struct {
	Item     *entity.InventoryItem
	Movement *entity.Movement
}

// RegisterMovement valida la solicitud, calcula la existencia resultante y
// persiste movimiento y artículo dentro de la misma sección crítica.
// Rechaza sin mutar: tipo desconocido o cantidad negativa (ErrInvalidInput),
// artículo inexistente (ErrNotFound), resultado negativo (ErrInsufficientStock).
// Tras confirmar, emite una entrada de auditoría best-effort.
func (uc *RegisterMovementUseCase) RegisterMovement(in MovementInput) (*MovementResult, error) {
	switch in.Type {
	case entity.MovementTypeEntrada, entity.MovementTypeSalida, entity.MovementTypeAjuste:
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	var result *MovementResult
	err := uc.tx.RunTx(func(items repository.ItemRepository, movements repository.MovementRepository) error {
		item, err := items.GetByID(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		previous := item.Quantity
		var next int
		switch in.Type {
		case entity.MovementTypeEntrada:
			next = previous + in.Quantity
		case entity.MovementTypeSalida:
			next = previous - in.Quantity
		case entity.MovementTypeAjuste:
			next = in.Quantity
		}
		if next < 0 {
			return domain.ErrInsufficientStock
		}

		location := in.Location
		if location == "" {
			location = item.Location
		}

		item.Quantity = next
		if err := items.Update(item); err != nil {
			return err
		}
		movement := &entity.Movement{
			ItemID:           item.ID,
			Type:             in.Type,
			Quantity:         in.Quantity,
			PreviousQuantity: previous,
			NewQuantity:      next,
			Location:         location,
			Responsible:      in.Responsible,
			Reason:           in.Reason,
		}
		if err := movements.Create(movement); err != nil {
			return err
		}
		result = &MovementResult{Item: item, Movement: movement}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.BestEffort(in.Responsible, "create", "movement", result.Movement.ID,
		fmt.Sprintf("Movimiento %s de %s: %d → %d", in.Type, result.Item.SKU,
			result.Movement.PreviousQuantity, result.Movement.NewQuantity))
	return result, nil
}
