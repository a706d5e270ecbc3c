package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/localdb"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type movementEnv struct {
	uc        *inventory.RegisterMovementUseCase
	items     *localdb.ItemRepository
	movements *localdb.MovementRepository
	audits    *localdb.AuditRepository
	item      *entity.InventoryItem
}

// newMovementEnv levanta un almacén en memoria con un artículo de 10 unidades.
func newMovementEnv(t *testing.T) *movementEnv {
	t.Helper()
	store, err := localdb.NewStore(localdb.NewMemoryKV(), logger.Nop())
	require.NoError(t, err)

	items := localdb.NewItemRepository(store)
	movements := localdb.NewMovementRepository(store)
	audits := localdb.NewAuditRepository(store)
	recorder := audit.NewRecorder(audits, logger.Nop())

	item := &entity.InventoryItem{
		SKU: "TST001", Name: "Tornillo M8", Category: "Ferretería",
		Quantity: 10, Unit: "caja", Price: decimal.NewFromInt(12),
		Location: "Almacén T-1", MinStockLevel: 2,
	}
	require.NoError(t, items.Create(item))

	return &movementEnv{
		uc:        inventory.NewRegisterMovementUseCase(store, recorder),
		items:     items,
		movements: movements,
		audits:    audits,
		item:      item,
	}
}

func (e *movementEnv) register(t *testing.T, typ string, qty int) (*inventory.MovementResult, error) {
	t.Helper()
	return e.uc.RegisterMovement(inventory.MovementInput{
		ItemID:      e.item.ID,
		Type:        typ,
		Quantity:    qty,
		Responsible: "user-1",
		Reason:      "test",
	})
}

func (e *movementEnv) currentQuantity(t *testing.T) int {
	t.Helper()
	item, err := e.items.GetByID(e.item.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	return item.Quantity
}

// ──────────────────────────────────────────────────────────────────────────────
// Tipos de movimiento
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_EntradaSumaExistencia(t *testing.T) {
	env := newMovementEnv(t)

	result, err := env.register(t, entity.MovementTypeEntrada, 5)
	require.NoError(t, err)

	assert.Equal(t, 15, result.Item.Quantity)
	assert.Equal(t, 10, result.Movement.PreviousQuantity)
	assert.Equal(t, 15, result.Movement.NewQuantity)
	assert.Equal(t, 5, result.Movement.Quantity)
	assert.Equal(t, 15, env.currentQuantity(t), "la existencia debe quedar persistida")
}

func TestRegisterMovement_SalidaRestaExistencia(t *testing.T) {
	env := newMovementEnv(t)

	result, err := env.register(t, entity.MovementTypeSalida, 4)
	require.NoError(t, err)

	assert.Equal(t, 6, result.Item.Quantity)
	assert.Equal(t, 10, result.Movement.PreviousQuantity)
	assert.Equal(t, 6, result.Movement.NewQuantity)
	assert.Equal(t, 6, env.currentQuantity(t))
}

func TestRegisterMovement_SalidaExactaLlegaACero(t *testing.T) {
	env := newMovementEnv(t)

	result, err := env.register(t, entity.MovementTypeSalida, 10)
	require.NoError(t, err, "retirar exactamente la existencia es válido")
	assert.Equal(t, 0, result.Item.Quantity)
}

func TestRegisterMovement_AjusteFijaExistencia(t *testing.T) {
	env := newMovementEnv(t)

	result, err := env.register(t, entity.MovementTypeAjuste, 7)
	require.NoError(t, err)

	assert.Equal(t, 7, result.Item.Quantity)
	assert.Equal(t, 10, result.Movement.PreviousQuantity)
	assert.Equal(t, 7, result.Movement.NewQuantity)
	assert.Equal(t, 7, result.Movement.Quantity, "en ajuste la cantidad es el valor objetivo")
}

func TestRegisterMovement_AjusteACeroEsValido(t *testing.T) {
	env := newMovementEnv(t)

	_, err := env.register(t, entity.MovementTypeAjuste, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, env.currentQuantity(t))
}

// ──────────────────────────────────────────────────────────────────────────────
// Rechazos
// ──────────────────────────────────────────────────────────────────────────────

// Una salida mayor a la existencia se rechaza completa: ni existencia mutada
// ni movimiento registrado.
func TestRegisterMovement_SalidaInsuficienteNoDejaRastro(t *testing.T) {
	env := newMovementEnv(t)

	_, err := env.register(t, entity.MovementTypeSalida, 11)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, env.currentQuantity(t), "la existencia no debe cambiar")

	movs, err := env.movements.List()
	require.NoError(t, err)
	assert.Empty(t, movs, "no debe quedar movimiento registrado")

	logs, err := env.audits.List()
	require.NoError(t, err)
	assert.Empty(t, logs, "no debe quedar entrada de auditoría")
}

func TestRegisterMovement_TipoDesconocidoRechazado(t *testing.T) {
	env := newMovementEnv(t)

	_, err := env.register(t, "transferencia", 1)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 10, env.currentQuantity(t))
}

func TestRegisterMovement_CantidadNegativaRechazada(t *testing.T) {
	env := newMovementEnv(t)

	for _, typ := range []string{entity.MovementTypeEntrada, entity.MovementTypeSalida, entity.MovementTypeAjuste} {
		_, err := env.register(t, typ, -1)
		require.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa en %s", typ)
	}
	assert.Equal(t, 10, env.currentQuantity(t))
}

func TestRegisterMovement_ArticuloInexistente(t *testing.T) {
	env := newMovementEnv(t)

	_, err := env.uc.RegisterMovement(inventory.MovementInput{
		ItemID:      "no-existe",
		Type:        entity.MovementTypeEntrada,
		Quantity:    1,
		Responsible: "user-1",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro histórico y auditoría
// ──────────────────────────────────────────────────────────────────────────────

// Cada movimiento confirmado queda en el historial con su par previo/resultante
// encadenado al anterior.
func TestRegisterMovement_HistorialEncadenado(t *testing.T) {
	env := newMovementEnv(t)

	_, err := env.register(t, entity.MovementTypeEntrada, 5) // 10 → 15
	require.NoError(t, err)
	_, err = env.register(t, entity.MovementTypeSalida, 3) // 15 → 12
	require.NoError(t, err)
	_, err = env.register(t, entity.MovementTypeAjuste, 20) // 12 → 20
	require.NoError(t, err)

	movs, err := env.movements.ListByItem(env.item.ID)
	require.NoError(t, err)
	require.Len(t, movs, 3)

	assert.Equal(t, 10, movs[0].PreviousQuantity)
	assert.Equal(t, 15, movs[0].NewQuantity)
	assert.Equal(t, 15, movs[1].PreviousQuantity)
	assert.Equal(t, 12, movs[1].NewQuantity)
	assert.Equal(t, 12, movs[2].PreviousQuantity)
	assert.Equal(t, 20, movs[2].NewQuantity)

	assert.Equal(t, 20, env.currentQuantity(t))
}

// Un movimiento confirmado produce exactamente una entrada de auditoría.
func TestRegisterMovement_GeneraAuditoria(t *testing.T) {
	env := newMovementEnv(t)

	result, err := env.register(t, entity.MovementTypeEntrada, 2)
	require.NoError(t, err)

	logs, err := env.audits.List()
	require.NoError(t, err)
	require.Len(t, logs, 1)

	assert.Equal(t, "user-1", logs[0].UserID)
	assert.Equal(t, "create", logs[0].Action)
	assert.Equal(t, "movement", logs[0].Entity)
	assert.Equal(t, result.Movement.ID, logs[0].EntityID)
}

// La ubicación del movimiento cae a la del artículo cuando no se indica.
func TestRegisterMovement_UbicacionPorDefecto(t *testing.T) {
	env := newMovementEnv(t)

	result, err := env.register(t, entity.MovementTypeEntrada, 1)
	require.NoError(t, err)
	assert.Equal(t, "Almacén T-1", result.Movement.Location)

	result, err = env.uc.RegisterMovement(inventory.MovementInput{
		ItemID:      env.item.ID,
		Type:        entity.MovementTypeSalida,
		Quantity:    1,
		Location:    "Muelle 3",
		Responsible: "user-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Muelle 3", result.Movement.Location)
}
