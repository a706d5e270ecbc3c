package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// PurchaseOrderUseCase órdenes de compra a proveedores.
type PurchaseOrderUseCase struct {
	repo         repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	itemRepo     repository.ItemRepository
	recorder     *audit.Recorder
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	repo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	itemRepo repository.ItemRepository,
	recorder *audit.Recorder,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{repo: repo, supplierRepo: supplierRepo, itemRepo: itemRepo, recorder: recorder}
}

// Create crea una orden en estado pending. El total por línea y el total de
// la orden se calculan aquí, no se aceptan del cliente.
func (uc *PurchaseOrderUseCase) Create(actorID string, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	total := decimal.Zero
	lines := make([]entity.PurchaseOrderItem, 0, len(in.Items))
	for _, l := range in.Items {
		if l.Quantity <= 0 || l.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item, err := uc.itemRepo.GetByID(l.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.ErrNotFound
		}
		lineTotal := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
		total = total.Add(lineTotal)
		lines = append(lines, entity.PurchaseOrderItem{
			ItemID:    l.ItemID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Total:     lineTotal,
		})
	}

	orderDate := in.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}
	order := &entity.PurchaseOrder{
		SupplierID:   in.SupplierID,
		Status:       entity.POStatusPending,
		OrderDate:    orderDate,
		ExpectedDate: in.ExpectedDate,
		Total:        total,
		Items:        lines,
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	uc.recorder.BestEffort(actorID, "create", "purchase_order", order.ID,
		fmt.Sprintf("Orden de compra creada para %s, total %s", supplier.Name, total.String()))
	return toPurchaseOrderResponse(order), nil
}

// GetByID obtiene una orden por ID; (nil, nil) si no existe.
func (uc *PurchaseOrderUseCase) GetByID(id string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil || order == nil {
		return nil, err
	}
	return toPurchaseOrderResponse(order), nil
}

// List devuelve todas las órdenes.
func (uc *PurchaseOrderUseCase) List() ([]*dto.PurchaseOrderResponse, error) {
	orders, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toPurchaseOrderResponse(o))
	}
	return out, nil
}

// Update cambia estado y fechas de una orden.
func (uc *PurchaseOrderUseCase) Update(actorID, id string, in dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.POStatusPending, entity.POStatusApproved, entity.POStatusReceived, entity.POStatusCancelled:
			order.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.ExpectedDate != nil {
		order.ExpectedDate = *in.ExpectedDate
	}
	if in.ReceivedDate != nil {
		order.ReceivedDate = in.ReceivedDate
	}
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	uc.recorder.BestEffort(actorID, "update", "purchase_order", order.ID,
		fmt.Sprintf("Orden de compra actualizada: estado %s", order.Status))
	return toPurchaseOrderResponse(order), nil
}

// Delete elimina en firme; false si el id no existe.
func (uc *PurchaseOrderUseCase) Delete(actorID, id string) (bool, error) {
	deleted, err := uc.repo.Delete(id)
	if err != nil || !deleted {
		return deleted, err
	}
	uc.recorder.BestEffort(actorID, "delete", "purchase_order", id, "Orden de compra eliminada")
	return true, nil
}

func toPurchaseOrderResponse(o *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	items := make([]dto.PurchaseOrderItemDTO, 0, len(o.Items))
	for _, l := range o.Items {
		items = append(items, dto.PurchaseOrderItemDTO{
			ItemID:    l.ItemID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Total:     l.Total,
		})
	}
	return &dto.PurchaseOrderResponse{
		ID:           o.ID,
		SupplierID:   o.SupplierID,
		Status:       o.Status,
		OrderDate:    o.OrderDate,
		ExpectedDate: o.ExpectedDate,
		ReceivedDate: o.ReceivedDate,
		Total:        o.Total,
		Items:        items,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
