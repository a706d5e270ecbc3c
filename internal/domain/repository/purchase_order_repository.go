package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para PurchaseOrder (DIP).
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	List() ([]*entity.PurchaseOrder, error)
	Update(order *entity.PurchaseOrder) error
	Delete(id string) (bool, error)
}
