package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ItemUseCase CRUD de artículos de inventario. Los cambios de existencia
// normales van por el motor de movimientos; la edición directa de Quantity
// aquí queda fuera de la garantía de no-negatividad del motor.
type ItemUseCase struct {
	repo     repository.ItemRepository
	recorder *audit.Recorder
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, recorder *audit.Recorder) *ItemUseCase {
	return &ItemUseCase{repo: repo, recorder: recorder}
}

// Create crea un artículo. Devuelve ErrDuplicate si el SKU ya existe.
func (uc *ItemUseCase) Create(actorID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.SKU == "" || in.Name == "" || in.Quantity < 0 || in.MinStockLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	item := &entity.InventoryItem{
		SKU:           in.SKU,
		Name:          in.Name,
		Category:      in.Category,
		Quantity:      in.Quantity,
		Unit:          in.Unit,
		Price:         in.Price,
		Location:      in.Location,
		MinStockLevel: in.MinStockLevel,
		ImageURL:      in.ImageURL,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	uc.recorder.BestEffort(actorID, "create", "inventory_item", item.ID,
		fmt.Sprintf("Artículo creado: %s (%s)", item.Name, item.SKU))
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo por ID; (nil, nil) si no existe.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil || item == nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List devuelve todos los artículos.
func (uc *ItemUseCase) List() ([]*dto.ItemResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out, nil
}

// Update aplica cambios parciales a un artículo.
func (uc *ItemUseCase) Update(actorID, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.Price = *in.Price
	}
	if in.Location != nil {
		item.Location = *in.Location
	}
	if in.MinStockLevel != nil {
		if *in.MinStockLevel < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.MinStockLevel = *in.MinStockLevel
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	uc.recorder.BestEffort(actorID, "update", "inventory_item", item.ID,
		fmt.Sprintf("Artículo actualizado: %s (%s)", item.Name, item.SKU))
	return toItemResponse(item), nil
}

// Delete elimina en firme; false si el id no existe.
func (uc *ItemUseCase) Delete(actorID, id string) (bool, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	if item == nil {
		return false, nil
	}
	deleted, err := uc.repo.Delete(id)
	if err != nil || !deleted {
		return deleted, err
	}
	uc.recorder.BestEffort(actorID, "delete", "inventory_item", id,
		fmt.Sprintf("Artículo eliminado: %s (%s)", item.Name, item.SKU))
	return true, nil
}

func toItemResponse(i *entity.InventoryItem) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:            i.ID,
		SKU:           i.SKU,
		Name:          i.Name,
		Category:      i.Category,
		Quantity:      i.Quantity,
		Unit:          i.Unit,
		Price:         i.Price,
		Location:      i.Location,
		MinStockLevel: i.MinStockLevel,
		ImageURL:      i.ImageURL,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}
