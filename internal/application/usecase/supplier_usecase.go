package usecase

import (
	"fmt"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// SupplierUseCase CRUD de proveedores.
type SupplierUseCase struct {
	repo     repository.SupplierRepository
	recorder *audit.Recorder
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, recorder *audit.Recorder) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, recorder: recorder}
}

// Create crea un proveedor.
func (uc *SupplierUseCase) Create(actorID string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{
		Name:    in.Name,
		Contact: in.Contact,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	uc.recorder.BestEffort(actorID, "create", "supplier", supplier.ID,
		fmt.Sprintf("Proveedor creado: %s", supplier.Name))
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID; (nil, nil) si no existe.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil || supplier == nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List devuelve todos los proveedores.
func (uc *SupplierUseCase) List() ([]*dto.SupplierResponse, error) {
	suppliers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

// Update aplica cambios parciales a un proveedor.
func (uc *SupplierUseCase) Update(actorID, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.Contact != nil {
		supplier.Contact = *in.Contact
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	uc.recorder.BestEffort(actorID, "update", "supplier", supplier.ID,
		fmt.Sprintf("Proveedor actualizado: %s", supplier.Name))
	return toSupplierResponse(supplier), nil
}

// Delete elimina en firme; false si el id no existe.
func (uc *SupplierUseCase) Delete(actorID, id string) (bool, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	if supplier == nil {
		return false, nil
	}
	deleted, err := uc.repo.Delete(id)
	if err != nil || !deleted {
		return deleted, err
	}
	uc.recorder.BestEffort(actorID, "delete", "supplier", id,
		fmt.Sprintf("Proveedor eliminado: %s", supplier.Name))
	return true, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Contact:   s.Contact,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
