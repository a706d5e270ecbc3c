// Package localdb implementa el Record Store sobre una frontera clave-valor:
// el dataset completo se serializa como un solo blob JSON bajo una clave
// conocida, al estilo del sistema legado. Cada ciclo leer-modificar-escribir
// es una sección crítica protegida por mutex, de modo que el motor de
// movimientos observa atomicidad aun con handlers concurrentes.
package localdb

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// DatasetKey clave única bajo la que se persiste el dataset completo.
const DatasetKey = "almacen_db"

// dataset estructura completa persistida como un solo blob.
type dataset struct {
	Users          []*entity.User          `json:"users"`
	InventoryItems []*entity.InventoryItem `json:"inventoryItems"`
	Movements      []*entity.Movement      `json:"movements"`
	Suppliers      []*entity.Supplier      `json:"suppliers"`
	PurchaseOrders []*entity.PurchaseOrder `json:"purchaseOrders"`
	AuditLogs      []*entity.AuditLog      `json:"auditLogs"`
}

// Store dueño exclusivo del dataset persistido. Los repositorios y el motor
// de movimientos leen y mutan únicamente a través de View/Update.
type Store struct {
	kv  KV
	mu  sync.Mutex
	log *logger.Logger
}

// NewStore construye el store y siembra el dataset inicial si la clave
// no existe todavía (un admin, un bodeguero y un inventario de muestra).
func NewStore(kv KV, log *logger.Logger) (*Store, error) {
	s := &Store{kv: kv, log: log}
	_, ok, err := kv.Get(DatasetKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if !ok {
		seed, err := seedDataset()
		if err != nil {
			return nil, err
		}
		if err := s.save(seed); err != nil {
			return nil, err
		}
		log.Info().Int("users", len(seed.Users)).Int("items", len(seed.InventoryItems)).
			Msg("dataset inicial sembrado")
	}
	return s, nil
}

func (s *Store) load() (*dataset, error) {
	raw, ok, err := s.kv.Get(DatasetKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: dataset ausente", domain.ErrStorage)
	}
	var d dataset
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return &d, nil
}

func (s *Store) save(d *dataset) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if err := s.kv.Set(DatasetKey, raw); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}

// View ejecuta fn sobre una instantánea del dataset, bajo el mutex del store.
func (s *Store) View(fn func(d *dataset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.load()
	if err != nil {
		return err
	}
	return fn(d)
}

// Update ejecuta fn dentro de la sección crítica leer-modificar-escribir.
// Persiste solo si fn retorna nil; cualquier error descarta la mutación
// completa, lo que da atomicidad observable a operaciones compuestas.
func (s *Store) Update(fn func(d *dataset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(d); err != nil {
		return err
	}
	return s.save(d)
}

// RunTx implementa inventory.TxRunner: ejecuta fn con repositorios atados a
// la misma sección crítica, para que item y movimiento se apliquen juntos
// o no se aplique ninguno.
func (s *Store) RunTx(fn func(items repository.ItemRepository, movements repository.MovementRepository) error) error {
	return s.Update(func(d *dataset) error {
		return fn(&txItemRepository{d: d}, &txMovementRepository{d: d})
	})
}

// NewID genera un identificador único para un registro nuevo.
func NewID() string {
	return uuid.New().String()
}

// seedDataset replica los datos de arranque del sistema legado, con las
// contraseñas ya pasadas por bcrypt (admin123 / bodeguero123).
func seedDataset() (*dataset, error) {
	now := time.Now()
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	bodegueroHash, err := bcrypt.GenerateFromPassword([]byte("bodeguero123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &dataset{
		Users: []*entity.User{
			{
				ID: NewID(), Username: "admin", Email: "admin@inventory.com",
				PasswordHash: string(adminHash), Role: "admin", Status: entity.StatusActive,
				CreatedAt: now, UpdatedAt: now,
			},
			{
				ID: NewID(), Username: "bodeguero1", Email: "bodeguero@inventory.com",
				PasswordHash: string(bodegueroHash), Role: "bodeguero", Status: entity.StatusActive,
				CreatedAt: now, UpdatedAt: now,
			},
		},
		InventoryItems: []*entity.InventoryItem{
			{
				ID: NewID(), SKU: "SKU001", Name: "Laptop Dell Inspiron", Category: "Electrónicos",
				Quantity: 15, Unit: "unidad", Price: decimal.NewFromInt(800),
				Location: "Almacén A-1", MinStockLevel: 5, CreatedAt: now, UpdatedAt: now,
			},
			{
				ID: NewID(), SKU: "SKU002", Name: "Mouse Inalámbrico", Category: "Accesorios",
				Quantity: 50, Unit: "unidad", Price: decimal.NewFromInt(25),
				Location: "Almacén B-2", MinStockLevel: 10, CreatedAt: now, UpdatedAt: now,
			},
			{
				ID: NewID(), SKU: "SKU003", Name: "Papel A4", Category: "Oficina",
				Quantity: 3, Unit: "paquete", Price: decimal.NewFromInt(5),
				Location: "Almacén C-1", MinStockLevel: 20, CreatedAt: now, UpdatedAt: now,
			},
		},
		Movements: []*entity.Movement{},
		Suppliers: []*entity.Supplier{
			{
				ID: NewID(), Name: "TechSupply Corp", Contact: "Juan Pérez",
				Email: "contacto@techsupply.com", Phone: "+1234567890",
				Address: "Av. Principal 123, Ciudad", CreatedAt: now, UpdatedAt: now,
			},
		},
		PurchaseOrders: []*entity.PurchaseOrder{},
		AuditLogs:      []*entity.AuditLog{},
	}, nil
}
