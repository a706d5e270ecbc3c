package localdb

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// KV frontera de persistencia durable: get/set de un blob serializado
// bajo una clave conocida. El Store guarda el dataset completo bajo una
// sola clave.
type KV interface {
	// Get devuelve el blob y true si la clave existe.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// FileKV persiste cada clave como un archivo JSON dentro de un directorio.
// La escritura es atómica (archivo temporal + rename).
type FileKV struct {
	dir string
}

// NewFileKV crea el directorio si no existe.
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localdb: crear directorio %s: %w", dir, err)
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get lee el blob de la clave; (nil, false, nil) si no existe.
func (f *FileKV) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("localdb: leer %s: %w", key, err)
	}
	return data, true, nil
}

// Set escribe el blob de forma atómica.
func (f *FileKV) Set(key string, value []byte) error {
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("localdb: escribir %s: %w", key, err)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		return fmt.Errorf("localdb: renombrar %s: %w", key, err)
	}
	return nil
}

// MemoryKV implementación en memoria para tests.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryKV construye un KV vacío en memoria.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

// Get devuelve una copia del blob.
func (m *MemoryKV) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set guarda una copia del blob.
func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}
