// Package password define el comparador de contraseñas como pieza enchufable.
// El sistema legado comparaba texto plano; aquí el predeterminado es bcrypt y
// la comparación plana queda solo para cuentas aún no migradas.
package password

import "golang.org/x/crypto/bcrypt"

// Comparator verifica una contraseña contra el valor almacenado.
type Comparator interface {
	Compare(stored, candidate string) bool
}

// Hasher produce el valor a almacenar para una contraseña nueva.
type Hasher interface {
	Hash(plain string) (string, error)
}

// Bcrypt comparador y hasher sobre golang.org/x/crypto/bcrypt.
type Bcrypt struct {
	Cost int // 0 usa bcrypt.DefaultCost
}

// Compare retorna true si candidate corresponde al hash almacenado.
func (b Bcrypt) Compare(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}

// Hash genera el hash bcrypt de la contraseña.
func (b Bcrypt) Hash(plain string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Plain comparación por igualdad de texto plano, conservada únicamente para
// datos migrados del sistema legado. No usar para cuentas nuevas.
type Plain struct{}

// Compare igualdad exacta.
func (Plain) Compare(stored, candidate string) bool {
	return stored == candidate
}
