package inventory

import "github.com/jhoicas/almacen-api/internal/domain/repository"

// TxRunner ejecuta fn dentro de la sección crítica del almacén, con
// repositorios atados a ese mismo ciclo leer-modificar-escribir.
// Garantiza que artículo y movimiento se persistan juntos o ninguno:
// si fn retorna error, nada de lo mutado se vuelve observable.
type TxRunner interface {
	RunTx(fn func(items repository.ItemRepository, movements repository.MovementRepository) error) error
}
