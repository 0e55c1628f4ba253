package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// La verificación de integridad referencial y la escritura ven el mismo estado.
// Si fn retorna error se hace rollback y el error se devuelve sin envolver.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		saleRepo repository.SaleRepository,
		interactionRepo repository.InteractionRepository,
	) error) error
}

// now devuelve la hora actual en UTC truncada a microsegundos (precisión de timestamptz).
func now() time.Time {
	return normalizeTime(time.Now())
}

func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
