package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
// Las listas se devuelven en orden de inserción (id ascendente).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	List(ctx context.Context) ([]*entity.Sale, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
}
