package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// GetByID devuelve (nil, nil) si el cliente no existe.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
}
