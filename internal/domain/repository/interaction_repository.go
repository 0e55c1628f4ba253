package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// InteractionRepository define el puerto de persistencia para Interaction.
type InteractionRepository interface {
	Create(ctx context.Context, interaction *entity.Interaction) error
	GetByID(ctx context.Context, id int64) (*entity.Interaction, error)
	List(ctx context.Context) ([]*entity.Interaction, error)
	// ListByCustomer ordena por fecha descendente (la más reciente primero).
	ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Interaction, error)
	Update(ctx context.Context, interaction *entity.Interaction) error
}
