package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/validation"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// InteractionUseCase casos de uso de interacciones (llamadas, emails, reuniones).
type InteractionUseCase struct {
	repo      repository.InteractionRepository
	tx        TxRunner
	validator *validation.Validator
}

func NewInteractionUseCase(repo repository.InteractionRepository, tx TxRunner, validator *validation.Validator) *InteractionUseCase {
	return &InteractionUseCase{repo: repo, tx: tx, validator: validator}
}

// Create registra una interacción para un cliente existente.
func (uc *InteractionUseCase) Create(ctx context.Context, in dto.CreateInteractionRequest) (*dto.InteractionResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	interaction := &entity.Interaction{
		CustomerID: in.CustomerID,
		Type:       in.Type,
		Date:       normalizeTime(in.Date.Time),
		Summary:    in.Summary,
		CreatedAt:  now(),
	}
	err := uc.tx.Run(ctx, func(
		customerRepo repository.CustomerRepository,
		_ repository.SaleRepository,
		interactionRepo repository.InteractionRepository,
	) error {
		if err := requireCustomer(ctx, customerRepo, in.CustomerID); err != nil {
			return err
		}
		if err := interactionRepo.Create(ctx, interaction); err != nil {
			return fmt.Errorf("crear interacción: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToInteractionResponse(interaction), nil
}

// GetByID devuelve (nil, nil) si no existe o si id <= 0.
func (uc *InteractionUseCase) GetByID(ctx context.Context, id int64) (*dto.InteractionResponse, error) {
	if id <= 0 {
		return nil, nil
	}
	interaction, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener interacción: %w", err)
	}
	return dto.ToInteractionResponse(interaction), nil
}

func (uc *InteractionUseCase) List(ctx context.Context) ([]dto.InteractionResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar interacciones: %w", err)
	}
	return dto.ToInteractionList(list), nil
}

// ListByCustomer interacciones del cliente, la más reciente primero.
func (uc *InteractionUseCase) ListByCustomer(ctx context.Context, customerID int64) ([]dto.InteractionResponse, error) {
	if customerID <= 0 {
		return []dto.InteractionResponse{}, nil
	}
	list, err := uc.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("interacciones del cliente %d: %w", customerID, err)
	}
	return dto.ToInteractionList(list), nil
}

func (uc *InteractionUseCase) Update(ctx context.Context, in dto.UpdateInteractionRequest) (*dto.InteractionResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	var updated *entity.Interaction
	err := uc.tx.Run(ctx, func(
		_ repository.CustomerRepository,
		_ repository.SaleRepository,
		interactionRepo repository.InteractionRepository,
	) error {
		if in.ID <= 0 {
			return fmt.Errorf("interacción %d: %w", in.ID, domain.ErrNotFound)
		}
		interaction, err := interactionRepo.GetByID(ctx, in.ID)
		if err != nil {
			return fmt.Errorf("obtener interacción: %w", err)
		}
		if interaction == nil {
			return fmt.Errorf("interacción %d: %w", in.ID, domain.ErrNotFound)
		}
		if in.Type != nil {
			interaction.Type = *in.Type
		}
		if in.Date != nil {
			interaction.Date = normalizeTime(in.Date.Time)
		}
		if in.Summary != nil {
			interaction.Summary = *in.Summary
		}
		if err := interactionRepo.Update(ctx, interaction); err != nil {
			return fmt.Errorf("actualizar interacción: %w", err)
		}
		updated = interaction
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToInteractionResponse(updated), nil
}
