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

// SaleUseCase casos de uso de ventas.
type SaleUseCase struct {
	repo      repository.SaleRepository
	tx        TxRunner
	validator *validation.Validator
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, tx TxRunner, validator *validation.Validator) *SaleUseCase {
	return &SaleUseCase{repo: repo, tx: tx, validator: validator}
}

// Create registra una venta. El cliente debe existir; el estado por defecto es Pending.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.SaleStatusPending
	}
	sale := &entity.Sale{
		CustomerID:     in.CustomerID,
		ProductService: in.ProductService,
		Amount:         entity.NormalizeAmount(in.Amount),
		Date:           normalizeTime(in.Date.Time),
		Status:         status,
		CreatedAt:      now(),
	}
	err := uc.tx.Run(ctx, func(
		customerRepo repository.CustomerRepository,
		saleRepo repository.SaleRepository,
		_ repository.InteractionRepository,
	) error {
		if err := requireCustomer(ctx, customerRepo, in.CustomerID); err != nil {
			return err
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return fmt.Errorf("crear venta: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToSaleResponse(sale), nil
}

// GetByID obtiene una venta por ID. Devuelve (nil, nil) si no existe o si id <= 0.
func (uc *SaleUseCase) GetByID(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	if id <= 0 {
		return nil, nil
	}
	sale, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener venta: %w", err)
	}
	return dto.ToSaleResponse(sale), nil
}

func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}
	return dto.ToSaleList(list), nil
}

// ListByCustomer ventas de un cliente ordenadas por id ascendente. Cliente inexistente: lista vacía.
func (uc *SaleUseCase) ListByCustomer(ctx context.Context, customerID int64) ([]dto.SaleResponse, error) {
	if customerID <= 0 {
		return []dto.SaleResponse{}, nil
	}
	list, err := uc.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("ventas del cliente %d: %w", customerID, err)
	}
	return dto.ToSaleList(list), nil
}

// Update modifica los campos enviados. El cliente de la venta no se puede reasignar.
func (uc *SaleUseCase) Update(ctx context.Context, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	var updated *entity.Sale
	err := uc.tx.Run(ctx, func(
		_ repository.CustomerRepository,
		saleRepo repository.SaleRepository,
		_ repository.InteractionRepository,
	) error {
		if in.ID <= 0 {
			return fmt.Errorf("venta %d: %w", in.ID, domain.ErrNotFound)
		}
		sale, err := saleRepo.GetByID(ctx, in.ID)
		if err != nil {
			return fmt.Errorf("obtener venta: %w", err)
		}
		if sale == nil {
			return fmt.Errorf("venta %d: %w", in.ID, domain.ErrNotFound)
		}
		if in.ProductService != nil {
			sale.ProductService = *in.ProductService
		}
		if in.Amount != nil {
			sale.Amount = entity.NormalizeAmount(*in.Amount)
		}
		if in.Date != nil {
			sale.Date = normalizeTime(in.Date.Time)
		}
		if in.Status != nil {
			sale.Status = *in.Status
		}
		if err := saleRepo.Update(ctx, sale); err != nil {
			return fmt.Errorf("actualizar venta: %w", err)
		}
		updated = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToSaleResponse(updated), nil
}
