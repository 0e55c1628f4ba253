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

// CustomerUseCase casos de uso de clientes (incluye la vista con relaciones).
type CustomerUseCase struct {
	repo            repository.CustomerRepository
	saleRepo        repository.SaleRepository
	interactionRepo repository.InteractionRepository
	tx              TxRunner
	validator       *validation.Validator
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(
	repo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
	interactionRepo repository.InteractionRepository,
	tx TxRunner,
	validator *validation.Validator,
) *CustomerUseCase {
	return &CustomerUseCase{
		repo:            repo,
		saleRepo:        saleRepo,
		interactionRepo: interactionRepo,
		tx:              tx,
		validator:       validator,
	}
}

// Create crea un nuevo cliente. No se exige email único.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	customer := &entity.Customer{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		CreatedAt: now(),
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("crear cliente: %w", err)
	}
	return dto.ToCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe o si id <= 0.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	if id <= 0 {
		return nil, nil
	}
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente: %w", err)
	}
	return dto.ToCustomerResponse(customer), nil
}

// List lista todos los clientes en orden de inserción.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	return dto.ToCustomerList(list), nil
}

// Update aplica solo los campos enviados. CreatedAt nunca se modifica.
func (uc *CustomerUseCase) Update(ctx context.Context, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	var updated *entity.Customer
	err := uc.tx.Run(ctx, func(
		customerRepo repository.CustomerRepository,
		_ repository.SaleRepository,
		_ repository.InteractionRepository,
	) error {
		customer, err := lookupCustomer(ctx, customerRepo, in.ID)
		if err != nil {
			return err
		}
		if customer == nil {
			return fmt.Errorf("cliente %d: %w", in.ID, domain.ErrNotFound)
		}
		if in.Name != nil {
			customer.Name = *in.Name
		}
		if in.Email != nil {
			customer.Email = *in.Email
		}
		if in.Phone != nil {
			customer.Phone = *in.Phone
		}
		if in.Company != nil {
			customer.Company = *in.Company
		}
		if err := customerRepo.Update(ctx, customer); err != nil {
			return fmt.Errorf("actualizar cliente: %w", err)
		}
		updated = customer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToCustomerResponse(updated), nil
}

// GetWithRelations devuelve el cliente con todas sus ventas (id asc) e
// interacciones (fecha desc). Devuelve (nil, nil) si el cliente no existe.
func (uc *CustomerUseCase) GetWithRelations(ctx context.Context, id int64) (*dto.CustomerWithRelationsResponse, error) {
	withRel, err := uc.loadWithRelations(ctx, id)
	if err != nil || withRel == nil {
		return nil, err
	}
	return &dto.CustomerWithRelationsResponse{
		CustomerResponse: *dto.ToCustomerResponse(&withRel.Customer),
		Sales:            dto.ToSaleList(withRel.Sales),
		Interactions:     dto.ToInteractionList(withRel.Interactions),
	}, nil
}

// LoadWithRelations igual que GetWithRelations pero devuelve las entidades
// (lo usan los reportes).
func (uc *CustomerUseCase) LoadWithRelations(ctx context.Context, id int64) (*entity.CustomerWithRelations, error) {
	return uc.loadWithRelations(ctx, id)
}

func (uc *CustomerUseCase) loadWithRelations(ctx context.Context, id int64) (*entity.CustomerWithRelations, error) {
	customer, err := lookupCustomer(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	sales, err := uc.saleRepo.ListByCustomer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ventas del cliente %d: %w", id, err)
	}
	interactions, err := uc.interactionRepo.ListByCustomer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("interacciones del cliente %d: %w", id, err)
	}
	if sales == nil {
		sales = []*entity.Sale{}
	}
	if interactions == nil {
		interactions = []*entity.Interaction{}
	}
	return &entity.CustomerWithRelations{
		Customer:     *customer,
		Sales:        sales,
		Interactions: interactions,
	}, nil
}

// lookupCustomer trata id <= 0 como inexistente sin consultar la BD.
func lookupCustomer(ctx context.Context, repo repository.CustomerRepository, id int64) (*entity.Customer, error) {
	if id <= 0 {
		return nil, nil
	}
	customer, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente: %w", err)
	}
	return customer, nil
}

// requireCustomer verifica que el cliente exista antes de insertar una fila hija.
func requireCustomer(ctx context.Context, repo repository.CustomerRepository, id int64) error {
	if id <= 0 {
		return fmt.Errorf("cliente %d: %w", id, domain.ErrReferentialIntegrity)
	}
	ok, err := repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("verificar cliente: %w", err)
	}
	if !ok {
		return fmt.Errorf("cliente %d: %w", id, domain.ErrReferentialIntegrity)
	}
	return nil
}
