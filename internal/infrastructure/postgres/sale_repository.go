package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, customer_id, product_service, amount, date, status::text, created_at`

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta y asigna sale.ID.
// Un customer_id inexistente se reporta como ErrReferentialIntegrity.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (customer_id, product_service, amount, date, status, created_at)
		VALUES ($1, $2, $3, $4, $5::sale_status, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		sale.CustomerID, sale.ProductService, sale.Amount, sale.Date, string(sale.Status), sale.CreatedAt,
	).Scan(&sale.ID)
	if err != nil {
		return mapWriteError("insert sale", err)
	}
	return nil
}

// GetByID obtiene una venta. Devuelve (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// List todas las ventas por id ascendente.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	return r.list(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY id`)
}

// ListByCustomer ventas del cliente por id ascendente.
func (r *SaleRepo) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Sale, error) {
	return r.list(ctx, `SELECT `+saleColumns+` FROM sales WHERE customer_id = $1 ORDER BY id`, customerID)
}

// Update reescribe los campos editables; customer_id y created_at no cambian.
func (r *SaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	query := `
		UPDATE sales SET product_service = $2, amount = $3, date = $4, status = $5::sale_status
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.ProductService, sale.Amount, sale.Date, string(sale.Status),
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	list := []*entity.Sale{}
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var (
		s      entity.Sale
		status string
	)
	if err := row.Scan(&s.ID, &s.CustomerID, &s.ProductService, &s.Amount, &s.Date, &status, &s.CreatedAt); err != nil {
		return nil, err
	}
	st, err := entity.ParseSaleStatus(status)
	if err != nil {
		return nil, err
	}
	s.Status = st
	s.Date = s.Date.UTC()
	s.CreatedAt = s.CreatedAt.UTC()
	return &s, nil
}
