package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

var saleColumns = []string{"id", "customer_id", "product_service", "amount_cents", "date", "status", "created_at"}

// SaleRepo implementación de SaleRepository (usable con db o tx).
type SaleRepo struct {
	q Querier
}

func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query, args, err := builder.
		Insert("sales").
		Columns("customer_id", "product_service", "amount_cents", "date", "status", "created_at").
		Values(sale.CustomerID, sale.ProductService, toCents(sale.Amount), toMicros(sale.Date), string(sale.Status), toMicros(sale.CreatedAt)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert sale: %w", err)
	}
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert sale: %w", domain.ErrReferentialIntegrity)
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert sale id: %w", err)
	}
	sale.ID = id
	return nil
}

func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	query, args, err := builder.Select(saleColumns...).From("sales").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get sale: %w", err)
	}
	s, err := scanSale(r.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	return r.list(ctx, builder.Select(saleColumns...).From("sales").OrderBy("id"))
}

func (r *SaleRepo) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Sale, error) {
	return r.list(ctx, builder.Select(saleColumns...).From("sales").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("id"))
}

func (r *SaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	query, args, err := builder.
		Update("sales").
		SetMap(map[string]interface{}{
			"product_service": sale.ProductService,
			"amount_cents":    toCents(sale.Amount),
			"date":            toMicros(sale.Date),
			"status":          string(sale.Status),
		}).
		Where(sq.Eq{"id": sale.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update sale: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) list(ctx context.Context, b sq.SelectBuilder) ([]*entity.Sale, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list sales: %w", err)
	}
	rows, err := r.q.QueryContext(ctx, query, args...)
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

func scanSale(row rowScanner) (*entity.Sale, error) {
	var (
		s                      entity.Sale
		cents, date, createdAt int64
		status                 string
	)
	if err := row.Scan(&s.ID, &s.CustomerID, &s.ProductService, &cents, &date, &status, &createdAt); err != nil {
		return nil, err
	}
	s.Amount = fromCents(cents)
	s.Date = fromMicros(date)
	st, err := entity.ParseSaleStatus(status)
	if err != nil {
		return nil, err
	}
	s.Status = st
	s.CreatedAt = fromMicros(createdAt)
	return &s, nil
}
