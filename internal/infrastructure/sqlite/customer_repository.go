package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

var customerColumns = []string{"id", "name", "email", "phone", "company", "created_at"}

// CustomerRepo implementación de CustomerRepository (usable con db o tx).
type CustomerRepo struct {
	q Querier
}

func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query, args, err := builder.
		Insert("customers").
		Columns("name", "email", "phone", "company", "created_at").
		Values(customer.Name, customer.Email, customer.Phone, customer.Company, toMicros(customer.CreatedAt)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert customer: %w", err)
	}
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert customer id: %w", err)
	}
	customer.ID = id
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	query, args, err := builder.Select(customerColumns...).From("customers").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get customer: %w", err)
	}
	c, err := scanCustomer(r.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

func (r *CustomerRepo) Exists(ctx context.Context, id int64) (bool, error) {
	query, args, err := builder.Select("COUNT(*)").From("customers").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return false, fmt.Errorf("build customer exists: %w", err)
	}
	var n int64
	if err := r.q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return false, fmt.Errorf("customer exists: %w", err)
	}
	return n > 0, nil
}

// List por id ascendente.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	query, args, err := builder.Select(customerColumns...).From("customers").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list customers: %w", err)
	}
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	list := []*entity.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	query, args, err := builder.
		Update("customers").
		SetMap(map[string]interface{}{
			"name":    customer.Name,
			"email":   customer.Email,
			"phone":   customer.Phone,
			"company": customer.Company,
		}).
		Where(sq.Eq{"id": customer.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update customer: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (*entity.Customer, error) {
	var (
		c         entity.Customer
		createdAt int64
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &createdAt); err != nil {
		return nil, err
	}
	c.CreatedAt = fromMicros(createdAt)
	return &c, nil
}
