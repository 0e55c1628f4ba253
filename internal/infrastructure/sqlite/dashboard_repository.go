package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el dashboard.
type DashboardRepo struct {
	db *sql.DB
}

func NewDashboardRepository(db *sql.DB) *DashboardRepo {
	return &DashboardRepo{db: db}
}

func (r *DashboardRepo) CountCustomers(ctx context.Context) (int64, error) {
	return r.count(ctx, builder.Select("COUNT(*)").From("customers"))
}

// GetSalesTotals suma en centavos enteros, luego se reescala a 2 decimales.
func (r *DashboardRepo) GetSalesTotals(ctx context.Context) (repository.SalesTotals, error) {
	query, args, err := builder.Select("COUNT(*)", "COALESCE(SUM(amount_cents), 0)").From("sales").ToSql()
	if err != nil {
		return repository.SalesTotals{}, fmt.Errorf("dashboard.GetSalesTotals: %w", err)
	}
	var count, cents int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count, &cents); err != nil {
		return repository.SalesTotals{}, fmt.Errorf("dashboard.GetSalesTotals: %w", err)
	}
	return repository.SalesTotals{Count: count, Amount: fromCents(cents)}, nil
}

func (r *DashboardRepo) CountSalesByStatus(ctx context.Context, status entity.SaleStatus) (int64, error) {
	return r.count(ctx, builder.Select("COUNT(*)").From("sales").Where(sq.Eq{"status": string(status)}))
}

func (r *DashboardRepo) CountInteractions(ctx context.Context) (int64, error) {
	return r.count(ctx, builder.Select("COUNT(*)").From("interactions"))
}

func (r *DashboardRepo) GetRecentInteractions(ctx context.Context, limit int) ([]*entity.Interaction, error) {
	if limit <= 0 {
		return []*entity.Interaction{}, nil
	}
	list, err := listInteractions(ctx, r.db, builder.Select(interactionColumns...).From("interactions").
		OrderBy("date DESC", "id DESC").
		Limit(uint64(limit)))
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetRecentInteractions: %w", err)
	}
	return list, nil
}

func (r *DashboardRepo) count(ctx context.Context, b sq.SelectBuilder) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("dashboard count: %w", err)
	}
	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard count: %w", err)
	}
	return n, nil
}
