package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el dashboard.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador del dashboard.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

func (r *DashboardRepo) CountCustomers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountCustomers: %w", err)
	}
	return n, nil
}

// GetSalesTotals cantidad y suma exacta (NUMERIC) de todas las ventas, sin filtrar por estado.
func (r *DashboardRepo) GetSalesTotals(ctx context.Context) (repository.SalesTotals, error) {
	var t repository.SalesTotals
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM sales`).Scan(&t.Count, &t.Amount)
	if err != nil {
		return repository.SalesTotals{}, fmt.Errorf("dashboard.GetSalesTotals: %w", err)
	}
	return t, nil
}

func (r *DashboardRepo) CountSalesByStatus(ctx context.Context, status entity.SaleStatus) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM sales WHERE status = $1::sale_status`, string(status)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountSalesByStatus(%s): %w", status, err)
	}
	return n, nil
}

func (r *DashboardRepo) CountInteractions(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM interactions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountInteractions: %w", err)
	}
	return n, nil
}

// GetRecentInteractions las `limit` interacciones más recientes por fecha.
func (r *DashboardRepo) GetRecentInteractions(ctx context.Context, limit int) ([]*entity.Interaction, error) {
	list, err := listInteractions(ctx, r.pool, `
		SELECT `+interactionColumns+` FROM interactions
		ORDER BY date DESC, id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetRecentInteractions: %w", err)
	}
	return list, nil
}
