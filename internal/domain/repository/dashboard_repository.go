package repository

//go:generate mockgen -source=dashboard_repository.go -destination=mocks/mock_dashboard_repository.go -package=mocks

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SalesTotals resultado crudo del conteo y la suma de ventas.
type SalesTotals struct {
	Count  int64
	Amount decimal.Decimal // suma exacta de todos los montos (todos los estados)
}

// DashboardRepository define las consultas de lectura del Dashboard.
// Las implementaciones son read-only (no modifican datos) y cada método es
// una consulta independiente: no se garantiza un snapshot común entre ellas.
type DashboardRepository interface {
	// CountCustomers devuelve el total de clientes.
	CountCustomers(ctx context.Context) (int64, error)

	// GetSalesTotals devuelve número de ventas y suma de montos.
	// Usa COALESCE para devolver cero si no hay ventas.
	GetSalesTotals(ctx context.Context) (SalesTotals, error)

	// CountSalesByStatus cuenta las ventas en el estado indicado.
	CountSalesByStatus(ctx context.Context, status entity.SaleStatus) (int64, error)

	// CountInteractions devuelve el total de interacciones.
	CountInteractions(ctx context.Context) (int64, error)

	// GetRecentInteractions devuelve las `limit` interacciones más recientes
	// ordenadas por fecha descendente.
	GetRecentInteractions(ctx context.Context, limit int) ([]*entity.Interaction, error)
}
