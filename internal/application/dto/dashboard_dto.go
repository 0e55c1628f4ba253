package dto

import "github.com/shopspring/decimal"

// DashboardOverviewDTO respuesta de GET /api/dashboard/overview.
// Instantánea de conteos y sumas sobre clientes, ventas e interacciones.
type DashboardOverviewDTO struct {
	TotalCustomers    int64           `json:"total_customers"`
	TotalSales        int64           `json:"total_sales"`
	TotalSalesAmount  decimal.Decimal `json:"total_sales_amount"` // suma exacta, todos los estados; 0 sin ventas
	PendingSales      int64           `json:"pending_sales"`
	CompletedSales    int64           `json:"completed_sales"`
	CancelledSales    int64           `json:"cancelled_sales"`
	TotalInteractions int64           `json:"total_interactions"`

	// Las 5 interacciones más recientes por fecha (desc). Nunca null.
	RecentInteractions []InteractionResponse `json:"recent_interactions"`
}
