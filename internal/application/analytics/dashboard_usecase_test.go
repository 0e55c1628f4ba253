package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jhoicas/crm-api/internal/application/analytics"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/application/validation"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/internal/domain/repository/mocks"
	"github.com/jhoicas/crm-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/crm-api/internal/infrastructure/storage"
)

// ──────────────────────────────────────────────────────────────────────────────
// Con repositorio mock
// ──────────────────────────────────────────────────────────────────────────────

func TestGetOverview_MapeaConsultas(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDashboardRepository(ctrl)

	recent := []*entity.Interaction{
		{ID: 9, CustomerID: 1, Type: entity.InteractionTypeCall, Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), Summary: "b"},
		{ID: 4, CustomerID: 1, Type: entity.InteractionTypeEmail, Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Summary: "a"},
	}

	repo.EXPECT().CountCustomers(gomock.Any()).Return(int64(3), nil)
	repo.EXPECT().GetSalesTotals(gomock.Any()).Return(repository.SalesTotals{
		Count:  int64(6),
		Amount: decimal.RequireFromString("1000.005"),
	}, nil)
	repo.EXPECT().CountSalesByStatus(gomock.Any(), entity.SaleStatusPending).Return(int64(1), nil)
	repo.EXPECT().CountSalesByStatus(gomock.Any(), entity.SaleStatusCompleted).Return(int64(2), nil)
	repo.EXPECT().CountSalesByStatus(gomock.Any(), entity.SaleStatusCancelled).Return(int64(3), nil)
	repo.EXPECT().CountInteractions(gomock.Any()).Return(int64(2), nil)
	repo.EXPECT().GetRecentInteractions(gomock.Any(), analytics.RecentInteractionsLimit).Return(recent, nil)

	got, err := analytics.NewDashboardUseCase(repo).GetOverview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), got.TotalCustomers)
	assert.Equal(t, int64(6), got.TotalSales)
	assert.Equal(t, "1000.01", got.TotalSalesAmount.StringFixed(2))
	assert.Equal(t, int64(1), got.PendingSales)
	assert.Equal(t, int64(2), got.CompletedSales)
	assert.Equal(t, int64(3), got.CancelledSales)
	assert.Equal(t, int64(2), got.TotalInteractions)
	require.Len(t, got.RecentInteractions, 2)
	assert.Equal(t, int64(9), got.RecentInteractions[0].ID)
}

func TestGetOverview_RecientesNilComoVacio(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDashboardRepository(ctrl)

	repo.EXPECT().CountCustomers(gomock.Any()).Return(int64(0), nil)
	repo.EXPECT().GetSalesTotals(gomock.Any()).Return(repository.SalesTotals{}, nil)
	repo.EXPECT().CountSalesByStatus(gomock.Any(), gomock.Any()).Return(int64(0), nil).Times(3)
	repo.EXPECT().CountInteractions(gomock.Any()).Return(int64(0), nil)
	repo.EXPECT().GetRecentInteractions(gomock.Any(), gomock.Any()).Return(nil, nil)

	got, err := analytics.NewDashboardUseCase(repo).GetOverview(context.Background())
	require.NoError(t, err)
	assert.True(t, got.TotalSalesAmount.IsZero())
	assert.NotNil(t, got.RecentInteractions)
	assert.Empty(t, got.RecentInteractions)
}

func TestGetOverview_PropagaErrorDeConsulta(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDashboardRepository(ctrl)
	boom := errors.New("conexión perdida")

	repo.EXPECT().CountCustomers(gomock.Any()).Return(int64(1), nil).AnyTimes()
	repo.EXPECT().GetSalesTotals(gomock.Any()).Return(repository.SalesTotals{}, boom)
	repo.EXPECT().CountSalesByStatus(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	repo.EXPECT().CountInteractions(gomock.Any()).Return(int64(0), nil).AnyTimes()
	repo.EXPECT().GetRecentInteractions(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	got, err := analytics.NewDashboardUseCase(repo).GetOverview(context.Background())
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "totales de ventas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Sobre SQLite en memoria
// ──────────────────────────────────────────────────────────────────────────────

type env struct {
	dashboard    *analytics.DashboardUseCase
	customers    *usecase.CustomerUseCase
	sales        *usecase.SaleUseCase
	interactions *usecase.InteractionUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, sqlite.MemoryPath)
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(ctx, db))
	s := storage.NewSQLite(db)
	t.Cleanup(s.Close)

	v := validation.New()
	return &env{
		dashboard:    analytics.NewDashboardUseCase(s.Dashboard),
		customers:    usecase.NewCustomerUseCase(s.Customers, s.Sales, s.Interactions, s.Tx, v),
		sales:        usecase.NewSaleUseCase(s.Sales, s.Tx, v),
		interactions: usecase.NewInteractionUseCase(s.Interactions, s.Tx, v),
	}
}

func (e *env) customer(t *testing.T) int64 {
	t.Helper()
	c, err := e.customers.Create(context.Background(), dto.CreateCustomerRequest{
		Name: "Ana", Email: "ana@acme.com", Phone: "555", Company: "Acme",
	})
	require.NoError(t, err)
	return c.ID
}

func TestGetOverview_StoreVacio(t *testing.T) {
	e := newEnv(t)

	got, err := e.dashboard.GetOverview(context.Background())
	require.NoError(t, err)
	assert.Zero(t, got.TotalCustomers)
	assert.Zero(t, got.TotalSales)
	assert.True(t, got.TotalSalesAmount.IsZero())
	assert.Zero(t, got.PendingSales)
	assert.Zero(t, got.CompletedSales)
	assert.Zero(t, got.CancelledSales)
	assert.Zero(t, got.TotalInteractions)
	assert.NotNil(t, got.RecentInteractions)
	assert.Empty(t, got.RecentInteractions)
}

func TestGetOverview_SumaExactaDeMontos(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	id := e.customer(t)

	statuses := []entity.SaleStatus{entity.SaleStatusPending, entity.SaleStatusCompleted, entity.SaleStatusCompleted}
	for i, amount := range []string{"100.50", "200.25", "150.75"} {
		_, err := e.sales.Create(ctx, dto.CreateSaleRequest{
			CustomerID:     id,
			ProductService: "Servicio",
			Amount:         decimal.RequireFromString(amount),
			Date:           dto.NewTimestamp(time.Date(2025, 1, i+1, 0, 0, 0, 0, time.UTC)),
			Status:         statuses[i],
		})
		require.NoError(t, err)
	}

	got, err := e.dashboard.GetOverview(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.TotalCustomers)
	assert.Equal(t, int64(3), got.TotalSales)
	assert.Equal(t, "451.50", got.TotalSalesAmount.StringFixed(2))
	assert.True(t, got.TotalSalesAmount.Equal(decimal.RequireFromString("451.50")))
	assert.Equal(t, int64(1), got.PendingSales)
	assert.Equal(t, int64(2), got.CompletedSales)
	assert.Zero(t, got.CancelledSales)
}

func TestGetOverview_CincoInteraccionesMasRecientes(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	id := e.customer(t)

	// Insertadas fuera de orden para que el orden dependa de la fecha, no del id.
	for _, day := range []int{3, 6, 1, 5, 2, 4} {
		_, err := e.interactions.Create(ctx, dto.CreateInteractionRequest{
			CustomerID: id,
			Type:       entity.InteractionTypeCall,
			Date:       dto.NewTimestamp(time.Date(2025, 7, day, 9, 0, 0, 0, time.UTC)),
			Summary:    "seguimiento",
		})
		require.NoError(t, err)
	}

	got, err := e.dashboard.GetOverview(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), got.TotalInteractions)
	require.Len(t, got.RecentInteractions, analytics.RecentInteractionsLimit)
	assert.Equal(t, 6, got.RecentInteractions[0].Date.Day())
	for i := 1; i < len(got.RecentInteractions); i++ {
		assert.True(t, got.RecentInteractions[i-1].Date.After(got.RecentInteractions[i].Date))
	}
	assert.Equal(t, 2, got.RecentInteractions[4].Date.Day())
}
