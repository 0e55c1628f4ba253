// Package analytics contiene los casos de uso de reportes agregados
// (Dashboard del CRM).
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

// RecentInteractionsLimit número de interacciones en el widget del dashboard.
const RecentInteractionsLimit = 5

// DashboardUseCase genera la instantánea de clientes, ventas e interacciones.
//
// Fuente de datos: DashboardRepository (consultas read-only).
// No recorre las tablas en memoria; cada agregado lo resuelve la BD.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo}
}

// GetOverview construye el DashboardOverviewDTO.
//
// Consultas en paralelo:
//  1. CountCustomers                 → TotalCustomers
//  2. GetSalesTotals                 → TotalSales + TotalSalesAmount
//  3. CountSalesByStatus (x3)        → Pending / Completed / Cancelled
//  4. CountInteractions              → TotalInteractions
//  5. GetRecentInteractions(top 5)   → RecentInteractions
//
// Si cualquiera falla se devuelve el primer error y no hay resultado parcial.
func (uc *DashboardUseCase) GetOverview(ctx context.Context) (*dto.DashboardOverviewDTO, error) {
	var (
		totalCustomers    int64
		totals            repository.SalesTotals
		byStatus          = make([]int64, len(entity.SaleStatuses))
		totalInteractions int64
		recent            []*entity.Interaction
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := uc.dashboardRepo.CountCustomers(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: clientes: %w", err)
		}
		totalCustomers = n
		return nil
	})
	g.Go(func() error {
		t, err := uc.dashboardRepo.GetSalesTotals(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: totales de ventas: %w", err)
		}
		totals = t
		return nil
	})
	for i, status := range entity.SaleStatuses {
		g.Go(func() error {
			n, err := uc.dashboardRepo.CountSalesByStatus(gctx, status)
			if err != nil {
				return fmt.Errorf("dashboard: ventas %s: %w", status, err)
			}
			byStatus[i] = n
			return nil
		})
	}
	g.Go(func() error {
		n, err := uc.dashboardRepo.CountInteractions(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: interacciones: %w", err)
		}
		totalInteractions = n
		return nil
	})
	g.Go(func() error {
		list, err := uc.dashboardRepo.GetRecentInteractions(gctx, RecentInteractionsLimit)
		if err != nil {
			return fmt.Errorf("dashboard: interacciones recientes: %w", err)
		}
		recent = list
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.DashboardOverviewDTO{
		TotalCustomers:     totalCustomers,
		TotalSales:         totals.Count,
		TotalSalesAmount:   totals.Amount.Round(entity.AmountScale),
		PendingSales:       byStatus[0],
		CompletedSales:     byStatus[1],
		CancelledSales:     byStatus[2],
		TotalInteractions:  totalInteractions,
		RecentInteractions: dto.ToInteractionList(recent),
	}, nil
}
