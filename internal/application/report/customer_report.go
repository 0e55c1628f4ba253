// Package report genera el estado de cuenta de un cliente (ventas e interacciones) en PDF.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CustomerLoader carga el cliente con sus relaciones; (nil, nil) si no existe.
type CustomerLoader interface {
	LoadWithRelations(ctx context.Context, id int64) (*entity.CustomerWithRelations, error)
}

// CustomerReportGenerator renderiza el reporte (implementado con Maroto en infrastructure/pdf).
type CustomerReportGenerator interface {
	GenerateCustomerReport(ctx context.Context, data *CustomerReportData) ([]byte, error)
}

// StatusSubtotal cantidad y monto de ventas en un estado.
type StatusSubtotal struct {
	Status entity.SaleStatus
	Count  int
	Amount decimal.Decimal
}

// CustomerReportData todo lo que el generador necesita, ya calculado.
type CustomerReportData struct {
	Customer    *entity.CustomerWithRelations
	Subtotals   []StatusSubtotal // uno por estado, en el orden de entity.SaleStatuses
	GrandTotal  decimal.Decimal
	GeneratedAt time.Time
}

// CustomerReportUseCase arma los datos del reporte y delega el render.
type CustomerReportUseCase struct {
	loader    CustomerLoader
	generator CustomerReportGenerator
	now       func() time.Time
}

func NewCustomerReportUseCase(loader CustomerLoader, generator CustomerReportGenerator) *CustomerReportUseCase {
	return &CustomerReportUseCase{loader: loader, generator: generator, now: time.Now}
}

// Generate devuelve los bytes del PDF. ErrNotFound si el cliente no existe.
func (uc *CustomerReportUseCase) Generate(ctx context.Context, customerID int64) ([]byte, error) {
	customer, err := uc.loader.LoadWithRelations(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("cliente %d: %w", customerID, domain.ErrNotFound)
	}
	data := BuildCustomerReportData(customer, uc.now())
	doc, err := uc.generator.GenerateCustomerReport(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("reporte del cliente %d: %w", customerID, err)
	}
	return doc, nil
}

// BuildCustomerReportData calcula subtotales por estado y el total general.
func BuildCustomerReportData(customer *entity.CustomerWithRelations, generatedAt time.Time) *CustomerReportData {
	subtotals := make([]StatusSubtotal, len(entity.SaleStatuses))
	index := make(map[entity.SaleStatus]int, len(entity.SaleStatuses))
	for i, st := range entity.SaleStatuses {
		subtotals[i] = StatusSubtotal{Status: st, Amount: decimal.Zero}
		index[st] = i
	}

	total := decimal.Zero
	for _, s := range customer.Sales {
		total = total.Add(s.Amount)
		if i, ok := index[s.Status]; ok {
			subtotals[i].Count++
			subtotals[i].Amount = subtotals[i].Amount.Add(s.Amount)
		}
	}

	return &CustomerReportData{
		Customer:    customer,
		Subtotals:   subtotals,
		GrandTotal:  total.Round(entity.AmountScale),
		GeneratedAt: generatedAt.UTC(),
	}
}
