package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/infrastructure/storage"
	"github.com/jhoicas/crm-api/pkg/logger"
)

type seedCustomer struct {
	name, email, phone, company string
}

type seedSale struct {
	customer int // índice en seedCustomers
	product  string
	amount   string
	day      int
	status   entity.SaleStatus
}

type seedInteraction struct {
	customer int
	kind     entity.InteractionType
	day      int
	summary  string
}

var seedCustomers = []seedCustomer{
	{"María González", "maria.gonzalez@andina.co", "+57 300 111 2233", "Andina Logística"},
	{"Carlos Ramírez", "carlos.ramirez@caribe.co", "+57 301 444 5566", "Caribe Foods"},
	{"Lucía Herrera", "lucia.herrera@pacifico.co", "+57 302 777 8899", "Pacífico Textiles"},
}

var seedSales = []seedSale{
	{0, "Licencia anual", "1200.00", 3, entity.SaleStatusCompleted},
	{0, "Soporte premium", "350.50", 10, entity.SaleStatusPending},
	{1, "Implementación", "4800.00", 5, entity.SaleStatusCompleted},
	{1, "Capacitación", "600.00", 12, entity.SaleStatusCancelled},
	{2, "Licencia anual", "1200.00", 15, entity.SaleStatusPending},
}

var seedInteractions = []seedInteraction{
	{0, entity.InteractionTypeCall, 1, "Llamada de descubrimiento"},
	{0, entity.InteractionTypeMeeting, 4, "Demo del producto"},
	{1, entity.InteractionTypeEmail, 2, "Envío de propuesta"},
	{1, entity.InteractionTypeCall, 6, "Seguimiento de la implementación"},
	{2, entity.InteractionTypeMeeting, 14, "Reunión de cierre"},
	{2, entity.InteractionTypeEmail, 16, "Confirmación de pedido"},
}

// seedBase fecha de referencia del dataset; los días se suman a ella.
var seedBase = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

// SeedResult ids creados por Seed.
type SeedResult struct {
	Customers    []int64
	Sales        []int64
	Interactions []int64
}

// seed inserta el dataset de demostración a través de los casos de uso.
// Siempre produce los mismos datos (salvo ids y created_at).
func seed(ctx context.Context, svc *services) (*SeedResult, error) {
	res := &SeedResult{}
	for _, c := range seedCustomers {
		out, err := svc.customers.Create(ctx, dto.CreateCustomerRequest{
			Name: c.name, Email: c.email, Phone: c.phone, Company: c.company,
		})
		if err != nil {
			return nil, fmt.Errorf("cliente %q: %w", c.name, err)
		}
		res.Customers = append(res.Customers, out.ID)
	}
	for _, s := range seedSales {
		out, err := svc.sales.Create(ctx, dto.CreateSaleRequest{
			CustomerID:     res.Customers[s.customer],
			ProductService: s.product,
			Amount:         decimal.RequireFromString(s.amount),
			Date:           dto.NewTimestamp(seedBase.AddDate(0, 0, s.day)),
			Status:         s.status,
		})
		if err != nil {
			return nil, fmt.Errorf("venta %q: %w", s.product, err)
		}
		res.Sales = append(res.Sales, out.ID)
	}
	for _, i := range seedInteractions {
		out, err := svc.interactions.Create(ctx, dto.CreateInteractionRequest{
			CustomerID: res.Customers[i.customer],
			Type:       i.kind,
			Date:       dto.NewTimestamp(seedBase.AddDate(0, 0, i.day)),
			Summary:    i.summary,
		})
		if err != nil {
			return nil, fmt.Errorf("interacción %q: %w", i.summary, err)
		}
		res.Interactions = append(res.Interactions, out.ID)
	}
	return res, nil
}

func seedCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Carga clientes, ventas e interacciones de demostración",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.withStore(cmd.Context(), true, func(s *storage.Store, log *logger.Logger) error {
				res, err := seed(cmd.Context(), newServices(s))
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s seed fallido: %v\n", failMark, err)
					return err
				}
				log.Info().
					Int("customers", len(res.Customers)).
					Int("sales", len(res.Sales)).
					Int("interactions", len(res.Interactions)).
					Msg("datos de demostración cargados")
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d clientes, %d ventas, %d interacciones\n",
					okMark, len(res.Customers), len(res.Sales), len(res.Interactions))
				return nil
			})
		},
	}
}
