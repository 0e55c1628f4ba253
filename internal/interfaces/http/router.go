package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/crm-api/internal/application/analytics"
	"github.com/jhoicas/crm-api/internal/application/report"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC    *usecase.CustomerUseCase
	SaleUC        *usecase.SaleUseCase
	InteractionUC *usecase.InteractionUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	ReportUC      *report.CustomerReportUseCase
	Store         Pinger
	AppName       string
	Logger        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.Named("http")

	app.Get("/health", Health(deps.AppName, deps.Store))

	api := app.Group("/api")

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log)
	api.Get("/dashboard/overview", dashboardHandler.GetOverview)

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.SaleUC, deps.InteractionUC, log)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Patch("/:id", customerHandler.Update)
	customers.Get("/:id/relations", customerHandler.GetWithRelations)
	customers.Get("/:id/sales", customerHandler.ListSales)
	customers.Get("/:id/interactions", customerHandler.ListInteractions)
	if deps.ReportUC != nil {
		reportHandler := NewReportHandler(deps.ReportUC, log)
		customers.Get("/:id/report", reportHandler.CustomerReport)
	}

	// Sales
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, log)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Put("/:id", saleHandler.Update)
	sales.Patch("/:id", saleHandler.Update)

	// Interactions
	interactions := api.Group("/interactions")
	interactionHandler := NewInteractionHandler(deps.InteractionUC, log)
	interactions.Get("/", interactionHandler.List)
	interactions.Post("/", interactionHandler.Create)
	interactions.Get("/:id", interactionHandler.GetByID)
	interactions.Put("/:id", interactionHandler.Update)
	interactions.Patch("/:id", interactionHandler.Update)
}
