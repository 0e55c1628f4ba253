package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	appanalytics "github.com/jhoicas/crm-api/internal/application/analytics"
	"github.com/jhoicas/crm-api/internal/application/report"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/application/validation"
	infrapdf "github.com/jhoicas/crm-api/internal/infrastructure/pdf"
	"github.com/jhoicas/crm-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/crm-api/internal/interfaces/http"
	"github.com/jhoicas/crm-api/pkg/config"
	"github.com/jhoicas/crm-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.DB, cfg.App.Name)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("conexión a la base de datos")
	}
	defer store.Close()

	validator := validation.New()
	customerUC := usecase.NewCustomerUseCase(store.Customers, store.Sales, store.Interactions, store.Tx, validator)
	saleUC := usecase.NewSaleUseCase(store.Sales, store.Tx, validator)
	interactionUC := usecase.NewInteractionUseCase(store.Interactions, store.Tx, validator)
	dashboardUC := appanalytics.NewDashboardUseCase(store.Dashboard)

	// PDF: estado de cuenta del cliente
	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)
	reportUC := report.NewCustomerReportUseCase(customerUC, pdfGenerator)

	app := httpRouter.NewApp(cfg.App.Name, cfg.HTTP, log)
	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:    customerUC,
		SaleUC:        saleUC,
		InteractionUC: interactionUC,
		DashboardUC:   dashboardUC,
		ReportUC:      reportUC,
		Store:         store,
		AppName:       cfg.App.Name,
		Logger:        log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
