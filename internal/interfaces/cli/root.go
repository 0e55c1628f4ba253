// Package cli contiene los comandos de crmctl (migrate, seed, import-customers).
package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/application/validation"
	"github.com/jhoicas/crm-api/internal/infrastructure/storage"
	"github.com/jhoicas/crm-api/pkg/config"
	"github.com/jhoicas/crm-api/pkg/logger"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	warnMark = color.New(color.FgYellow).Sprint("!")
	failMark = color.New(color.FgRed).Sprint("✗")
)

// globalFlags sobrescriben la configuración leída del entorno.
type globalFlags struct {
	driver     string
	sqlitePath string
	dsn        string
}

// RootCmd arma el comando raíz con todos los subcomandos.
func RootCmd(version string) *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:           "crmctl",
		Short:         "Herramientas de operación del CRM",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `crmctl aplica el esquema, carga datos de demostración e importa
clientes desde CSV usando la misma configuración (DB_DRIVER, DATABASE_URL,
SQLITE_PATH) que la API.`,
	}
	root.PersistentFlags().StringVar(&flags.driver, "db-driver", "", "postgres | sqlite (por defecto DB_DRIVER)")
	root.PersistentFlags().StringVar(&flags.sqlitePath, "sqlite-path", "", "archivo SQLite (por defecto SQLITE_PATH)")
	root.PersistentFlags().StringVar(&flags.dsn, "database-url", "", "DSN de PostgreSQL (por defecto DATABASE_URL)")

	root.AddCommand(migrateCmd(flags))
	root.AddCommand(seedCmd(flags))
	root.AddCommand(importCustomersCmd(flags))
	return root
}

// services casos de uso que usan los comandos.
type services struct {
	customers    *usecase.CustomerUseCase
	sales        *usecase.SaleUseCase
	interactions *usecase.InteractionUseCase
}

func newServices(s *storage.Store) *services {
	v := validation.New()
	return &services{
		customers:    usecase.NewCustomerUseCase(s.Customers, s.Sales, s.Interactions, s.Tx, v),
		sales:        usecase.NewSaleUseCase(s.Sales, s.Tx, v),
		interactions: usecase.NewInteractionUseCase(s.Interactions, s.Tx, v),
	}
}

// loadConfig lee la configuración y aplica los flags globales.
func (f *globalFlags) loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if f.driver != "" {
		cfg.DB.Driver = f.driver
	}
	if f.sqlitePath != "" {
		cfg.DB.SQLitePath = f.sqlitePath
	}
	if f.dsn != "" {
		cfg.DB.DatabaseURL = f.dsn
	}
	return cfg, nil
}

// withStore abre el store configurado, ejecuta fn y lo cierra.
func (f *globalFlags) withStore(ctx context.Context, migrate bool, fn func(s *storage.Store, log *logger.Logger) error) error {
	cfg, err := f.loadConfig()
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Service: "crmctl"})

	dbCfg := cfg.DB
	dbCfg.AutoMigrate = dbCfg.AutoMigrate || migrate
	s, err := storage.Open(ctx, dbCfg, "crmctl")
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s, log)
}
