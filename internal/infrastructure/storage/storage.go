// Package storage arma los repositorios según DB_DRIVER (postgres o sqlite)
// para que cmd/api y cmd/crmctl no dependan del backend concreto.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/internal/infrastructure/postgres"
	"github.com/jhoicas/crm-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/crm-api/pkg/config"
)

// Store agrupa los adaptadores de persistencia de un backend.
type Store struct {
	Driver       string
	Customers    repository.CustomerRepository
	Sales        repository.SaleRepository
	Interactions repository.InteractionRepository
	Dashboard    repository.DashboardRepository
	Tx           usecase.TxRunner

	ping    func(ctx context.Context) error
	migrate func(ctx context.Context) error
	close   func()
}

// Open conecta con el backend configurado. Si cfg.AutoMigrate está activo aplica el esquema.
func Open(ctx context.Context, cfg config.DBConfig, applicationName string) (*Store, error) {
	var (
		s   *Store
		err error
	)
	switch cfg.Driver {
	case config.DriverSQLite:
		s, err = openSQLite(ctx, cfg.SQLitePath)
	case config.DriverPostgres, "":
		s, err = openPostgres(ctx, cfg, applicationName)
	default:
		return nil, fmt.Errorf("driver de BD no soportado: %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := s.Migrate(ctx); err != nil {
			s.Close()
			return nil, err
		}
	}
	return s, nil
}

// NewSQLite envuelve una conexión SQLite ya abierta (tests y CLI).
func NewSQLite(db *sql.DB) *Store {
	return &Store{
		Driver:       config.DriverSQLite,
		Customers:    sqlite.NewCustomerRepository(db),
		Sales:        sqlite.NewSaleRepository(db),
		Interactions: sqlite.NewInteractionRepository(db),
		Dashboard:    sqlite.NewDashboardRepository(db),
		Tx:           sqlite.NewTxRunner(db),
		ping:         db.PingContext,
		migrate:      func(ctx context.Context) error { return sqlite.Migrate(ctx, db) },
		close:        func() { _ = db.Close() },
	}
}

// NewPostgres envuelve un pool ya creado.
func NewPostgres(pool *pgxpool.Pool) *Store {
	return &Store{
		Driver:       config.DriverPostgres,
		Customers:    postgres.NewCustomerRepository(pool),
		Sales:        postgres.NewSaleRepository(pool),
		Interactions: postgres.NewInteractionRepository(pool),
		Dashboard:    postgres.NewDashboardRepository(pool),
		Tx:           postgres.NewTxRunner(pool),
		ping:         pool.Ping,
		migrate:      func(ctx context.Context) error { return postgres.Migrate(ctx, pool) },
		close:        pool.Close,
	}
}

func openSQLite(ctx context.Context, path string) (*Store, error) {
	db, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	s := NewSQLite(db)
	// En memoria no hay esquema previo: se crea siempre.
	if path == sqlite.MemoryPath {
		if err := s.Migrate(ctx); err != nil {
			s.Close()
			return nil, err
		}
	}
	return s, nil
}

func openPostgres(ctx context.Context, cfg config.DBConfig, applicationName string) (*Store, error) {
	pool, err := postgres.NewPool(ctx, cfg, applicationName)
	if err != nil {
		return nil, err
	}
	return NewPostgres(pool), nil
}

// Ping verifica la conexión (lo usa /health).
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Migrate aplica el esquema del backend.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.migrate(ctx); err != nil {
		return fmt.Errorf("migrar %s: %w", s.Driver, err)
	}
	return nil
}

func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}
