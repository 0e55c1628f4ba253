package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/application/validation"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/crm-api/internal/infrastructure/storage"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store        *storage.Store
	customers    *usecase.CustomerUseCase
	sales        *usecase.SaleUseCase
	interactions *usecase.InteractionUseCase
}

// newFixture arma los casos de uso sobre una BD SQLite en memoria recién migrada.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, sqlite.MemoryPath)
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(ctx, db))
	s := storage.NewSQLite(db)
	t.Cleanup(s.Close)

	v := validation.New()
	return &fixture{
		store:        s,
		customers:    usecase.NewCustomerUseCase(s.Customers, s.Sales, s.Interactions, s.Tx, v),
		sales:        usecase.NewSaleUseCase(s.Sales, s.Tx, v),
		interactions: usecase.NewInteractionUseCase(s.Interactions, s.Tx, v),
	}
}

func (f *fixture) createCustomer(t *testing.T, name string) *dto.CustomerResponse {
	t.Helper()
	c, err := f.customers.Create(context.Background(), dto.CreateCustomerRequest{
		Name:    name,
		Email:   "contacto@acme.com",
		Phone:   "555-0100",
		Company: "Acme",
	})
	require.NoError(t, err)
	return c
}

func ts(year int, month time.Month, day int) dto.Timestamp {
	return dto.NewTimestamp(time.Date(year, month, day, 10, 0, 0, 0, time.UTC))
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomer_CreateYGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	created := f.createCustomer(t, "Ana Pérez")
	after := time.Now().UTC().Add(time.Second)

	assert.Positive(t, created.ID)
	assert.True(t, created.CreatedAt.After(before) && created.CreatedAt.Before(after))

	got, err := f.customers.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana Pérez", got.Name)
	assert.Equal(t, "contacto@acme.com", got.Email)
	assert.Equal(t, "555-0100", got.Phone)
	assert.Equal(t, "Acme", got.Company)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestCustomer_EmailDuplicadoPermitido(t *testing.T) {
	f := newFixture(t)
	a := f.createCustomer(t, "Ana")
	b := f.createCustomer(t, "Beto")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCustomer_GetIDInexistenteONoPositivo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createCustomer(t, "Ana")

	for _, id := range []int64{0, -1, 999} {
		got, err := f.customers.GetByID(ctx, id)
		require.NoError(t, err, id)
		assert.Nil(t, got, id)
	}
}

func TestCustomer_CreateInvalidoNoPersiste(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.customers.Create(ctx, dto.CreateCustomerRequest{Name: "", Email: "no-es-email", Phone: "1", Company: "X"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "email")

	list, err := f.customers.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCustomer_ListOrdenInsercion(t *testing.T) {
	f := newFixture(t)
	a := f.createCustomer(t, "Ana")
	b := f.createCustomer(t, "Beto")
	c := f.createCustomer(t, "Carla")

	list, err := f.customers.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int64{a.ID, b.ID, c.ID}, []int64{list[0].ID, list[1].ID, list[2].ID})
}

func TestCustomer_UpdateParcialPersiste(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.createCustomer(t, "Ana")

	updated, err := f.customers.Update(ctx, dto.UpdateCustomerRequest{ID: created.ID, Company: strPtr("Globex")})
	require.NoError(t, err)
	assert.Equal(t, "Globex", updated.Company)
	assert.Equal(t, "Ana", updated.Name)

	got, err := f.customers.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Globex", got.Company)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestCustomer_UpdateInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.customers.Update(context.Background(), dto.UpdateCustomerRequest{ID: 7, Name: strPtr("X")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomer_WithRelationsVacias(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.createCustomer(t, "Ana")

	got, err := f.customers.GetWithRelations(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotNil(t, got.Sales)
	assert.NotNil(t, got.Interactions)
	assert.Empty(t, got.Sales)
	assert.Empty(t, got.Interactions)

	missing, err := f.customers.GetWithRelations(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCustomer_WithRelationsOrden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.createCustomer(t, "Ana")
	other := f.createCustomer(t, "Beto")

	for _, amount := range []string{"10", "20"} {
		_, err := f.sales.Create(ctx, dto.CreateSaleRequest{
			CustomerID: c.ID, ProductService: "Plan", Amount: decimal.RequireFromString(amount), Date: ts(2025, 1, 1),
		})
		require.NoError(t, err)
	}
	_, err := f.sales.Create(ctx, dto.CreateSaleRequest{
		CustomerID: other.ID, ProductService: "Plan", Amount: decimal.NewFromInt(5), Date: ts(2025, 1, 1),
	})
	require.NoError(t, err)

	for _, day := range []int{3, 9, 1} {
		_, err := f.interactions.Create(ctx, dto.CreateInteractionRequest{
			CustomerID: c.ID, Type: entity.InteractionTypeMeeting, Date: ts(2025, 2, day), Summary: "reunión",
		})
		require.NoError(t, err)
	}

	got, err := f.customers.GetWithRelations(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, got.Sales, 2)
	assert.Less(t, got.Sales[0].ID, got.Sales[1].ID)
	require.Len(t, got.Interactions, 3)
	assert.Equal(t, 9, got.Interactions[0].Date.Day())
	assert.Equal(t, 3, got.Interactions[1].Date.Day())
	assert.Equal(t, 1, got.Interactions[2].Date.Day())
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestSale_CreateEstadoPorDefectoYMonto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.createCustomer(t, "Ana")

	sale, err := f.sales.Create(ctx, dto.CreateSaleRequest{
		CustomerID:     c.ID,
		ProductService: "Licencia anual",
		Amount:         decimal.RequireFromString("100.50"),
		Date:           ts(2025, 4, 10),
	})
	require.NoError(t, err)
	assert.Positive(t, sale.ID)
	assert.Equal(t, entity.SaleStatusPending, sale.Status)

	got, err := f.sales.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("100.50")))
	assert.True(t, got.Date.Equal(time.Date(2025, 4, 10, 10, 0, 0, 0, time.UTC)))
}

func TestSale_ClienteInexistenteNoPersiste(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.sales.Create(ctx, dto.CreateSaleRequest{
		CustomerID: 42, ProductService: "X", Amount: decimal.NewFromInt(1), Date: ts(2025, 1, 1),
	})
	require.ErrorIs(t, err, domain.ErrReferentialIntegrity)

	list, err := f.sales.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSale_MontoQueRedondeaACeroOExcedeColumna(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.createCustomer(t, "Ana")

	for _, amount := range []string{"0.001", "100000000000000000"} {
		_, err := f.sales.Create(ctx, dto.CreateSaleRequest{
			CustomerID: c.ID, ProductService: "X", Amount: decimal.RequireFromString(amount), Date: ts(2025, 1, 1),
		})
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve, "amount=%s", amount)
		assert.Contains(t, ve.Fields, "amount")
	}

	list, err := f.sales.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestInteraction_FechasLejanasConservadas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.createCustomer(t, "Ana")

	for _, year := range []int{1600, 3000} {
		want := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		created, err := f.interactions.Create(ctx, dto.CreateInteractionRequest{
			CustomerID: c.ID, Type: entity.InteractionTypeCall, Date: dto.NewTimestamp(want), Summary: "llamada",
		})
		require.NoError(t, err)

		got, err := f.interactions.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, want.Equal(got.Date), "esperado %s, obtenido %s", want, got.Date)
	}
}

func TestSale_ListByCustomerDesconocido(t *testing.T) {
	f := newFixture(t)
	list, err := f.sales.ListByCustomer(context.Background(), 999)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestSale_UpdateParcial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.createCustomer(t, "Ana")
	sale, err := f.sales.Create(ctx, dto.CreateSaleRequest{
		CustomerID: c.ID, ProductService: "Soporte", Amount: decimal.RequireFromString("200.25"), Date: ts(2025, 1, 1),
	})
	require.NoError(t, err)

	completed := entity.SaleStatusCompleted
	updated, err := f.sales.Update(ctx, dto.UpdateSaleRequest{ID: sale.ID, Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCompleted, updated.Status)
	assert.Equal(t, "Soporte", updated.ProductService)
	assert.True(t, updated.Amount.Equal(decimal.RequireFromString("200.25")))
	assert.True(t, sale.CreatedAt.Equal(updated.CreatedAt))

	got, err := f.sales.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCompleted, got.Status)
}

func TestSale_UpdateInexistenteNoCambiaNada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.createCustomer(t, "Ana")
	sale, err := f.sales.Create(ctx, dto.CreateSaleRequest{
		CustomerID: c.ID, ProductService: "Soporte", Amount: decimal.NewFromInt(10), Date: ts(2025, 1, 1),
	})
	require.NoError(t, err)

	_, err = f.sales.Update(ctx, dto.UpdateSaleRequest{ID: sale.ID + 100, ProductService: strPtr("Otro")})
	require.ErrorIs(t, err, domain.ErrNotFound)

	got, err := f.sales.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, "Soporte", got.ProductService)
}

func TestSale_UpdateMontoInvalido(t *testing.T) {
	f := newFixture(t)
	neg := decimal.NewFromInt(-5)
	_, err := f.sales.Update(context.Background(), dto.UpdateSaleRequest{ID: 1, Amount: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Interacciones
// ──────────────────────────────────────────────────────────────────────────────

func TestInteraction_ClienteInexistente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.interactions.Create(ctx, dto.CreateInteractionRequest{
		CustomerID: 5, Type: entity.InteractionTypeCall, Date: ts(2025, 1, 1), Summary: "llamada",
	})
	require.ErrorIs(t, err, domain.ErrReferentialIntegrity)

	list, err := f.interactions.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestInteraction_UpdateParcial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.createCustomer(t, "Ana")
	created, err := f.interactions.Create(ctx, dto.CreateInteractionRequest{
		CustomerID: c.ID, Type: entity.InteractionTypeCall, Date: ts(2025, 1, 1), Summary: "primer contacto",
	})
	require.NoError(t, err)

	updated, err := f.interactions.Update(ctx, dto.UpdateInteractionRequest{ID: created.ID, Summary: strPtr("seguimiento")})
	require.NoError(t, err)
	assert.Equal(t, "seguimiento", updated.Summary)
	assert.Equal(t, entity.InteractionTypeCall, updated.Type)
	assert.True(t, created.Date.Equal(updated.Date))
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	_, err = f.interactions.Update(ctx, dto.UpdateInteractionRequest{ID: 0, Summary: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInteraction_ListByCustomerFechaDesc(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.createCustomer(t, "Ana")
	for _, day := range []int{5, 20, 12} {
		_, err := f.interactions.Create(ctx, dto.CreateInteractionRequest{
			CustomerID: c.ID, Type: entity.InteractionTypeEmail, Date: ts(2025, 3, day), Summary: "correo",
		})
		require.NoError(t, err)
	}

	list, err := f.interactions.ListByCustomer(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{20, 12, 5}, []int{list[0].Date.Day(), list[1].Date.Day(), list[2].Date.Day()})
}
