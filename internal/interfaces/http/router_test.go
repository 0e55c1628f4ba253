package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/crm-api/internal/application/analytics"
	"github.com/jhoicas/crm-api/internal/application/report"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/application/validation"
	"github.com/jhoicas/crm-api/internal/infrastructure/pdf"
	"github.com/jhoicas/crm-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/crm-api/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/crm-api/internal/interfaces/http"
	"github.com/jhoicas/crm-api/pkg/config"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la API completa sobre SQLite en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, sqlite.MemoryPath)
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(ctx, db))
	s := storage.NewSQLite(db)
	t.Cleanup(s.Close)

	v := validation.New()
	customerUC := usecase.NewCustomerUseCase(s.Customers, s.Sales, s.Interactions, s.Tx, v)
	deps := apphttp.RouterDeps{
		CustomerUC:    customerUC,
		SaleUC:        usecase.NewSaleUseCase(s.Sales, s.Tx, v),
		InteractionUC: usecase.NewInteractionUseCase(s.Interactions, s.Tx, v),
		DashboardUC:   appanalytics.NewDashboardUseCase(s.Dashboard),
		ReportUC:      report.NewCustomerReportUseCase(customerUC, pdf.NewMarotoReportGenerator("crm-api-test")),
		Store:         s,
		AppName:       "crm-api-test",
		Logger:        logger.Nop(),
	}
	return newApp(deps)
}

func newApp(deps apphttp.RouterDeps) *fiber.App {
	app := apphttp.NewApp(deps.AppName, config.HTTPConfig{CORSAllowOrigins: "*"}, logger.Nop())
	apphttp.Router(app, deps)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decodeList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

const customerBody = `{"name":"Ana Pérez","email":"ana@acme.com","phone":"555-0100","company":"Acme"}`

func createCustomer(t *testing.T, app *fiber.App) int64 {
	t.Helper()
	resp := doRequest(t, app, http.MethodPost, "/api/customers", customerBody)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return int64(decode(t, resp)["id"].(float64))
}

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("conexión rechazada") }

// ──────────────────────────────────────────────────────────────────────────────
// Health y middlewares
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth_OK(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	body := decode(t, resp)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "crm-api-test", body["service"])
	assert.Equal(t, "ok", body["database"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestHealth_BDCaida_503(t *testing.T) {
	app := newApp(apphttp.RouterDeps{AppName: "crm-api-test", Store: failingPinger{}})

	resp := doRequest(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "unavailable", decode(t, resp)["database"])
}

func TestRequestID_SeRespetaElDelCliente(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get("X-Request-ID"))
}

func TestRutaInexistente_404JSON(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/no-existe", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode(t, resp)["code"])
}

func TestDocs_EspecificacionEmbebida(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/docs", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	resp = doRequest(t, app, http.MethodGet, "/swagger.json", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "CRM API")
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomers_CrearYObtener(t *testing.T) {
	app := buildTestApp(t)
	id := createCustomer(t, app)

	resp := doRequest(t, app, http.MethodGet, "/api/customers/"+itoa(id), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "Ana Pérez", body["name"])
	assert.Equal(t, "ana@acme.com", body["email"])
	assert.NotEmpty(t, body["created_at"])

	list := decodeList(t, doRequest(t, app, http.MethodGet, "/api/customers", ""))
	assert.Len(t, list, 1)
}

func TestCustomers_GetInexistente_404(t *testing.T) {
	app := buildTestApp(t)

	for _, path := range []string{"/api/customers/999", "/api/customers/0", "/api/customers/-1"} {
		resp := doRequest(t, app, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		assert.Equal(t, "NOT_FOUND", decode(t, resp)["code"], path)
	}
}

func TestCustomers_IDNoNumerico_400(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/customers/abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ID", decode(t, resp)["code"])
}

func TestCustomers_CrearInvalido_400ConDetalles(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/customers",
		`{"name":"Ana","email":"no-es-email","phone":"1","company":"Acme"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])
	details, ok := body["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, details, "email")

	list := decodeList(t, doRequest(t, app, http.MethodGet, "/api/customers", ""))
	assert.Empty(t, list)
}

func TestCustomers_CuerpoMalformado_400(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/customers", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode(t, resp)["code"])
}

func TestCustomers_PatchParcial(t *testing.T) {
	app := buildTestApp(t)
	id := createCustomer(t, app)

	resp := doRequest(t, app, http.MethodPatch, "/api/customers/"+itoa(id), `{"company":"Globex","id":777}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, float64(id), body["id"])
	assert.Equal(t, "Globex", body["company"])
	assert.Equal(t, "Ana Pérez", body["name"])

	// persistido
	body = decode(t, doRequest(t, app, http.MethodGet, "/api/customers/"+itoa(id), ""))
	assert.Equal(t, "Globex", body["company"])
}

func TestCustomers_PutInexistente_404(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPut, "/api/customers/42", `{"name":"X"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCustomers_RelacionesYListados(t *testing.T) {
	app := buildTestApp(t)
	id := createCustomer(t, app)

	resp := doRequest(t, app, http.MethodGet, "/api/customers/"+itoa(id)+"/relations", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, []interface{}{}, body["sales"])
	assert.Equal(t, []interface{}{}, body["interactions"])

	doRequest(t, app, http.MethodPost, "/api/interactions",
		`{"customer_id":`+itoa(id)+`,"type":"Call","date":"2024-01-10","summary":"primera"}`)
	doRequest(t, app, http.MethodPost, "/api/interactions",
		`{"customer_id":`+itoa(id)+`,"type":"Email","date":"2024-03-10","summary":"segunda"}`)

	list := decodeList(t, doRequest(t, app, http.MethodGet, "/api/customers/"+itoa(id)+"/interactions", ""))
	require.Len(t, list, 2)
	assert.Equal(t, "segunda", list[0]["summary"])

	sales := decodeList(t, doRequest(t, app, http.MethodGet, "/api/customers/999/sales", ""))
	assert.Empty(t, sales)

	resp = doRequest(t, app, http.MethodGet, "/api/customers/999/relations", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas e interacciones
// ──────────────────────────────────────────────────────────────────────────────

func TestSales_CrearConEstadoPorDefecto(t *testing.T) {
	app := buildTestApp(t)
	id := createCustomer(t, app)

	resp := doRequest(t, app, http.MethodPost, "/api/sales",
		`{"customer_id":`+itoa(id)+`,"product_service":"Licencia","amount":1500.5,"date":"2024-02-01T10:00:00Z"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "Pending", body["status"])
	assert.Equal(t, 1500.5, body["amount"])
	assert.Equal(t, "2024-02-01T10:00:00Z", body["date"])
}

func TestSales_ClienteInexistente_422(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/sales",
		`{"customer_id":999,"product_service":"Licencia","amount":10,"date":"2024-02-01"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "REFERENTIAL_INTEGRITY", decode(t, resp)["code"])
}

func TestSales_MontoNoPositivo_400(t *testing.T) {
	app := buildTestApp(t)
	id := createCustomer(t, app)

	resp := doRequest(t, app, http.MethodPost, "/api/sales",
		`{"customer_id":`+itoa(id)+`,"product_service":"Licencia","amount":0,"date":"2024-02-01"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSales_MontoFueraDeRango_400SinPersistir(t *testing.T) {
	app := buildTestApp(t)
	id := createCustomer(t, app)

	for _, amount := range []string{"0.001", "100000000000000000"} {
		resp := doRequest(t, app, http.MethodPost, "/api/sales",
			`{"customer_id":`+itoa(id)+`,"product_service":"Licencia","amount":`+amount+`,"date":"2024-02-01"}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, "amount=%s", amount)
		body := decode(t, resp)
		assert.Equal(t, "VALIDATION", body["code"])
		details, ok := body["details"].(map[string]interface{})
		require.True(t, ok)
		assert.Contains(t, details, "amount")
	}

	assert.Empty(t, decodeList(t, doRequest(t, app, http.MethodGet, "/api/sales", "")))
}

func TestSales_SinCliente_400(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/sales",
		`{"product_service":"Licencia","amount":10,"date":"2024-02-01"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])
	details, ok := body["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, details, "customer_id")
}

func TestSales_FechaEnMilisegundos(t *testing.T) {
	app := buildTestApp(t)
	id := createCustomer(t, app)

	resp := doRequest(t, app, http.MethodPost, "/api/sales",
		`{"customer_id":`+itoa(id)+`,"product_service":"Licencia","amount":10,"date":1704067200000}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "2024-01-01T00:00:00Z", decode(t, resp)["date"])
}

func TestSales_ActualizarEstado(t *testing.T) {
	app := buildTestApp(t)
	id := createCustomer(t, app)
	sale := decode(t, doRequest(t, app, http.MethodPost, "/api/sales",
		`{"customer_id":`+itoa(id)+`,"product_service":"Licencia","amount":10,"date":"2024-02-01"}`))
	saleID := int64(sale["id"].(float64))

	resp := doRequest(t, app, http.MethodPut, "/api/sales/"+itoa(saleID), `{"status":"Completed"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "Completed", body["status"])
	assert.Equal(t, "Licencia", body["product_service"])

	resp = doRequest(t, app, http.MethodPut, "/api/sales/"+itoa(saleID), `{"status":"Shipped"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/sales/999", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInteractions_TipoInvalido_400(t *testing.T) {
	app := buildTestApp(t)
	id := createCustomer(t, app)

	resp := doRequest(t, app, http.MethodPost, "/api/interactions",
		`{"customer_id":`+itoa(id)+`,"type":"Fax","date":"2024-01-10","summary":"x"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/interactions/1", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInteractions_SinCliente_400(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/interactions",
		`{"type":"Call","date":"2024-01-10","summary":"x"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Contains(t, body["details"], "customer_id")
}

func TestInteractions_FechasLejanasYMilisegundos(t *testing.T) {
	app := buildTestApp(t)
	id := createCustomer(t, app)

	for date, want := range map[string]string{
		`"3000-01-01"`:  "3000-01-01T00:00:00Z",
		`"1600-01-01"`:  "1600-01-01T00:00:00Z",
		`1704067200000`: "2024-01-01T00:00:00Z",
	} {
		resp := doRequest(t, app, http.MethodPost, "/api/interactions",
			`{"customer_id":`+itoa(id)+`,"type":"Meeting","date":`+date+`,"summary":"x"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode, date)
		created := decode(t, resp)
		assert.Equal(t, want, created["date"], date)

		got := decode(t, doRequest(t, app, http.MethodGet, "/api/interactions/"+itoa(int64(created["id"].(float64))), ""))
		assert.Equal(t, want, got["date"], date)
	}

	resp := doRequest(t, app, http.MethodPost, "/api/interactions",
		`{"customer_id":`+itoa(id)+`,"type":"Meeting","date":253402300800000,"summary":"x"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard y reporte
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_Overview(t *testing.T) {
	app := buildTestApp(t)
	id := createCustomer(t, app)
	doRequest(t, app, http.MethodPost, "/api/sales",
		`{"customer_id":`+itoa(id)+`,"product_service":"A","amount":100.25,"date":"2024-02-01","status":"Completed"}`)
	doRequest(t, app, http.MethodPost, "/api/sales",
		`{"customer_id":`+itoa(id)+`,"product_service":"B","amount":50,"date":"2024-02-02"}`)

	resp := doRequest(t, app, http.MethodGet, "/api/dashboard/overview", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, float64(1), body["total_customers"])
	assert.Equal(t, float64(2), body["total_sales"])
	assert.Equal(t, 150.25, body["total_sales_amount"])
	assert.Equal(t, float64(1), body["pending_sales"])
	assert.Equal(t, float64(1), body["completed_sales"])
	assert.Equal(t, float64(0), body["cancelled_sales"])
	assert.Equal(t, []interface{}{}, body["recent_interactions"])
}

func TestReport_PDF(t *testing.T) {
	app := buildTestApp(t)
	id := createCustomer(t, app)

	resp := doRequest(t, app, http.MethodGet, "/api/customers/"+itoa(id)+"/report", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "cliente-"+itoa(id)+".pdf")
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	resp = doRequest(t, app, http.MethodGet, "/api/customers/999/report", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
