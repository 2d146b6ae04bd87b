package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/taxtotals/internal/application/dto"
	"github.com/jhoicas/taxtotals/internal/application/totals"
	"github.com/jhoicas/taxtotals/internal/domain/tax"
	apphttp "github.com/jhoicas/taxtotals/internal/interfaces/http"
	"github.com/jhoicas/taxtotals/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye una aplicación Fiber con las rutas de totales.
func buildTestApp() *fiber.App {
	app := fiber.New()
	uc := totals.NewUseCase(tax.NewTotalsCalculatorService(), logger.Nop(), totals.Options{MaxBatchSize: 2})
	apphttp.Router(app, apphttp.RouterDeps{TotalsUC: uc})
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err, "app.Test no debe fallar")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

// Scenario de dos grupos etiquetados: 1000 sin impuesto + 1000 con 10% + 200 con 42%.
const totalsBody = `{
	"rounding_method": "round_per_line",
	"currency": {"code": "USD"},
	"company_currency": {"code": "EUR"},
	"rate": "2",
	"taxes": [
		{"id": "t42", "sequence": 1, "amount_type": "percent", "amount": "42", "tax_group_id": "g0"},
		{"id": "t10", "sequence": 2, "amount_type": "percent", "amount": "10", "tax_group_id": "g1"}
	],
	"tax_groups": [
		{"id": "g0", "name": "IVA 42", "sequence": 1},
		{"id": "g1", "name": "IVA 10", "sequence": 2, "preceding_subtotal": "PRE GROUP 1"}
	],
	"lines": [
		{"id": "l1", "price_unit": "1000"},
		{"id": "l2", "price_unit": "1000", "tax_ids": ["t10"]},
		{"id": "l3", "price_unit": "200", "tax_ids": ["t42", "t10"]}
	]
}`

func TestTotalsHandler_Compute_200(t *testing.T) {
	app := buildTestApp()

	resp, raw := post(t, app, "/api/totals", totalsBody)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var out dto.TotalsResponse
	require.NoError(t, json.Unmarshal(raw, &out), "respuesta JSON válida")

	assert.NotEmpty(t, out.ComputationID)
	assert.True(t, decimal.NewFromInt(2200).Equal(out.BaseAmountCurrency), "base: %s", out.BaseAmountCurrency)
	assert.True(t, decimal.NewFromInt(4400).Equal(out.BaseAmount), "base compañía: %s", out.BaseAmount)
	assert.True(t, decimal.NewFromInt(204).Equal(out.TaxAmountCurrency), "84 + 120: %s", out.TaxAmountCurrency)
	require.Len(t, out.Subtotals, 2)
	assert.Equal(t, "PRE GROUP 1", out.Subtotals[1].Name)
	assert.True(t, decimal.NewFromInt(2284).Equal(out.Subtotals[1].BaseAmountCurrency))
	assert.True(t, out.Subtotals[0].TaxGroups[0].DisplayBaseAmountCurrency.Valid)
	assert.False(t, out.CashRoundingBaseAmountCurrency.Valid, "sin redondeo de efectivo el campo es null")
	assert.Contains(t, string(raw), `"cash_rounding_base_amount_currency":null`)
}

func TestTotalsHandler_ComputeByTax_200(t *testing.T) {
	app := buildTestApp()

	resp, raw := post(t, app, "/api/totals/by-tax", totalsBody)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var out dto.PerTaxTotalsResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Contains(t, out.Taxes, "t10")
	assert.True(t, decimal.NewFromInt(120).Equal(out.Taxes["t10"].TaxAmountCurrency))
	assert.True(t, decimal.NewFromInt(1200).Equal(out.Taxes["t10"].BaseAmountCurrency))
}

func TestTotalsHandler_Batch(t *testing.T) {
	app := buildTestApp()

	resp, raw := post(t, app, "/api/totals/batch", `{"documents": [`+totalsBody+`,`+totalsBody+`]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var out dto.BatchTotalsResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Len(t, out.Results, 2)

	resp, _ = post(t, app, "/api/totals/batch", `{"documents": [`+totalsBody+`,`+totalsBody+`,`+totalsBody+`]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "el lote supera el máximo configurado")
}

func TestTotalsHandler_Errores(t *testing.T) {
	app := buildTestApp()

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"cuerpo no JSON", `{`, http.StatusBadRequest, "INVALID_BODY"},
		{"moneda desconocida", `{"currency": {"code": "??"}}`, http.StatusBadRequest, "VALIDATION"},
		{
			"división al 100%",
			`{"currency": {"code": "USD"},
			  "taxes": [{"id": "d", "sequence": 1, "amount_type": "division", "amount": "100", "tax_group_id": "g"}],
			  "tax_groups": [{"id": "g", "name": "G", "sequence": 1}],
			  "lines": [{"price_unit": "10", "tax_ids": ["d"]}]}`,
			http.StatusUnprocessableEntity, "CONFIGURATION",
		},
		{
			"método de redondeo no soportado",
			`{"rounding_method": "round_sometimes", "currency": {"code": "USD"}}`,
			http.StatusUnprocessableEntity, "CONFIGURATION",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, raw := post(t, app, "/api/totals", tt.body)
			assert.Equal(t, tt.status, resp.StatusCode, string(raw))
			var errResp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(raw, &errResp))
			assert.Equal(t, tt.code, errResp.Code)
		})
	}
}
