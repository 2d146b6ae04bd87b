package tax_test

import (
	"testing"

	"github.com/jhoicas/taxtotals/internal/domain"
	"github.com/jhoicas/taxtotals/internal/domain/entity"
	"github.com/jhoicas/taxtotals/internal/domain/tax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDoc(taxes ...entity.Tax) entity.Document {
	return newDoc(entity.RoundPerLine, "1", []entity.TaxGroup{group("g", 1, "")}, line("l1", "100", taxes...))
}

func TestComputeTotals_ErroresDeConfiguracion(t *testing.T) {
	tests := []struct {
		name   string
		doc    func() entity.Document
		target error
	}{
		{
			name: "tipo de cálculo desconocido",
			doc: func() entity.Document {
				tx := percent("x", 1, "10", "g")
				tx.Kind = 0
				return validDoc(tx)
			},
			target: domain.ErrUnknownComputation,
		},
		{
			name:   "división al 100%",
			doc:    func() entity.Document { return validDoc(division("d", 1, "100", "g")) },
			target: domain.ErrDegenerateDivision,
		},
		{
			name: "lote de división excluido que suma 100",
			doc: func() entity.Document {
				return validDoc(division("d1", 1, "60", "g"), division("d2", 2, "40", "g"))
			},
			target: domain.ErrDegenerateDivision,
		},
		{
			name: "método de redondeo no soportado",
			doc: func() entity.Document {
				d := validDoc(percent("t", 1, "10", "g"))
				d.RoundingMethod = "round_sometimes"
				return d
			},
			target: domain.ErrUnsupportedRounding,
		},
		{
			name: "estrategia de efectivo no soportada",
			doc: func() entity.Document {
				d := validDoc(percent("t", 1, "10", "g"))
				d.CashRounding = &entity.CashRounding{Strategy: "smallest_tax", Increment: dec("0.05")}
				return d
			},
			target: domain.ErrUnsupportedCashRounding,
		},
		{
			name: "incremento de efectivo no positivo",
			doc: func() entity.Document {
				d := validDoc(percent("t", 1, "10", "g"))
				d.CashRounding = &entity.CashRounding{Strategy: entity.CashRoundingBiggestTax, Increment: dec("0")}
				return d
			},
			target: domain.ErrInvalidCashRounding,
		},
		{
			name:   "grupo no definido",
			doc:    func() entity.Document { return validDoc(percent("t", 1, "10", "otro")) },
			target: domain.ErrUnknownTaxGroup,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tax.NewTotalsCalculatorService().ComputeTotals(tt.doc())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.ErrorIs(t, err, domain.ErrConfiguration, "todos son errores de configuración")
			assert.Nil(t, res, "no se devuelven totales parciales")
		})
	}
}

func TestComputeTotals_EntradaInvalida(t *testing.T) {
	t.Run("tasa del documento", func(t *testing.T) {
		d := validDoc(percent("t", 1, "10", "g"))
		d.Rate = dec("0")
		_, err := tax.NewTotalsCalculatorService().ComputeTotals(d)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.NotErrorIs(t, err, domain.ErrConfiguration)
	})
	t.Run("tasa de línea negativa", func(t *testing.T) {
		d := validDoc(percent("t", 1, "10", "g"))
		d.Lines[0].Rate = ptr(dec("-1"))
		_, err := tax.NewTotalsCalculatorService().ComputeTotals(d)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("moneda sin incremento", func(t *testing.T) {
		d := validDoc()
		d.Currency = entity.Currency{Code: "XXX", Digits: 2}
		_, err := tax.NewTotalsCalculatorService().ComputeTotals(d)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestValidateDocument_DivisionIncluidaQueSuma100EsValida(t *testing.T) {
	d := validDoc(included(division("d1", 1, "60", "g")), included(division("d2", 2, "40", "g")))
	assert.NoError(t, tax.ValidateDocument(d, true))
}

func TestComputeTaxTotals_NoExigeGrupos(t *testing.T) {
	d := validDoc(percent("t", 1, "10", "sin-grupo"))
	totals, err := tax.NewTotalsCalculatorService().ComputeTaxTotals(d)
	require.NoError(t, err)
	assertDec(t, "10", totals["t"].TaxAmountCurrency, "impuesto")
}
