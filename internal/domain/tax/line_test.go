package tax_test

import (
	"testing"

	"github.com/jhoicas/taxtotals/internal/domain/entity"
	"github.com/jhoicas/taxtotals/internal/domain/tax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func computeLine(t *testing.T, method entity.RoundingMethod, l entity.Line) tax.LineResult {
	t.Helper()
	rounding, err := tax.NewRoundingStrategy(method)
	require.NoError(t, err)
	res, err := tax.NewLineComputer(docCur, companyCur, dec("2"), rounding).ComputeLine(l)
	require.NoError(t, err, "ComputeLine no debe fallar")
	return res
}

func TestComputeLine_CompuestoPropagaHaciaAdelante(t *testing.T) {
	l := line("l1", "15.89", compoundTaxes("g", "g", "g")...)
	res := computeLine(t, entity.RoundPerLine, l)

	require.Len(t, res.Taxes, 3)
	assertDec(t, "0.95", res.Taxes[0].Amount, "t1")
	assertDec(t, "0.95", res.Taxes[1].Amount, "t2")
	assertDec(t, "15.89", res.Taxes[1].Base, "t2 no se ve afectado por t1")
	assertDec(t, "17.79", res.Taxes[2].Base, "t3 recibe t1 y t2")
	assertDec(t, "0.53", res.Taxes[2].Amount, "t3")
	assertDec(t, "15.89", res.TotalExcluded, "total sin impuestos")
	assertDec(t, "18.32", res.TotalIncluded, "total con impuestos")
	assertDec(t, "31.78", res.TotalExcludedCompany, "tasa 2")
}

func TestComputeLine_OrdenPorSecuenciaEstable(t *testing.T) {
	a := percent("a", 5, "10", "g")
	b := percent("b", 1, "10", "g")
	c := percent("c", 5, "5", "g")
	res := computeLine(t, entity.RoundPerLine, line("l1", "100", a, b, c))

	ids := []string{res.Taxes[0].Tax.ID, res.Taxes[1].Tax.ID, res.Taxes[2].Tax.ID}
	assert.Equal(t, []string{"b", "a", "c"}, ids, "misma secuencia conserva el orden de entrada")
}

func TestComputeLine_PorcentajesIncluidosCompartenDenominador(t *testing.T) {
	l := line("l1", "120", included(percent("a", 1, "10", "g")), included(percent("b", 2, "10", "g")))
	res := computeLine(t, entity.RoundPerLine, l)

	assertDec(t, "10", res.Taxes[0].Amount, "120 × 10 / 120")
	assertDec(t, "10", res.Taxes[1].Amount, "120 × 10 / 120")
	assertDec(t, "100", res.Taxes[0].Base, "base sin impuestos")
	assertDec(t, "100", res.TotalExcluded, "total sin impuestos")
	assertDec(t, "120", res.TotalIncluded, "el precio se conserva")
}

func TestComputeLine_DivisionIncluida_DisplayConImpuesto(t *testing.T) {
	l := line("l1", "100", included(division("d", 1, "10", "g")))
	res := computeLine(t, entity.RoundPerLine, l)

	assertDec(t, "10", res.Taxes[0].Amount, "precio × 10 / 100")
	assertDec(t, "90", res.Taxes[0].Base, "base")
	assertDec(t, "100", res.Taxes[0].DisplayBase, "display con impuesto")
	assert.True(t, res.Taxes[0].HasDisplayBase)
}

func TestComputeLine_FijoPorCantidadYSigno(t *testing.T) {
	l := line("l1", "-10", fixed("f", 1, "1.5", "g"))
	l.Quantity = dec("2")
	res := computeLine(t, entity.RoundPerLine, l)

	assertDec(t, "-3", res.Taxes[0].Amount, "el fijo sigue el signo del importe")
	assert.False(t, res.Taxes[0].HasDisplayBase, "el fijo no tiene base visible")
	assertDec(t, "-23", res.TotalIncluded, "total")
}

func TestComputeLine_SinImpuestos(t *testing.T) {
	res := computeLine(t, entity.RoundGlobally, line("l1", "10.005"))
	assert.Empty(t, res.Taxes)
	assertDec(t, "10.005", res.TotalExcluded, "global no redondea por línea")
	assertDec(t, "10.005", res.TotalIncluded, "total")
}
