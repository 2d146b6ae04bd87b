package tax_test

import (
	"testing"

	"github.com/jhoicas/taxtotals/internal/domain"
	"github.com/jhoicas/taxtotals/internal/domain/entity"
	"github.com/jhoicas/taxtotals/internal/domain/tax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoundingStrategy(t *testing.T) {
	perLine, err := tax.NewRoundingStrategy(entity.RoundPerLine)
	require.NoError(t, err)
	assert.Equal(t, entity.RoundPerLine, perLine.Method())
	assertDec(t, "1.01", perLine.RoundLine(docCur, dec("1.005")), "por línea redondea de inmediato (mitad hacia arriba)")
	assertDec(t, "-1.01", perLine.RoundLine(docCur, dec("-1.005")), "mitad alejándose de cero")

	global, err := tax.NewRoundingStrategy(entity.RoundGlobally)
	require.NoError(t, err)
	assertDec(t, "1.005", global.RoundLine(docCur, dec("1.005")), "global difiere el redondeo")
	assertDec(t, "1.01", global.Finalize(docCur, dec("1.005")), "global redondea al finalizar")

	_, err = tax.NewRoundingStrategy("round_never")
	assert.ErrorIs(t, err, domain.ErrUnsupportedRounding)
}

func TestCurrencyRound_Incremento(t *testing.T) {
	chf := entity.Currency{Code: "CHF", Digits: 2, Rounding: dec("0.05")}
	assertDec(t, "1.05", chf.Round(dec("1.03")), "al múltiplo de 0.05 más cercano")
	assertDec(t, "1.00", chf.Round(dec("1.02")), "hacia abajo")

	jpy := entity.NewCurrency("JPY", 0)
	assertDec(t, "3", jpy.Round(dec("2.5")), "sin decimales")
}
