package tax

import (
	"fmt"

	"github.com/jhoicas/taxtotals/internal/domain"
	"github.com/jhoicas/taxtotals/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CashRoundingAdjuster lleva el total del documento al incremento de efectivo.
type CashRoundingAdjuster struct {
	currency        entity.Currency
	companyCurrency entity.Currency
}

// NewCashRoundingAdjuster crea el ajustador para las monedas del documento.
func NewCashRoundingAdjuster(cur, companyCur entity.Currency) *CashRoundingAdjuster {
	return &CashRoundingAdjuster{currency: cur, companyCurrency: companyCur}
}

// ValidateCashRounding comprueba estrategia, método e incremento.
func ValidateCashRounding(cr entity.CashRounding) error {
	switch cr.Strategy {
	case entity.CashRoundingAddInvoiceLine, entity.CashRoundingBiggestTax:
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedCashRounding, cr.Strategy)
	}
	switch cr.Method {
	case "", entity.CashRoundingHalfUp, entity.CashRoundingUp, entity.CashRoundingDown:
	default:
		return fmt.Errorf("%w: método %q", domain.ErrUnsupportedCashRounding, cr.Method)
	}
	if !cr.Increment.IsPositive() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCashRounding, cr.Increment)
	}
	return nil
}

// RoundToIncrement redondea x al múltiplo de increment según el método
// (HALF-UP por defecto). UP se aleja de cero y DOWN se acerca.
func RoundToIncrement(x, increment decimal.Decimal, method entity.CashRoundingMethod) decimal.Decimal {
	q := x.Div(increment)
	switch method {
	case entity.CashRoundingUp:
		q = q.RoundUp(0)
	case entity.CashRoundingDown:
		q = q.RoundDown(0)
	default:
		q = q.Round(0)
	}
	return q.Mul(increment)
}

// Apply ajusta el resultado en sitio. Sin diferencia no modifica nada.
// rate convierte la diferencia a la moneda de la compañía.
func (a *CashRoundingAdjuster) Apply(res *entity.TotalsResult, cr entity.CashRounding, rate decimal.Decimal) error {
	if err := ValidateCashRounding(cr); err != nil {
		return err
	}
	target := a.currency.Round(RoundToIncrement(res.TotalAmountCurrency, cr.Increment, cr.Method))
	delta := target.Sub(res.TotalAmountCurrency)
	if delta.IsZero() {
		return nil
	}
	deltaCompany := a.companyCurrency.Round(delta.Mul(rate))

	if cr.Strategy == entity.CashRoundingBiggestTax {
		if g := biggestTaxGroup(res); g != nil {
			g.TaxAmountCurrency = g.TaxAmountCurrency.Add(delta)
			g.TaxAmount = g.TaxAmount.Add(deltaCompany)
			g.CashRoundingTaxAmountCurrency = addNull(g.CashRoundingTaxAmountCurrency, delta)
			g.CashRoundingTaxAmount = addNull(g.CashRoundingTaxAmount, deltaCompany)
			RecomputeTotals(res)
			return nil
		}
	}

	res.CashRoundingBaseAmountCurrency = addNull(res.CashRoundingBaseAmountCurrency, delta)
	res.CashRoundingBaseAmount = addNull(res.CashRoundingBaseAmount, deltaCompany)
	RecomputeTotals(res)
	return nil
}

// biggestTaxGroup grupo con mayor impuesto en moneda del documento; en empate gana el primero.
func biggestTaxGroup(res *entity.TotalsResult) *entity.TaxGroupTotals {
	var best *entity.TaxGroupTotals
	for i := range res.Subtotals {
		for j := range res.Subtotals[i].TaxGroups {
			g := &res.Subtotals[i].TaxGroups[j]
			if best == nil || g.TaxAmountCurrency.GreaterThan(best.TaxAmountCurrency) {
				best = g
			}
		}
	}
	return best
}

func addNull(n decimal.NullDecimal, d decimal.Decimal) decimal.NullDecimal {
	if n.Valid {
		return decimal.NewNullDecimal(n.Decimal.Add(d))
	}
	return decimal.NewNullDecimal(d)
}
