package tax

import (
	"github.com/jhoicas/taxtotals/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// AggregateByTax totales planos por impuesto, con las mismas reglas de redondeo
// que el agregador por grupo.
func (a *Aggregator) AggregateByTax(lines []LineResult) map[string]entity.TaxTotals {
	order, accs := sumByTax(lines)
	out := make(map[string]entity.TaxTotals, len(order))
	cur, comp := a.currency, a.companyCurrency
	for _, id := range order {
		ta := accs[id]
		tt := entity.TaxTotals{
			TaxID:              ta.tax.ID,
			TaxName:            ta.tax.Name,
			BaseAmount:         a.rounding.Finalize(comp, ta.baseCompany),
			BaseAmountCurrency: a.rounding.Finalize(cur, ta.base),
			TaxAmount:          a.rounding.Finalize(comp, ta.amountCompany),
			TaxAmountCurrency:  a.rounding.Finalize(cur, ta.amount),
		}
		if ta.hasDisplay {
			tt.DisplayBaseAmount = decimal.NewNullDecimal(a.rounding.Finalize(comp, ta.displayCompany))
			tt.DisplayBaseAmountCurrency = decimal.NewNullDecimal(a.rounding.Finalize(cur, ta.display))
		}
		out[id] = tt
	}
	return out
}
