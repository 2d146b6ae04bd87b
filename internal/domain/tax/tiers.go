package tax

import (
	"fmt"

	"github.com/jhoicas/taxtotals/internal/domain/entity"
	"github.com/shopspring/decimal"
)

type groupTotals struct {
	group  entity.TaxGroup
	totals entity.TaxGroupTotals
}

// buildSubtotals reparte los grupos (ya ordenados por secuencia) en niveles.
// Los grupos sin etiqueta van siempre al nivel "Untaxed Amount"; los etiquetados
// forman niveles por tramos contiguos de la misma etiqueta.
func buildSubtotals(reported []groupTotals) ([]entity.Subtotal, []entity.Warning) {
	subtotals := []entity.Subtotal{{Name: entity.UntaxedAmountLabel}}
	var warnings []entity.Warning

	var labelled []groupTotals
	for _, g := range reported {
		if g.group.PrecedingSubtotal == "" {
			subtotals[0].TaxGroups = append(subtotals[0].TaxGroups, g.totals)
			continue
		}
		labelled = append(labelled, g)
	}

	closed := make(map[string]bool)
	current := ""
	for _, g := range labelled {
		label := g.group.PrecedingSubtotal
		if label != current {
			if current != "" {
				closed[current] = true
			}
			if closed[label] {
				warnings = append(warnings, entity.Warning{
					Code:       entity.WarningSplitPrecedingSubtotal,
					TaxGroupID: g.group.ID,
					Message: fmt.Sprintf("el subtotal %q reaparece tras otro subtotal en el grupo %s; se abre un nivel nuevo",
						label, g.group.ID),
				})
			}
			subtotals = append(subtotals, entity.Subtotal{Name: label})
			current = label
		}
		last := &subtotals[len(subtotals)-1]
		last.TaxGroups = append(last.TaxGroups, g.totals)
	}
	return subtotals, warnings
}

// RecomputeTotals rehace la cascada de niveles y los totales del documento a
// partir de la base sin impuestos y los importes de cada grupo.
// nivel_0.base = base sin impuestos; nivel_i.base = nivel_{i-1}.base + nivel_{i-1}.impuesto.
func RecomputeTotals(res *entity.TotalsResult) {
	base, baseCompany := res.BaseAmountCurrency, res.BaseAmount
	tax, taxCompany := decimal.Zero, decimal.Zero
	for i := range res.Subtotals {
		st := &res.Subtotals[i]
		st.BaseAmountCurrency = base
		st.BaseAmount = baseCompany
		st.TaxAmountCurrency = decimal.Zero
		st.TaxAmount = decimal.Zero
		for _, g := range st.TaxGroups {
			st.TaxAmountCurrency = st.TaxAmountCurrency.Add(g.TaxAmountCurrency)
			st.TaxAmount = st.TaxAmount.Add(g.TaxAmount)
		}
		base = base.Add(st.TaxAmountCurrency)
		baseCompany = baseCompany.Add(st.TaxAmount)
		tax = tax.Add(st.TaxAmountCurrency)
		taxCompany = taxCompany.Add(st.TaxAmount)
	}
	res.TaxAmountCurrency = tax
	res.TaxAmount = taxCompany
	res.TotalAmountCurrency = res.BaseAmountCurrency.Add(tax)
	res.TotalAmount = res.BaseAmount.Add(taxCompany)
	if res.CashRoundingBaseAmountCurrency.Valid {
		res.TotalAmountCurrency = res.TotalAmountCurrency.Add(res.CashRoundingBaseAmountCurrency.Decimal)
	}
	if res.CashRoundingBaseAmount.Valid {
		res.TotalAmount = res.TotalAmount.Add(res.CashRoundingBaseAmount.Decimal)
	}
}
