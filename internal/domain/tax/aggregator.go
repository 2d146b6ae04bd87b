package tax

import (
	"slices"
	"sort"

	"github.com/jhoicas/taxtotals/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Aggregator consolida los resultados de línea en totales por grupo y nivel.
type Aggregator struct {
	currency        entity.Currency
	companyCurrency entity.Currency
	rounding        RoundingStrategy
}

// NewAggregator crea el agregador para un documento.
func NewAggregator(cur, companyCur entity.Currency, rounding RoundingStrategy) *Aggregator {
	return &Aggregator{currency: cur, companyCurrency: companyCur, rounding: rounding}
}

// taxAcc sumas sin finalizar de un impuesto a través de las líneas.
type taxAcc struct {
	tax            entity.Tax
	base           decimal.Decimal
	baseCompany    decimal.Decimal
	amount         decimal.Decimal
	amountCompany  decimal.Decimal
	display        decimal.Decimal
	displayCompany decimal.Decimal
	hasDisplay     bool
}

// groupAcc sumas sin finalizar de un grupo; taxIDs en orden de aparición.
type groupAcc struct {
	group          entity.TaxGroup
	taxIDs         []string
	base           decimal.Decimal
	baseCompany    decimal.Decimal
	display        decimal.Decimal
	displayCompany decimal.Decimal
	hasDisplay     bool
}

// sumByTax acumula cada impuesto (por ID) sobre todas las líneas, en orden de aparición.
func sumByTax(lines []LineResult) ([]string, map[string]*taxAcc) {
	var order []string
	acc := make(map[string]*taxAcc)
	for _, l := range lines {
		for _, d := range l.Taxes {
			ta, ok := acc[d.Tax.ID]
			if !ok {
				ta = &taxAcc{tax: d.Tax}
				acc[d.Tax.ID] = ta
				order = append(order, d.Tax.ID)
			}
			ta.base = ta.base.Add(d.Base)
			ta.baseCompany = ta.baseCompany.Add(d.BaseCompany)
			ta.amount = ta.amount.Add(d.Amount)
			ta.amountCompany = ta.amountCompany.Add(d.AmountCompany)
			ta.display = ta.display.Add(d.DisplayBase)
			ta.displayCompany = ta.displayCompany.Add(d.DisplayBaseCompany)
			if d.HasDisplayBase {
				ta.hasDisplay = true
			}
		}
	}
	return order, acc
}

// Aggregate construye el resumen de totales. Los impuestos de grupos excluidos
// no aportan a ningún total; todo grupo referenciado y no excluido se reporta.
func (a *Aggregator) Aggregate(lines []LineResult, groups []entity.TaxGroup, excluded map[string]bool) *entity.TotalsResult {
	index := make(map[string]entity.TaxGroup, len(groups))
	for _, g := range groups {
		index[g.ID] = g
	}

	untaxed, untaxedCompany := decimal.Zero, decimal.Zero
	accs := make(map[string]*groupAcc)
	var groupOrder []string
	for _, l := range lines {
		untaxed = untaxed.Add(l.TotalExcluded)
		untaxedCompany = untaxedCompany.Add(l.TotalExcludedCompany)

		baseSeen := make(map[string]bool)
		displaySeen := make(map[string]bool)
		fallback := make(map[string]TaxDetail)
		var lineGroups []string
		for _, d := range l.Taxes {
			gid := d.Tax.TaxGroupID
			if excluded[gid] {
				continue
			}
			ga, ok := accs[gid]
			if !ok {
				g, found := index[gid]
				if !found {
					g = entity.TaxGroup{ID: gid, Name: gid}
				}
				ga = &groupAcc{group: g}
				accs[gid] = ga
				groupOrder = append(groupOrder, gid)
			}
			if !slices.Contains(ga.taxIDs, d.Tax.ID) {
				ga.taxIDs = append(ga.taxIDs, d.Tax.ID)
			}
			if !baseSeen[gid] {
				baseSeen[gid] = true
				ga.base = ga.base.Add(d.Base)
				ga.baseCompany = ga.baseCompany.Add(d.BaseCompany)
				fallback[gid] = d
				lineGroups = append(lineGroups, gid)
			}
			if d.HasDisplayBase && !displaySeen[gid] {
				displaySeen[gid] = true
				ga.display = ga.display.Add(d.DisplayBase)
				ga.displayCompany = ga.displayCompany.Add(d.DisplayBaseCompany)
				ga.hasDisplay = true
			}
		}
		// Grupos con solo impuestos fijos en esta línea: la base sustituye al display.
		for _, gid := range lineGroups {
			if displaySeen[gid] {
				continue
			}
			d := fallback[gid]
			ga := accs[gid]
			ga.display = ga.display.Add(d.Base)
			ga.displayCompany = ga.displayCompany.Add(d.BaseCompany)
		}
	}

	_, taxes := sumByTax(lines)
	cur, comp := a.currency, a.companyCurrency

	reported := make([]groupTotals, 0, len(groupOrder))
	for _, gid := range groupOrder {
		ga := accs[gid]
		gt := entity.TaxGroupTotals{
			ID:                 ga.group.ID,
			GroupName:          ga.group.Name,
			Sequence:           ga.group.Sequence,
			BaseAmount:         a.rounding.Finalize(comp, ga.baseCompany),
			BaseAmountCurrency: a.rounding.Finalize(cur, ga.base),
			TaxAmount:          decimal.Zero,
			TaxAmountCurrency:  decimal.Zero,
		}
		for _, tid := range ga.taxIDs {
			ta := taxes[tid]
			gt.TaxAmountCurrency = gt.TaxAmountCurrency.Add(a.rounding.Finalize(cur, ta.amount))
			gt.TaxAmount = gt.TaxAmount.Add(a.rounding.Finalize(comp, ta.amountCompany))
		}
		if ga.hasDisplay {
			gt.DisplayBaseAmountCurrency = decimal.NewNullDecimal(a.rounding.Finalize(cur, ga.display))
			gt.DisplayBaseAmount = decimal.NewNullDecimal(a.rounding.Finalize(comp, ga.displayCompany))
		}
		reported = append(reported, groupTotals{group: ga.group, totals: gt})
	}
	sort.SliceStable(reported, func(i, j int) bool {
		return reported[i].group.Sequence < reported[j].group.Sequence
	})

	res := &entity.TotalsResult{
		SameTaxBase:        sameTaxBase(reported),
		BaseAmount:         a.rounding.Finalize(comp, untaxedCompany),
		BaseAmountCurrency: a.rounding.Finalize(cur, untaxed),
	}
	res.Subtotals, res.Warnings = buildSubtotals(reported)
	RecomputeTotals(res)
	return res
}

// sameTaxBase verdadero si todos los grupos reportados comparten la base en
// moneda del documento (vacuamente verdadero sin grupos).
func sameTaxBase(reported []groupTotals) bool {
	for i := 1; i < len(reported); i++ {
		if !reported[i].totals.BaseAmountCurrency.Equal(reported[0].totals.BaseAmountCurrency) {
			return false
		}
	}
	return true
}
