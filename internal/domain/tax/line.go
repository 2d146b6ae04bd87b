package tax

import (
	"fmt"

	"github.com/jhoicas/taxtotals/internal/domain"
	"github.com/jhoicas/taxtotals/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TaxDetail resultado de un impuesto dentro de una línea, en ambas monedas.
// HasDisplayBase es falso para impuestos fijos.
type TaxDetail struct {
	Tax                entity.Tax
	Base               decimal.Decimal
	Amount             decimal.Decimal
	DisplayBase        decimal.Decimal
	HasDisplayBase     bool
	BaseCompany        decimal.Decimal
	AmountCompany      decimal.Decimal
	DisplayBaseCompany decimal.Decimal
}

// LineResult desglose de una línea. Los campos sin sufijo están en la moneda del
// documento; los *Company en la moneda de la compañía.
type LineResult struct {
	LineID               string
	TotalExcluded        decimal.Decimal
	TotalIncluded        decimal.Decimal
	TotalExcludedCompany decimal.Decimal
	TotalIncludedCompany decimal.Decimal
	Taxes                []TaxDetail
}

// LineComputer calcula bases e importes de impuestos de una línea.
type LineComputer struct {
	currency        entity.Currency
	companyCurrency entity.Currency
	rate            decimal.Decimal
	rounding        RoundingStrategy
}

// NewLineComputer crea el calculador para un documento.
func NewLineComputer(cur, companyCur entity.Currency, rate decimal.Decimal, rounding RoundingStrategy) *LineComputer {
	return &LineComputer{currency: cur, companyCurrency: companyCur, rate: rate, rounding: rounding}
}

// lineState acumuladores por impuesto durante el cálculo de una línea.
type lineState struct {
	taxes            []entity.Tax
	batches          []batch
	computed         []bool
	amounts          []decimal.Decimal
	extraBaseForTax  []decimal.Decimal
	extraBaseForBase []decimal.Decimal
}

func (s *lineState) add(i int, v decimal.Decimal) {
	if !s.computed[i] {
		s.extraBaseForTax[i] = s.extraBaseForTax[i].Add(v)
	}
	s.extraBaseForBase[i] = s.extraBaseForBase[i].Add(v)
}

// propagate reparte el importe del impuesto i sobre las bases de los demás.
func (s *lineState) propagate(i int) {
	t := s.taxes[i]
	b := s.batches[i]
	amount := s.amounts[i]
	switch {
	case t.PriceInclude:
		for j := 0; j < b.start; j++ {
			s.add(j, amount.Neg())
		}
		if t.IncludeBaseAmount {
			for j := b.end + 1; j < len(s.taxes); j++ {
				if !s.taxes[j].IsBaseAffected {
					s.add(j, amount.Neg())
				}
			}
		}
	case t.IncludeBaseAmount:
		for j := b.end + 1; j < len(s.taxes); j++ {
			if s.taxes[j].IsBaseAffected {
				s.add(j, amount)
			}
		}
	}
}

// batchTotal suma de los importes ya calculados del lote de i.
func (s *lineState) batchTotal(i int) decimal.Decimal {
	b := s.batches[i]
	total := decimal.Zero
	for j := b.start; j <= b.end; j++ {
		total = total.Add(s.amounts[j])
	}
	return total
}

// ComputeLine aplica los impuestos de la línea en orden de secuencia.
// Orden de evaluación: fijos, incluidos en el precio (en reversa), excluidos.
func (c *LineComputer) ComputeLine(line entity.Line) (LineResult, error) {
	taxes := entity.SortTaxes(line.Taxes)
	n := len(taxes)
	raw := c.rounding.RoundLine(c.currency, line.RawBase())

	s := &lineState{
		taxes:            taxes,
		batches:          buildBatches(taxes),
		computed:         make([]bool, n),
		amounts:          make([]decimal.Decimal, n),
		extraBaseForTax:  make([]decimal.Decimal, n),
		extraBaseForBase: make([]decimal.Decimal, n),
	}

	eval := func(i int) error {
		amount, err := c.evalTax(s, i, raw, line.Quantity)
		if err != nil {
			return err
		}
		s.amounts[i] = c.rounding.RoundLine(c.currency, amount)
		s.computed[i] = true
		s.propagate(i)
		return nil
	}

	for i := n - 1; i >= 0; i-- {
		if taxes[i].Kind == entity.KindFixed {
			if err := eval(i); err != nil {
				return LineResult{}, err
			}
		}
	}
	for i := n - 1; i >= 0; i-- {
		if taxes[i].PriceInclude && !s.computed[i] {
			if err := eval(i); err != nil {
				return LineResult{}, err
			}
		}
	}
	for i := 0; i < n; i++ {
		if !s.computed[i] {
			if err := eval(i); err != nil {
				return LineResult{}, err
			}
		}
	}

	rate := line.EffectiveRate(c.rate)
	toCompany := func(d decimal.Decimal) decimal.Decimal {
		return c.rounding.RoundLine(c.companyCurrency, d.Mul(rate))
	}

	res := LineResult{LineID: line.ID, Taxes: make([]TaxDetail, n)}
	included := decimal.Zero
	all := decimal.Zero
	for i, t := range taxes {
		base := raw.Add(s.extraBaseForBase[i])
		if t.PriceInclude {
			base = base.Sub(s.batchTotal(i))
			included = included.Add(s.amounts[i])
		}
		all = all.Add(s.amounts[i])

		display := base
		if t.PriceInclude && t.Kind == entity.KindDivision {
			display = base.Add(s.batchTotal(i))
		}
		res.Taxes[i] = TaxDetail{
			Tax:                t,
			Base:               base,
			Amount:             s.amounts[i],
			DisplayBase:        display,
			HasDisplayBase:     t.Kind != entity.KindFixed,
			BaseCompany:        toCompany(base),
			AmountCompany:      toCompany(s.amounts[i]),
			DisplayBaseCompany: toCompany(display),
		}
	}
	res.TotalExcluded = raw.Sub(included)
	res.TotalIncluded = res.TotalExcluded.Add(all)
	res.TotalExcludedCompany = toCompany(res.TotalExcluded)
	res.TotalIncludedCompany = toCompany(res.TotalIncluded)
	return res, nil
}

// evalTax importe sin redondear del impuesto i sobre su base acumulada.
func (c *LineComputer) evalTax(s *lineState, i int, raw, quantity decimal.Decimal) (decimal.Decimal, error) {
	t := s.taxes[i]
	base := raw.Add(s.extraBaseForTax[i])
	sum := s.batches[i].sum

	switch t.Kind {
	case entity.KindFixed:
		qty := quantity.Abs()
		if raw.IsNegative() {
			qty = qty.Neg()
		}
		return qty.Mul(t.Amount), nil
	case entity.KindPercentage:
		if t.PriceInclude {
			denom := hundred.Add(sum)
			if denom.IsZero() {
				return decimal.Zero, nil
			}
			return base.Mul(t.Amount).Div(denom), nil
		}
		return base.Mul(t.Amount).Div(hundred), nil
	case entity.KindDivision:
		if t.PriceInclude {
			return base.Mul(t.Amount).Div(hundred), nil
		}
		denom := hundred.Sub(sum)
		if denom.IsZero() {
			return decimal.Zero, fmt.Errorf("%w: impuesto %s", domain.ErrDegenerateDivision, t.ID)
		}
		return base.Mul(t.Amount).Div(denom), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: impuesto %s (%d)", domain.ErrUnknownComputation, t.ID, t.Kind)
	}
}
