package entity

import "github.com/shopspring/decimal"

// RoundingMethod momento en que se redondean los importes de impuesto.
type RoundingMethod string

const (
	RoundPerLine  RoundingMethod = "round_per_line"
	RoundGlobally RoundingMethod = "round_globally"
)

// CashRoundingStrategy dónde se registra la diferencia del redondeo de efectivo.
type CashRoundingStrategy string

const (
	CashRoundingAddInvoiceLine CashRoundingStrategy = "add_invoice_line"
	CashRoundingBiggestTax     CashRoundingStrategy = "biggest_tax"
)

// CashRoundingMethod sentido del redondeo al incremento.
type CashRoundingMethod string

const (
	CashRoundingHalfUp CashRoundingMethod = "HALF-UP"
	CashRoundingUp     CashRoundingMethod = "UP"
	CashRoundingDown   CashRoundingMethod = "DOWN"
)

// CashRounding ajuste opcional del total al incremento de efectivo (ej. 0.05).
type CashRounding struct {
	Strategy  CashRoundingStrategy
	Method    CashRoundingMethod
	Increment decimal.Decimal
}

// Line línea de documento con sus impuestos ordenados.
// Rate sobrescribe la tasa del documento cuando no es nil.
type Line struct {
	ID        string
	PriceUnit decimal.Decimal
	Quantity  decimal.Decimal
	Discount  decimal.Decimal
	Taxes     []Tax
	Rate      *decimal.Decimal
}

// NewLine crea una línea de cantidad 1 y sin descuento.
func NewLine(id string, priceUnit decimal.Decimal, taxes ...Tax) Line {
	return Line{ID: id, PriceUnit: priceUnit, Quantity: decimal.NewFromInt(1), Taxes: taxes}
}

// RawBase precio_unitario × cantidad × (1 − descuento/100), sin redondear.
func (l Line) RawBase() decimal.Decimal {
	raw := l.PriceUnit.Mul(l.Quantity)
	if !l.Discount.IsZero() {
		raw = raw.Mul(decimal.NewFromInt(1).Sub(l.Discount.Div(decimal.NewFromInt(100))))
	}
	return raw
}

// EffectiveRate tasa aplicable a la línea (multiplicador moneda documento → compañía).
func (l Line) EffectiveRate(docRate decimal.Decimal) decimal.Decimal {
	if l.Rate != nil {
		return *l.Rate
	}
	return docRate
}

// Document entrada completa del cálculo de totales.
type Document struct {
	RoundingMethod     RoundingMethod
	Currency           Currency
	CompanyCurrency    Currency
	Rate               decimal.Decimal
	CashRounding       *CashRounding
	Lines              []Line
	TaxGroups          []TaxGroup
	ExcludeTaxGroupIDs []string
}

// TaxGroupByID índice de grupos por ID.
func (d Document) TaxGroupByID() map[string]TaxGroup {
	idx := make(map[string]TaxGroup, len(d.TaxGroups))
	for _, g := range d.TaxGroups {
		idx[g.ID] = g
	}
	return idx
}

// ExcludedGroups conjunto de grupos a omitir de los totales.
func (d Document) ExcludedGroups() map[string]bool {
	set := make(map[string]bool, len(d.ExcludeTaxGroupIDs))
	for _, id := range d.ExcludeTaxGroupIDs {
		set[id] = true
	}
	return set
}
