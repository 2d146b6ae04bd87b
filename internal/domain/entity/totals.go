package entity

import "github.com/shopspring/decimal"

// Códigos de advertencia de integridad (no detienen el cálculo).
const (
	WarningSplitPrecedingSubtotal = "SPLIT_PRECEDING_SUBTOTAL"
)

// Warning advertencia de integridad de datos devuelta junto al resultado.
type Warning struct {
	Code       string
	TaxGroupID string
	Message    string
}

// TaxGroupTotals importes de un grupo de impuestos en ambas monedas.
// DisplayBaseAmount es nulo cuando todos los impuestos del grupo son fijos.
type TaxGroupTotals struct {
	ID                            string
	GroupName                     string
	Sequence                      int
	BaseAmount                    decimal.Decimal
	BaseAmountCurrency            decimal.Decimal
	TaxAmount                     decimal.Decimal
	TaxAmountCurrency             decimal.Decimal
	DisplayBaseAmount             decimal.NullDecimal
	DisplayBaseAmountCurrency     decimal.NullDecimal
	CashRoundingTaxAmount         decimal.NullDecimal
	CashRoundingTaxAmountCurrency decimal.NullDecimal
}

// Subtotal nivel de subtotales ("Untaxed Amount" o una etiqueta preceding_subtotal).
type Subtotal struct {
	Name               string
	BaseAmount         decimal.Decimal
	BaseAmountCurrency decimal.Decimal
	TaxAmount          decimal.Decimal
	TaxAmountCurrency  decimal.Decimal
	TaxGroups          []TaxGroupTotals
}

// TotalsResult resumen de totales del documento.
// Los campos *Currency están en la moneda del documento; los demás en la de la compañía.
type TotalsResult struct {
	SameTaxBase                    bool
	BaseAmount                     decimal.Decimal
	BaseAmountCurrency             decimal.Decimal
	TaxAmount                      decimal.Decimal
	TaxAmountCurrency              decimal.Decimal
	TotalAmount                    decimal.Decimal
	TotalAmountCurrency            decimal.Decimal
	CashRoundingBaseAmount         decimal.NullDecimal
	CashRoundingBaseAmountCurrency decimal.NullDecimal
	Subtotals                      []Subtotal
	Warnings                       []Warning
}

// TaxTotals totales planos de un impuesto individual.
type TaxTotals struct {
	TaxID                     string
	TaxName                   string
	BaseAmount                decimal.Decimal
	BaseAmountCurrency        decimal.Decimal
	TaxAmount                 decimal.Decimal
	TaxAmountCurrency         decimal.Decimal
	DisplayBaseAmount         decimal.NullDecimal
	DisplayBaseAmountCurrency decimal.NullDecimal
}
