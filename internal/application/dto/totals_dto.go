package dto

import "github.com/shopspring/decimal"

// CurrencyRequest moneda por código ISO 4217. Digits y Rounding sobrescriben
// la precisión estándar; son obligatorios para códigos no ISO.
type CurrencyRequest struct {
	Code     string           `json:"code"`
	Digits   *int32           `json:"digits,omitempty"`
	Rounding *decimal.Decimal `json:"rounding,omitempty"`
}

// TaxRequest impuesto definido a nivel de documento; las líneas lo referencian por ID.
// AmountType: fixed | percent | division. IsBaseAffected vale true si se omite.
type TaxRequest struct {
	ID                string          `json:"id"`
	Name              string          `json:"name,omitempty"`
	Sequence          int             `json:"sequence"`
	AmountType        string          `json:"amount_type"`
	Amount            decimal.Decimal `json:"amount"`
	PriceInclude      bool            `json:"price_include"`
	IncludeBaseAmount bool            `json:"include_base_amount"`
	IsBaseAffected    *bool           `json:"is_base_affected,omitempty"`
	TaxGroupID        string          `json:"tax_group_id"`
}

// TaxGroupRequest grupo de impuestos; PrecedingSubtotal etiqueta el nivel de subtotal.
type TaxGroupRequest struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Sequence          int    `json:"sequence"`
	PrecedingSubtotal string `json:"preceding_subtotal,omitempty"`
}

// LineRequest línea del documento. Quantity vale 1 si se omite; Discount es porcentaje.
type LineRequest struct {
	ID        string           `json:"id"`
	PriceUnit decimal.Decimal  `json:"price_unit"`
	Quantity  *decimal.Decimal `json:"quantity,omitempty"`
	Discount  decimal.Decimal  `json:"discount"`
	TaxIDs    []string         `json:"tax_ids"`
	Rate      *decimal.Decimal `json:"rate,omitempty"` // sobrescribe la tasa del documento
}

// CashRoundingRequest redondeo de efectivo. Strategy: add_invoice_line | biggest_tax.
// Method: HALF-UP (defecto) | UP | DOWN. Sin Increment se usa el de efectivo de la moneda.
type CashRoundingRequest struct {
	Strategy  string           `json:"strategy"`
	Method    string           `json:"method,omitempty"`
	Increment *decimal.Decimal `json:"increment,omitempty"`
}

// TotalsRequest body para POST /api/totals y POST /api/totals/by-tax.
// CompanyCurrency igual a Currency si se omite; Rate (documento → compañía) vale 1 si se omite.
type TotalsRequest struct {
	RoundingMethod     string               `json:"rounding_method,omitempty"`
	Currency           CurrencyRequest      `json:"currency"`
	CompanyCurrency    *CurrencyRequest     `json:"company_currency,omitempty"`
	Rate               *decimal.Decimal     `json:"rate,omitempty"`
	CashRounding       *CashRoundingRequest `json:"cash_rounding,omitempty"`
	Taxes              []TaxRequest         `json:"taxes"`
	TaxGroups          []TaxGroupRequest    `json:"tax_groups"`
	Lines              []LineRequest        `json:"lines"`
	ExcludeTaxGroupIDs []string             `json:"exclude_tax_group_ids,omitempty"`
}

// BatchTotalsRequest body para POST /api/totals/batch.
type BatchTotalsRequest struct {
	Documents []TotalsRequest `json:"documents"`
}

// TaxGroupTotalsResponse importes de un grupo. Los campos *_currency están en la
// moneda del documento; los demás en la de la compañía.
type TaxGroupTotalsResponse struct {
	ID                            string              `json:"id"`
	GroupName                     string              `json:"group_name"`
	BaseAmount                    decimal.Decimal     `json:"base_amount"`
	BaseAmountCurrency            decimal.Decimal     `json:"base_amount_currency"`
	TaxAmount                     decimal.Decimal     `json:"tax_amount"`
	TaxAmountCurrency             decimal.Decimal     `json:"tax_amount_currency"`
	DisplayBaseAmount             decimal.NullDecimal `json:"display_base_amount"`
	DisplayBaseAmountCurrency     decimal.NullDecimal `json:"display_base_amount_currency"`
	CashRoundingTaxAmount         decimal.NullDecimal `json:"cash_rounding_tax_amount"`
	CashRoundingTaxAmountCurrency decimal.NullDecimal `json:"cash_rounding_tax_amount_currency"`
}

// SubtotalResponse nivel de subtotal.
type SubtotalResponse struct {
	Name               string                   `json:"name"`
	BaseAmount         decimal.Decimal          `json:"base_amount"`
	BaseAmountCurrency decimal.Decimal          `json:"base_amount_currency"`
	TaxAmount          decimal.Decimal          `json:"tax_amount"`
	TaxAmountCurrency  decimal.Decimal          `json:"tax_amount_currency"`
	TaxGroups          []TaxGroupTotalsResponse `json:"tax_groups"`
}

// WarningResponse advertencia de integridad de datos.
type WarningResponse struct {
	Code       string `json:"code"`
	TaxGroupID string `json:"tax_group_id,omitempty"`
	Message    string `json:"message"`
}

// TotalsResponse resumen de totales del documento.
type TotalsResponse struct {
	ComputationID                  string              `json:"computation_id"`
	SameTaxBase                    bool                `json:"same_tax_base"`
	BaseAmount                     decimal.Decimal     `json:"base_amount"`
	BaseAmountCurrency             decimal.Decimal     `json:"base_amount_currency"`
	TaxAmount                      decimal.Decimal     `json:"tax_amount"`
	TaxAmountCurrency              decimal.Decimal     `json:"tax_amount_currency"`
	TotalAmount                    decimal.Decimal     `json:"total_amount"`
	TotalAmountCurrency            decimal.Decimal     `json:"total_amount_currency"`
	CashRoundingBaseAmount         decimal.NullDecimal `json:"cash_rounding_base_amount"`
	CashRoundingBaseAmountCurrency decimal.NullDecimal `json:"cash_rounding_base_amount_currency"`
	Subtotals                      []SubtotalResponse  `json:"subtotals"`
	Warnings                       []WarningResponse   `json:"warnings"`
}

// TaxTotalsResponse totales planos de un impuesto.
type TaxTotalsResponse struct {
	TaxID                     string              `json:"tax_id"`
	TaxName                   string              `json:"tax_name,omitempty"`
	BaseAmount                decimal.Decimal     `json:"base_amount"`
	BaseAmountCurrency        decimal.Decimal     `json:"base_amount_currency"`
	TaxAmount                 decimal.Decimal     `json:"tax_amount"`
	TaxAmountCurrency         decimal.Decimal     `json:"tax_amount_currency"`
	DisplayBaseAmount         decimal.NullDecimal `json:"display_base_amount"`
	DisplayBaseAmountCurrency decimal.NullDecimal `json:"display_base_amount_currency"`
}

// PerTaxTotalsResponse respuesta de POST /api/totals/by-tax, indexada por ID de impuesto.
type PerTaxTotalsResponse struct {
	ComputationID string                       `json:"computation_id"`
	Taxes         map[string]TaxTotalsResponse `json:"taxes"`
}

// BatchTotalsResponse resultados en el mismo orden que los documentos de entrada.
type BatchTotalsResponse struct {
	Results []TotalsResponse `json:"results"`
}
