package entity

import "github.com/shopspring/decimal"

// Currency moneda con precisión fija. Rounding es el incremento mínimo
// representable (0.01 para 2 decimales, 0.05 para monedas con redondeo a 5 centavos).
type Currency struct {
	Code     string
	Digits   int32
	Rounding decimal.Decimal
}

// NewCurrency crea una moneda cuyo incremento es 10^-digits.
func NewCurrency(code string, digits int32) Currency {
	return Currency{Code: code, Digits: digits, Rounding: decimal.New(1, -digits)}
}

// Round redondea al múltiplo más cercano del incremento (mitad alejándose de cero).
func (c Currency) Round(d decimal.Decimal) decimal.Decimal {
	if !c.Rounding.IsPositive() || c.Rounding.Equal(decimal.New(1, -c.Digits)) {
		return d.Round(c.Digits)
	}
	return d.Div(c.Rounding).Round(0).Mul(c.Rounding).Round(c.Digits)
}

// IsZero indica si el importe redondeado en esta moneda es cero.
func (c Currency) IsZero(d decimal.Decimal) bool {
	return c.Round(d).IsZero()
}
