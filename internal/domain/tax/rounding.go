// Package tax contiene el motor de cálculo de impuestos por línea y la
// agregación de totales por grupo, nivel de subtotal y moneda.
package tax

import (
	"fmt"

	"github.com/jhoicas/taxtotals/internal/domain"
	"github.com/jhoicas/taxtotals/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// RoundingStrategy política de redondeo: RoundLine se aplica a cada importe de
// línea antes de propagarlo; Finalize a cada cifra agregada.
type RoundingStrategy interface {
	Method() entity.RoundingMethod
	RoundLine(cur entity.Currency, d decimal.Decimal) decimal.Decimal
	Finalize(cur entity.Currency, d decimal.Decimal) decimal.Decimal
}

// NewRoundingStrategy devuelve la estrategia del método indicado.
func NewRoundingStrategy(method entity.RoundingMethod) (RoundingStrategy, error) {
	switch method {
	case entity.RoundPerLine:
		return perLineRounding{}, nil
	case entity.RoundGlobally:
		return globalRounding{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedRounding, method)
	}
}

// perLineRounding redondea cada importe al producirse; las sumas de valores
// ya redondeados se conservan exactas.
type perLineRounding struct{}

func (perLineRounding) Method() entity.RoundingMethod { return entity.RoundPerLine }

func (perLineRounding) RoundLine(cur entity.Currency, d decimal.Decimal) decimal.Decimal {
	return cur.Round(d)
}

func (perLineRounding) Finalize(cur entity.Currency, d decimal.Decimal) decimal.Decimal {
	return cur.Round(d)
}

// globalRounding deja pasar los valores crudos y redondea una vez por cifra agregada.
type globalRounding struct{}

func (globalRounding) Method() entity.RoundingMethod { return entity.RoundGlobally }

func (globalRounding) RoundLine(_ entity.Currency, d decimal.Decimal) decimal.Decimal {
	return d
}

func (globalRounding) Finalize(cur entity.Currency, d decimal.Decimal) decimal.Decimal {
	return cur.Round(d)
}
