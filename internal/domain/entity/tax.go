package entity

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ComputationKind tipo de cálculo de un impuesto. El valor cero no es válido.
type ComputationKind int

const (
	KindFixed ComputationKind = iota + 1
	KindPercentage
	KindDivision
)

// Nombres de los tipos de cálculo tal como llegan en las peticiones.
const (
	KindNameFixed      = "fixed"
	KindNamePercentage = "percent"
	KindNameDivision   = "division"
)

func (k ComputationKind) String() string {
	switch k {
	case KindFixed:
		return KindNameFixed
	case KindPercentage:
		return KindNamePercentage
	case KindDivision:
		return KindNameDivision
	default:
		return "unknown"
	}
}

// IsValid indica si k es uno de los tipos soportados.
func (k ComputationKind) IsValid() bool {
	switch k {
	case KindFixed, KindPercentage, KindDivision:
		return true
	}
	return false
}

// ParseComputationKind convierte el nombre externo en ComputationKind.
// Acepta "percentage" como alias de "percent".
func ParseComputationKind(s string) (ComputationKind, bool) {
	switch s {
	case KindNameFixed:
		return KindFixed, true
	case KindNamePercentage, "percentage":
		return KindPercentage, true
	case KindNameDivision:
		return KindDivision, true
	}
	return 0, false
}

// Tax definición inmutable de un impuesto ya resuelto para una línea.
//   - PriceInclude: el precio de la línea ya contiene este impuesto.
//   - IncludeBaseAmount: el importe se suma a la base de los impuestos siguientes.
//   - IsBaseAffected: la base propia puede ser inflada por impuestos anteriores.
type Tax struct {
	ID                string
	Name              string
	Sequence          int
	Kind              ComputationKind
	Amount            decimal.Decimal
	PriceInclude      bool
	IncludeBaseAmount bool
	IsBaseAffected    bool
	TaxGroupID        string
}

// SortTaxes devuelve una copia ordenada por secuencia ascendente (estable).
func SortTaxes(taxes []Tax) []Tax {
	sorted := make([]Tax, len(taxes))
	copy(sorted, taxes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Sequence < sorted[j].Sequence
	})
	return sorted
}
