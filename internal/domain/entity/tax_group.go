package entity

import "sort"

// UntaxedAmountLabel nombre fijo del primer nivel de subtotales.
const UntaxedAmountLabel = "Untaxed Amount"

// TaxGroup agrupa impuestos para mostrar y totalizar.
// PrecedingSubtotal vacío = el grupo pertenece al nivel "Untaxed Amount".
type TaxGroup struct {
	ID                string
	Name              string
	Sequence          int
	PrecedingSubtotal string
}

// SortTaxGroups devuelve una copia ordenada por secuencia ascendente (estable).
func SortTaxGroups(groups []TaxGroup) []TaxGroup {
	sorted := make([]TaxGroup, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Sequence < sorted[j].Sequence
	})
	return sorted
}
