package tax

import (
	"github.com/jhoicas/taxtotals/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// batch tramo contiguo [start, end] de impuestos que comparten denominador.
type batch struct {
	start, end int
	sum        decimal.Decimal
}

func (b batch) contains(i int) bool { return i >= b.start && i <= b.end }

// joinsBatch indica si t se agrega al lote que comienza con next (el impuesto siguiente).
func joinsBatch(t, next entity.Tax) bool {
	return t.Kind == next.Kind &&
		t.PriceInclude == next.PriceInclude &&
		t.IncludeBaseAmount == next.IncludeBaseAmount &&
		(!t.IncludeBaseAmount || !next.IsBaseAffected)
}

// buildBatches recorre los impuestos ordenados de atrás hacia adelante y
// devuelve, por índice, el lote al que pertenece cada uno.
func buildBatches(taxes []entity.Tax) []batch {
	out := make([]batch, len(taxes))
	if len(taxes) == 0 {
		return out
	}
	cur := batch{start: len(taxes) - 1, end: len(taxes) - 1}
	var groups []batch
	for i := len(taxes) - 2; i >= 0; i-- {
		if joinsBatch(taxes[i], taxes[cur.start]) {
			cur.start = i
			continue
		}
		groups = append(groups, cur)
		cur = batch{start: i, end: i}
	}
	groups = append(groups, cur)

	for _, b := range groups {
		for i := b.start; i <= b.end; i++ {
			b.sum = b.sum.Add(taxes[i].Amount)
		}
		for i := b.start; i <= b.end; i++ {
			out[i] = b
		}
	}
	return out
}
