package tax_test

import (
	"testing"

	"github.com/jhoicas/taxtotals/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Constructores compartidos por los tests del motor.
// ──────────────────────────────────────────────────────────────────────────────

var (
	docCur     = entity.NewCurrency("USD", 2)
	companyCur = entity.NewCurrency("EUR", 2)
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

func percent(id string, seq int, amount, group string) entity.Tax {
	return entity.Tax{
		ID: id, Name: id, Sequence: seq, Kind: entity.KindPercentage,
		Amount: dec(amount), IsBaseAffected: true, TaxGroupID: group,
	}
}

func division(id string, seq int, amount, group string) entity.Tax {
	t := percent(id, seq, amount, group)
	t.Kind = entity.KindDivision
	return t
}

func fixed(id string, seq int, amount, group string) entity.Tax {
	t := percent(id, seq, amount, group)
	t.Kind = entity.KindFixed
	return t
}

func included(t entity.Tax) entity.Tax {
	t.PriceInclude = true
	return t
}

func compounding(t entity.Tax) entity.Tax {
	t.IncludeBaseAmount = true
	return t
}

func notBaseAffected(t entity.Tax) entity.Tax {
	t.IsBaseAffected = false
	return t
}

func group(id string, seq int, preceding string) entity.TaxGroup {
	return entity.TaxGroup{ID: id, Name: "Grupo " + id, Sequence: seq, PrecedingSubtotal: preceding}
}

func line(id, price string, taxes ...entity.Tax) entity.Line {
	return entity.NewLine(id, dec(price), taxes...)
}

func newDoc(method entity.RoundingMethod, rate string, groups []entity.TaxGroup, lines ...entity.Line) entity.Document {
	return entity.Document{
		RoundingMethod:  method,
		Currency:        docCur,
		CompanyCurrency: companyCur,
		Rate:            dec(rate),
		Lines:           lines,
		TaxGroups:       groups,
	}
}

// assertDec compara decimales por valor (4.86 == 4.860).
func assertDec(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "%s: esperado %s, obtenido %s", msg, want, got)
}

// assertNullDec verifica un opcional presente con el valor indicado.
func assertNullDec(t *testing.T, want string, got decimal.NullDecimal, msg string) {
	t.Helper()
	require.True(t, got.Valid, "%s: debe tener valor", msg)
	assertDec(t, want, got.Decimal, msg)
}

// findGroup busca un grupo reportado en cualquier nivel.
func findGroup(t *testing.T, res *entity.TotalsResult, id string) entity.TaxGroupTotals {
	t.Helper()
	for _, st := range res.Subtotals {
		for _, g := range st.TaxGroups {
			if g.ID == id {
				return g
			}
		}
	}
	require.Failf(t, "grupo no reportado", "grupo %s", id)
	return entity.TaxGroupTotals{}
}
