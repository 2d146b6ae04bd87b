package entity_test

import (
	"testing"

	"github.com/jhoicas/taxtotals/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseComputationKind(t *testing.T) {
	tests := []struct {
		in   string
		want entity.ComputationKind
		ok   bool
	}{
		{"fixed", entity.KindFixed, true},
		{"percent", entity.KindPercentage, true},
		{"percentage", entity.KindPercentage, true},
		{"division", entity.KindDivision, true},
		{"code", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := entity.ParseComputationKind(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	assert.False(t, entity.ComputationKind(0).IsValid(), "el valor cero no es un tipo válido")
	assert.Equal(t, "division", entity.KindDivision.String())
}

func TestLine_RawBase(t *testing.T) {
	l := entity.NewLine("l1", decimal.RequireFromString("5.75"))
	l.Quantity = decimal.NewFromInt(5)
	l.Discount = decimal.NewFromInt(18)
	assert.True(t, decimal.RequireFromString("23.575").Equal(l.RawBase()), "5.75 × 5 × 0.82")

	rate := decimal.NewFromInt(3)
	assert.True(t, decimal.NewFromInt(2).Equal(l.EffectiveRate(decimal.NewFromInt(2))), "sin tasa propia usa la del documento")
	l.Rate = &rate
	assert.True(t, rate.Equal(l.EffectiveRate(decimal.NewFromInt(2))), "la tasa de la línea prevalece")
}

func TestDocument_Indices(t *testing.T) {
	doc := entity.Document{
		TaxGroups:          []entity.TaxGroup{{ID: "g1"}, {ID: "g2"}},
		ExcludeTaxGroupIDs: []string{"g2"},
	}
	assert.Len(t, doc.TaxGroupByID(), 2)
	assert.True(t, doc.ExcludedGroups()["g2"])
	assert.False(t, doc.ExcludedGroups()["g1"])
}
