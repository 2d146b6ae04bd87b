package tax

import (
	"fmt"

	"github.com/jhoicas/taxtotals/internal/domain/entity"
)

// TotalsCalculatorService orquesta el cálculo: validación, líneas, agregación y
// redondeo de efectivo. No guarda estado entre llamadas.
type TotalsCalculatorService struct{}

// NewTotalsCalculatorService crea el servicio de dominio.
func NewTotalsCalculatorService() *TotalsCalculatorService {
	return &TotalsCalculatorService{}
}

// ComputeTotals calcula el resumen de totales del documento. Ante un error de
// configuración no devuelve resultado parcial.
func (s *TotalsCalculatorService) ComputeTotals(doc entity.Document) (*entity.TotalsResult, error) {
	if err := ValidateDocument(doc, true); err != nil {
		return nil, err
	}
	rounding, lines, err := s.computeLines(doc)
	if err != nil {
		return nil, err
	}

	agg := NewAggregator(doc.Currency, doc.CompanyCurrency, rounding)
	res := agg.Aggregate(lines, doc.TaxGroups, doc.ExcludedGroups())

	if doc.CashRounding != nil {
		adj := NewCashRoundingAdjuster(doc.Currency, doc.CompanyCurrency)
		if err := adj.Apply(res, *doc.CashRounding, doc.Rate); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// ComputeTaxTotals calcula los totales planos por impuesto (clave: ID del impuesto).
func (s *TotalsCalculatorService) ComputeTaxTotals(doc entity.Document) (map[string]entity.TaxTotals, error) {
	if err := ValidateDocument(doc, false); err != nil {
		return nil, err
	}
	rounding, lines, err := s.computeLines(doc)
	if err != nil {
		return nil, err
	}
	agg := NewAggregator(doc.Currency, doc.CompanyCurrency, rounding)
	return agg.AggregateByTax(lines), nil
}

// ComputeLines expone el desglose por línea (útil para depurar y para tests).
func (s *TotalsCalculatorService) ComputeLines(doc entity.Document) ([]LineResult, error) {
	if err := ValidateDocument(doc, false); err != nil {
		return nil, err
	}
	_, lines, err := s.computeLines(doc)
	return lines, err
}

func (s *TotalsCalculatorService) computeLines(doc entity.Document) (RoundingStrategy, []LineResult, error) {
	rounding, err := NewRoundingStrategy(doc.RoundingMethod)
	if err != nil {
		return nil, nil, err
	}
	computer := NewLineComputer(doc.Currency, doc.CompanyCurrency, doc.Rate, rounding)
	lines := make([]LineResult, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		lr, err := computer.ComputeLine(l)
		if err != nil {
			return nil, nil, fmt.Errorf("línea %s: %w", l.ID, err)
		}
		lines = append(lines, lr)
	}
	return rounding, lines, nil
}
