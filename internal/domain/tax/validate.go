package tax

import (
	"errors"
	"fmt"

	"github.com/jhoicas/taxtotals/internal/domain"
	"github.com/jhoicas/taxtotals/internal/domain/entity"
)

// maxCurrencyDigits límite razonable de decimales de una moneda.
const maxCurrencyDigits = 12

// ValidateDocument revisa la configuración completa antes de calcular.
// Reúne todos los errores encontrados; cualquiera de ellos aborta el cálculo.
// checkGroups exige que cada impuesto apunte a un grupo definido.
func ValidateDocument(doc entity.Document, checkGroups bool) error {
	var errs []error

	if _, err := NewRoundingStrategy(doc.RoundingMethod); err != nil {
		errs = append(errs, err)
	}
	if err := validateCurrency(doc.Currency); err != nil {
		errs = append(errs, fmt.Errorf("moneda del documento: %w", err))
	}
	if err := validateCurrency(doc.CompanyCurrency); err != nil {
		errs = append(errs, fmt.Errorf("moneda de la compañía: %w", err))
	}
	if !doc.Rate.IsPositive() {
		errs = append(errs, fmt.Errorf("%w: la tasa debe ser positiva (%s)", domain.ErrInvalidInput, doc.Rate))
	}
	if doc.CashRounding != nil {
		if err := ValidateCashRounding(*doc.CashRounding); err != nil {
			errs = append(errs, err)
		}
	}

	groups := doc.TaxGroupByID()
	for _, line := range doc.Lines {
		if line.Rate != nil && !line.Rate.IsPositive() {
			errs = append(errs, fmt.Errorf("%w: línea %s: la tasa debe ser positiva (%s)",
				domain.ErrInvalidInput, line.ID, *line.Rate))
		}
		taxes := entity.SortTaxes(line.Taxes)
		for i, b := range buildBatches(taxes) {
			t := taxes[i]
			if !t.Kind.IsValid() {
				errs = append(errs, fmt.Errorf("%w: línea %s, impuesto %s (%d)",
					domain.ErrUnknownComputation, line.ID, t.ID, t.Kind))
				continue
			}
			if t.Kind == entity.KindDivision {
				if t.Amount.Equal(hundred) {
					errs = append(errs, fmt.Errorf("%w: línea %s, impuesto %s",
						domain.ErrDegenerateDivision, line.ID, t.ID))
				} else if !t.PriceInclude && i == b.start && b.sum.Equal(hundred) {
					errs = append(errs, fmt.Errorf("%w: línea %s, lote desde %s suma 100",
						domain.ErrDegenerateDivision, line.ID, t.ID))
				}
			}
			if checkGroups {
				if _, ok := groups[t.TaxGroupID]; !ok {
					errs = append(errs, fmt.Errorf("%w: línea %s, impuesto %s, grupo %q",
						domain.ErrUnknownTaxGroup, line.ID, t.ID, t.TaxGroupID))
				}
			}
		}
	}
	return errors.Join(errs...)
}

func validateCurrency(c entity.Currency) error {
	if c.Digits < 0 || c.Digits > maxCurrencyDigits {
		return fmt.Errorf("%w: decimales fuera de rango (%d)", domain.ErrInvalidInput, c.Digits)
	}
	if !c.Rounding.IsPositive() {
		return fmt.Errorf("%w: incremento de redondeo no positivo", domain.ErrInvalidInput)
	}
	return nil
}
