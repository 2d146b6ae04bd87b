package totals

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/taxtotals/internal/application/dto"
	"github.com/jhoicas/taxtotals/internal/domain"
	"github.com/jhoicas/taxtotals/internal/domain/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// resolveCurrency completa precisión e incremento desde la tabla ISO 4217.
func resolveCurrency(in dto.CurrencyRequest) (entity.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	cur := entity.Currency{Code: code}

	if in.Digits == nil || in.Rounding == nil {
		unit, err := currency.ParseISO(code)
		switch {
		case err == nil:
			scale, inc := currency.Standard.Rounding(unit)
			cur.Digits = int32(scale)
			cur.Rounding = decimal.New(int64(inc), -int32(scale))
		case in.Digits == nil:
			return entity.Currency{}, fmt.Errorf("%w: moneda %q no es ISO 4217 y no declara decimales", domain.ErrInvalidInput, in.Code)
		}
	}
	if in.Digits != nil {
		cur.Digits = *in.Digits
		cur.Rounding = decimal.New(1, -cur.Digits)
	}
	if in.Rounding != nil {
		cur.Rounding = *in.Rounding
	}
	return cur, nil
}

// cashIncrement incremento de efectivo de la moneda ISO (0.05 para CHF, etc.).
func cashIncrement(code string) (decimal.Decimal, bool) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return decimal.Zero, false
	}
	scale, inc := currency.Cash.Rounding(unit)
	return decimal.New(int64(inc), -int32(scale)), true
}

// toDocument convierte la petición en el documento de dominio.
func toDocument(in dto.TotalsRequest, defaultMethod entity.RoundingMethod) (entity.Document, error) {
	cur, err := resolveCurrency(in.Currency)
	if err != nil {
		return entity.Document{}, fmt.Errorf("currency: %w", err)
	}
	companyCur := cur
	if in.CompanyCurrency != nil {
		if companyCur, err = resolveCurrency(*in.CompanyCurrency); err != nil {
			return entity.Document{}, fmt.Errorf("company_currency: %w", err)
		}
	}

	doc := entity.Document{
		RoundingMethod:     entity.RoundingMethod(in.RoundingMethod),
		Currency:           cur,
		CompanyCurrency:    companyCur,
		Rate:               decimal.NewFromInt(1),
		TaxGroups:          make([]entity.TaxGroup, 0, len(in.TaxGroups)),
		Lines:              make([]entity.Line, 0, len(in.Lines)),
		ExcludeTaxGroupIDs: in.ExcludeTaxGroupIDs,
	}
	if doc.RoundingMethod == "" {
		doc.RoundingMethod = defaultMethod
	}
	if in.Rate != nil {
		doc.Rate = *in.Rate
	}

	if in.CashRounding != nil {
		cr := &entity.CashRounding{
			Strategy: entity.CashRoundingStrategy(in.CashRounding.Strategy),
			Method:   entity.CashRoundingMethod(strings.ToUpper(in.CashRounding.Method)),
		}
		if cr.Method == "" {
			cr.Method = entity.CashRoundingHalfUp
		}
		if in.CashRounding.Increment != nil {
			cr.Increment = *in.CashRounding.Increment
		} else if inc, ok := cashIncrement(cur.Code); ok {
			cr.Increment = inc
		}
		doc.CashRounding = cr
	}

	for _, g := range in.TaxGroups {
		doc.TaxGroups = append(doc.TaxGroups, entity.TaxGroup{
			ID:                g.ID,
			Name:              g.Name,
			Sequence:          g.Sequence,
			PrecedingSubtotal: g.PrecedingSubtotal,
		})
	}

	taxes := make(map[string]entity.Tax, len(in.Taxes))
	for _, t := range in.Taxes {
		if t.ID == "" {
			return entity.Document{}, fmt.Errorf("%w: impuesto sin id", domain.ErrInvalidInput)
		}
		// Un amount_type desconocido queda con Kind cero y lo rechaza la validación de dominio.
		kind, _ := entity.ParseComputationKind(t.AmountType)
		affected := true
		if t.IsBaseAffected != nil {
			affected = *t.IsBaseAffected
		}
		name := t.Name
		if name == "" {
			name = t.ID
		}
		taxes[t.ID] = entity.Tax{
			ID:                t.ID,
			Name:              name,
			Sequence:          t.Sequence,
			Kind:              kind,
			Amount:            t.Amount,
			PriceInclude:      t.PriceInclude,
			IncludeBaseAmount: t.IncludeBaseAmount,
			IsBaseAffected:    affected,
			TaxGroupID:        t.TaxGroupID,
		}
	}

	for i, l := range in.Lines {
		id := l.ID
		if id == "" {
			id = strconv.Itoa(i + 1)
		}
		line := entity.Line{
			ID:        id,
			PriceUnit: l.PriceUnit,
			Quantity:  decimal.NewFromInt(1),
			Discount:  l.Discount,
			Rate:      l.Rate,
		}
		if l.Quantity != nil {
			line.Quantity = *l.Quantity
		}
		for _, tid := range l.TaxIDs {
			t, ok := taxes[tid]
			if !ok {
				return entity.Document{}, fmt.Errorf("%w: línea %s referencia el impuesto %q no definido", domain.ErrInvalidInput, id, tid)
			}
			line.Taxes = append(line.Taxes, t)
		}
		doc.Lines = append(doc.Lines, line)
	}
	return doc, nil
}

func toTotalsResponse(id string, r *entity.TotalsResult) *dto.TotalsResponse {
	out := &dto.TotalsResponse{
		ComputationID:                  id,
		SameTaxBase:                    r.SameTaxBase,
		BaseAmount:                     r.BaseAmount,
		BaseAmountCurrency:             r.BaseAmountCurrency,
		TaxAmount:                      r.TaxAmount,
		TaxAmountCurrency:              r.TaxAmountCurrency,
		TotalAmount:                    r.TotalAmount,
		TotalAmountCurrency:            r.TotalAmountCurrency,
		CashRoundingBaseAmount:         r.CashRoundingBaseAmount,
		CashRoundingBaseAmountCurrency: r.CashRoundingBaseAmountCurrency,
		Subtotals:                      make([]dto.SubtotalResponse, 0, len(r.Subtotals)),
		Warnings:                       make([]dto.WarningResponse, 0, len(r.Warnings)),
	}
	for _, st := range r.Subtotals {
		sr := dto.SubtotalResponse{
			Name:               st.Name,
			BaseAmount:         st.BaseAmount,
			BaseAmountCurrency: st.BaseAmountCurrency,
			TaxAmount:          st.TaxAmount,
			TaxAmountCurrency:  st.TaxAmountCurrency,
			TaxGroups:          make([]dto.TaxGroupTotalsResponse, 0, len(st.TaxGroups)),
		}
		for _, g := range st.TaxGroups {
			sr.TaxGroups = append(sr.TaxGroups, dto.TaxGroupTotalsResponse{
				ID:                            g.ID,
				GroupName:                     g.GroupName,
				BaseAmount:                    g.BaseAmount,
				BaseAmountCurrency:            g.BaseAmountCurrency,
				TaxAmount:                     g.TaxAmount,
				TaxAmountCurrency:             g.TaxAmountCurrency,
				DisplayBaseAmount:             g.DisplayBaseAmount,
				DisplayBaseAmountCurrency:     g.DisplayBaseAmountCurrency,
				CashRoundingTaxAmount:         g.CashRoundingTaxAmount,
				CashRoundingTaxAmountCurrency: g.CashRoundingTaxAmountCurrency,
			})
		}
		out.Subtotals = append(out.Subtotals, sr)
	}
	for _, w := range r.Warnings {
		out.Warnings = append(out.Warnings, dto.WarningResponse{Code: w.Code, TaxGroupID: w.TaxGroupID, Message: w.Message})
	}
	return out
}

func toPerTaxResponse(id string, totals map[string]entity.TaxTotals) *dto.PerTaxTotalsResponse {
	out := &dto.PerTaxTotalsResponse{ComputationID: id, Taxes: make(map[string]dto.TaxTotalsResponse, len(totals))}
	for k, t := range totals {
		out.Taxes[k] = dto.TaxTotalsResponse{
			TaxID:                     t.TaxID,
			TaxName:                   t.TaxName,
			BaseAmount:                t.BaseAmount,
			BaseAmountCurrency:        t.BaseAmountCurrency,
			TaxAmount:                 t.TaxAmount,
			TaxAmountCurrency:         t.TaxAmountCurrency,
			DisplayBaseAmount:         t.DisplayBaseAmount,
			DisplayBaseAmountCurrency: t.DisplayBaseAmountCurrency,
		}
	}
	return out
}
