package totals

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/taxtotals/internal/application/dto"
	"github.com/jhoicas/taxtotals/internal/domain"
	"github.com/jhoicas/taxtotals/internal/domain/entity"
	"github.com/jhoicas/taxtotals/internal/domain/tax"
	"github.com/jhoicas/taxtotals/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Options parámetros de ejecución del caso de uso (desde pkg/config).
type Options struct {
	DefaultRoundingMethod entity.RoundingMethod
	BatchWorkers          int
	MaxBatchSize          int
}

// UseCase calcula totales de documentos recibidos por la API.
type UseCase struct {
	calc *tax.TotalsCalculatorService
	log  *logger.Logger
	opts Options
}

// NewUseCase construye el caso de uso. Valores no positivos en opts toman los por defecto.
func NewUseCase(calc *tax.TotalsCalculatorService, log *logger.Logger, opts Options) *UseCase {
	if opts.DefaultRoundingMethod == "" {
		opts.DefaultRoundingMethod = entity.RoundPerLine
	}
	if opts.BatchWorkers <= 0 {
		opts.BatchWorkers = 4
	}
	if opts.MaxBatchSize <= 0 {
		opts.MaxBatchSize = 100
	}
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{calc: calc, log: log, opts: opts}
}

// ComputeTotals calcula el resumen de totales de un documento.
func (uc *UseCase) ComputeTotals(ctx context.Context, in dto.TotalsRequest) (*dto.TotalsResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := toDocument(in, uc.opts.DefaultRoundingMethod)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	log := uc.log.WithComputation(id)
	res, err := uc.calc.ComputeTotals(doc)
	if err != nil {
		log.Warn().Err(err).Msg("totals: cálculo rechazado")
		return nil, err
	}

	log.Info().
		Int("lines", len(doc.Lines)).
		Str("rounding_method", string(doc.RoundingMethod)).
		Str("currency", doc.Currency.Code).
		Str("total", res.TotalAmountCurrency.String()).
		Msg("totals: documento calculado")
	for _, w := range res.Warnings {
		log.Warn().Str("code", w.Code).Str("tax_group_id", w.TaxGroupID).Msg(w.Message)
	}
	return toTotalsResponse(id, res), nil
}

// ComputeTaxTotals calcula los totales planos por impuesto.
func (uc *UseCase) ComputeTaxTotals(ctx context.Context, in dto.TotalsRequest) (*dto.PerTaxTotalsResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := toDocument(in, uc.opts.DefaultRoundingMethod)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	totals, err := uc.calc.ComputeTaxTotals(doc)
	if err != nil {
		uc.log.WithComputation(id).Warn().Err(err).Msg("totals: cálculo por impuesto rechazado")
		return nil, err
	}
	uc.log.WithComputation(id).Info().
		Int("lines", len(doc.Lines)).
		Int("taxes", len(totals)).
		Msg("totals: totales por impuesto calculados")
	return toPerTaxResponse(id, totals), nil
}

// ComputeBatch calcula varios documentos en paralelo (máximo opts.BatchWorkers a la vez).
// El primer error cancela el lote y no se devuelven resultados parciales.
func (uc *UseCase) ComputeBatch(ctx context.Context, in dto.BatchTotalsRequest) (*dto.BatchTotalsResponse, error) {
	if len(in.Documents) > uc.opts.MaxBatchSize {
		return nil, fmt.Errorf("%w: el lote admite hasta %d documentos (recibidos %d)",
			domain.ErrInvalidInput, uc.opts.MaxBatchSize, len(in.Documents))
	}

	results := make([]dto.TotalsResponse, len(in.Documents))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.opts.BatchWorkers)
	for i := range in.Documents {
		i := i
		g.Go(func() error {
			res, err := uc.ComputeTotals(gctx, in.Documents[i])
			if err != nil {
				return fmt.Errorf("documento %d: %w", i, err)
			}
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dto.BatchTotalsResponse{Results: results}, nil
}
