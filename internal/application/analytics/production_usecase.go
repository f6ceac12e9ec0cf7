package analytics

import (
	"context"

	"github.com/jhoicas/aircatering-bi/internal/application/dto"
	core "github.com/jhoicas/aircatering-bi/internal/domain/analytics"
	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
)

// ProductionUseCase página de producción.
//
// Dos nociones de eficiencia:
//   - KPI "eficiencia media": media de produced/planned*100 de cada orden (MeanOfRatios).
//   - Serie por turno: Σproduced / Σplanned * 100 del turno (RatioOfSums).
//
// Con planificaciones desiguales dan resultados distintos.
type ProductionUseCase struct {
	sessions SessionSource
}

// NewProductionUseCase construye el caso de uso.
func NewProductionUseCase(sessions SessionSource) *ProductionUseCase {
	return &ProductionUseCase{sessions: sessions}
}

// Get calcula KPIs, producción por línea y eficiencia por turno.
func (uc *ProductionUseCase) Get(ctx context.Context, req dto.ProductionRequest) (*dto.ProductionPageDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := uc.sessions.Current()
	if s.Production == nil {
		return nil, datasetError(s, entity.DatasetProduction)
	}
	period, err := parseDateRange(req.From, req.To)
	if err != nil {
		return nil, err
	}

	rows := core.Filter(s.Production.Rows,
		core.In(runLine, core.SelectionFrom(req.Lines)),
		core.In(runShift, core.SelectionFrom(req.Shifts)),
		core.Between(runDate, period),
	)

	return &dto.ProductionPageDTO{
		KPIs: dto.ProductionKPIsDTO{
			TotalProduced:      core.SumOf(rows, runProduced).IntPart(),
			MeanEfficiency:     core.MeanOfRatios(runProduced, runPlanned)(rows).Round(1),
			WeightedEfficiency: core.RatioOfSums(runProduced, runPlanned)(rows).Round(1),
			TotalCost:          core.SumOf(rows, runCost).Round(2),
			MeanQuality:        core.MeanOf(rows, runQuality).Round(1),
			Runs:               len(rows),
		},
		ProducedByLine:    points(core.Aggregate(rows, runLine, core.Sum(runProduced))),
		EfficiencyByShift: points(core.Aggregate(rows, runShift, core.RatioOfSums(runProduced, runPlanned))),
	}, nil
}
