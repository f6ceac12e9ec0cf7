package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aircatering-bi/internal/application/dto"
	"github.com/jhoicas/aircatering-bi/internal/domain"
	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
)

func TestProduction_EfficiencyVariantsPerCallSite(t *testing.T) {
	got, err := NewProductionUseCase(staticSource{fullSession()}).Get(context.Background(), dto.ProductionRequest{})
	require.NoError(t, err)

	// KPI: media de (100%, 50%, 100%)
	assertDec(t, "83.3", got.KPIs.MeanEfficiency)
	// 450 / 600
	assertDec(t, "75", got.KPIs.WeightedEfficiency)

	// Por turno: Σproducido / Σplanificado. Manhã = 250/400, no la media 75.
	require.Equal(t, []string{"Manhã", "Tarde"}, keys(got.EfficiencyByShift))
	assertDec(t, "62.5", got.EfficiencyByShift[0].Value)
	assertDec(t, "100", got.EfficiencyByShift[1].Value)
}

func TestProduction_KPIsAndLines(t *testing.T) {
	got, err := NewProductionUseCase(staticSource{fullSession()}).Get(context.Background(), dto.ProductionRequest{})
	require.NoError(t, err)

	assert.Equal(t, int64(450), got.KPIs.TotalProduced)
	assertDec(t, "4500", got.KPIs.TotalCost)
	assertDec(t, "4", got.KPIs.MeanQuality)
	assert.Equal(t, 3, got.KPIs.Runs)
	assert.Equal(t, []string{"Linha 1", "Linha 2"}, keys(got.ProducedByLine))
	assertDec(t, "300", got.ProducedByLine[0].Value)
}

func TestProduction_Filters(t *testing.T) {
	got, err := NewProductionUseCase(staticSource{fullSession()}).Get(context.Background(), dto.ProductionRequest{
		Lines: []string{"Linha 1"},
		From:  "2024-01-03",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, got.KPIs.Runs)
	assert.Equal(t, int64(200), got.KPIs.TotalProduced)
}

func TestProduction_ZeroPlannedDoesNotFail(t *testing.T) {
	s := &entity.Session{Production: tableOf(entity.ProductionRun{Shift: "Noite", PlannedQty: 0, ProducedQty: 5})}
	got, err := NewProductionUseCase(staticSource{s}).Get(context.Background(), dto.ProductionRequest{})
	require.NoError(t, err)
	assert.True(t, got.KPIs.MeanEfficiency.IsZero())
	assert.True(t, got.EfficiencyByShift[0].Value.IsZero())
}

func TestProduction_MissingDataset(t *testing.T) {
	_, err := NewProductionUseCase(staticSource{&entity.Session{}}).Get(context.Background(), dto.ProductionRequest{})
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
}
