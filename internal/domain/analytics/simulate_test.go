package analytics_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aircatering-bi/internal/domain/analytics"
)

func TestSimulateAbsenteeism_DeterministaYRecortado(t *testing.T) {
	a := analytics.SimulateAbsenteeism(500, analytics.DefaultAbsenteeismSeed)
	b := analytics.SimulateAbsenteeism(500, analytics.DefaultAbsenteeismSeed)
	require.Len(t, a, 500)
	assert.Equal(t, a, b, "misma semilla y tamaño producen los mismos valores")

	for _, v := range a {
		assert.GreaterOrEqual(t, v, analytics.AbsenteeismMin)
		assert.LessOrEqual(t, v, analytics.AbsenteeismMax)
	}

	c := analytics.SimulateAbsenteeism(500, 7)
	assert.NotEqual(t, a, c)
}

func TestSimulateAbsenteeism_PrefijoEstable(t *testing.T) {
	// El sorteo es por posición: las primeras filas no cambian al crecer la tabla.
	short := analytics.SimulateAbsenteeism(10, analytics.DefaultAbsenteeismSeed)
	long := analytics.SimulateAbsenteeism(20, analytics.DefaultAbsenteeismSeed)
	assert.Equal(t, short, long[:10])
}

func TestClip(t *testing.T) {
	assert.Equal(t, 0.0, analytics.Clip(-3, 0, 20))
	assert.Equal(t, 20.0, analytics.Clip(25, 0, 20))
	assert.Equal(t, 7.5, analytics.Clip(7.5, 0, 20))
}

func TestTrendMonths(t *testing.T) {
	months := analytics.TrendMonths(2024)
	require.Len(t, months, 12)
	assert.Equal(t, "2024-01", months[0])
	assert.Equal(t, "2024-12", months[11])
}

func TestSimulateTrend_Limites(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	points := analytics.SimulateTrend(r, analytics.TrendMonths(2024), 24, 10, analytics.TurnoverTrendMax)
	require.Len(t, points, 12)
	for _, p := range points {
		assert.GreaterOrEqual(t, p.Value, 0.0)
		assert.LessOrEqual(t, p.Value, analytics.TurnoverTrendMax)
	}
	assert.Equal(t, "2024-03", points[2].Month)
}
