package synth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aircatering-bi/internal/application/synth"
	"github.com/jhoicas/aircatering-bi/internal/domain"
	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
	"github.com/jhoicas/aircatering-bi/internal/infrastructure/csvfile"
)

var refDate = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func smallConfig() synth.Config {
	return synth.Config{
		Sales: 40, Finance: 30, Inventory: 20, Employees: 60, Production: 25,
		Companies: 3, Months: 4, Seed: 7, Now: refDate,
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	a, err := synth.New(smallConfig())
	require.NoError(t, err)
	b, err := synth.New(smallConfig())
	require.NoError(t, err)

	assert.Equal(t, a.Sales(), b.Sales())
	assert.Equal(t, a.Employees(), b.Employees())
}

func TestGenerator_InvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Sales = -1
	_, err := synth.New(cfg)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	cfg = smallConfig()
	cfg.Companies = len(synth.CompanyNames) + 1
	_, err = synth.New(cfg)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

// Lo generado se vuelve a leer con el repositorio CSV sin errores.
func TestGenerator_WriteAllThenLoad(t *testing.T) {
	dir := t.TempDir()
	w, err := csvfile.NewWriter(dir)
	require.NoError(t, err)

	g, err := synth.New(smallConfig())
	require.NoError(t, err)
	paths, err := g.WriteAll(w, nil)
	require.NoError(t, err)
	assert.Len(t, paths, len(entity.AllDatasets))

	repo := csvfile.NewRepository(dir, "utf-8")
	ctx := context.Background()

	sales, err := repo.LoadSales(ctx)
	require.NoError(t, err)
	assert.Equal(t, 40, sales.Len())
	for _, s := range sales.Rows {
		assert.True(t, s.ExpectedTotal().Equal(s.Total), "venta %s", s.ID)
		assert.False(t, s.Date.After(refDate))
	}

	finance, err := repo.LoadFinance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30, finance.Len())

	inventory, err := repo.LoadInventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, inventory.Len())

	employees, err := repo.LoadEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60, employees.Len())
	inactive := 0
	for _, e := range employees.Rows {
		if e.IsInactive() {
			inactive++
		}
	}
	assert.Positive(t, inactive)

	production, err := repo.LoadProduction(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25, production.Len())

	group, err := repo.LoadGroupCompanies(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, group.Len())
	assert.Equal(t, "2024-06", group.Rows[0].YearMonth)
}
