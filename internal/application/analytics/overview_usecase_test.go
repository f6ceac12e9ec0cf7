package analytics

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aircatering-bi/internal/domain"
	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
)

func TestOverview_SalesByCategoryAndTotal(t *testing.T) {
	uc := NewOverviewUseCase(staticSource{fullSession()})

	got, err := uc.Get(context.Background())
	require.NoError(t, err)

	require.NotNil(t, got.KPIs.TotalSales)
	assertDec(t, "450", *got.KPIs.TotalSales)

	require.Len(t, got.SalesByCategory, 2)
	assert.Equal(t, "Beverages", got.SalesByCategory[0].Key)
	assertDec(t, "300", got.SalesByCategory[0].Value)
	assert.Equal(t, "Food", got.SalesByCategory[1].Key)
	assertDec(t, "150", got.SalesByCategory[1].Value)

	require.Len(t, got.SalesByMonth, 3)
	assert.Equal(t, "2024-01", got.SalesByMonth[0].Key)
	assertDec(t, "150", got.SalesByMonth[0].Value)

	// Receita con signo tal como viene: 1000 - 200 + 500
	require.NotNil(t, got.KPIs.Revenue)
	assertDec(t, "1300", *got.KPIs.Revenue)
	assert.Equal(t, 3, *got.KPIs.InventoryProducts)
	assert.Equal(t, 2, *got.KPIs.ActiveEmployees)
	assert.Empty(t, got.Notices)
}

func TestOverview_GroupSection(t *testing.T) {
	uc := NewOverviewUseCase(staticSource{fullSession()})

	got, err := uc.Get(context.Background())
	require.NoError(t, err)
	g := got.Group
	require.NotNil(t, g)

	assert.Equal(t, "2024-02", g.LatestMonth)
	assertDec(t, "350", g.Revenue)
	assertDec(t, "380", g.Sales)
	assertDec(t, "17.5", g.MeanMarginPct)
	assert.Equal(t, 32, g.Employees)

	assert.Equal(t, []string{"Beta", "Alfa"}, keys(g.RevenueByCompany), "ascendente")
	assert.Equal(t, []string{"Beta", "Alfa"}, keys(g.MarginByCompany))
	assert.Equal(t, []string{"2024-01", "2024-02"}, keys(g.RevenueByMonth))
	assertDec(t, "400", g.RevenueByMonth[0].Value)
	assertDec(t, "15", g.MarginByMonth[0].Value)
	assert.Zero(t, g.MarginMismatchRows)
}

func TestOverview_GroupMarginMismatch(t *testing.T) {
	rows := fixtureGroup()
	rows[1].MarginPct = dec("35") // (300-240)/300 = 20%
	uc := NewOverviewUseCase(staticSource{&entity.Session{GroupCompanies: tableOf(rows...)}})

	got, err := uc.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got.Group)
	assert.Equal(t, 1, got.Group.MarginMismatchRows)
	assertDec(t, "22.5", got.Group.MarginByMonth[0].Value, "la margem informada se usa sin corregir")
}

func TestOverview_MissingDatasetsBecomeNotices(t *testing.T) {
	s := &entity.Session{
		Sales: tableOf(fixtureSales()...),
		Issues: map[entity.DatasetName]error{
			entity.DatasetFinance: fmt.Errorf("%w: financeiro línea 4", domain.ErrMalformedDataset),
		},
	}
	uc := NewOverviewUseCase(staticSource{s})

	got, err := uc.Get(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, got.KPIs.TotalSales)
	assert.Nil(t, got.KPIs.Revenue)
	assert.Nil(t, got.KPIs.ActiveEmployees)
	assert.Nil(t, got.Group)

	codes := map[string]string{}
	for _, n := range got.Notices {
		codes[n.Dataset] = n.Code
	}
	assert.Equal(t, NoticeMalformed, codes["financeiro"])
	assert.Equal(t, NoticeUnavailable, codes["estoque"])
	assert.Equal(t, NoticeUnavailable, codes["rh"])
	assert.Equal(t, NoticeUnavailable, codes["empresas_grupo"])
	assert.NotContains(t, codes, "vendas")
}

func TestOverview_EmptySession(t *testing.T) {
	got, err := NewOverviewUseCase(staticSource{&entity.Session{}}).Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, got.Notices, 5)
	assert.Empty(t, got.SalesByCategory)
}
