package analytics

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aircatering-bi/internal/application/dto"
	"github.com/jhoicas/aircatering-bi/internal/domain"
	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
)

func keys(ps []dto.PointDTO) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Key
	}
	return out
}

func TestSales_NoFiltersIsWholeTable(t *testing.T) {
	uc := NewSalesUseCase(staticSource{fullSession()})

	got, err := uc.Get(context.Background(), dto.SalesRequest{})
	require.NoError(t, err)

	assertDec(t, "450", got.KPIs.Total)
	assert.Equal(t, 5, got.KPIs.Count)
	assertDec(t, "90", got.KPIs.MeanTicket)
	assertDec(t, "100", got.KPIs.MaxSale)

	// Ana 200, Bruno 150, Carla 100
	assert.Equal(t, []string{"Ana", "Bruno", "Carla"}, keys(got.TopSellers))
	assert.Equal(t, []string{"Loja", "Online"}, keys(got.ByChannel))

	assert.Equal(t, []string{"Beverages", "Food"}, got.Options.Categories)
	assert.Equal(t, []string{"Sul", "Norte"}, got.Options.Regions)
	assert.Equal(t, day(2024, 1, 5), *got.Options.MinDate)
	assert.Equal(t, day(2024, 3, 1), *got.Options.MaxDate)

	require.Len(t, got.Rows, 5)
	assert.Equal(t, "s5", got.Rows[0].ID, "detalle por fecha descendente")
	assert.Equal(t, "s1", got.Rows[4].ID)
	assert.Equal(t, 5, got.Page.Total)
}

func TestSales_FiltersAreConjunctive(t *testing.T) {
	rows, err := filterSales(fullSession(), dto.SalesRequest{
		Categories: []string{"Beverages"},
		Regions:    []string{"Sul"},
		From:       "2024-01-01",
		To:         "2024-02-15",
	})
	require.NoError(t, err)

	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"s1", "s4"}, ids, "orden original y límite final inclusivo")
}

func TestSales_UnsatisfiableFiltersGiveEmptyPage(t *testing.T) {
	cases := []struct {
		name string
		req  dto.SalesRequest
	}{
		{"ninguna categoría", dto.SalesRequest{Categories: []string{}}},
		{"fechas invertidas", dto.SalesRequest{From: "2024-03-01", To: "2024-01-01"}},
		{"categoría inexistente", dto.SalesRequest{Categories: []string{"Eletrônicos"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewSalesUseCase(staticSource{fullSession()}).Get(context.Background(), tc.req)
			require.NoError(t, err)
			assert.Zero(t, got.KPIs.Count)
			assert.True(t, got.KPIs.Total.IsZero())
			assert.True(t, got.KPIs.MeanTicket.IsZero())
			assert.True(t, got.KPIs.MaxSale.IsZero())
			assert.Empty(t, got.TopSellers)
			assert.Empty(t, got.Rows)
		})
	}
}

func TestSales_Pagination(t *testing.T) {
	uc := NewSalesUseCase(staticSource{fullSession()})

	got, err := uc.Get(context.Background(), dto.SalesRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "s3", got.Rows[0].ID)
	assert.Equal(t, 5, got.Page.Total)
	assert.Equal(t, 2, got.Page.Limit)
}

func TestSales_TopSellersLimitedToTen(t *testing.T) {
	var rows []entity.Sale
	for i := 0; i < 12; i++ {
		rows = append(rows, entity.Sale{ID: fmt.Sprint(i), Seller: fmt.Sprintf("V%02d", i), Total: dec(fmt.Sprint(i + 1))})
	}
	uc := NewSalesUseCase(staticSource{&entity.Session{Sales: tableOf(rows...)}})

	got, err := uc.Get(context.Background(), dto.SalesRequest{})
	require.NoError(t, err)
	require.Len(t, got.TopSellers, 10)
	assert.Equal(t, "V11", got.TopSellers[0].Key)
	assert.Equal(t, "V02", got.TopSellers[9].Key)
}

func TestSales_DatasetErrors(t *testing.T) {
	missing := NewSalesUseCase(staticSource{&entity.Session{}})
	_, err := missing.Get(context.Background(), dto.SalesRequest{})
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)

	malformed := NewSalesUseCase(staticSource{&entity.Session{Issues: map[entity.DatasetName]error{
		entity.DatasetSales: fmt.Errorf("%w: vendas línea 2", domain.ErrMalformedDataset),
	}}})
	_, err = malformed.Get(context.Background(), dto.SalesRequest{})
	assert.ErrorIs(t, err, domain.ErrMalformedDataset)

	_, err = NewSalesUseCase(staticSource{fullSession()}).Get(context.Background(), dto.SalesRequest{From: "05/01/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSales_DataQualityCountsInconsistentTotals(t *testing.T) {
	clean, err := NewSalesUseCase(staticSource{fullSession()}).Get(context.Background(), dto.SalesRequest{})
	require.NoError(t, err)
	assert.Zero(t, clean.DataQuality.NegativeTotalRows)
	assert.Zero(t, clean.DataQuality.TotalMismatchRows)
	assert.Empty(t, clean.DataQuality.Warning)

	rows := []entity.Sale{
		{ID: "ok", Quantity: 2, UnitPrice: dec("10"), Discount: dec("0.1"), Total: dec("18")},
		{ID: "redondeo", Quantity: 3, UnitPrice: dec("3.33"), Discount: dec("0.05"), Total: dec("9.49")},
		{ID: "negativo", Quantity: 1, UnitPrice: dec("10"), Total: dec("-10")},
		{ID: "distinto", Quantity: 1, UnitPrice: dec("10"), Total: dec("12")},
	}
	uc := NewSalesUseCase(staticSource{&entity.Session{Sales: tableOf(rows...)}})

	got, err := uc.Get(context.Background(), dto.SalesRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, got.DataQuality.NegativeTotalRows)
	assert.Equal(t, 2, got.DataQuality.TotalMismatchRows, "el negativo tampoco coincide con su cálculo")
	assert.Contains(t, got.DataQuality.Warning, "2 vendas")
	assertDec(t, "29.49", got.KPIs.Total, "las filas se suman sin corregir")
}
