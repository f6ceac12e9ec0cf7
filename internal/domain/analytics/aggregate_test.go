package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aircatering-bi/internal/domain/analytics"
)

type sale struct {
	Category string
	Total    decimal.Decimal
}

type run struct {
	Shift    string
	Planned  int64
	Produced int64
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func saleTotal(s sale) decimal.Decimal { return s.Total }
func saleCategory(s sale) string        { return s.Category }

func keys(s analytics.Series) []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = p.Key
	}
	return out
}

func total(s analytics.Series) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range s {
		sum = sum.Add(p.Value)
	}
	return sum
}

func valueOf(s analytics.Series, key string) (decimal.Decimal, bool) {
	for _, p := range s {
		if p.Key == key {
			return p.Value, true
		}
	}
	return decimal.Zero, false
}

func TestAggregate_SumaPorCategoria(t *testing.T) {
	rows := []sale{
		{"Beverages", d("100.00")},
		{"Food", d("50.00")},
		{"Beverages", d("120.00")},
		{"Food", d("100.00")},
		{"Beverages", d("80.00")},
	}

	got := analytics.Aggregate(rows, saleCategory, analytics.Sum(saleTotal))

	require.Len(t, got, 2)
	assert.Equal(t, []string{"Beverages", "Food"}, keys(got))
	assert.True(t, d("300.00").Equal(got[0].Value))
	assert.True(t, d("150.00").Equal(got[1].Value))

	// La suma por grupos coincide con la suma sin agrupar.
	assert.True(t, analytics.SumOf(rows, saleTotal).Equal(total(got)))
	assert.True(t, d("450.00").Equal(total(got)))
}

func TestGroupBy_ParticionExacta(t *testing.T) {
	rows := []sale{
		{"c", d("1")}, {"a", d("2")}, {"b", d("3")}, {"a", d("4")}, {"c", d("5")}, {"c", d("6")},
	}
	groups := analytics.GroupBy(rows, saleCategory)

	total := 0
	seen := map[string]bool{}
	for _, g := range groups {
		assert.False(t, seen[g.Key], "cada clave aparece una sola vez")
		seen[g.Key] = true
		for _, r := range g.Rows {
			assert.Equal(t, g.Key, r.Category)
		}
		total += len(g.Rows)
	}
	assert.Equal(t, len(rows), total)
	assert.Equal(t, "a", groups[0].Key, "grupos en orden ascendente de clave")
	assert.Equal(t, []sale{{"a", d("2")}, {"a", d("4")}}, groups[0].Rows, "las filas conservan su orden")
}

func TestAggregate_CountYMean(t *testing.T) {
	rows := []sale{{"x", d("10")}, {"x", d("20")}, {"y", d("7")}}

	counts := analytics.Aggregate(rows, saleCategory, analytics.Count[sale]())
	v, ok := valueOf(counts, "x")
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(2).Equal(v))

	means := analytics.Aggregate(rows, saleCategory, analytics.Mean(saleTotal))
	v, _ = valueOf(means, "x")
	assert.True(t, d("15").Equal(v))
	v, _ = valueOf(means, "y")
	assert.True(t, d("7").Equal(v))
}

// Las dos variantes de eficiencia difieren cuando las cantidades planificadas no son iguales.
func TestEficiencia_RatioDeSumasVsMediaDeRatios(t *testing.T) {
	rows := []run{
		{"Manhã", 200, 100}, // 50%
		{"Manhã", 300, 300}, // 100%
	}
	produced := func(r run) decimal.Decimal { return decimal.NewFromInt(r.Produced) }
	planned := func(r run) decimal.Decimal { return decimal.NewFromInt(r.Planned) }
	shift := func(r run) string { return r.Shift }

	ratio := analytics.Aggregate(rows, shift, analytics.RatioOfSums(produced, planned))
	mean := analytics.Aggregate(rows, shift, analytics.MeanOfRatios(produced, planned))

	assert.True(t, decimal.NewFromInt(80).Equal(ratio[0].Value), "400/500*100")
	assert.True(t, decimal.NewFromInt(75).Equal(mean[0].Value), "(50+100)/2")
	assert.False(t, ratio[0].Value.Equal(mean[0].Value))
}

func TestRatioOfSums_DenominadorCero(t *testing.T) {
	rows := []run{{"Noite", 0, 10}}
	produced := func(r run) decimal.Decimal { return decimal.NewFromInt(r.Produced) }
	planned := func(r run) decimal.Decimal { return decimal.NewFromInt(r.Planned) }

	got := analytics.RatioOfSums(produced, planned)(rows)
	assert.True(t, got.IsZero())
}

func TestSeries_SortByValueEstable(t *testing.T) {
	s := analytics.Series{
		{Key: "a", Value: d("10")},
		{Key: "b", Value: d("30")},
		{Key: "c", Value: d("10")},
		{Key: "d", Value: d("20")},
	}

	desc := s.SortByValue(false)
	assert.Equal(t, []string{"b", "d", "a", "c"}, keys(desc))

	asc := s.SortByValue(true)
	assert.Equal(t, []string{"a", "c", "d", "b"}, keys(asc), "empates conservan el orden previo")

	assert.Equal(t, []string{"a", "b", "c", "d"}, keys(s), "la serie original no cambia")
}

func TestSeries_Head(t *testing.T) {
	s := analytics.Series{{Key: "a"}, {Key: "b"}, {Key: "c"}}
	assert.Equal(t, []string{"a", "b"}, keys(s.Head(2)))
	assert.Equal(t, []string{"a", "b", "c"}, keys(s.Head(10)))
	assert.Equal(t, []string{"a", "b", "c"}, keys(s.Head(0)))
}

func TestCompositeKey(t *testing.T) {
	k := analytics.CompositeKey("2024-01", "Receita")
	assert.Equal(t, []string{"2024-01", "Receita"}, analytics.SplitKey(k))

	// El orden por clave compuesta respeta la primera columna.
	assert.Less(t, analytics.CompositeKey("2024-01", "Receita"), analytics.CompositeKey("2024-02", "Despesa"))
}
