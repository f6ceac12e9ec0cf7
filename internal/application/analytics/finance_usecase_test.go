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

func TestFinance_ExpensesUseAbsoluteSum(t *testing.T) {
	got, err := NewFinanceUseCase(staticSource{fullSession()}).Get(context.Background(), dto.FinanceRequest{})
	require.NoError(t, err)

	assertDec(t, "1300", got.KPIs.Revenue)
	assertDec(t, "350", got.KPIs.Expenses, "|-300 - 100 + 50|")
	assertDec(t, "950", got.KPIs.Profit)
	assertDec(t, "73.1", got.KPIs.ProfitMarginPct)
}

func TestFinance_CategorySeriesKeepRawSigns(t *testing.T) {
	got, err := NewFinanceUseCase(staticSource{fullSession()}).Get(context.Background(), dto.FinanceRequest{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Aluguel", "Salários"}, keys(got.ExpenseByCategory))
	assertDec(t, "-250", got.ExpenseByCategory[0].Value)
	assertDec(t, "-100", got.ExpenseByCategory[1].Value)

	assert.Equal(t, []string{"Serviços", "Vendas"}, keys(got.RevenueByCategory))
	assertDec(t, "-200", got.RevenueByCategory[0].Value)

	assert.Equal(t, 1, got.DataQuality.NegativeRevenueRows)
	assert.Equal(t, 1, got.DataQuality.PositiveExpenseRows)
	assert.NotEmpty(t, got.DataQuality.Warning)
}

func TestFinance_CashFlowByMonthAndType(t *testing.T) {
	got, err := NewFinanceUseCase(staticSource{fullSession()}).Get(context.Background(), dto.FinanceRequest{})
	require.NoError(t, err)

	want := []dto.CashFlowPointDTO{
		{Month: "2024-01", Type: "Despesa", Value: dec("-300")},
		{Month: "2024-01", Type: "Receita", Value: dec("800")},
		{Month: "2024-02", Type: "Despesa", Value: dec("-50")},
		{Month: "2024-02", Type: "Receita", Value: dec("500")},
	}
	require.Len(t, got.CashFlow, len(want))
	for i, w := range want {
		assert.Equal(t, w.Month, got.CashFlow[i].Month)
		assert.Equal(t, w.Type, got.CashFlow[i].Type)
		assertDec(t, w.Value.String(), got.CashFlow[i].Value)
	}
}

func TestFinance_StatusAndPeriodFilters(t *testing.T) {
	got, err := NewFinanceUseCase(staticSource{fullSession()}).Get(context.Background(), dto.FinanceRequest{
		Statuses: []string{"Pago"},
		From:     "2024-02-01",
	})
	require.NoError(t, err)

	assertDec(t, "500", got.KPIs.Revenue)
	assertDec(t, "100", got.KPIs.Expenses)
	assert.Zero(t, got.DataQuality.NegativeRevenueRows)
}

func TestFinance_NoRevenueMarginIsZero(t *testing.T) {
	s := &entity.Session{Finance: tableOf(entity.FinancialTransaction{
		Type: entity.TransactionExpense, Category: "Aluguel", Amount: dec("-100"), Date: day(2024, 1, 1),
	})}
	got, err := NewFinanceUseCase(staticSource{s}).Get(context.Background(), dto.FinanceRequest{})
	require.NoError(t, err)
	assertDec(t, "-100", got.KPIs.Profit)
	assert.True(t, got.KPIs.ProfitMarginPct.IsZero())
}

func TestFinance_MissingDataset(t *testing.T) {
	_, err := NewFinanceUseCase(staticSource{&entity.Session{}}).Get(context.Background(), dto.FinanceRequest{})
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
}
