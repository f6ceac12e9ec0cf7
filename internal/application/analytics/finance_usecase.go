package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/aircatering-bi/internal/application/dto"
	core "github.com/jhoicas/aircatering-bi/internal/domain/analytics"
	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
)

// FinanceUseCase página financiera.
//
// Convención de signos: los importes de financeiro.csv pueden ser positivos o negativos en
// ambos tipos. Solo el KPI de despesas aplica valor absoluto (|Σ Despesa|); el resto de las
// series suma los importes tal como vienen. Las filas de receita negativa se cuentan como
// aviso de calidad de datos, no se corrigen.
type FinanceUseCase struct {
	sessions SessionSource
}

// NewFinanceUseCase construye el caso de uso.
func NewFinanceUseCase(sessions SessionSource) *FinanceUseCase {
	return &FinanceUseCase{sessions: sessions}
}

// Get calcula KPIs, flujo de caja mensual y composición por categoría.
func (uc *FinanceUseCase) Get(ctx context.Context, req dto.FinanceRequest) (*dto.FinancePageDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := uc.sessions.Current()
	if s.Finance == nil {
		return nil, datasetError(s, entity.DatasetFinance)
	}
	period, err := parseDateRange(req.From, req.To)
	if err != nil {
		return nil, err
	}

	rows := core.Filter(s.Finance.Rows,
		core.Between(txDate, period),
		core.In(txStatus, core.SelectionFrom(req.Statuses)),
	)
	revenueRows := core.Filter(rows, entity.FinancialTransaction.IsRevenue)
	expenseRows := core.Filter(rows, entity.FinancialTransaction.IsExpense)

	revenue := core.SumOf(revenueRows, txAmount)
	expenses := core.SumOf(expenseRows, txAmount).Abs()
	profit := revenue.Sub(expenses)

	out := &dto.FinancePageDTO{
		KPIs: dto.FinanceKPIsDTO{
			Revenue:         revenue.Round(2),
			Expenses:        expenses.Round(2),
			Profit:          profit.Round(2),
			ProfitMarginPct: core.Percent(profit, revenue).Round(1),
		},
		CashFlow:          cashFlow(rows),
		RevenueByCategory: points(core.Aggregate(revenueRows, txCategory, core.Sum(txAmount))),
		ExpenseByCategory: points(core.Aggregate(expenseRows, txCategory, core.Sum(txAmount))),
		DataQuality:       dataQuality(revenueRows, expenseRows),
	}
	return out, nil
}

// cashFlow Σ valor por (mes, tipo), ordenado por mes y luego tipo.
func cashFlow(rows []entity.FinancialTransaction) []dto.CashFlowPointDTO {
	series := core.Aggregate(rows, txMonthType, core.Sum(txAmount))
	out := make([]dto.CashFlowPointDTO, 0, len(series))
	for _, p := range series {
		parts := core.SplitKey(p.Key)
		out = append(out, dto.CashFlowPointDTO{Month: parts[0], Type: parts[1], Value: p.Value.Round(2)})
	}
	return out
}

func dataQuality(revenue, expense []entity.FinancialTransaction) dto.FinanceDataQualityDTO {
	q := dto.FinanceDataQualityDTO{
		NegativeRevenueRows: core.CountWhere(revenue, func(t entity.FinancialTransaction) bool {
			return t.Amount.IsNegative()
		}),
		PositiveExpenseRows: core.CountWhere(expense, func(t entity.FinancialTransaction) bool {
			return t.Amount.IsPositive()
		}),
	}
	if q.NegativeRevenueRows > 0 {
		q.Warning = fmt.Sprintf("%d receitas con valor negativo; se suman sin corregir", q.NegativeRevenueRows)
	}
	return q
}
