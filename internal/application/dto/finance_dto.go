package dto

import "github.com/shopspring/decimal"

// FinanceRequest filtros opcionales de la página financiera.
type FinanceRequest struct {
	Statuses []string `query:"-"`
	From     string   `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To       string   `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// FinancePageDTO respuesta de GET /api/dashboard/finance.
type FinancePageDTO struct {
	KPIs              FinanceKPIsDTO        `json:"kpis"`
	CashFlow          []CashFlowPointDTO    `json:"cash_flow"`
	RevenueByCategory []PointDTO            `json:"revenue_by_category"`
	ExpenseByCategory []PointDTO            `json:"expense_by_category"` // sumas crudas, sin valor absoluto
	DataQuality       FinanceDataQualityDTO `json:"data_quality"`
}

// FinanceKPIsDTO receitas, despesas (valor absoluto de la suma), lucro y margen.
type FinanceKPIsDTO struct {
	Revenue         decimal.Decimal `json:"revenue"`
	Expenses        decimal.Decimal `json:"expenses"`
	Profit          decimal.Decimal `json:"profit"`
	ProfitMarginPct decimal.Decimal `json:"profit_margin_pct"`
}

// CashFlowPointDTO Σ valor por mes y tipo.
type CashFlowPointDTO struct {
	Month string          `json:"month"`
	Type  string          `json:"type"`
	Value decimal.Decimal `json:"value"`
}

// FinanceDataQualityDTO señales sobre el signo de los importes. Ninguna fila se corrige.
type FinanceDataQualityDTO struct {
	NegativeRevenueRows int    `json:"negative_revenue_rows"`
	PositiveExpenseRows int    `json:"positive_expense_rows"`
	Warning             string `json:"warning,omitempty"`
}
