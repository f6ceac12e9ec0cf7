package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GroupCompanyMonthly resumen mensual de una empresa hermana del grupo (empresas_grupo.csv).
type GroupCompanyMonthly struct {
	Company       string
	YearMonth     string // "2006-01"
	Date          time.Time
	Sales         decimal.Decimal
	Revenue       decimal.Decimal
	Cost          decimal.Decimal
	MarginValue   decimal.Decimal
	MarginPct     decimal.Decimal
	Region        string
	Employees     int
	ActiveClients int
}

// ComputedMarginPct (revenue - cost) / revenue * 100; cero sin facturación.
func (g GroupCompanyMonthly) ComputedMarginPct() decimal.Decimal {
	if g.Revenue.IsZero() {
		return decimal.Zero
	}
	return g.Revenue.Sub(g.Cost).Div(g.Revenue).Mul(decimal.NewFromInt(100))
}

// marginTolerance puntos porcentuales admitidos por el redondeo del CSV.
var marginTolerance = decimal.RequireFromString("0.05")

// MarginMatches indica si margem_percentual coincide con ComputedMarginPct.
func (g GroupCompanyMonthly) MarginMatches() bool {
	return g.MarginPct.Sub(g.ComputedMarginPct()).Abs().LessThanOrEqual(marginTolerance)
}
