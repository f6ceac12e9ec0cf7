package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PointDTO un punto de una serie agregada (etiqueta del grupo y valor).
type PointDTO struct {
	Key   string          `json:"key"`
	Value decimal.Decimal `json:"value"`
}

// TrendPointDTO valor simulado de un mes.
type TrendPointDTO struct {
	Month string  `json:"month"` // "YYYY-MM"
	Value float64 `json:"value"`
}

// NoticeDTO aviso de una sección que no se pudo calcular (dataset ausente o malformado).
type NoticeDTO struct {
	Dataset string `json:"dataset"`
	Code    string `json:"code"` // DATASET_UNAVAILABLE | DATASET_MALFORMED
	Message string `json:"message"`
}

// DatasetStatusDTO estado de carga de un dataset en la sesión vigente.
type DatasetStatusDTO struct {
	Name     string     `json:"name"`
	Status   string     `json:"status"` // ok | unavailable | malformed
	Rows     int        `json:"rows"`
	Source   string     `json:"source,omitempty"`
	Error    string     `json:"error,omitempty"`
	LoadedAt *time.Time `json:"loaded_at,omitempty"`
}

// DatasetsDTO respuesta de GET /api/datasets y POST /api/datasets/reload.
type DatasetsDTO struct {
	LoadedAt time.Time          `json:"loaded_at"`
	Datasets []DatasetStatusDTO `json:"datasets"`
}

// ── Visión general ──────────────────────────────────────────────────────────

// OverviewDTO respuesta de GET /api/dashboard/overview.
// Los KPIs de un dataset ausente quedan en null y se informa en Notices.
type OverviewDTO struct {
	KPIs            OverviewKPIsDTO  `json:"kpis"`
	SalesByMonth    []PointDTO       `json:"sales_by_month"`
	SalesByCategory []PointDTO       `json:"sales_by_category"`
	Group           *GroupSectionDTO `json:"group,omitempty"`
	Notices         []NoticeDTO      `json:"notices"`
}

// OverviewKPIsDTO tarjetas principales.
type OverviewKPIsDTO struct {
	TotalSales        *decimal.Decimal `json:"total_sales"`
	Revenue           *decimal.Decimal `json:"revenue"` // Σ Receita, signo tal como viene
	InventoryProducts *int             `json:"inventory_products"`
	ActiveEmployees   *int             `json:"active_employees"`
}

// GroupSectionDTO métricas consolidadas de las empresas del grupo.
type GroupSectionDTO struct {
	LatestMonth        string          `json:"latest_month"` // "YYYY-MM"
	Revenue            decimal.Decimal `json:"revenue"`
	Sales              decimal.Decimal `json:"sales"`
	MeanMarginPct      decimal.Decimal `json:"mean_margin_pct"`
	Employees          int             `json:"employees"`
	RevenueByCompany   []PointDTO      `json:"revenue_by_company"` // ascendente
	MarginByCompany    []PointDTO      `json:"margin_by_company"`  // ascendente
	RevenueByMonth     []PointDTO      `json:"revenue_by_month"`
	MarginByMonth      []PointDTO      `json:"margin_by_month"`      // media de margem_percentual
	MarginMismatchRows int             `json:"margin_mismatch_rows"` // margem_percentual ≠ (faturamento-custo)/faturamento
}
