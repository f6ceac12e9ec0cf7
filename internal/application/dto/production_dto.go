package dto

import "github.com/shopspring/decimal"

// ProductionRequest filtros opcionales de la página de producción.
type ProductionRequest struct {
	Lines  []string `query:"-"`
	Shifts []string `query:"-"`
	From   string   `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To     string   `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// ProductionPageDTO respuesta de GET /api/dashboard/production.
type ProductionPageDTO struct {
	KPIs              ProductionKPIsDTO `json:"kpis"`
	ProducedByLine    []PointDTO        `json:"produced_by_line"`
	EfficiencyByShift []PointDTO        `json:"efficiency_by_shift"` // Σproducido / Σplanificado * 100
}

// ProductionKPIsDTO tarjetas de producción.
type ProductionKPIsDTO struct {
	TotalProduced      int64           `json:"total_produced"`
	MeanEfficiency     decimal.Decimal `json:"mean_efficiency"`     // media de la eficiencia por orden
	WeightedEfficiency decimal.Decimal `json:"weighted_efficiency"` // Σproducido / Σplanificado * 100
	TotalCost          decimal.Decimal `json:"total_cost"`
	MeanQuality        decimal.Decimal `json:"mean_quality"`
	Runs               int             `json:"runs"`
}
