package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRequest filtros de la página de ventas.
// Categories/Regions: nil = sin restricción; vacío no nil = ninguna seleccionada.
type SalesRequest struct {
	Categories []string `query:"-"`
	Regions    []string `query:"-"`
	From       string   `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To         string   `query:"to" validate:"omitempty,datetime=2006-01-02"`
	Limit      int      `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset     int      `query:"offset" validate:"omitempty,min=0"`
}

// SalesPageDTO respuesta de GET /api/dashboard/sales.
type SalesPageDTO struct {
	Options     SalesOptionsDTO     `json:"options"`
	KPIs        SalesKPIsDTO        `json:"kpis"`
	TopSellers  []PointDTO          `json:"top_sellers"` // top 10, descendente
	ByChannel   []PointDTO          `json:"by_channel"`
	DataQuality SalesDataQualityDTO `json:"data_quality"`
	Rows        []SaleRowDTO        `json:"rows"` // fecha descendente
	Page        PageResponse        `json:"page"`
}

// SalesDataQualityDTO ventas cuyo total contradice su cálculo. Ninguna fila se corrige.
type SalesDataQualityDTO struct {
	NegativeTotalRows int    `json:"negative_total_rows"`
	TotalMismatchRows int    `json:"total_mismatch_rows"`
	Warning           string `json:"warning,omitempty"`
}

// SalesOptionsDTO valores disponibles para los selectores (sobre la tabla completa).
type SalesOptionsDTO struct {
	Categories []string   `json:"categories"`
	Regions    []string   `json:"regions"`
	MinDate    *time.Time `json:"min_date,omitempty"`
	MaxDate    *time.Time `json:"max_date,omitempty"`
}

// SalesKPIsDTO métricas sobre las ventas filtradas.
type SalesKPIsDTO struct {
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
	MeanTicket decimal.Decimal `json:"mean_ticket"`
	MaxSale    decimal.Decimal `json:"max_sale"`
}

// SaleRowDTO fila del detalle de ventas.
type SaleRowDTO struct {
	ID        string          `json:"id"`
	Date      time.Time       `json:"date"`
	Customer  string          `json:"customer"`
	Seller    string          `json:"seller"`
	Product   string          `json:"product"`
	Category  string          `json:"category"`
	Region    string          `json:"region"`
	Channel   string          `json:"channel"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
}
