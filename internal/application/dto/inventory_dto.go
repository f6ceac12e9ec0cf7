package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRequest filtros de la página de estoque.
type InventoryRequest struct {
	Categories []string `query:"-"`
	AsOf       string   `query:"as_of" validate:"omitempty,datetime=2006-01-02"` // default: hoy
	ExpiryDays int      `query:"expiry_days" validate:"omitempty,min=1,max=365"` // default: 30
}

// InventoryPageDTO respuesta de GET /api/dashboard/inventory.
type InventoryPageDTO struct {
	KPIs               InventoryKPIsDTO  `json:"kpis"`
	LowStock           []LowStockItemDTO `json:"low_stock"`
	QuantityByCategory []PointDTO        `json:"quantity_by_category"`
	ValueByCategory    []PointDTO        `json:"value_by_category"`
	Expiring           []ExpiringItemDTO `json:"expiring"`
	AsOf               time.Time         `json:"as_of"`
	ExpiryDays         int               `json:"expiry_days"`
}

// InventoryKPIsDTO tarjetas de estoque.
type InventoryKPIsDTO struct {
	TotalItems    int             `json:"total_items"`
	StockValue    decimal.Decimal `json:"stock_value"`
	LowStockCount int             `json:"low_stock_count"`
	Categories    int             `json:"categories"`
}

// LowStockItemDTO producto con cantidad actual <= mínima.
type LowStockItemDTO struct {
	ID         string `json:"id"`
	Product    string `json:"product"`
	CurrentQty int    `json:"current_qty"`
	MinimumQty int    `json:"minimum_qty"`
}

// ExpiringItemDTO producto cuya validez vence dentro de la ventana.
type ExpiringItemDTO struct {
	ID       string    `json:"id"`
	Product  string    `json:"product"`
	Category string    `json:"category"`
	Expiry   time.Time `json:"expiry"`
	DaysLeft int       `json:"days_left"`
}
