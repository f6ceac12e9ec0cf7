package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem posición de estoque de un producto (estoque.csv).
type InventoryItem struct {
	ID            string
	Product       string
	Category      string
	Supplier      string
	CurrentQty    int
	MinimumQty    int
	CostPrice     decimal.Decimal
	SalePrice     decimal.Decimal
	LastEntryDate *time.Time
	Location      string
	Expiry        *time.Time // nil = sin fecha de validez
}

// LowStock es verdadero cuando la cantidad actual no supera el mínimo (límite inclusivo).
func (i InventoryItem) LowStock() bool {
	return i.CurrentQty <= i.MinimumQty
}

// StockValue valor del stock a precio de costo.
func (i InventoryItem) StockValue() decimal.Decimal {
	return decimal.NewFromInt(int64(i.CurrentQty)).Mul(i.CostPrice)
}

// ExpiresWithin indica si la validez cae en [asOf, asOf+days].
func (i InventoryItem) ExpiresWithin(asOf time.Time, days int) bool {
	if i.Expiry == nil {
		return false
	}
	from := DateOnly(asOf)
	to := from.AddDate(0, 0, days)
	exp := DateOnly(*i.Expiry)
	return !exp.Before(from) && !exp.After(to)
}
