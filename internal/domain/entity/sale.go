package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale una línea de venta (vendas.csv).
// Total = Quantity * UnitPrice * (1 - Discount), redondeado a 2 decimales por el generador.
type Sale struct {
	ID        string
	Date      time.Time
	Customer  string
	Seller    string
	Product   string
	Category  string
	Region    string
	Channel   string
	Quantity  int
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal // fracción 0..1
	Total     decimal.Decimal
}

// ExpectedTotal recalcula el total a partir de cantidad, precio y descuento.
func (s Sale) ExpectedTotal() decimal.Decimal {
	gross := decimal.NewFromInt(int64(s.Quantity)).Mul(s.UnitPrice)
	return gross.Sub(gross.Mul(s.Discount)).Round(2)
}

// totalTolerance diferencia admitida por el redondeo a centavos del CSV.
var totalTolerance = decimal.RequireFromString("0.01")

// TotalMatches indica si Total coincide con ExpectedTotal, con ±1 centavo de margen.
func (s Sale) TotalMatches() bool {
	return s.Total.Sub(s.ExpectedTotal()).Abs().LessThanOrEqual(totalTolerance)
}
