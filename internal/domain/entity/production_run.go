package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionRun una orden de producción (producao.csv).
type ProductionRun struct {
	ID          string
	Date        time.Time
	Product     string
	Line        string
	PlannedQty  int
	ProducedQty int
	Hours       decimal.Decimal
	Cost        decimal.Decimal
	Quality     decimal.Decimal // nota 1..5
	Owner       string
	Shift       string
	Status      string
}
