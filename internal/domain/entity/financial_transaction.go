package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción financiera tal como vienen en financeiro.csv.
const (
	TransactionRevenue = "Receita"
	TransactionExpense = "Despesa"
)

// FinancialTransaction movimiento de caja (financeiro.csv).
// El signo de Amount es libre para ambos tipos; ver DESIGN.md.
type FinancialTransaction struct {
	ID          string
	Date        time.Time
	Type        string
	Category    string
	Description string
	Amount      decimal.Decimal
	Account     string
	Status      string
}

func (t FinancialTransaction) IsRevenue() bool { return t.Type == TransactionRevenue }
func (t FinancialTransaction) IsExpense() bool { return t.Type == TransactionExpense }
