package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
)

type staticSource struct{ s *entity.Session }

func (f staticSource) Current() *entity.Session { return f.s }

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func tableOf[T any](rows ...T) *entity.Table[T] {
	if rows == nil {
		rows = []T{}
	}
	return &entity.Table[T]{Rows: rows, Source: "test"}
}

// fixtureSales 3 ventas de Beverages (300) y 2 de Food (150).
func fixtureSales() []entity.Sale {
	return []entity.Sale{
		{ID: "s1", Date: day(2024, 1, 5), Seller: "Ana", Category: "Beverages", Region: "Sul", Channel: "Online", Quantity: 1, UnitPrice: dec("100"), Total: dec("100")},
		{ID: "s2", Date: day(2024, 1, 10), Seller: "Bruno", Category: "Food", Region: "Norte", Channel: "Loja", Quantity: 1, UnitPrice: dec("50"), Total: dec("50")},
		{ID: "s3", Date: day(2024, 2, 1), Seller: "Ana", Category: "Beverages", Region: "Norte", Channel: "Online", Quantity: 1, UnitPrice: dec("100"), Total: dec("100")},
		{ID: "s4", Date: day(2024, 2, 15), Seller: "Bruno", Category: "Beverages", Region: "Sul", Channel: "Loja", Quantity: 1, UnitPrice: dec("100"), Total: dec("100")},
		{ID: "s5", Date: day(2024, 3, 1), Seller: "Carla", Category: "Food", Region: "Sul", Channel: "Online", Quantity: 1, UnitPrice: dec("100"), Total: dec("100")},
	}
}

func fixtureFinance() []entity.FinancialTransaction {
	return []entity.FinancialTransaction{
		{ID: "f1", Date: day(2024, 1, 3), Type: entity.TransactionRevenue, Category: "Vendas", Amount: dec("1000"), Status: "Pago"},
		{ID: "f2", Date: day(2024, 1, 8), Type: entity.TransactionRevenue, Category: "Serviços", Amount: dec("-200"), Status: "Pendente"},
		{ID: "f3", Date: day(2024, 2, 2), Type: entity.TransactionRevenue, Category: "Vendas", Amount: dec("500"), Status: "Pago"},
		{ID: "f4", Date: day(2024, 1, 20), Type: entity.TransactionExpense, Category: "Aluguel", Amount: dec("-300"), Status: "Pago"},
		{ID: "f5", Date: day(2024, 2, 10), Type: entity.TransactionExpense, Category: "Salários", Amount: dec("-100"), Status: "Pago"},
		{ID: "f6", Date: day(2024, 2, 20), Type: entity.TransactionExpense, Category: "Aluguel", Amount: dec("50"), Status: "Pendente"},
	}
}

func fixtureInventory() []entity.InventoryItem {
	in10 := day(2024, 6, 11)
	in4 := day(2024, 6, 5)
	return []entity.InventoryItem{
		{ID: "i1", Product: "Suco", Category: "Bebidas", CurrentQty: 5, MinimumQty: 10, CostPrice: dec("2"), Expiry: &in10},
		{ID: "i2", Product: "Água", Category: "Bebidas", CurrentQty: 10, MinimumQty: 10, CostPrice: dec("1")},
		{ID: "i3", Product: "Pão", Category: "Alimentos", CurrentQty: 20, MinimumQty: 10, CostPrice: dec("3"), Expiry: &in4},
	}
}

func fixtureEmployees() []entity.Employee {
	return []entity.Employee{
		{ID: "e1", Name: "Ana", Department: "Vendas", Salary: dec("3000"), Status: entity.EmployeeActive, AdmissionDate: day(2020, 1, 1)},
		{ID: "e2", Name: "Bruno", Department: "Vendas", Salary: dec("5000"), Status: entity.EmployeeInactive, AdmissionDate: day(2022, 1, 1)},
		{ID: "e3", Name: "Carla", Department: "TI", Salary: dec("7000"), Status: entity.EmployeeActive, AdmissionDate: day(2023, 1, 1)},
		{ID: "e4", Name: "Davi", Department: "TI", Salary: dec("4000"), Status: entity.EmployeeVacation, AdmissionDate: day(2021, 1, 1)},
	}
}

// fixtureProduction turno Manhã con planificaciones desiguales (100% y 50%) y Tarde al 100%.
func fixtureProduction() []entity.ProductionRun {
	return []entity.ProductionRun{
		{ID: "p1", Date: day(2024, 1, 2), Line: "Linha 1", Shift: "Manhã", PlannedQty: 100, ProducedQty: 100, Cost: dec("1000"), Quality: dec("4")},
		{ID: "p2", Date: day(2024, 1, 3), Line: "Linha 2", Shift: "Manhã", PlannedQty: 300, ProducedQty: 150, Cost: dec("2000"), Quality: dec("3")},
		{ID: "p3", Date: day(2024, 1, 4), Line: "Linha 1", Shift: "Tarde", PlannedQty: 200, ProducedQty: 200, Cost: dec("1500"), Quality: dec("5")},
	}
}

func fixtureGroup() []entity.GroupCompanyMonthly {
	return []entity.GroupCompanyMonthly{
		{Company: "Alfa", YearMonth: "2024-01", Revenue: dec("100"), Cost: dec("90"), Sales: dec("120"), MarginPct: dec("10"), Employees: 10},
		{Company: "Beta", YearMonth: "2024-01", Revenue: dec("300"), Cost: dec("240"), Sales: dec("310"), MarginPct: dec("20"), Employees: 20},
		{Company: "Alfa", YearMonth: "2024-02", Revenue: dec("200"), Cost: dec("140"), Sales: dec("220"), MarginPct: dec("30"), Employees: 11},
		{Company: "Beta", YearMonth: "2024-02", Revenue: dec("150"), Cost: dec("142.5"), Sales: dec("160"), MarginPct: dec("5"), Employees: 21},
	}
}

func fullSession() *entity.Session {
	return &entity.Session{
		Sales:          tableOf(fixtureSales()...),
		Finance:        tableOf(fixtureFinance()...),
		Inventory:      tableOf(fixtureInventory()...),
		Employees:      tableOf(fixtureEmployees()...),
		Production:     tableOf(fixtureProduction()...),
		GroupCompanies: tableOf(fixtureGroup()...),
	}
}
