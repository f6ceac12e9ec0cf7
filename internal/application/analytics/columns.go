package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	core "github.com/jhoicas/aircatering-bi/internal/domain/analytics"
	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
)

// Accesores de columnas usados como claves y valores de agregación.

func saleTotal(s entity.Sale) decimal.Decimal { return s.Total }
func saleDate(s entity.Sale) time.Time        { return s.Date }
func saleMonth(s entity.Sale) string          { return entity.MonthKey(s.Date) }
func saleCategory(s entity.Sale) string       { return s.Category }
func saleRegion(s entity.Sale) string         { return s.Region }
func saleSeller(s entity.Sale) string         { return s.Seller }
func saleChannel(s entity.Sale) string        { return s.Channel }

func txAmount(t entity.FinancialTransaction) decimal.Decimal { return t.Amount }
func txDate(t entity.FinancialTransaction) time.Time        { return t.Date }
func txCategory(t entity.FinancialTransaction) string       { return t.Category }
func txStatus(t entity.FinancialTransaction) string         { return t.Status }
func txMonthType(t entity.FinancialTransaction) string {
	return core.CompositeKey(entity.MonthKey(t.Date), t.Type)
}

func itemCategory(i entity.InventoryItem) string            { return i.Category }
func itemQty(i entity.InventoryItem) decimal.Decimal        { return intDec(i.CurrentQty) }
func itemStockValue(i entity.InventoryItem) decimal.Decimal { return i.StockValue() }

func empDepartment(e entity.Employee) string      { return e.Department }
func empSalary(e entity.Employee) decimal.Decimal { return e.Salary }

func runLine(p entity.ProductionRun) string              { return p.Line }
func runShift(p entity.ProductionRun) string             { return p.Shift }
func runDate(p entity.ProductionRun) time.Time           { return p.Date }
func runProduced(p entity.ProductionRun) decimal.Decimal { return intDec(p.ProducedQty) }
func runPlanned(p entity.ProductionRun) decimal.Decimal  { return intDec(p.PlannedQty) }
func runCost(p entity.ProductionRun) decimal.Decimal     { return p.Cost }
func runQuality(p entity.ProductionRun) decimal.Decimal  { return p.Quality }

func groupRevenue(g entity.GroupCompanyMonthly) decimal.Decimal   { return g.Revenue }
func groupSales(g entity.GroupCompanyMonthly) decimal.Decimal     { return g.Sales }
func groupMarginPct(g entity.GroupCompanyMonthly) decimal.Decimal { return g.MarginPct }
func groupEmployees(g entity.GroupCompanyMonthly) decimal.Decimal { return intDec(g.Employees) }
func groupCompany(g entity.GroupCompanyMonthly) string            { return g.Company }
func groupMonth(g entity.GroupCompanyMonthly) string              { return g.YearMonth }
