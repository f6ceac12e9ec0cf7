// Package report arma los documentos descargables del dashboard (resumen PDF y planillas XLSX)
// a partir de los mismos casos de uso que alimentan las páginas.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/aircatering-bi/internal/application/dto"
)

// SummaryReport contenido del resumen ejecutivo. Cada sección es nil si su dataset falta.
type SummaryReport struct {
	Title       string
	GeneratedAt time.Time
	Overview    *dto.OverviewDTO
	Finance     *dto.FinanceKPIsDTO
	HR          *dto.HRKPIsDTO
	Production  *dto.ProductionKPIsDTO
	Notices     []dto.NoticeDTO
}

// SalesSheet ventas filtradas y su resumen.
type SalesSheet struct {
	KPIs       dto.SalesKPIsDTO
	TopSellers []dto.PointDTO
	ByChannel  []dto.PointDTO
	Rows       []dto.SaleRowDTO
}

// HRSheet detalle por colaborador y series por departamento.
type HRSheet struct {
	KPIs        dto.HRKPIsDTO
	Employees   []dto.EmployeeRowDTO
	Departments []DepartmentRow
}

// DepartmentRow una fila del resumen por departamento.
type DepartmentRow struct {
	Department  string
	Employees   int
	MeanSalary  decimal.Decimal
	Turnover    decimal.Decimal
	Absenteeism decimal.Decimal
}

// SummaryPDFGenerator genera el PDF del resumen ejecutivo.
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(ctx context.Context, r SummaryReport) ([]byte, error)
}

// SheetExporter genera planillas XLSX.
type SheetExporter interface {
	ExportSales(ctx context.Context, s SalesSheet) ([]byte, error)
	ExportHR(ctx context.Context, s HRSheet) ([]byte, error)
}
