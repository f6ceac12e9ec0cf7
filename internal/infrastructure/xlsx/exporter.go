// Package xlsx exporta las planillas descargables del dashboard con excelize.
package xlsx

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/aircatering-bi/internal/application/report"
)

const (
	SheetSales       = "Vendas"
	SheetSalesSum    = "Resumo"
	SheetEmployees   = "Colaboradores"
	SheetDepartments = "Departamentos"

	fillCritical = "FFCCCC"
	fillWarning  = "FFF4CC"
)

var _ report.SheetExporter = (*Exporter)(nil)

// Exporter implementa report.SheetExporter.
type Exporter struct{}

func NewExporter() *Exporter { return &Exporter{} }

// ExportSales hoja de detalle con todas las ventas filtradas y hoja de resumen.
func (e *Exporter) ExportSales(_ context.Context, s report.SalesSheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSales); err != nil {
		return nil, err
	}
	w := newSheetWriter(f, SheetSales)
	w.header("ID", "Data", "Cliente", "Vendedor", "Produto", "Categoria", "Região", "Canal",
		"Quantidade", "Preço unitário", "Desconto", "Valor total")
	for _, r := range s.Rows {
		w.row(r.ID, r.Date.Format("2006-01-02"), r.Customer, r.Seller, r.Product, r.Category,
			r.Region, r.Channel, r.Quantity, num(r.UnitPrice), num(r.Discount), num(r.Total))
	}
	w.widths(14)

	if _, err := f.NewSheet(SheetSalesSum); err != nil {
		return nil, err
	}
	sum := newSheetWriter(f, SheetSalesSum)
	sum.header("Indicador", "Valor")
	sum.row("Total de vendas", num(s.KPIs.Total))
	sum.row("Quantidade de vendas", s.KPIs.Count)
	sum.row("Ticket médio", num(s.KPIs.MeanTicket))
	sum.row("Maior venda", num(s.KPIs.MaxSale))
	sum.blank()
	sum.header("Vendedor", "Total")
	for _, p := range s.TopSellers {
		sum.row(p.Key, num(p.Value))
	}
	sum.blank()
	sum.header("Canal", "Total")
	for _, p := range s.ByChannel {
		sum.row(p.Key, num(p.Value))
	}
	sum.widths(24)

	if err := w.err(); err != nil {
		return nil, err
	}
	if err := sum.err(); err != nil {
		return nil, err
	}
	return write(f)
}

// ExportHR detalle por colaborador, resaltado según el nivel de absentismo, y resumen por departamento.
func (e *Exporter) ExportHR(_ context.Context, s report.HRSheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetEmployees); err != nil {
		return nil, err
	}
	styles, err := tierStyles(f)
	if err != nil {
		return nil, err
	}

	w := newSheetWriter(f, SheetEmployees)
	w.header("ID", "Nome", "Departamento", "Cargo", "Status", "Salário", "Absenteísmo (%)", "Nível")
	for _, r := range s.Employees {
		w.row(r.ID, r.Name, r.Department, r.Role, r.Status, num(r.Salary), r.AbsenteeismPct, r.Tier)
		if style, ok := styles[r.Tier]; ok {
			w.styleRow(8, style)
		}
	}
	w.widths(16)

	if _, err := f.NewSheet(SheetDepartments); err != nil {
		return nil, err
	}
	d := newSheetWriter(f, SheetDepartments)
	d.header("Departamento", "Funcionários", "Salário médio", "Turnover (%)", "Absenteísmo (%)")
	for _, r := range s.Departments {
		d.row(r.Department, r.Employees, num(r.MeanSalary), num(r.Turnover), num(r.Absenteeism))
	}
	d.widths(18)

	if err := w.err(); err != nil {
		return nil, err
	}
	if err := d.err(); err != nil {
		return nil, err
	}
	return write(f)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// sheetWriter escribe filas consecutivas y guarda el primer error.
type sheetWriter struct {
	f       *excelize.File
	sheet   string
	next    int
	cols    int
	bold    int
	failure error
}

func newSheetWriter(f *excelize.File, sheet string) *sheetWriter {
	w := &sheetWriter{f: f, sheet: sheet, next: 1}
	w.bold, w.failure = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	return w
}

func (w *sheetWriter) header(titles ...string) {
	values := make([]any, len(titles))
	for i, t := range titles {
		values[i] = t
	}
	w.row(values...)
	w.styleRow(len(titles), w.bold)
}

func (w *sheetWriter) row(values ...any) {
	if w.failure != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, w.next)
	if err != nil {
		w.failure = err
		return
	}
	if err := w.f.SetSheetRow(w.sheet, cell, &values); err != nil {
		w.failure = fmt.Errorf("xlsx: %s fila %d: %w", w.sheet, w.next, err)
		return
	}
	w.cols = max(w.cols, len(values))
	w.next++
}

func (w *sheetWriter) blank() { w.next++ }

// styleRow aplica el estilo a las primeras n celdas de la última fila escrita.
func (w *sheetWriter) styleRow(n, style int) {
	if w.failure != nil {
		return
	}
	last := w.next - 1
	from, _ := excelize.CoordinatesToCellName(1, last)
	to, _ := excelize.CoordinatesToCellName(n, last)
	w.failure = w.f.SetCellStyle(w.sheet, from, to, style)
}

func (w *sheetWriter) widths(width float64) {
	if w.failure != nil || w.cols == 0 {
		return
	}
	last, err := excelize.ColumnNumberToName(w.cols)
	if err != nil {
		w.failure = err
		return
	}
	w.failure = w.f.SetColWidth(w.sheet, "A", last, width)
}

func (w *sheetWriter) err() error { return w.failure }

func tierStyles(f *excelize.File) (map[string]int, error) {
	styles := make(map[string]int, 2)
	for tier, color := range map[string]string{"critical": fillCritical, "warning": fillWarning} {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		})
		if err != nil {
			return nil, err
		}
		styles[tier] = id
	}
	return styles, nil
}

func num(d decimal.Decimal) float64 { return d.Round(2).InexactFloat64() }

func write(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
