// Package pdf genera el resumen ejecutivo del dashboard en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte   │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs GENERALES: Vendas | Receitas | Produtos | Ativos      │
//	│  VENDAS POR CATEGORIA (tabla)                               │
//	│  GRUPO: último mes + faturamento por empresa                │
//	│  FINANCEIRO / RH / PRODUÇÃO: tarjetas por sección           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  AVISOS: datasets ausentes o con error                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/aircatering-bi/internal/application/dto"
	"github.com/jhoicas/aircatering-bi/internal/application/report"
	"github.com/jhoicas/aircatering-bi/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarning = &props.Color{Red: 180, Green: 120, Blue: 0}
	colorDanger  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.SummaryPDFGenerator = (*MarotoSummaryGenerator)(nil)

// MarotoSummaryGenerator implementa report.SummaryPDFGenerator usando Maroto v2.
type MarotoSummaryGenerator struct {
	author string
}

// NewMarotoSummaryGenerator construye el generador. author aparece en los metadatos del PDF.
func NewMarotoSummaryGenerator(author string) *MarotoSummaryGenerator {
	return &MarotoSummaryGenerator{author: author}
}

// GenerateSummaryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoSummaryGenerator) GenerateSummaryPDF(_ context.Context, r report.SummaryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(r))
	m.AddRows(divider(0.5))

	if ov := r.Overview; ov != nil {
		m.AddRows(sectionTitle("Indicadores gerais"))
		m.AddRows(kpiRow(
			card("Total de vendas", moneyOrDash(ov.KPIs.TotalSales)),
			card("Receitas", moneyOrDash(ov.KPIs.Revenue)),
			card("Produtos em estoque", intOrDash(ov.KPIs.InventoryProducts)),
			card("Funcionários ativos", intOrDash(ov.KPIs.ActiveEmployees)),
		))
		if len(ov.SalesByCategory) > 0 {
			m.AddRows(sectionTitle("Vendas por categoria"))
			m.AddRows(seriesRows(ov.SalesByCategory, format.BRL)...)
		}
		if grp := ov.Group; grp != nil {
			m.AddRows(sectionTitle("Empresas do grupo · " + grp.LatestMonth))
			m.AddRows(kpiRow(
				card("Faturamento", format.BRL(grp.Revenue)),
				card("Vendas", format.BRL(grp.Sales)),
				card("Margem média", format.Percent(grp.MeanMarginPct)),
				card("Funcionários", format.Int(int64(grp.Employees))),
			))
			m.AddRows(seriesRows(grp.RevenueByCompany, format.BRL)...)
		}
	}

	if f := r.Finance; f != nil {
		m.AddRows(sectionTitle("Financeiro"))
		m.AddRows(kpiRow(
			card("Receitas", format.BRL(f.Revenue)),
			card("Despesas", format.BRL(f.Expenses)),
			card("Lucro", format.BRL(f.Profit)),
			card("Margem", format.Percent(f.ProfitMarginPct)),
		))
	}

	if h := r.HR; h != nil {
		m.AddRows(sectionTitle("Recursos humanos"))
		m.AddRows(kpiRow(
			card("Funcionários", format.Int(int64(h.Total))),
			card("Folha de pagamento", format.BRL(h.Payroll)),
			tierCard("Turnover", format.Percent(h.TurnoverRate), h.TurnoverTier),
			tierCard("Absenteísmo (simulado)", format.Percent(h.MeanAbsenteeism), h.AbsenteeismTier),
		))
	}

	if p := r.Production; p != nil {
		m.AddRows(sectionTitle("Produção"))
		m.AddRows(kpiRow(
			card("Total produzido", format.Int(p.TotalProduced)),
			card("Eficiência média", format.Percent(p.MeanEfficiency)),
			card("Custo total", format.BRL(p.TotalCost)),
			card("Qualidade média", format.Score(p.MeanQuality)),
		))
	}

	if len(r.Notices) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(divider(0.3))
		m.AddRows(noticeRows(r.Notices)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(r report.SummaryReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(r.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em", props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
		}),
	))
}

func divider(thickness float64) core.Row {
	return line.NewRow(1, props.Line{Color: colorPrimary, Thickness: thickness})
}

// kpi tarjeta: etiqueta, valor y nivel opcional (normal/warning/critical).
type kpi struct {
	label string
	value string
	tier  string
}

func card(label, value string) kpi { return kpi{label: label, value: value} }

func tierCard(label, value, tier string) kpi {
	return kpi{label: label, value: value, tier: tier}
}

// kpiRow hasta cuatro tarjetas en columnas de igual ancho.
func kpiRow(cards ...kpi) core.Row {
	size := 12 / len(cards)
	cols := make([]core.Col, 0, len(cards))
	for _, c := range cards {
		valueProps := props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}
		if color := tierColor(c.tier); color != nil {
			valueProps.Color = color
		}
		cols = append(cols, col.New(size).Add(
			text.New(c.label, props.Text{Size: 7.5, Color: colorGray, Top: 1}),
			text.New(c.value, valueProps),
		))
	}
	return row.New(14).Add(cols...)
}

// seriesRows tabla de dos columnas: clave y valor formateado.
func seriesRows(points []dto.PointDTO, fmtValue func(decimal.Decimal) string) []core.Row {
	rows := make([]core.Row, 0, len(points))
	for _, p := range points {
		rows = append(rows, row.New(5).Add(
			col.New(8).Add(text.New(nonEmpty(p.Key, "—"), props.Text{Size: 8, Left: 2})),
			col.New(4).Add(text.New(fmtValue(p.Value), props.Text{Size: 8, Align: align.Right, Right: 2})),
		))
	}
	return rows
}

// noticeRows: avisos de secciones omitidas.
func noticeRows(notices []dto.NoticeDTO) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("AVISOS", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorDanger, Top: 1}),
		)),
	}
	for _, n := range notices {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%s: %s", n.Dataset, n.Message), props.Text{Size: 7, Color: colorGray, Left: 2}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func tierColor(tier string) *props.Color {
	switch tier {
	case "critical":
		return colorDanger
	case "warning":
		return colorWarning
	}
	return nil
}

func moneyOrDash(v *decimal.Decimal) string {
	if v == nil {
		return "—"
	}
	return format.BRL(*v)
}

func intOrDash(v *int) string {
	if v == nil {
		return "—"
	}
	return format.Int(int64(*v))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
