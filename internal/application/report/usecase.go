package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/aircatering-bi/internal/application/analytics"
	"github.com/jhoicas/aircatering-bi/internal/application/dto"
	"github.com/jhoicas/aircatering-bi/internal/domain"
	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
)

// UseCase genera los documentos descargables.
type UseCase struct {
	overview   *analytics.OverviewUseCase
	sales      *analytics.SalesUseCase
	finance    *analytics.FinanceUseCase
	hr         *analytics.HRUseCase
	production *analytics.ProductionUseCase
	pdf        SummaryPDFGenerator
	sheets     SheetExporter
	now        func() time.Time
}

// NewUseCase construye el caso de uso inyectando los generadores.
func NewUseCase(
	sessions analytics.SessionSource,
	pdf SummaryPDFGenerator,
	sheets SheetExporter,
	hrOpts ...analytics.HROption,
) *UseCase {
	return &UseCase{
		overview:   analytics.NewOverviewUseCase(sessions),
		sales:      analytics.NewSalesUseCase(sessions),
		finance:    analytics.NewFinanceUseCase(sessions),
		hr:         analytics.NewHRUseCase(sessions, hrOpts...),
		production: analytics.NewProductionUseCase(sessions),
		pdf:        pdf,
		sheets:     sheets,
		now:        time.Now,
	}
}

// SummaryPDF resumen ejecutivo de todas las páginas disponibles.
// Las secciones sin datos se omiten y quedan listadas como avisos.
func (uc *UseCase) SummaryPDF(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	now := uc.now()
	r := SummaryReport{Title: "Resumo executivo", GeneratedAt: now}

	// ── 1. Visión general (siempre disponible) ────────────────────────────────
	if r.Overview, err = uc.overview.Get(ctx); err != nil {
		return nil, "", fmt.Errorf("report: visión general: %w", err)
	}
	r.Notices = append(r.Notices, r.Overview.Notices...)

	// ── 2. Páginas opcionales ────────────────────────────────────────────────
	fin, err := uc.finance.Get(ctx, dto.FinanceRequest{})
	if err = skipMissing(err); err != nil {
		return nil, "", fmt.Errorf("report: financiero: %w", err)
	}
	if fin != nil {
		r.Finance = &fin.KPIs
	}

	hr, err := uc.hr.Get(ctx, dto.HRRequest{})
	if err = skipMissing(err); err != nil {
		return nil, "", fmt.Errorf("report: rrhh: %w", err)
	}
	if hr != nil {
		r.HR = &hr.KPIs
	}

	prod, err := uc.production.Get(ctx, dto.ProductionRequest{})
	if prod == nil && isMissing(err) {
		code := analytics.NoticeUnavailable
		if errors.Is(err, domain.ErrMalformedDataset) {
			code = analytics.NoticeMalformed
		}
		r.Notices = append(r.Notices, dto.NoticeDTO{
			Dataset: string(entity.DatasetProduction),
			Code:    code,
			Message: err.Error(),
		})
	}
	if err = skipMissing(err); err != nil {
		return nil, "", fmt.Errorf("report: producción: %w", err)
	}
	if prod != nil {
		r.Production = &prod.KPIs
	}

	// ── 3. Render ────────────────────────────────────────────────────────────
	pdfBytes, err = uc.pdf.GenerateSummaryPDF(ctx, r)
	if err != nil {
		return nil, "", fmt.Errorf("report: generar pdf: %w", err)
	}
	return pdfBytes, "resumo-" + now.Format("20060102") + ".pdf", nil
}

// SalesXLSX planilla con todas las ventas filtradas (sin paginar) y su resumen.
func (uc *UseCase) SalesXLSX(ctx context.Context, req dto.SalesRequest) ([]byte, string, error) {
	page, rows, err := uc.sales.Snapshot(ctx, req)
	if err != nil {
		return nil, "", err
	}

	data, err := uc.sheets.ExportSales(ctx, SalesSheet{
		KPIs:       page.KPIs,
		TopSellers: page.TopSellers,
		ByChannel:  page.ByChannel,
		Rows:       rows,
	})
	if err != nil {
		return nil, "", fmt.Errorf("report: exportar vendas: %w", err)
	}
	return data, "vendas-" + uc.now().Format("20060102") + ".xlsx", nil
}

// HRXLSX planilla del detalle por colaborador con su nivel de absentismo.
func (uc *UseCase) HRXLSX(ctx context.Context, req dto.HRRequest) ([]byte, string, error) {
	page, err := uc.hr.Get(ctx, req)
	if err != nil {
		return nil, "", err
	}

	data, err := uc.sheets.ExportHR(ctx, HRSheet{
		KPIs:        page.KPIs,
		Employees:   page.Employees,
		Departments: departmentRows(page),
	})
	if err != nil {
		return nil, "", fmt.Errorf("report: exportar rh: %w", err)
	}
	return data, "rh-" + uc.now().Format("20060102") + ".xlsx", nil
}

// departmentRows une las cuatro series por departamento (todas comparten claves y orden).
func departmentRows(page *dto.HRPageDTO) []DepartmentRow {
	out := make([]DepartmentRow, 0, len(page.EmployeesByDepartment))
	for i, p := range page.EmployeesByDepartment {
		row := DepartmentRow{Department: p.Key, Employees: int(p.Value.IntPart())}
		if i < len(page.MeanSalaryByDepartment) {
			row.MeanSalary = page.MeanSalaryByDepartment[i].Value
		}
		if i < len(page.TurnoverByDepartment) {
			row.Turnover = page.TurnoverByDepartment[i].Value
		}
		if i < len(page.AbsenteeismByDepartment) {
			row.Absenteeism = page.AbsenteeismByDepartment[i].Value
		}
		out = append(out, row)
	}
	return out
}

func isMissing(err error) bool {
	return errors.Is(err, domain.ErrDatasetUnavailable) || errors.Is(err, domain.ErrMalformedDataset)
}

// skipMissing descarta los errores de dataset ausente o malformado.
func skipMissing(err error) error {
	if isMissing(err) {
		return nil
	}
	return err
}
