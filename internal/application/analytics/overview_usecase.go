package analytics

import (
	"context"

	"github.com/jhoicas/aircatering-bi/internal/application/dto"
	core "github.com/jhoicas/aircatering-bi/internal/domain/analytics"
	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
)

// OverviewUseCase página principal: tarjetas generales, ventas por mes y categoría y la
// sección del grupo de empresas. Cada sección depende de su dataset; las ausentes se informan.
type OverviewUseCase struct {
	sessions SessionSource
}

// NewOverviewUseCase construye el caso de uso.
func NewOverviewUseCase(sessions SessionSource) *OverviewUseCase {
	return &OverviewUseCase{sessions: sessions}
}

// Get calcula la visión general sobre la sesión vigente.
func (uc *OverviewUseCase) Get(ctx context.Context) (*dto.OverviewDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := uc.sessions.Current()
	out := &dto.OverviewDTO{
		SalesByMonth:    []dto.PointDTO{},
		SalesByCategory: []dto.PointDTO{},
		Notices:         []dto.NoticeDTO{},
	}

	// ── Tarjetas ───────────────────────────────────────────────────────────────
	if s.Sales != nil {
		rows := s.Sales.Rows
		out.KPIs.TotalSales = ptr(core.SumOf(rows, saleTotal).Round(2))
		out.SalesByMonth = points(core.Aggregate(rows, saleMonth, core.Sum(saleTotal)))
		out.SalesByCategory = points(core.Aggregate(rows, saleCategory, core.Sum(saleTotal)))
	} else {
		out.Notices = append(out.Notices, notice(s, entity.DatasetSales))
	}

	if s.Finance != nil {
		revenue := core.Filter(s.Finance.Rows, entity.FinancialTransaction.IsRevenue)
		out.KPIs.Revenue = ptr(core.SumOf(revenue, txAmount).Round(2))
	} else {
		out.Notices = append(out.Notices, notice(s, entity.DatasetFinance))
	}

	if s.Inventory != nil {
		out.KPIs.InventoryProducts = ptr(s.Inventory.Len())
	} else {
		out.Notices = append(out.Notices, notice(s, entity.DatasetInventory))
	}

	if s.Employees != nil {
		out.KPIs.ActiveEmployees = ptr(core.CountWhere(s.Employees.Rows, entity.Employee.IsActive))
	} else {
		out.Notices = append(out.Notices, notice(s, entity.DatasetEmployees))
	}

	// ── Grupo de empresas ─────────────────────────────────────────────────────
	if s.GroupCompanies != nil {
		out.Group = groupSection(s.GroupCompanies.Rows)
	} else {
		out.Notices = append(out.Notices, notice(s, entity.DatasetGroupCompanies))
	}

	return out, nil
}

// groupSection KPIs del último mes y evolución mensual. nil si la tabla está vacía.
func groupSection(rows []entity.GroupCompanyMonthly) *dto.GroupSectionDTO {
	if len(rows) == 0 {
		return nil
	}
	latest := ""
	for _, r := range rows {
		if r.YearMonth > latest {
			latest = r.YearMonth
		}
	}
	last := core.Filter(rows, func(r entity.GroupCompanyMonthly) bool { return r.YearMonth == latest })

	return &dto.GroupSectionDTO{
		LatestMonth:   latest,
		Revenue:       core.SumOf(last, groupRevenue).Round(2),
		Sales:         core.SumOf(last, groupSales).Round(2),
		MeanMarginPct: core.MeanOf(last, groupMarginPct).Round(2),
		Employees:     int(core.SumOf(last, groupEmployees).IntPart()),
		RevenueByCompany: points(core.Aggregate(last, groupCompany, core.Sum(groupRevenue)).
			SortByValue(true)),
		MarginByCompany: points(core.Aggregate(last, groupCompany, core.Mean(groupMarginPct)).
			SortByValue(true)),
		RevenueByMonth: points(core.Aggregate(rows, groupMonth, core.Sum(groupRevenue))),
		MarginByMonth:  points(core.Aggregate(rows, groupMonth, core.Mean(groupMarginPct))),
		MarginMismatchRows: core.CountWhere(rows, func(r entity.GroupCompanyMonthly) bool {
			return !r.MarginMatches()
		}),
	}
}
