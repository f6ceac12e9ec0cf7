package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/aircatering-bi/internal/application/dto"
	core "github.com/jhoicas/aircatering-bi/internal/domain/analytics"
	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
)

const topSellers = 10 // barras del ranking de vendedores

// SalesUseCase página de ventas: filtros por categoría, región y período.
type SalesUseCase struct {
	sessions SessionSource
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(sessions SessionSource) *SalesUseCase {
	return &SalesUseCase{sessions: sessions}
}

// filterSales ventas que cumplen todos los filtros, en el orden de la tabla. Trabaja sobre una
// única sesión para no mezclar tablas si hay una recarga en curso.
func filterSales(s *entity.Session, req dto.SalesRequest) ([]entity.Sale, error) {
	if s.Sales == nil {
		return nil, datasetError(s, entity.DatasetSales)
	}
	period, err := parseDateRange(req.From, req.To)
	if err != nil {
		return nil, err
	}
	return core.Filter(s.Sales.Rows,
		core.In(saleCategory, core.SelectionFrom(req.Categories)),
		core.In(saleRegion, core.SelectionFrom(req.Regions)),
		core.Between(saleDate, period),
	), nil
}

// Get calcula KPIs, ranking de vendedores, ventas por canal y el detalle paginado.
func (uc *SalesUseCase) Get(ctx context.Context, req dto.SalesRequest) (*dto.SalesPageDTO, error) {
	page, _, err := uc.Snapshot(ctx, req)
	return page, err
}

// Snapshot página y detalle completo (sin paginar, fecha descendente) calculados sobre la
// misma sesión.
func (uc *SalesUseCase) Snapshot(ctx context.Context, req dto.SalesRequest) (*dto.SalesPageDTO, []dto.SaleRowDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	s := uc.sessions.Current()
	rows, err := filterSales(s, req)
	if err != nil {
		return nil, nil, err
	}
	all := s.Sales.Rows

	maxSale, _ := core.MaxOf(rows, saleTotal)
	out := &dto.SalesPageDTO{
		Options: salesOptions(all),
		KPIs: dto.SalesKPIsDTO{
			Total:      core.SumOf(rows, saleTotal).Round(2),
			Count:      len(rows),
			MeanTicket: core.MeanOf(rows, saleTotal).Round(2),
			MaxSale:    maxSale.Round(2),
		},
		TopSellers: points(core.Aggregate(rows, saleSeller, core.Sum(saleTotal)).
			SortByValue(false).
			Head(topSellers)),
		ByChannel:   points(core.Aggregate(rows, saleChannel, core.Sum(saleTotal))),
		DataQuality: salesDataQuality(rows),
	}

	detail := detailRows(rows)

	page := dto.PageRequest{Limit: req.Limit, Offset: req.Offset}
	page.DefaultPage()
	out.Page = dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(detail)}

	out.Rows = []dto.SaleRowDTO{}
	if page.Offset < len(detail) {
		end := min(page.Offset+page.Limit, len(detail))
		out.Rows = detail[page.Offset:end]
	}
	return out, detail, nil
}

// salesDataQuality filas cuyo total no respeta cantidad × precio × (1 − desconto) o es
// negativo. Se informan; ninguna fila se corrige.
func salesDataQuality(rows []entity.Sale) dto.SalesDataQualityDTO {
	negative := func(s entity.Sale) bool { return s.Total.IsNegative() }
	mismatch := func(s entity.Sale) bool { return !s.TotalMatches() }
	q := dto.SalesDataQualityDTO{
		NegativeTotalRows: core.CountWhere(rows, negative),
		TotalMismatchRows: core.CountWhere(rows, mismatch),
	}
	if n := core.CountWhere(rows, func(s entity.Sale) bool { return negative(s) || mismatch(s) }); n > 0 {
		q.Warning = fmt.Sprintf("%d vendas con valor_total inconsistente; se suman sin corregir", n)
	}
	return q
}

// detailRows ordena por fecha descendente; los empates quedan en el orden de la tabla.
func detailRows(rows []entity.Sale) []dto.SaleRowDTO {
	sorted := make([]entity.Sale, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.After(sorted[j].Date) })

	out := make([]dto.SaleRowDTO, len(sorted))
	for i, s := range sorted {
		out[i] = saleRow(s)
	}
	return out
}

func salesOptions(all []entity.Sale) dto.SalesOptionsDTO {
	opts := dto.SalesOptionsDTO{
		Categories: core.Distinct(all, saleCategory),
		Regions:    core.Distinct(all, saleRegion),
	}
	for i := range all {
		d := all[i].Date
		if opts.MinDate == nil || d.Before(*opts.MinDate) {
			opts.MinDate = &all[i].Date
		}
		if opts.MaxDate == nil || d.After(*opts.MaxDate) {
			opts.MaxDate = &all[i].Date
		}
	}
	return opts
}

func saleRow(s entity.Sale) dto.SaleRowDTO {
	return dto.SaleRowDTO{
		ID:        s.ID,
		Date:      s.Date,
		Customer:  s.Customer,
		Seller:    s.Seller,
		Product:   s.Product,
		Category:  s.Category,
		Region:    s.Region,
		Channel:   s.Channel,
		Quantity:  s.Quantity,
		UnitPrice: s.UnitPrice,
		Discount:  s.Discount,
		Total:     s.Total,
	}
}
