package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/aircatering-bi/internal/application/dto"
	"github.com/jhoicas/aircatering-bi/internal/domain"
	core "github.com/jhoicas/aircatering-bi/internal/domain/analytics"
	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
)

const defaultExpiryDays = 30

// InventoryUseCase página de estoque: alertas de stock bajo, valorización y vencimientos.
type InventoryUseCase struct {
	sessions SessionSource
	now      func() time.Time
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(sessions SessionSource) *InventoryUseCase {
	return &InventoryUseCase{sessions: sessions, now: time.Now}
}

// Get calcula la página. as_of fija la fecha de referencia de vencimientos (default hoy).
func (uc *InventoryUseCase) Get(ctx context.Context, req dto.InventoryRequest) (*dto.InventoryPageDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := uc.sessions.Current()
	if s.Inventory == nil {
		return nil, datasetError(s, entity.DatasetInventory)
	}

	asOf := entity.DateOnly(uc.now())
	if req.AsOf != "" {
		t, err := time.Parse(entity.DateLayout, req.AsOf)
		if err != nil {
			return nil, fmt.Errorf("%w: as_of %q", domain.ErrInvalidInput, req.AsOf)
		}
		asOf = t
	}
	days := req.ExpiryDays
	if days <= 0 {
		days = defaultExpiryDays
	}

	rows := core.Filter(s.Inventory.Rows, core.In(itemCategory, core.SelectionFrom(req.Categories)))
	low := core.Filter(rows, entity.InventoryItem.LowStock)

	out := &dto.InventoryPageDTO{
		KPIs: dto.InventoryKPIsDTO{
			TotalItems:    len(rows),
			StockValue:    core.SumOf(rows, itemStockValue).Round(2),
			LowStockCount: len(low),
			Categories:    core.DistinctCount(rows, itemCategory),
		},
		LowStock:           make([]dto.LowStockItemDTO, 0, len(low)),
		QuantityByCategory: points(core.Aggregate(rows, itemCategory, core.Sum(itemQty))),
		ValueByCategory:    points(core.Aggregate(rows, itemCategory, core.Sum(itemStockValue))),
		Expiring:           expiring(rows, asOf, days),
		AsOf:               asOf,
		ExpiryDays:         days,
	}
	for _, it := range low {
		out.LowStock = append(out.LowStock, dto.LowStockItemDTO{
			ID:         it.ID,
			Product:    it.Product,
			CurrentQty: it.CurrentQty,
			MinimumQty: it.MinimumQty,
		})
	}
	return out, nil
}

// expiring productos que vencen en [asOf, asOf+days], el más próximo primero.
func expiring(rows []entity.InventoryItem, asOf time.Time, days int) []dto.ExpiringItemDTO {
	soon := core.Filter(rows, func(i entity.InventoryItem) bool { return i.ExpiresWithin(asOf, days) })
	sort.SliceStable(soon, func(a, b int) bool { return soon[a].Expiry.Before(*soon[b].Expiry) })

	out := make([]dto.ExpiringItemDTO, 0, len(soon))
	for _, it := range soon {
		left := entity.DateOnly(*it.Expiry).Sub(entity.DateOnly(asOf))
		out = append(out, dto.ExpiringItemDTO{
			ID:       it.ID,
			Product:  it.Product,
			Category: it.Category,
			Expiry:   *it.Expiry,
			DaysLeft: int(left.Hours() / 24),
		})
	}
	return out
}
