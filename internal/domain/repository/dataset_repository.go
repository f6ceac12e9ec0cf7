package repository

import (
	"context"

	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
)

// DatasetRepository carga cada dataset completo desde su almacenamiento.
// Las implementaciones son de solo lectura.
//
// Contrato de errores:
//   - domain.ErrDatasetUnavailable si el dataset no existe (archivo o tabla ausente).
//   - domain.ErrMalformedDataset si existe pero no se puede interpretar (columna faltante,
//     fecha o número inválido). No se devuelven cargas parciales.
type DatasetRepository interface {
	LoadSales(ctx context.Context) (*entity.Table[entity.Sale], error)
	LoadFinance(ctx context.Context) (*entity.Table[entity.FinancialTransaction], error)
	LoadInventory(ctx context.Context) (*entity.Table[entity.InventoryItem], error)
	LoadEmployees(ctx context.Context) (*entity.Table[entity.Employee], error)
	LoadProduction(ctx context.Context) (*entity.Table[entity.ProductionRun], error)
	LoadGroupCompanies(ctx context.Context) (*entity.Table[entity.GroupCompanyMonthly], error)
}
