package entity

import "time"

// DatasetName identifica cada uno de los datasets que alimentan el dashboard.
type DatasetName string

const (
	DatasetSales          DatasetName = "vendas"
	DatasetFinance        DatasetName = "financeiro"
	DatasetInventory      DatasetName = "estoque"
	DatasetEmployees      DatasetName = "rh"
	DatasetProduction     DatasetName = "producao"
	DatasetGroupCompanies DatasetName = "empresas_grupo"
)

// AllDatasets en el orden en que se cargan y se reportan.
var AllDatasets = []DatasetName{
	DatasetSales,
	DatasetFinance,
	DatasetInventory,
	DatasetEmployees,
	DatasetProduction,
	DatasetGroupCompanies,
}

// Table filas de un dataset cargado completo. Las filas no se modifican después de la carga.
type Table[T any] struct {
	Rows     []T
	Source   string // ruta del archivo o nombre de la tabla
	LoadedAt time.Time
}

// Len cantidad de filas; cero para una tabla ausente.
func (t *Table[T]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Session datos disponibles durante una sesión del dashboard.
// Cada dataset es opcional: nil significa ausente o con error de carga (ver Issues).
type Session struct {
	Sales          *Table[Sale]
	Finance        *Table[FinancialTransaction]
	Inventory      *Table[InventoryItem]
	Employees      *Table[Employee]
	Production     *Table[ProductionRun]
	GroupCompanies *Table[GroupCompanyMonthly]

	// Issues error de carga por dataset (ausente o malformado).
	Issues   map[DatasetName]error
	LoadedAt time.Time
}

// Issue devuelve el error registrado para el dataset, si existe.
func (s *Session) Issue(name DatasetName) error {
	if s == nil || s.Issues == nil {
		return nil
	}
	return s.Issues[name]
}

// Empty es verdadero cuando no se cargó ningún dataset.
func (s *Session) Empty() bool {
	return s == nil || (s.Sales == nil && s.Finance == nil && s.Inventory == nil &&
		s.Employees == nil && s.Production == nil && s.GroupCompanies == nil)
}

// RowCount filas cargadas del dataset indicado.
func (s *Session) RowCount(name DatasetName) int {
	if s == nil {
		return 0
	}
	switch name {
	case DatasetSales:
		return s.Sales.Len()
	case DatasetFinance:
		return s.Finance.Len()
	case DatasetInventory:
		return s.Inventory.Len()
	case DatasetEmployees:
		return s.Employees.Len()
	case DatasetProduction:
		return s.Production.Len()
	case DatasetGroupCompanies:
		return s.GroupCompanies.Len()
	}
	return 0
}

// Present indica si el dataset está cargado.
func (s *Session) Present(name DatasetName) bool {
	if s == nil {
		return false
	}
	switch name {
	case DatasetSales:
		return s.Sales != nil
	case DatasetFinance:
		return s.Finance != nil
	case DatasetInventory:
		return s.Inventory != nil
	case DatasetEmployees:
		return s.Employees != nil
	case DatasetProduction:
		return s.Production != nil
	case DatasetGroupCompanies:
		return s.GroupCompanies != nil
	}
	return false
}
