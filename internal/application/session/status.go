package session

import (
	"errors"
	"time"

	"github.com/jhoicas/aircatering-bi/internal/application/dto"
	"github.com/jhoicas/aircatering-bi/internal/domain"
	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
)

// Estados de un dataset en la sesión.
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
	StatusMalformed   = "malformed"
)

// Describe estado de carga de cada dataset, en el orden de entity.AllDatasets.
func Describe(s *entity.Session) dto.DatasetsDTO {
	out := dto.DatasetsDTO{Datasets: make([]dto.DatasetStatusDTO, 0, len(entity.AllDatasets))}
	if s != nil {
		out.LoadedAt = s.LoadedAt
	}
	for _, name := range entity.AllDatasets {
		st := dto.DatasetStatusDTO{Name: string(name), Status: StatusOK}
		if s.Present(name) {
			st.Rows = s.RowCount(name)
			st.Source, st.LoadedAt = source(s, name)
			if st.LoadedAt != nil && st.LoadedAt.IsZero() {
				st.LoadedAt = nil
			}
		} else {
			st.Status = StatusUnavailable
			if err := s.Issue(name); err != nil {
				st.Error = err.Error()
				if errors.Is(err, domain.ErrMalformedDataset) {
					st.Status = StatusMalformed
				}
			}
		}
		out.Datasets = append(out.Datasets, st)
	}
	return out
}

func source(s *entity.Session, name entity.DatasetName) (string, *time.Time) {
	switch name {
	case entity.DatasetSales:
		return s.Sales.Source, &s.Sales.LoadedAt
	case entity.DatasetFinance:
		return s.Finance.Source, &s.Finance.LoadedAt
	case entity.DatasetInventory:
		return s.Inventory.Source, &s.Inventory.LoadedAt
	case entity.DatasetEmployees:
		return s.Employees.Source, &s.Employees.LoadedAt
	case entity.DatasetProduction:
		return s.Production.Source, &s.Production.LoadedAt
	case entity.DatasetGroupCompanies:
		return s.GroupCompanies.Source, &s.GroupCompanies.LoadedAt
	}
	return "", nil
}
