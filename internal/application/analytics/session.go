// Package analytics contiene los casos de uso de cada página del dashboard: toman la sesión
// de datos vigente y los filtros del request y devuelven KPIs y series listas para graficar.
package analytics

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/aircatering-bi/internal/application/dto"
	"github.com/jhoicas/aircatering-bi/internal/domain"
	core "github.com/jhoicas/aircatering-bi/internal/domain/analytics"
	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
)

// SessionSource entrega la sesión de datos vigente (session.Store en producción).
type SessionSource interface {
	Current() *entity.Session
}

// Códigos de aviso por dataset.
const (
	NoticeUnavailable = "DATASET_UNAVAILABLE"
	NoticeMalformed   = "DATASET_MALFORMED"
)

// datasetError error de una página cuyo dataset no está cargado.
// Conserva el error de carga para distinguir ausente de malformado.
func datasetError(s *entity.Session, name entity.DatasetName) error {
	if issue := s.Issue(name); issue != nil {
		if errors.Is(issue, domain.ErrMalformedDataset) || errors.Is(issue, domain.ErrDatasetUnavailable) {
			return fmt.Errorf("%s: %w", name, issue)
		}
		return fmt.Errorf("%w: %s: %v", domain.ErrDatasetUnavailable, name, issue)
	}
	return fmt.Errorf("%w: %s", domain.ErrDatasetUnavailable, name)
}

// notice aviso para una sección que se omite.
func notice(s *entity.Session, name entity.DatasetName) dto.NoticeDTO {
	n := dto.NoticeDTO{
		Dataset: string(name),
		Code:    NoticeUnavailable,
		Message: fmt.Sprintf("datos de %s no disponibles", name),
	}
	if issue := s.Issue(name); issue != nil {
		if errors.Is(issue, domain.ErrMalformedDataset) {
			n.Code = NoticeMalformed
		}
		n.Message = issue.Error()
	}
	return n
}

// parseDateRange convierte from/to (YYYY-MM-DD) en un rango inclusivo.
func parseDateRange(from, to string) (core.DateRange, error) {
	var r core.DateRange
	if from != "" {
		t, err := time.Parse(entity.DateLayout, from)
		if err != nil {
			return r, fmt.Errorf("%w: from %q", domain.ErrInvalidInput, from)
		}
		r.From = &t
	}
	if to != "" {
		t, err := time.Parse(entity.DateLayout, to)
		if err != nil {
			return r, fmt.Errorf("%w: to %q", domain.ErrInvalidInput, to)
		}
		r.To = &t
	}
	return r, nil
}

// points convierte la serie en DTO redondeando a 2 decimales.
func points(s core.Series) []dto.PointDTO {
	out := make([]dto.PointDTO, len(s))
	for i, p := range s {
		out[i] = dto.PointDTO{Key: p.Key, Value: p.Value.Round(2)}
	}
	return out
}

func trendPoints(tp []core.TrendPoint) []dto.TrendPointDTO {
	out := make([]dto.TrendPointDTO, len(tp))
	for i, p := range tp {
		out[i] = dto.TrendPointDTO{Month: p.Month, Value: p.Value}
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func intDec(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }
