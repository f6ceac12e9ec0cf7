// Package session arma la sesión de datos del dashboard a partir de un DatasetRepository.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/aircatering-bi/internal/domain"
	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
	"github.com/jhoicas/aircatering-bi/internal/domain/repository"
	"github.com/jhoicas/aircatering-bi/pkg/logger"
)

// Loader carga los seis datasets. Un dataset con error queda ausente en la sesión
// y su error se registra en Session.Issues; los demás se cargan igual.
type Loader struct {
	repo repository.DatasetRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewLoader construye el cargador.
func NewLoader(repo repository.DatasetRepository, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{repo: repo, log: log.Component("session"), now: time.Now}
}

// Load construye una sesión nueva. Solo devuelve error si el contexto se cancela.
func (l *Loader) Load(ctx context.Context) (*entity.Session, error) {
	s := &entity.Session{Issues: make(map[entity.DatasetName]error)}

	var err error
	if s.Sales, err = load(ctx, l, entity.DatasetSales, l.repo.LoadSales, s); err != nil {
		return nil, err
	}
	if s.Finance, err = load(ctx, l, entity.DatasetFinance, l.repo.LoadFinance, s); err != nil {
		return nil, err
	}
	if s.Inventory, err = load(ctx, l, entity.DatasetInventory, l.repo.LoadInventory, s); err != nil {
		return nil, err
	}
	if s.Employees, err = load(ctx, l, entity.DatasetEmployees, l.repo.LoadEmployees, s); err != nil {
		return nil, err
	}
	if s.Production, err = load(ctx, l, entity.DatasetProduction, l.repo.LoadProduction, s); err != nil {
		return nil, err
	}
	if s.GroupCompanies, err = load(ctx, l, entity.DatasetGroupCompanies, l.repo.LoadGroupCompanies, s); err != nil {
		return nil, err
	}

	s.LoadedAt = l.now()
	if s.Empty() {
		l.log.Warn().Msg("ningún dataset disponible; el dashboard mostrará solo avisos")
	}
	return s, nil
}

func load[T any](
	ctx context.Context,
	l *Loader,
	name entity.DatasetName,
	fn func(context.Context) (*entity.Table[T], error),
	s *entity.Session,
) (*entity.Table[T], error) {
	tbl, err := fn(ctx)
	if err == nil {
		l.log.Info().Str("dataset", string(name)).Int("rows", tbl.Len()).Str("source", tbl.Source).Msg("dataset cargado")
		return tbl, nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}

	s.Issues[name] = err
	ev := l.log.Error()
	if errors.Is(err, domain.ErrDatasetUnavailable) {
		ev = l.log.Warn()
	}
	ev.Str("dataset", string(name)).Err(err).Msg("dataset no cargado")
	return nil, nil
}
