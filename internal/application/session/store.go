package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
)

// Store sesión vigente. Las lecturas no bloquean; Reload reemplaza la sesión completa,
// de modo que cada request ve una sesión consistente.
type Store struct {
	loader  *Loader
	current atomic.Pointer[entity.Session]
	mu      sync.Mutex // serializa recargas
}

// NewStore construye el store sin sesión; llamar Reload antes de servir.
func NewStore(loader *Loader) *Store {
	return &Store{loader: loader}
}

// NewStaticStore store con una sesión fija (tests y herramientas).
func NewStaticStore(s *entity.Session) *Store {
	st := &Store{}
	st.current.Store(s)
	return st
}

// Current sesión vigente; nunca nil.
func (st *Store) Current() *entity.Session {
	if s := st.current.Load(); s != nil {
		return s
	}
	return &entity.Session{}
}

// Reload vuelve a cargar todos los datasets y publica la nueva sesión.
func (st *Store) Reload(ctx context.Context) (*entity.Session, error) {
	if st.loader == nil {
		return st.Current(), nil
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	s, err := st.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("session.Reload: %w", err)
	}
	st.current.Store(s)
	return s, nil
}
