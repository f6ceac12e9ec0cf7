// Package analytics contiene el núcleo de cálculo del dashboard: filtros, agregaciones
// por grupo, KPIs escalares, métricas simuladas y clasificación por niveles.
//
// Todas las funciones son puras: reciben filas ya cargadas y devuelven resultados nuevos
// sin modificar la entrada.
package analytics

import (
	"time"

	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
)

// Predicate restricción sobre una fila.
type Predicate[T any] func(row T) bool

// Filter devuelve las filas que cumplen todas las restricciones (AND), en el orden original.
// Sin restricciones devuelve una copia completa de la tabla.
func Filter[T any](rows []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if matchAll(r, preds) {
			out = append(out, r)
		}
	}
	return out
}

func matchAll[T any](row T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if p != nil && !p(row) {
			return false
		}
	}
	return true
}

// Selection selección de valores categóricos.
// La selección cero (All) no restringe; Only() sin valores no deja pasar ninguna fila.
type Selection struct {
	values map[string]struct{}
	active bool
}

// All selección sin restricción.
func All() Selection { return Selection{} }

// Only restringe a los valores indicados.
func Only(values ...string) Selection {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return Selection{values: set, active: true}
}

// SelectionFrom traduce un slice de query: nil = sin restricción, no-nil = pertenencia.
func SelectionFrom(values []string) Selection {
	if values == nil {
		return All()
	}
	return Only(values...)
}

// Active es verdadero cuando la selección restringe.
func (s Selection) Active() bool { return s.active }

// Contains indica si v pasa la selección.
func (s Selection) Contains(v string) bool {
	if !s.active {
		return true
	}
	_, ok := s.values[v]
	return ok
}

// In restricción de pertenencia de una columna categórica a la selección.
// Devuelve nil cuando la selección no restringe.
func In[T any](field func(T) string, sel Selection) Predicate[T] {
	if !sel.Active() {
		return nil
	}
	return func(row T) bool { return sel.Contains(field(row)) }
}

// DateRange rango de fechas inclusivo; cualquiera de los extremos puede faltar.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Empty es verdadero si el rango no tiene extremos.
func (r DateRange) Empty() bool { return r.From == nil && r.To == nil }

// Unsatisfiable es verdadero cuando From es posterior a To.
func (r DateRange) Unsatisfiable() bool {
	return r.From != nil && r.To != nil && entity.DateOnly(*r.From).After(entity.DateOnly(*r.To))
}

// Contains compara por fecha calendario, ambos extremos inclusivos.
func (r DateRange) Contains(t time.Time) bool {
	d := entity.DateOnly(t)
	if r.From != nil && d.Before(entity.DateOnly(*r.From)) {
		return false
	}
	if r.To != nil && d.After(entity.DateOnly(*r.To)) {
		return false
	}
	return true
}

// Between restricción de rango inclusivo sobre una columna de fecha.
// Un rango insatisfacible descarta todas las filas; un rango vacío no restringe.
func Between[T any](field func(T) time.Time, r DateRange) Predicate[T] {
	if r.Empty() {
		return nil
	}
	if r.Unsatisfiable() {
		return func(T) bool { return false }
	}
	return func(row T) bool { return r.Contains(field(row)) }
}
