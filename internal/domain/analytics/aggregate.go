package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// KeyFunc extrae la clave de agrupación de una fila.
type KeyFunc[T any] func(row T) string

// ValueFunc extrae el valor numérico de una columna.
type ValueFunc[T any] func(row T) decimal.Decimal

// Reduction reduce las filas de un grupo a un escalar.
type Reduction[T any] func(rows []T) decimal.Decimal

// Point par (clave de grupo, valor).
type Point struct {
	Key   string
	Value decimal.Decimal
}

// Series resultado de una agregación: un punto por grupo.
type Series []Point

// Group filas que comparten clave.
type Group[T any] struct {
	Key  string
	Rows []T
}

// GroupBy particiona las filas por clave. Cada fila cae en exactamente un grupo; los grupos
// salen ordenados por clave ascendente y cada grupo conserva el orden original de sus filas.
func GroupBy[T any](rows []T, key KeyFunc[T]) []Group[T] {
	index := make(map[string]int)
	var groups []Group[T]
	for _, r := range rows {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[T]{Key: k})
		}
		groups[i].Rows = append(groups[i].Rows, r)
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups
}

// Aggregate agrupa por clave y aplica la reducción a cada grupo.
func Aggregate[T any](rows []T, key KeyFunc[T], reduce Reduction[T]) Series {
	groups := GroupBy(rows, key)
	out := make(Series, 0, len(groups))
	for _, g := range groups {
		out = append(out, Point{Key: g.Key, Value: reduce(g.Rows)})
	}
	return out
}

// Sum suma de la columna.
func Sum[T any](val ValueFunc[T]) Reduction[T] {
	return func(rows []T) decimal.Decimal {
		total := decimal.Zero
		for _, r := range rows {
			total = total.Add(val(r))
		}
		return total
	}
}

// Mean media aritmética de la columna; cero para un grupo vacío.
func Mean[T any](val ValueFunc[T]) Reduction[T] {
	sum := Sum(val)
	return func(rows []T) decimal.Decimal {
		if len(rows) == 0 {
			return decimal.Zero
		}
		return sum(rows).Div(decimal.NewFromInt(int64(len(rows))))
	}
}

// Count cantidad de filas del grupo.
func Count[T any]() Reduction[T] {
	return func(rows []T) decimal.Decimal {
		return decimal.NewFromInt(int64(len(rows)))
	}
}

// RatioOfSums Σnum / Σden * 100. Cero cuando Σden es cero.
func RatioOfSums[T any](num, den ValueFunc[T]) Reduction[T] {
	sumNum, sumDen := Sum(num), Sum(den)
	return func(rows []T) decimal.Decimal {
		return Percent(sumNum(rows), sumDen(rows))
	}
}

// MeanOfRatios media de (num/den*100) calculado fila a fila.
// Las filas con den cero aportan cero al promedio.
func MeanOfRatios[T any](num, den ValueFunc[T]) Reduction[T] {
	return Mean(func(r T) decimal.Decimal { return Percent(num(r), den(r)) })
}

// SortByValue copia ordenada por valor. El orden es estable: los empates conservan el
// orden que traía la serie.
func (s Series) SortByValue(ascending bool) Series {
	out := make(Series, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].Value.LessThan(out[j].Value)
		}
		return out[i].Value.GreaterThan(out[j].Value)
	})
	return out
}

// Head primeros n puntos (todos si n <= 0 o supera el largo).
func (s Series) Head(n int) Series {
	if n <= 0 || n >= len(s) {
		out := make(Series, len(s))
		copy(out, s)
		return out
	}
	out := make(Series, n)
	copy(out, s[:n])
	return out
}

const keySeparator = "\x1f"

// CompositeKey combina varias columnas en una sola clave de agrupación.
// El orden de la clave compuesta respeta el orden de las columnas.
func CompositeKey(parts ...string) string {
	return strings.Join(parts, keySeparator)
}

// SplitKey separa una clave compuesta en sus columnas.
func SplitKey(key string) []string {
	return strings.Split(key, keySeparator)
}
