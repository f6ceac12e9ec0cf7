package analytics

import "github.com/shopspring/decimal"

// SumOf suma de la columna sobre toda la tabla.
func SumOf[T any](rows []T, val ValueFunc[T]) decimal.Decimal {
	return Sum(val)(rows)
}

// MeanOf media de la columna; cero para una tabla vacía.
func MeanOf[T any](rows []T, val ValueFunc[T]) decimal.Decimal {
	return Mean(val)(rows)
}

// MaxOf máximo de la columna. ok es falso para una tabla vacía.
func MaxOf[T any](rows []T, val ValueFunc[T]) (max decimal.Decimal, ok bool) {
	for i, r := range rows {
		v := val(r)
		if i == 0 || v.GreaterThan(max) {
			max = v
		}
	}
	return max, len(rows) > 0
}

// CountWhere cantidad de filas que cumplen el predicado.
func CountWhere[T any](rows []T, pred func(T) bool) int {
	n := 0
	for _, r := range rows {
		if pred(r) {
			n++
		}
	}
	return n
}

// DistinctCount cantidad de valores distintos de una columna categórica.
func DistinctCount[T any](rows []T, field func(T) string) int {
	seen := make(map[string]struct{})
	for _, r := range rows {
		seen[field(r)] = struct{}{}
	}
	return len(seen)
}

// Distinct valores distintos en orden de primera aparición.
func Distinct[T any](rows []T, field func(T) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range rows {
		v := field(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Percent num / den * 100, cero si den es cero.
func Percent(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den).Mul(hundred)
}

// TurnoverRate inactivos / total * 100. Un grupo sin colaboradores tiene rotación cero.
func TurnoverRate(inactive, total int) decimal.Decimal {
	return Percent(decimal.NewFromInt(int64(inactive)), decimal.NewFromInt(int64(total)))
}
