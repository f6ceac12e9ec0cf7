package entity

import "time"

// Layouts de fecha usados en los archivos de datos.
const (
	DateLayout      = "2006-01-02"
	YearMonthLayout = "2006-01"
)

// DateOnly trunca t a la fecha calendario (00:00 UTC), descartando hora y zona.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthKey clave "YYYY-MM" del mes de t.
func MonthKey(t time.Time) string {
	return t.Format(YearMonthLayout)
}
