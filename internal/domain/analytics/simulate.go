package analytics

import (
	"fmt"
	"math/rand"
	"time"
)

// Parámetros del absentismo simulado. No existe registro real de asistencia: el valor es un
// marcador de posición sorteado de N(5, 2) y recortado a [0, 20].
const (
	AbsenteeismMean        = 5.0
	AbsenteeismStdDev      = 2.0
	AbsenteeismMin         = 0.0
	AbsenteeismMax         = 20.0
	DefaultAbsenteeismSeed = 42
)

// Parámetros de las tendencias mensuales simuladas.
const (
	TurnoverTrendStdDev    = 2.0
	TurnoverTrendMax       = 25.0
	AbsenteeismTrendStdDev = 1.0
	AbsenteeismTrendMax    = 15.0
)

// Clip recorta v al intervalo [lo, hi].
func Clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SimulateAbsenteeism sortea un porcentaje por colaborador, en el orden de la tabla.
// Con la misma semilla y el mismo n el resultado es idéntico entre ejecuciones.
func SimulateAbsenteeism(n int, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		v := r.NormFloat64()*AbsenteeismStdDev + AbsenteeismMean
		out[i] = Clip(v, AbsenteeismMin, AbsenteeismMax)
	}
	return out
}

// TrendPoint valor simulado de un mes.
type TrendPoint struct {
	Month string
	Value float64
}

// TrendMonths etiquetas "YYYY-MM" de los doce meses del año indicado.
func TrendMonths(year int) []string {
	months := make([]string, 12)
	for m := 1; m <= 12; m++ {
		months[m-1] = fmt.Sprintf("%04d-%02d", year, m)
	}
	return months
}

// SimulateTrend sortea un valor por mes de N(center, stddev), recortado a [0, max].
func SimulateTrend(r *rand.Rand, months []string, center, stddev, max float64) []TrendPoint {
	out := make([]TrendPoint, len(months))
	for i, m := range months {
		v := r.NormFloat64()*stddev + center
		out[i] = TrendPoint{Month: m, Value: Clip(v, 0, max)}
	}
	return out
}

// UnseededSource fuente aleatoria nueva por llamada: dos llamadas producen series distintas.
func UnseededSource() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
