package analytics

// Tier nivel de alerta para destacar un valor en pantalla.
type Tier string

const (
	TierNormal   Tier = "normal"
	TierWarning  Tier = "warning"
	TierCritical Tier = "critical"
)

// Thresholds límites (exclusivos) a partir de los cuales un valor sube de nivel.
type Thresholds struct {
	Warning  float64
	Critical float64
}

var (
	// AbsenteeismThresholds meta de absentismo < 5%; crítico por encima de 8%.
	AbsenteeismThresholds = Thresholds{Warning: 5, Critical: 8}
	// TurnoverThresholds meta de rotación < 10%; crítico por encima de 15%.
	TurnoverThresholds = Thresholds{Warning: 10, Critical: 15}
)

// Classify critical si v > Critical, warning si Warning < v <= Critical, normal en otro caso.
func (t Thresholds) Classify(v float64) Tier {
	switch {
	case v > t.Critical:
		return TierCritical
	case v > t.Warning:
		return TierWarning
	default:
		return TierNormal
	}
}

// ClassifyAbsenteeism nivel de un porcentaje de absentismo (umbrales 5 y 8).
func ClassifyAbsenteeism(v float64) Tier { return AbsenteeismThresholds.Classify(v) }

// ClassifyTurnover nivel de una tasa de rotación (umbrales 10 y 15).
func ClassifyTurnover(v float64) Tier { return TurnoverThresholds.Classify(v) }
