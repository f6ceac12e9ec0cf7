package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de colaborador en rh.csv.
const (
	EmployeeActive   = "Ativo"
	EmployeeVacation = "Férias"
	EmployeeLeave    = "Licença"
	EmployeeInactive = "Inativo"
)

// Employee colaborador (rh.csv).
type Employee struct {
	ID            string
	Name          string
	Email         string
	Role          string
	Department    string
	Salary        decimal.Decimal
	AdmissionDate time.Time
	Status        string
	Level         string
	Rating        decimal.Decimal
}

// IsActive status "Ativo".
func (e Employee) IsActive() bool { return e.Status == EmployeeActive }

// IsInactive status "Inativo"; cuenta como salida para la rotación.
func (e Employee) IsInactive() bool { return e.Status == EmployeeInactive }

// TenureYears antigüedad en años (365.25 días) a la fecha indicada; nunca negativa.
func (e Employee) TenureYears(asOf time.Time) float64 {
	d := DateOnly(asOf).Sub(DateOnly(e.AdmissionDate))
	if d < 0 {
		return 0
	}
	return d.Hours() / 24 / 365.25
}
