package dto

import "github.com/shopspring/decimal"

// Valor de selector que no restringe.
const FilterAll = "Todos"

// HRRequest selectores del detalle por colaborador.
type HRRequest struct {
	Department string `query:"department"` // "Todos" o vacío = todos
	Status     string `query:"status" validate:"omitempty,oneof=Todos Ativo Inativo Férias Licença"`
}

// HRPageDTO respuesta de GET /api/dashboard/hr.
// El absentismo es simulado: no hay registro real de asistencia.
type HRPageDTO struct {
	KPIs                    HRKPIsDTO        `json:"kpis"`
	EmployeesByDepartment   []PointDTO       `json:"employees_by_department"`
	MeanSalaryByDepartment  []PointDTO       `json:"mean_salary_by_department"`
	TurnoverByDepartment    []PointDTO       `json:"turnover_by_department"`
	AbsenteeismByDepartment []PointDTO       `json:"absenteeism_by_department"`
	TurnoverTrend           []TrendPointDTO  `json:"turnover_trend"`
	AbsenteeismTrend        []TrendPointDTO  `json:"absenteeism_trend"`
	Departments             []string         `json:"departments"`
	Employees               []EmployeeRowDTO `json:"employees"`
	AbsenteeismSimulated    bool             `json:"absenteeism_simulated"`
}

// HRKPIsDTO tarjetas de RRHH.
type HRKPIsDTO struct {
	Total           int             `json:"total"`
	Active          int             `json:"active"`
	Inactive        int             `json:"inactive"` // demisiones
	Payroll         decimal.Decimal `json:"payroll"`
	MeanSalary      decimal.Decimal `json:"mean_salary"`
	TurnoverRate    decimal.Decimal `json:"turnover_rate"`
	TurnoverTier    string          `json:"turnover_tier"`
	MeanAbsenteeism decimal.Decimal `json:"mean_absenteeism"`
	AbsenteeismTier string          `json:"absenteeism_tier"`
	MeanTenureYears decimal.Decimal `json:"mean_tenure_years"`
}

// EmployeeRowDTO fila del detalle con su nivel de absentismo.
type EmployeeRowDTO struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Department     string          `json:"department"`
	Role           string          `json:"role"`
	Status         string          `json:"status"`
	Salary         decimal.Decimal `json:"salary"`
	AbsenteeismPct float64         `json:"absenteeism_pct"` // 1 decimal
	Tier           string          `json:"tier"`
}
