package analytics

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/aircatering-bi/internal/application/dto"
	core "github.com/jhoicas/aircatering-bi/internal/domain/analytics"
	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
)

// trendYear año de las series mensuales simuladas.
const trendYear = 2024

// HRUseCase página de RRHH.
//
// El absentismo no existe en rh.csv: se sortea uno por colaborador con semilla fija
// (reproducible para la misma tabla). Las tendencias de 12 meses usan una fuente sin semilla
// y cambian en cada request.
type HRUseCase struct {
	sessions    SessionSource
	seed        int64
	trendSource func() *rand.Rand
	now         func() time.Time
}

// HROption configura el caso de uso.
type HROption func(*HRUseCase)

// WithAbsenteeismSeed cambia la semilla del sorteo por colaborador.
func WithAbsenteeismSeed(seed int64) HROption {
	return func(uc *HRUseCase) { uc.seed = seed }
}

// WithTrendSource fija la fuente aleatoria de las tendencias (tests o series reproducibles).
func WithTrendSource(fn func() *rand.Rand) HROption {
	return func(uc *HRUseCase) { uc.trendSource = fn }
}

// WithClock fija la fecha de referencia para la antigüedad.
func WithClock(now func() time.Time) HROption {
	return func(uc *HRUseCase) { uc.now = now }
}

// NewHRUseCase construye el caso de uso.
func NewHRUseCase(sessions SessionSource, opts ...HROption) *HRUseCase {
	uc := &HRUseCase{
		sessions:    sessions,
		seed:        core.DefaultAbsenteeismSeed,
		trendSource: core.UnseededSource,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// employeeAbsence colaborador con su absentismo simulado.
type employeeAbsence struct {
	entity.Employee
	absenteeism float64
}

func absence(e employeeAbsence) decimal.Decimal { return decimal.NewFromFloat(e.absenteeism) }
func absenceDept(e employeeAbsence) string      { return e.Department }

// Get calcula KPIs, series por departamento, tendencias y el detalle filtrado.
func (uc *HRUseCase) Get(ctx context.Context, req dto.HRRequest) (*dto.HRPageDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := uc.sessions.Current()
	if s.Employees == nil {
		return nil, datasetError(s, entity.DatasetEmployees)
	}
	rows := s.Employees.Rows

	// Sorteo sobre la tabla completa, en su orden: los filtros del detalle no lo alteran.
	draws := core.SimulateAbsenteeism(len(rows), uc.seed)
	withAbsence := make([]employeeAbsence, len(rows))
	for i, e := range rows {
		withAbsence[i] = employeeAbsence{Employee: e, absenteeism: draws[i]}
	}

	total := len(rows)
	active := core.CountWhere(rows, entity.Employee.IsActive)
	inactive := core.CountWhere(rows, entity.Employee.IsInactive)
	turnover := core.TurnoverRate(inactive, total)
	meanAbsence := meanFloat(draws)
	asOf := uc.now()

	out := &dto.HRPageDTO{
		KPIs: dto.HRKPIsDTO{
			Total:           total,
			Active:          active,
			Inactive:        inactive,
			Payroll:         core.SumOf(rows, empSalary).Round(2),
			MeanSalary:      core.MeanOf(rows, empSalary).Round(2),
			TurnoverRate:    turnover.Round(1),
			TurnoverTier:    string(core.ClassifyTurnover(turnover.InexactFloat64())),
			MeanAbsenteeism: decimal.NewFromFloat(meanAbsence).Round(1),
			AbsenteeismTier: string(core.ClassifyAbsenteeism(meanAbsence)),
			MeanTenureYears: core.MeanOf(rows, func(e entity.Employee) decimal.Decimal {
				return decimal.NewFromFloat(e.TenureYears(asOf))
			}).Round(1),
		},
		EmployeesByDepartment:   points(core.Aggregate(rows, empDepartment, core.Count[entity.Employee]())),
		MeanSalaryByDepartment:  points(core.Aggregate(rows, empDepartment, core.Mean(empSalary))),
		TurnoverByDepartment:    points(turnoverByDepartment(rows)),
		AbsenteeismByDepartment: points(core.Aggregate(withAbsence, absenceDept, core.Mean(absence))),
		Departments:             core.Distinct(rows, empDepartment),
		AbsenteeismSimulated:    true,
	}

	months := core.TrendMonths(trendYear)
	r := uc.trendSource()
	center := turnover.InexactFloat64()
	out.TurnoverTrend = trendPoints(core.SimulateTrend(r, months, center,
		core.TurnoverTrendStdDev, core.TurnoverTrendMax))
	out.AbsenteeismTrend = trendPoints(core.SimulateTrend(r, months, meanAbsence,
		core.AbsenteeismTrendStdDev, core.AbsenteeismTrendMax))

	out.Employees = employeeDetail(withAbsence, req)
	return out, nil
}

// turnoverByDepartment inactivos / total * 100 por departamento.
func turnoverByDepartment(rows []entity.Employee) core.Series {
	return core.Aggregate(rows, empDepartment, func(g []entity.Employee) decimal.Decimal {
		return core.TurnoverRate(core.CountWhere(g, entity.Employee.IsInactive), len(g))
	})
}

// employeeDetail aplica los selectores de departamento y estado ("Todos" no filtra).
func employeeDetail(rows []employeeAbsence, req dto.HRRequest) []dto.EmployeeRowDTO {
	dept := selector(req.Department)
	status := selector(req.Status)
	filtered := core.Filter(rows,
		core.In(absenceDept, dept),
		core.In(func(e employeeAbsence) string { return e.Status }, status),
	)

	out := make([]dto.EmployeeRowDTO, 0, len(filtered))
	for _, e := range filtered {
		pct := math.Round(e.absenteeism*10) / 10
		out = append(out, dto.EmployeeRowDTO{
			ID:             e.ID,
			Name:           e.Name,
			Department:     e.Department,
			Role:           e.Role,
			Status:         e.Status,
			Salary:         e.Salary,
			AbsenteeismPct: pct,
			Tier:           string(core.ClassifyAbsenteeism(pct)),
		})
	}
	return out
}

func selector(v string) core.Selection {
	if v == "" || v == dto.FilterAll {
		return core.All()
	}
	return core.Only(v)
}

func meanFloat(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}
