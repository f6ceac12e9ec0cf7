package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/aircatering-bi/internal/domain"
	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
	"github.com/jhoicas/aircatering-bi/internal/domain/repository"
)

var _ repository.DatasetRepository = (*DatasetRepo)(nil)

// Querier subconjunto de *pgxpool.Pool que usa el repositorio.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// DatasetRepo lee los datasets desde tablas con el mismo nombre y columnas que los CSV.
type DatasetRepo struct {
	db  Querier
	now func() time.Time
}

// NewDatasetRepository construye el adaptador de datasets.
func NewDatasetRepository(db Querier) *DatasetRepo {
	return &DatasetRepo{db: db, now: time.Now}
}

// Consultas por dataset; el orden de columnas coincide con el Scan de cada Load.
const (
	salesQuery = `
	SELECT id, data_venda, cliente, vendedor, produto, categoria, quantidade,
	       preco_unitario, desconto, regiao, canal, valor_total
	FROM vendas
	ORDER BY data_venda, id`

	financeQuery = `
	SELECT id, data, tipo, categoria, descricao, valor, conta, status
	FROM financeiro
	ORDER BY data, id`

	inventoryQuery = `
	SELECT id, nome_produto, categoria, fornecedor, quantidade_atual, quantidade_minima,
	       preco_custo, preco_venda, data_ultima_entrada, localizacao, validade
	FROM estoque
	ORDER BY id`

	employeesQuery = `
	SELECT id, nome, email, cargo, departamento, salario, data_admissao, status, nivel, avaliacao
	FROM rh
	ORDER BY id`

	productionQuery = `
	SELECT id, data_producao, produto, linha_producao, quantidade_planejada,
	       quantidade_produzida, tempo_producao_horas, custo_producao, qualidade_nota,
	       responsavel, turno, status
	FROM producao
	ORDER BY data_producao, id`

	groupCompaniesQuery = `
	SELECT empresa, ano_mes, data, vendas, faturamento, custo, margem_valor,
	       margem_percentual, regiao, funcionarios, clientes_ativos
	FROM empresas_grupo
	ORDER BY ano_mes, empresa`
)

// loadTable ejecuta la consulta completa y mapea los errores a los del dominio.
func loadTable[T any](
	ctx context.Context,
	r *DatasetRepo,
	name entity.DatasetName,
	query string,
	scan func(pgx.Rows) (T, error),
) (*entity.Table[T], error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, classify(name, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s fila %d: %v", domain.ErrMalformedDataset, name, len(out)+1, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(name, err)
	}
	return &entity.Table[T]{Rows: out, Source: "postgres:" + string(name), LoadedAt: r.now()}, nil
}

func classify(name entity.DatasetName, err error) error {
	switch {
	case isUndefinedTable(err):
		return fmt.Errorf("%w: tabla %s", domain.ErrDatasetUnavailable, name)
	case isDataError(err):
		return fmt.Errorf("%w: %s: %v", domain.ErrMalformedDataset, name, err)
	default:
		return fmt.Errorf("postgres.load %s: %w", name, err)
	}
}

// LoadSales tabla vendas.
func (r *DatasetRepo) LoadSales(ctx context.Context) (*entity.Table[entity.Sale], error) {
	return loadTable(ctx, r, entity.DatasetSales, salesQuery, func(rows pgx.Rows) (entity.Sale, error) {
		var s entity.Sale
		err := rows.Scan(&s.ID, &s.Date, &s.Customer, &s.Seller, &s.Product, &s.Category,
			&s.Quantity, &s.UnitPrice, &s.Discount, &s.Region, &s.Channel, &s.Total)
		return s, err
	})
}

// LoadFinance tabla financeiro.
func (r *DatasetRepo) LoadFinance(ctx context.Context) (*entity.Table[entity.FinancialTransaction], error) {
	return loadTable(ctx, r, entity.DatasetFinance, financeQuery, func(rows pgx.Rows) (entity.FinancialTransaction, error) {
		var t entity.FinancialTransaction
		err := rows.Scan(&t.ID, &t.Date, &t.Type, &t.Category, &t.Description, &t.Amount, &t.Account, &t.Status)
		return t, err
	})
}

// LoadInventory tabla estoque; data_ultima_entrada y validade admiten NULL.
func (r *DatasetRepo) LoadInventory(ctx context.Context) (*entity.Table[entity.InventoryItem], error) {
	return loadTable(ctx, r, entity.DatasetInventory, inventoryQuery, func(rows pgx.Rows) (entity.InventoryItem, error) {
		var i entity.InventoryItem
		err := rows.Scan(&i.ID, &i.Product, &i.Category, &i.Supplier, &i.CurrentQty, &i.MinimumQty,
			&i.CostPrice, &i.SalePrice, &i.LastEntryDate, &i.Location, &i.Expiry)
		return i, err
	})
}

// LoadEmployees tabla rh.
func (r *DatasetRepo) LoadEmployees(ctx context.Context) (*entity.Table[entity.Employee], error) {
	return loadTable(ctx, r, entity.DatasetEmployees, employeesQuery, func(rows pgx.Rows) (entity.Employee, error) {
		var e entity.Employee
		err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Role, &e.Department, &e.Salary,
			&e.AdmissionDate, &e.Status, &e.Level, &e.Rating)
		return e, err
	})
}

// LoadProduction tabla producao.
func (r *DatasetRepo) LoadProduction(ctx context.Context) (*entity.Table[entity.ProductionRun], error) {
	return loadTable(ctx, r, entity.DatasetProduction, productionQuery, func(rows pgx.Rows) (entity.ProductionRun, error) {
		var p entity.ProductionRun
		err := rows.Scan(&p.ID, &p.Date, &p.Product, &p.Line, &p.PlannedQty, &p.ProducedQty,
			&p.Hours, &p.Cost, &p.Quality, &p.Owner, &p.Shift, &p.Status)
		return p, err
	})
}

// LoadGroupCompanies tabla empresas_grupo.
func (r *DatasetRepo) LoadGroupCompanies(ctx context.Context) (*entity.Table[entity.GroupCompanyMonthly], error) {
	return loadTable(ctx, r, entity.DatasetGroupCompanies, groupCompaniesQuery, func(rows pgx.Rows) (entity.GroupCompanyMonthly, error) {
		var g entity.GroupCompanyMonthly
		err := rows.Scan(&g.Company, &g.YearMonth, &g.Date, &g.Sales, &g.Revenue, &g.Cost,
			&g.MarginValue, &g.MarginPct, &g.Region, &g.Employees, &g.ActiveClients)
		return g, err
	})
}
