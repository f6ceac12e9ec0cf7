// Package csvfile implementa repository.DatasetRepository sobre archivos CSV en un directorio.
package csvfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/aircatering-bi/internal/domain"
	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
	"github.com/jhoicas/aircatering-bi/internal/domain/repository"
)

var _ repository.DatasetRepository = (*Repository)(nil)

// Columnas esperadas por archivo.
var (
	salesColumns = []string{
		"id", "data_venda", "cliente", "vendedor", "produto", "categoria", "quantidade",
		"preco_unitario", "desconto", "regiao", "canal", "valor_total",
	}
	financeColumns = []string{
		"id", "data", "tipo", "categoria", "descricao", "valor", "conta", "status",
	}
	inventoryColumns = []string{
		"id", "nome_produto", "categoria", "fornecedor", "quantidade_atual", "quantidade_minima",
		"preco_custo", "preco_venda", "data_ultima_entrada", "localizacao",
	}
	employeeColumns = []string{
		"id", "nome", "email", "cargo", "departamento", "salario", "data_admissao", "status",
		"nivel", "avaliacao",
	}
	productionColumns = []string{
		"id", "data_producao", "produto", "linha_producao", "quantidade_planejada",
		"quantidade_produzida", "tempo_producao_horas", "custo_producao", "qualidade_nota",
		"responsavel", "turno", "status",
	}
	groupColumns = []string{
		"empresa", "ano_mes", "data", "vendas", "faturamento", "custo", "margem_valor",
		"margem_percentual", "regiao", "funcionarios", "clientes_ativos",
	}
)

// Repository lee <dir>/<dataset>.csv. Cada llamada relee el archivo completo.
type Repository struct {
	dir    string
	latin1 bool
	now    func() time.Time
}

// NewRepository construye el repositorio. encoding: "utf-8" (default) o "latin1".
func NewRepository(dir, encoding string) *Repository {
	enc := strings.ToLower(strings.TrimSpace(encoding))
	return &Repository{
		dir:    dir,
		latin1: enc == "latin1" || enc == "iso-8859-1",
		now:    time.Now,
	}
}

// Path ruta del archivo del dataset.
func (r *Repository) Path(name entity.DatasetName) string {
	return filepath.Join(r.dir, string(name)+".csv")
}

func (r *Repository) open(ctx context.Context, name entity.DatasetName, columns []string) (*frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := r.Path(name)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDatasetUnavailable, path)
		}
		return nil, fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()

	var in io.Reader = f
	if r.latin1 {
		in = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}

	fr, err := readFrame(string(name), in)
	if err != nil {
		return nil, err
	}
	if err := fr.require(columns...); err != nil {
		return nil, err
	}
	return fr, nil
}

func newTable[T any](rows []T, source string, at time.Time) *entity.Table[T] {
	if rows == nil {
		rows = []T{}
	}
	return &entity.Table[T]{Rows: rows, Source: source, LoadedAt: at}
}

// LoadSales lee vendas.csv.
func (r *Repository) LoadSales(ctx context.Context) (*entity.Table[entity.Sale], error) {
	fr, err := r.open(ctx, entity.DatasetSales, salesColumns)
	if err != nil {
		return nil, err
	}
	rows := make([]entity.Sale, 0, fr.rows)
	err = fr.each(func(c *rowReader) {
		rows = append(rows, entity.Sale{
			ID:        c.str("id"),
			Date:      c.date("data_venda"),
			Customer:  c.str("cliente"),
			Seller:    c.str("vendedor"),
			Product:   c.str("produto"),
			Category:  c.str("categoria"),
			Quantity:  c.integer("quantidade"),
			UnitPrice: c.dec("preco_unitario"),
			Discount:  c.dec("desconto"),
			Region:    c.str("regiao"),
			Channel:   c.str("canal"),
			Total:     c.dec("valor_total"),
		})
	})
	if err != nil {
		return nil, err
	}
	return newTable(rows, r.Path(entity.DatasetSales), r.now()), nil
}

// LoadFinance lee financeiro.csv.
func (r *Repository) LoadFinance(ctx context.Context) (*entity.Table[entity.FinancialTransaction], error) {
	fr, err := r.open(ctx, entity.DatasetFinance, financeColumns)
	if err != nil {
		return nil, err
	}
	rows := make([]entity.FinancialTransaction, 0, fr.rows)
	err = fr.each(func(c *rowReader) {
		rows = append(rows, entity.FinancialTransaction{
			ID:          c.str("id"),
			Date:        c.date("data"),
			Type:        c.str("tipo"),
			Category:    c.str("categoria"),
			Description: c.str("descricao"),
			Amount:      c.dec("valor"),
			Account:     c.str("conta"),
			Status:      c.str("status"),
		})
	})
	if err != nil {
		return nil, err
	}
	return newTable(rows, r.Path(entity.DatasetFinance), r.now()), nil
}

// LoadInventory lee estoque.csv. La columna validade es opcional.
func (r *Repository) LoadInventory(ctx context.Context) (*entity.Table[entity.InventoryItem], error) {
	fr, err := r.open(ctx, entity.DatasetInventory, inventoryColumns)
	if err != nil {
		return nil, err
	}
	_, hasExpiry := fr.cols["validade"]
	rows := make([]entity.InventoryItem, 0, fr.rows)
	err = fr.each(func(c *rowReader) {
		item := entity.InventoryItem{
			ID:            c.str("id"),
			Product:       c.str("nome_produto"),
			Category:      c.str("categoria"),
			Supplier:      c.str("fornecedor"),
			CurrentQty:    c.integer("quantidade_atual"),
			MinimumQty:    c.integer("quantidade_minima"),
			CostPrice:     c.dec("preco_custo"),
			SalePrice:     c.dec("preco_venda"),
			LastEntryDate: c.optDate("data_ultima_entrada"),
			Location:      c.str("localizacao"),
		}
		if hasExpiry {
			item.Expiry = c.optDate("validade")
		}
		rows = append(rows, item)
	})
	if err != nil {
		return nil, err
	}
	return newTable(rows, r.Path(entity.DatasetInventory), r.now()), nil
}

// LoadEmployees lee rh.csv.
func (r *Repository) LoadEmployees(ctx context.Context) (*entity.Table[entity.Employee], error) {
	fr, err := r.open(ctx, entity.DatasetEmployees, employeeColumns)
	if err != nil {
		return nil, err
	}
	rows := make([]entity.Employee, 0, fr.rows)
	err = fr.each(func(c *rowReader) {
		rows = append(rows, entity.Employee{
			ID:            c.str("id"),
			Name:          c.str("nome"),
			Email:         c.str("email"),
			Role:          c.str("cargo"),
			Department:    c.str("departamento"),
			Salary:        c.dec("salario"),
			AdmissionDate: c.date("data_admissao"),
			Status:        c.str("status"),
			Level:         c.str("nivel"),
			Rating:        c.dec("avaliacao"),
		})
	})
	if err != nil {
		return nil, err
	}
	return newTable(rows, r.Path(entity.DatasetEmployees), r.now()), nil
}

// LoadProduction lee producao.csv.
func (r *Repository) LoadProduction(ctx context.Context) (*entity.Table[entity.ProductionRun], error) {
	fr, err := r.open(ctx, entity.DatasetProduction, productionColumns)
	if err != nil {
		return nil, err
	}
	rows := make([]entity.ProductionRun, 0, fr.rows)
	err = fr.each(func(c *rowReader) {
		rows = append(rows, entity.ProductionRun{
			ID:          c.str("id"),
			Date:        c.date("data_producao"),
			Product:     c.str("produto"),
			Line:        c.str("linha_producao"),
			PlannedQty:  c.integer("quantidade_planejada"),
			ProducedQty: c.integer("quantidade_produzida"),
			Hours:       c.dec("tempo_producao_horas"),
			Cost:        c.dec("custo_producao"),
			Quality:     c.dec("qualidade_nota"),
			Owner:       c.str("responsavel"),
			Shift:       c.str("turno"),
			Status:      c.str("status"),
		})
	})
	if err != nil {
		return nil, err
	}
	return newTable(rows, r.Path(entity.DatasetProduction), r.now()), nil
}

// LoadGroupCompanies lee empresas_grupo.csv.
func (r *Repository) LoadGroupCompanies(ctx context.Context) (*entity.Table[entity.GroupCompanyMonthly], error) {
	fr, err := r.open(ctx, entity.DatasetGroupCompanies, groupColumns)
	if err != nil {
		return nil, err
	}
	rows := make([]entity.GroupCompanyMonthly, 0, fr.rows)
	err = fr.each(func(c *rowReader) {
		rows = append(rows, entity.GroupCompanyMonthly{
			Company:       c.str("empresa"),
			YearMonth:     c.str("ano_mes"),
			Date:          c.date("data"),
			Sales:         c.dec("vendas"),
			Revenue:       c.dec("faturamento"),
			Cost:          c.dec("custo"),
			MarginValue:   c.dec("margem_valor"),
			MarginPct:     c.dec("margem_percentual"),
			Region:        c.str("regiao"),
			Employees:     c.integer("funcionarios"),
			ActiveClients: c.integer("clientes_ativos"),
		})
	})
	if err != nil {
		return nil, err
	}
	return newTable(rows, r.Path(entity.DatasetGroupCompanies), r.now()), nil
}
