// Package synth genera los seis datasets de ejemplo del dashboard con datos ficticios.
// Con la misma semilla y la misma fecha de referencia la salida es idéntica.
package synth

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/aircatering-bi/internal/domain"
	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
)

// Config cantidad de filas por dataset.
type Config struct {
	Sales      int
	Finance    int
	Inventory  int
	Employees  int
	Production int
	Companies  int // máximo len(CompanyNames)
	Months     int
	Seed       int64
	Now        time.Time // fecha de referencia; cero = hoy
}

// DefaultConfig tamaños por defecto del dataset de ejemplo.
func DefaultConfig() Config {
	return Config{
		Sales:      1000,
		Finance:    500,
		Inventory:  200,
		Employees:  150,
		Production: 300,
		Companies:  8,
		Months:     12,
		Seed:       42,
	}
}

func (c Config) validate() error {
	for name, n := range map[string]int{
		"sales": c.Sales, "finance": c.Finance, "inventory": c.Inventory,
		"employees": c.Employees, "production": c.Production, "companies": c.Companies, "months": c.Months,
	} {
		if n < 0 {
			return fmt.Errorf("%w: %s negativo (%d)", domain.ErrInvalidInput, name, n)
		}
	}
	if c.Companies > len(CompanyNames) {
		return fmt.Errorf("%w: companies máximo %d", domain.ErrInvalidInput, len(CompanyNames))
	}
	return nil
}

// CompanyNames empresas del grupo.
var CompanyNames = []string{
	"AirCatering São Paulo",
	"AirCatering Rio de Janeiro",
	"AirCatering Brasília",
	"AirCatering Salvador",
	"AirCatering Recife",
	"AirCatering Porto Alegre",
	"AirCatering Manaus",
	"AirCatering Fortaleza",
}

var (
	saleCategories      = []string{"Alimentação", "Bebidas", "Utensílios", "Serviços"}
	regions             = []string{"Norte", "Sul", "Leste", "Oeste", "Centro"}
	channels            = []string{"Online", "Loja Física", "Telefone", "Representante"}
	financeCategories   = []string{"Vendas", "Salários", "Fornecedores", "Marketing", "Infraestrutura", "Impostos", "Investimentos"}
	accounts            = []string{"Banco Principal", "Conta Corrente", "Poupança", "Investimentos"}
	financeStatuses     = []string{"Confirmado", "Pendente", "Cancelado"}
	inventoryCategories = []string{"Alimentação", "Bebidas", "Utensílios", "Limpeza"}
	roles               = []string{"Gerente", "Supervisor", "Analista", "Assistente", "Coordenador", "Especialista", "Técnico"}
	departments         = []string{"Vendas", "Marketing", "Financeiro", "RH", "TI", "Operações", "Produção"}
	levels              = []string{"Júnior", "Pleno", "Sênior"}
	shifts              = []string{"Manhã", "Tarde", "Noite"}
	runStatuses         = []string{"Concluído", "Em Andamento", "Pausado"}
	groupRegions        = []string{"Norte", "Nordeste", "Centro-Oeste", "Sudeste", "Sul"}

	// Ativo pesa más; Inativo alimenta la tasa de turnover.
	employeeStatuses = []string{
		entity.EmployeeActive, entity.EmployeeActive, entity.EmployeeActive, entity.EmployeeActive,
		entity.EmployeeVacation, entity.EmployeeLeave, entity.EmployeeInactive,
	}
)

// Generator produce los registros (encabezado + filas) de cada dataset.
type Generator struct {
	cfg Config
	f   *gofakeit.Faker
	now time.Time
}

// New valida la configuración y prepara el generador.
func New(cfg Config) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}
	return &Generator{cfg: cfg, f: gofakeit.New(cfg.Seed), now: entity.DateOnly(now)}, nil
}

// Sales vendas.csv.
func (g *Generator) Sales() [][]string {
	out := [][]string{{"id", "data_venda", "cliente", "vendedor", "produto", "categoria", "quantidade",
		"preco_unitario", "desconto", "regiao", "canal", "valor_total"}}
	for range g.cfg.Sales {
		s := entity.Sale{
			Quantity:  g.f.IntRange(1, 100),
			UnitPrice: g.money(10, 500),
			Discount:  g.money(0, 0.2),
		}
		out = append(out, []string{
			g.id(),
			g.date(g.now.AddDate(-2, 0, 0), g.now),
			g.f.Company(),
			g.f.Name(),
			g.f.ProductName(),
			g.f.RandomString(saleCategories),
			strconv.Itoa(s.Quantity),
			s.UnitPrice.StringFixed(2),
			s.Discount.StringFixed(2),
			g.f.RandomString(regions),
			g.f.RandomString(channels),
			s.ExpectedTotal().StringFixed(2),
		})
	}
	return out
}

// Finance financeiro.csv. El valor se sortea en [-50000, 100000] para ambos tipos.
func (g *Generator) Finance() [][]string {
	out := [][]string{{"id", "data", "tipo", "categoria", "descricao", "valor", "conta", "status"}}
	for range g.cfg.Finance {
		out = append(out, []string{
			g.id(),
			g.date(g.now.AddDate(-1, 0, 0), g.now),
			g.f.RandomString([]string{entity.TransactionRevenue, entity.TransactionExpense}),
			g.f.RandomString(financeCategories),
			g.f.Sentence(6),
			g.money(-50000, 100000).StringFixed(2),
			g.f.RandomString(accounts),
			g.f.RandomString(financeStatuses),
		})
	}
	return out
}

// Inventory estoque.csv. La mitad de los productos no tiene validade.
func (g *Generator) Inventory() [][]string {
	out := [][]string{{"id", "nome_produto", "categoria", "fornecedor", "quantidade_atual", "quantidade_minima",
		"preco_custo", "preco_venda", "data_ultima_entrada", "localizacao", "validade"}}
	for range g.cfg.Inventory {
		expiry := ""
		if g.f.Bool() {
			expiry = g.date(g.now, g.now.AddDate(1, 0, 0))
		}
		out = append(out, []string{
			g.id(),
			g.f.ProductName(),
			g.f.RandomString(inventoryCategories),
			g.f.Company(),
			strconv.Itoa(g.f.IntRange(0, 1000)),
			strconv.Itoa(g.f.IntRange(10, 50)),
			g.money(5, 200).StringFixed(2),
			g.money(10, 400).StringFixed(2),
			g.date(g.now.AddDate(0, -6, 0), g.now),
			fmt.Sprintf("Setor %s-%d", g.f.RandomString([]string{"A", "B", "C"}), g.f.IntRange(1, 20)),
			expiry,
		})
	}
	return out
}

// Employees rh.csv.
func (g *Generator) Employees() [][]string {
	out := [][]string{{"id", "nome", "email", "cargo", "departamento", "salario", "data_admissao",
		"status", "nivel", "avaliacao"}}
	for range g.cfg.Employees {
		out = append(out, []string{
			g.id(),
			g.f.Name(),
			g.f.Email(),
			g.f.RandomString(roles),
			g.f.RandomString(departments),
			g.money(2000, 15000).StringFixed(2),
			g.date(g.now.AddDate(-5, 0, 0), g.now),
			g.f.RandomString(employeeStatuses),
			g.f.RandomString(levels),
			decimal.NewFromFloat(g.f.Float64Range(1, 5)).StringFixed(1),
		})
	}
	return out
}

// Production producao.csv.
func (g *Generator) Production() [][]string {
	out := [][]string{{"id", "data_producao", "produto", "linha_producao", "quantidade_planejada",
		"quantidade_produzida", "tempo_producao_horas", "custo_producao", "qualidade_nota", "responsavel",
		"turno", "status"}}
	for range g.cfg.Production {
		out = append(out, []string{
			g.id(),
			g.date(g.now.AddDate(0, -6, 0), g.now),
			g.f.ProductName(),
			fmt.Sprintf("Linha %d", g.f.IntRange(1, 5)),
			strconv.Itoa(g.f.IntRange(100, 1000)),
			strconv.Itoa(g.f.IntRange(80, 1000)),
			g.money(2, 24).StringFixed(2),
			g.money(500, 5000).StringFixed(2),
			decimal.NewFromFloat(g.f.Float64Range(3, 5)).StringFixed(1),
			g.f.Name(),
			g.f.RandomString(shifts),
			g.f.RandomString(runStatuses),
		})
	}
	return out
}

// GroupCompanies empresas_grupo.csv: una fila por empresa y mes hacia atrás desde la fecha de referencia,
// con estacionalidad senoidal y un factor de tamaño creciente por empresa.
func (g *Generator) GroupCompanies() [][]string {
	out := [][]string{{"empresa", "ano_mes", "data", "vendas", "faturamento", "custo", "margem_valor",
		"margem_percentual", "regiao", "funcionarios", "clientes_ativos"}}
	for i, company := range CompanyNames[:g.cfg.Companies] {
		for m := range g.cfg.Months {
			base := g.now.AddDate(0, 0, -30*m)
			seasonality := 1 + 0.3*math.Sin(2*math.Pi*float64(m)/12)
			growth := 1 + float64(i)*0.1

			sales := g.f.Float64Range(500000, 2000000) * seasonality * growth
			revenue := sales * g.f.Float64Range(1.05, 1.25)
			cost := revenue * g.f.Float64Range(0.65, 0.85)
			margin := (revenue - cost) / revenue * 100

			out = append(out, []string{
				company,
				base.Format("2006-01"),
				base.Format(entity.DateLayout),
				decimal.NewFromFloat(sales).StringFixed(2),
				decimal.NewFromFloat(revenue).StringFixed(2),
				decimal.NewFromFloat(cost).StringFixed(2),
				decimal.NewFromFloat(revenue - cost).StringFixed(2),
				decimal.NewFromFloat(margin).StringFixed(2),
				g.f.RandomString(groupRegions),
				strconv.Itoa(g.f.IntRange(50, 300)),
				strconv.Itoa(g.f.IntRange(100, 500)),
			})
		}
	}
	return out
}

// id UUID v4 tomado del generador sembrado.
func (g *Generator) id() string {
	u, err := uuid.NewRandomFromReader(g.f.Rand)
	if err != nil {
		return uuid.NewString()
	}
	return u.String()
}

func (g *Generator) date(from, to time.Time) string {
	return entity.DateOnly(g.f.DateRange(from, to)).Format(entity.DateLayout)
}

func (g *Generator) money(lo, hi float64) decimal.Decimal {
	return decimal.NewFromFloat(g.f.Float64Range(lo, hi)).Round(2)
}
