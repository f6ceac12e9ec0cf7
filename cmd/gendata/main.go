// gendata genera los seis datasets de ejemplo del dashboard como CSV.
//
// Uso: go run ./cmd/gendata [-dir data] [-seed 42] [-sales 1000] ...
// El directorio por defecto es DATA_DIR (ver pkg/config).
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/aircatering-bi/internal/application/synth"
	"github.com/jhoicas/aircatering-bi/internal/infrastructure/csvfile"
	"github.com/jhoicas/aircatering-bi/pkg/config"
	"github.com/jhoicas/aircatering-bi/pkg/logger"
)

func main() {
	dir, env := "data", "development"
	if cfg, err := config.Load(); err == nil {
		dir, env = cfg.Data.Dir, cfg.App.Env
	}

	def := synth.DefaultConfig()
	cfg := def
	flag.StringVar(&dir, "dir", dir, "directorio de salida")
	flag.Int64Var(&cfg.Seed, "seed", def.Seed, "semilla del generador")
	flag.IntVar(&cfg.Sales, "sales", def.Sales, "filas de vendas.csv")
	flag.IntVar(&cfg.Finance, "finance", def.Finance, "filas de financeiro.csv")
	flag.IntVar(&cfg.Inventory, "inventory", def.Inventory, "productos de estoque.csv")
	flag.IntVar(&cfg.Employees, "employees", def.Employees, "colaboradores de rh.csv")
	flag.IntVar(&cfg.Production, "production", def.Production, "órdenes de producao.csv")
	flag.IntVar(&cfg.Companies, "companies", def.Companies, "empresas del grupo (máx. 8)")
	flag.IntVar(&cfg.Months, "months", def.Months, "meses por empresa")
	asOf := flag.String("as-of", "", "fecha de referencia YYYY-MM-DD (default hoy)")
	flag.Parse()

	log := logger.New(logger.Config{Env: env, Level: "info"})

	if *asOf != "" {
		t, err := time.Parse("2006-01-02", *asOf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "as-of inválido: %v\n", err)
			os.Exit(2)
		}
		cfg.Now = t
	}

	g, err := synth.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuración: %v\n", err)
		os.Exit(2)
	}
	w, err := csvfile.NewWriter(dir)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de salida")
	}
	paths, err := g.WriteAll(w, log)
	if err != nil {
		log.Fatal().Err(err).Msg("generar datasets")
	}
	log.Info().Int("files", len(paths)).Str("dir", dir).Msg("datasets generados")
}
