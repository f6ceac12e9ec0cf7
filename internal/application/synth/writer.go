package synth

import (
	"fmt"

	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
	"github.com/jhoicas/aircatering-bi/pkg/logger"
)

// RecordWriter destino de los registros; lo implementa csvfile.Writer.
type RecordWriter interface {
	Write(name entity.DatasetName, records [][]string) (string, error)
}

// Records registros de un dataset por nombre.
func (g *Generator) Records(name entity.DatasetName) ([][]string, error) {
	switch name {
	case entity.DatasetSales:
		return g.Sales(), nil
	case entity.DatasetFinance:
		return g.Finance(), nil
	case entity.DatasetInventory:
		return g.Inventory(), nil
	case entity.DatasetEmployees:
		return g.Employees(), nil
	case entity.DatasetProduction:
		return g.Production(), nil
	case entity.DatasetGroupCompanies:
		return g.GroupCompanies(), nil
	}
	return nil, fmt.Errorf("dataset desconocido %q", name)
}

// WriteAll genera y escribe los seis datasets en el orden de entity.AllDatasets.
// Devuelve las rutas escritas.
func (g *Generator) WriteAll(w RecordWriter, log *logger.Logger) ([]string, error) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("synth")

	paths := make([]string, 0, len(entity.AllDatasets))
	for _, name := range entity.AllDatasets {
		records, err := g.Records(name)
		if err != nil {
			return paths, err
		}
		path, err := w.Write(name, records)
		if err != nil {
			return paths, fmt.Errorf("dataset %s: %w", name, err)
		}
		log.Info().
			Str("dataset", string(name)).
			Int("rows", len(records)-1).
			Str("path", path).
			Msg("dataset generado")
		paths = append(paths, path)
	}
	return paths, nil
}
