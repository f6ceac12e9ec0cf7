package csvfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/jhoicas/aircatering-bi/internal/domain/entity"
)

// Writer escribe datasets como <dir>/<dataset>.csv (UTF-8, con encabezado).
type Writer struct {
	dir string
}

// NewWriter construye el escritor; crea el directorio si no existe.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	return &Writer{dir: dir}, nil
}

// Write records[0] es el encabezado. Reemplaza el archivo existente.
func (w *Writer) Write(name entity.DatasetName, records [][]string) (string, error) {
	if len(records) == 0 {
		return "", fmt.Errorf("escribir %s: sin encabezado", name)
	}
	path := filepath.Join(w.dir, string(name)+".csv")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("crear %s: %w", path, err)
	}
	defer f.Close()

	if len(records) == 1 {
		// gota no construye un DataFrame sin filas; se escribe solo el encabezado.
		if _, err := fmt.Fprintln(f, strings.Join(records[0], ",")); err != nil {
			return "", fmt.Errorf("escribir %s: %w", path, err)
		}
		return path, nil
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return "", fmt.Errorf("armar %s: %w", name, df.Err)
	}
	if err := df.WriteCSV(f); err != nil {
		return "", fmt.Errorf("escribir %s: %w", path, err)
	}
	return path, nil
}
