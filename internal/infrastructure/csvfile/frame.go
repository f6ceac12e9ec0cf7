package csvfile

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/aircatering-bi/internal/domain"
)

// frame columnas de un CSV leído como texto. La conversión de tipos la hace rowReader.
type frame struct {
	name string
	cols map[string][]string
	rows int
}

// readFrame lee el CSV completo con gota, sin detección de tipos: todas las columnas como string.
func readFrame(name string, r io.Reader) (*frame, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", name, err)
	}
	if dataLines(raw) == 0 {
		// Solo encabezado (o archivo vacío): tabla presente sin filas.
		return &frame{name: name, cols: headerOnly(raw)}, nil
	}

	df := dataframe.ReadCSV(strings.NewReader(string(raw)),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedDataset, name, df.Err)
	}

	f := &frame{name: name, cols: make(map[string][]string, df.Ncol()), rows: df.Nrow()}
	for _, col := range df.Names() {
		f.cols[normalizeHeader(col)] = df.Col(col).Records()
	}
	return f, nil
}

func normalizeHeader(h string) string {
	return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
}

// dataLines cuenta las líneas no vacías después del encabezado.
func dataLines(raw []byte) int {
	n := 0
	for _, line := range strings.Split(string(raw), "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return n - 1
}

func headerOnly(raw []byte) map[string][]string {
	cols := make(map[string][]string)
	first, _, _ := strings.Cut(string(raw), "\n")
	for _, h := range strings.Split(strings.TrimRight(first, "\r"), ",") {
		if h = normalizeHeader(strings.Trim(h, `"`)); h != "" {
			cols[h] = nil
		}
	}
	return cols
}

// require verifica que existan todas las columnas del esquema.
func (f *frame) require(columns ...string) error {
	var missing []string
	for _, c := range columns {
		if _, ok := f.cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s: columnas faltantes %s", domain.ErrMalformedDataset, f.name, strings.Join(missing, ", "))
	}
	return nil
}

// each recorre las filas; se detiene en el primer valor inválido.
func (f *frame) each(fn func(r *rowReader)) error {
	r := &rowReader{f: f}
	for i := 0; i < f.rows; i++ {
		r.row = i
		fn(r)
		if r.err != nil {
			return r.err
		}
	}
	return nil
}

// rowReader acceso tipado a la fila actual. Guarda el primer error con número de línea.
type rowReader struct {
	f   *frame
	row int
	err error
}

func (r *rowReader) fail(col, value string, cause error) {
	if r.err != nil {
		return
	}
	// +2: encabezado y numeración desde 1
	r.err = fmt.Errorf("%w: %s línea %d, columna %q, valor %q: %v",
		domain.ErrMalformedDataset, r.f.name, r.row+2, col, value, cause)
}

func (r *rowReader) str(col string) string {
	v := r.f.cols[col][r.row]
	if isNull(v) {
		return ""
	}
	return v
}

func (r *rowReader) date(col string) time.Time {
	v := r.str(col)
	t, err := parseDate(v)
	if err != nil {
		r.fail(col, v, err)
	}
	return t
}

func (r *rowReader) optDate(col string) *time.Time {
	v := r.str(col)
	if v == "" {
		return nil
	}
	t, err := parseDate(v)
	if err != nil {
		r.fail(col, v, err)
		return nil
	}
	return &t
}

func (r *rowReader) dec(col string) decimal.Decimal {
	v := r.str(col)
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		r.fail(col, v, err)
		return decimal.Zero
	}
	return d
}

func (r *rowReader) integer(col string) int {
	v := r.str(col)
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		r.fail(col, v, err)
		return 0
	}
	if !d.Equal(d.Truncate(0)) {
		r.fail(col, v, fmt.Errorf("se esperaba un entero"))
		return 0
	}
	return int(d.IntPart())
}

func isNull(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "NaN", "NA", "<nil>", "None":
		return true
	}
	return false
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// parseDate acepta fecha simple, fecha-hora y RFC 3339.
func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida")
}
