package catalog

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	appcatalog "github.com/jhoicas/tienda-cli/internal/application/catalog"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
)

var _ appcatalog.ProductSource = (*CSVSource)(nil)

// CSVSource lee productos de todos los CSV que coinciden con un patrón glob.
// Columnas esperadas: id, model, category, name, current_price, raw_price, discount, likes_count
// (también se aceptan con prefijo pro_). Las columnas ausentes quedan vacías o en cero.
type CSVSource struct {
	glob string
}

// NewCSVSource crea la fuente sobre el patrón dado, ej. data/product/*.csv.
func NewCSVSource(glob string) *CSVSource {
	return &CSVSource{glob: glob}
}

// Load lee cada archivo en orden lexicográfico.
func (s *CSVSource) Load() ([]appcatalog.SourceBatch, error) {
	files, err := filepath.Glob(s.glob)
	if err != nil {
		return nil, errors.Wrapf(err, "patrón %s", s.glob)
	}
	sort.Strings(files)

	batches := make([]appcatalog.SourceBatch, 0, len(files))
	for _, path := range files {
		b, err := readFile(path)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, nil
}

func readFile(path string) (appcatalog.SourceBatch, error) {
	batch := appcatalog.SourceBatch{File: path}
	file, err := os.Open(path)
	if err != nil {
		return batch, errors.WithStack(err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return batch, nil
	}
	if err != nil {
		return batch, errors.Wrapf(err, "cabecera de %s", path)
	}
	idx := headerIndex(header)

	for {
		row, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return batch, errors.Wrapf(readErr, "leer %s", path)
		}
		batch.Rows++
		p := parseRow(row, idx)
		if p.ID == "" {
			batch.Skipped++
			continue
		}
		batch.Products = append(batch.Products, p)
	}
	return batch, nil
}

// headerIndex normaliza la cabecera: minúsculas, sin BOM ni prefijo pro_.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		h = strings.ToLower(strings.TrimSpace(h))
		h = strings.TrimPrefix(h, "pro_")
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	return idx
}

func parseRow(row []string, idx map[string]int) *entity.Product {
	cell := func(name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	return &entity.Product{
		ID:           cell("id"),
		Model:        cell("model"),
		Category:     cell("category"),
		Name:         cell("name"),
		CurrentPrice: parseNullDecimal(cell("current_price")),
		RawPrice:     parseDecimal(cell("raw_price")),
		Discount:     parseDecimal(cell("discount")),
		LikesCount:   parseCount(cell("likes_count")),
	}
}

// parseNullDecimal deja el valor ausente si la celda falta o no es numérica.
func parseNullDecimal(s string) decimal.NullDecimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseCount(s string) int64 {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return d.IntPart()
	}
	return 0
}
