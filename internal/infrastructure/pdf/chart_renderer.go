// Package pdf dibuja las figuras estadísticas como documentos PDF con Maroto v2.
//
// Cada figura ocupa una página A4:
//
//	┌──────────────────────────────────────────────┐
//	│  TÍTULO + ejes                                │
//	│  ──────────────────────────────────────────   │
//	│  etiqueta │ ███████████            │ valor    │
//	│  etiqueta │ ████                   │ valor    │
//	└──────────────────────────────────────────────┘
//
// La dispersión se presenta como tabla descuento/likes.
package pdf

import (
	"context"
	"os"
	"path/filepath"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-cli/internal/application/analytics"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Rejilla de 100 columnas: etiqueta | barra | valor.
const (
	gridSize   = 100
	labelWidth = 30
	barWidth   = 55
	valueWidth = 15
)

var hundred = decimal.NewFromInt(100)

var _ analytics.ChartRenderer = (*ChartRenderer)(nil)

// ChartRenderer implementa analytics.ChartRenderer escribiendo <dir>/<nombre>.pdf.
type ChartRenderer struct {
	dir string
}

// NewChartRenderer construye el renderizador sobre el directorio de figuras.
func NewChartRenderer(dir string) *ChartRenderer { return &ChartRenderer{dir: dir} }

// Render genera el PDF y devuelve su ruta.
func (r *ChartRenderer) Render(ctx context.Context, fig analytics.Figure) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	bytes, err := Document(fig)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "crear directorio %s", r.dir)
	}
	path := filepath.Join(r.dir, fig.Name+".pdf")
	if err := os.WriteFile(path, bytes, 0o644); err != nil {
		return "", errors.Wrapf(err, "escribir %s", path)
	}
	return path, nil
}

// Document genera los bytes del PDF de una figura.
func Document(fig analytics.Figure) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithMaxGridSize(gridSize).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fig.Title, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(fig))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if fig.Kind == analytics.ChartScatter {
		m.AddRows(scatterRows(fig)...)
	} else {
		m.AddRows(barRows(fig)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, errors.Wrapf(err, "pdf: generar figura %s", fig.Name)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(fig analytics.Figure) core.Row {
	axes := fig.XLabel
	if fig.YLabel != "" {
		axes = nonEmpty(axes, "-") + "  /  " + fig.YLabel
	}
	return row.New(16).Add(
		col.New(gridSize).Add(
			text.New(fig.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(axes, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
	)
}

// barRows una fila por etiqueta con la barra proporcional al máximo. Las tartas añaden el porcentaje.
func barRows(fig analytics.Figure) []core.Row {
	peak := decimal.Zero
	total := decimal.Zero
	for _, v := range fig.Values {
		if v.GreaterThan(peak) {
			peak = v
		}
		total = total.Add(v)
	}

	rows := make([]core.Row, 0, len(fig.Labels))
	for i, label := range fig.Labels {
		v := decimal.Zero
		if i < len(fig.Values) {
			v = fig.Values[i]
		}
		value := formatValue(v)
		if fig.Kind == analytics.ChartPie && total.IsPositive() {
			value += " (" + v.Mul(hundred).Div(total).StringFixed(1) + "%)"
		}

		width := barSpan(v, peak)
		cols := []core.Col{
			col.New(labelWidth).Add(text.New(label, props.Text{Size: 8, Top: 1, Right: 1})),
		}
		if width > 0 {
			cols = append(cols, col.New(width).WithStyle(&props.Cell{BackgroundColor: colorPrimary}))
		}
		if rest := barWidth - width; rest > 0 {
			cols = append(cols, col.New(rest))
		}
		cols = append(cols, col.New(valueWidth).Add(text.New(value, props.Text{Size: 8, Top: 1, Align: align.Right})))
		rows = append(rows, row.New(6).Add(cols...))
	}
	return rows
}

func scatterRows(fig analytics.Figure) []core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}))
	}
	rows := []core.Row{row.New(7).Add(h("Producto", 40), h(nonEmpty(fig.XLabel, "X"), 30), h(nonEmpty(fig.YLabel, "Y"), 30))}
	for _, p := range fig.Points {
		rows = append(rows, row.New(5).Add(
			col.New(40).Add(text.New(p.ProductID, props.Text{Size: 7})),
			col.New(30).Add(text.New(formatValue(p.Discount), props.Text{Size: 7})),
			col.New(30).Add(text.New(decimal.NewFromInt(p.Likes).String(), props.Text{Size: 7})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// barSpan ancho de barra en columnas de la rejilla; valores positivos ocupan al menos una.
func barSpan(v, peak decimal.Decimal) int {
	if !v.IsPositive() || !peak.IsPositive() {
		return 0
	}
	span := int(v.Mul(decimal.NewFromInt(barWidth)).Div(peak).Round(0).IntPart())
	if span < 1 {
		span = 1
	}
	if span > barWidth {
		span = barWidth
	}
	return span
}

func formatValue(v decimal.Decimal) string {
	if v.Equal(v.Truncate(0)) {
		return v.Truncate(0).String()
	}
	return v.StringFixed(2)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
