package analytics

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
)

// ChartKind tipo de gráfico sugerido al renderizador.
type ChartKind string

const (
	ChartBar     ChartKind = "bar"
	ChartBarH    ChartKind = "barh"
	ChartPie     ChartKind = "pie"
	ChartLine    ChartKind = "line"
	ChartScatter ChartKind = "scatter"
)

// Nombres de figura (sin extensión). El renderizador decide el formato.
const (
	FigureCategory           = "generate_category_figure"
	FigureDiscount           = "generate_discount_figure"
	FigureLikesCount         = "generate_likes_count_figure"
	FigureDiscountLikesCount = "generate_discount_likes_count_figure"
	FigureAllConsumption     = "all_customers_consumption"
	FigureTopSellers         = "all_top_10_best_sellers"
	figureCustomerPrefix     = "single_customer_consumption_"
)

// CustomerFigureName nombre de la figura de consumo de un cliente.
func CustomerFigureName(customerID string) string { return figureCustomerPrefix + customerID }

// Figure serie lista para dibujar. Labels/Values para barras, líneas y tartas; Points para dispersión.
type Figure struct {
	Name   string
	Title  string
	XLabel string
	YLabel string
	Kind   ChartKind
	Labels []string
	Values []decimal.Decimal
	Points []dto.ScatterPoint
}

// ChartRenderer puerto de salida de figuras. Devuelve la ruta del archivo generado.
type ChartRenderer interface {
	Render(ctx context.Context, fig Figure) (string, error)
}
