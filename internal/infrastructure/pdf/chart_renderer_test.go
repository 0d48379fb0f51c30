package pdf

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-cli/internal/application/analytics"
	"github.com/jhoicas/tienda-cli/internal/application/dto"
)

func TestBarSpan(t *testing.T) {
	max := decimal.NewFromInt(10)
	assert.Equal(t, 0, barSpan(decimal.Zero, max))
	assert.Equal(t, barWidth, barSpan(max, max))
	assert.Equal(t, 1, barSpan(decimal.RequireFromString("0.01"), max))
	assert.Equal(t, 0, barSpan(decimal.NewFromInt(3), decimal.Zero))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "12", formatValue(decimal.NewFromInt(12)))
	assert.Equal(t, "12.50", formatValue(decimal.RequireFromString("12.5")))
}

func TestChartRenderer_EscribePDF(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "figure")
	r := NewChartRenderer(dir)

	path, err := r.Render(context.Background(), analytics.Figure{
		Name:   analytics.FigureDiscount,
		Title:  "Descuentos",
		Kind:   analytics.ChartPie,
		Labels: []string{"< 30%", "30% - 60%", "> 60%"},
		Values: []decimal.Decimal{decimal.NewFromInt(3), decimal.NewFromInt(1), decimal.Zero},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "generate_discount_figure.pdf"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestChartRenderer_Dispersion(t *testing.T) {
	r := NewChartRenderer(t.TempDir())
	_, err := r.Render(context.Background(), analytics.Figure{
		Name: analytics.FigureDiscountLikesCount,
		Kind: analytics.ChartScatter,
		Points: []dto.ScatterPoint{
			{ProductID: "p1", Discount: decimal.NewFromInt(10), Likes: 4},
		},
	})
	require.NoError(t, err)
}

func TestChartRenderer_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewChartRenderer(t.TempDir()).Render(ctx, analytics.Figure{Name: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}
