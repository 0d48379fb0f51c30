package analytics

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// DefaultTopSellers tamaño del ranking de más vendidos.
const DefaultTopSellers = 10

var monthLabels = []string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}

// AnalyticsUseCase calcula las series estadísticas sobre productos y pedidos y las
// entrega al renderizador de figuras.
type AnalyticsUseCase struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	renderer    ChartRenderer
	log         *logger.Logger
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(productRepo repository.ProductRepository, orderRepo repository.OrderRepository, renderer ChartRenderer, log *logger.Logger) *AnalyticsUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AnalyticsUseCase{productRepo: productRepo, orderRepo: orderRepo, renderer: renderer, log: log}
}

// CategoryCounts productos por categoría, de mayor a menor.
func (uc *AnalyticsUseCase) CategoryCounts() ([]dto.CountPoint, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	return categoryCounts(products), nil
}

// DiscountBuckets productos por rango de descuento.
func (uc *AnalyticsUseCase) DiscountBuckets() ([]dto.CountPoint, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	return discountBuckets(products), nil
}

// LikesByCategory suma de likes por categoría, ascendente.
func (uc *AnalyticsUseCase) LikesByCategory() ([]dto.CountPoint, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	return likesByCategory(products), nil
}

// DiscountVsLikes un punto por producto.
func (uc *AnalyticsUseCase) DiscountVsLikes() ([]dto.ScatterPoint, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	return discountVsLikes(products), nil
}

// CustomerMonthlyConsumption gasto mensual de un cliente (12 meses, ceros incluidos).
func (uc *AnalyticsUseCase) CustomerMonthlyConsumption(customerID string) ([]dto.MonthlyPoint, error) {
	joined, err := uc.joined(context.Background())
	if err != nil {
		return nil, err
	}
	points, _ := monthlyConsumption(joined, func(j joinedOrder) bool { return j.UserID == customerID })
	return points, nil
}

// AllCustomersMonthlyConsumption gasto mensual agregado de todos los clientes.
func (uc *AnalyticsUseCase) AllCustomersMonthlyConsumption() ([]dto.MonthlyPoint, error) {
	joined, err := uc.joined(context.Background())
	if err != nil {
		return nil, err
	}
	points, _ := monthlyConsumption(joined, func(joinedOrder) bool { return true })
	return points, nil
}

// TopSellers productos más vendidos por número de pedidos.
func (uc *AnalyticsUseCase) TopSellers(limit int) ([]dto.CountPoint, error) {
	joined, err := uc.joined(context.Background())
	if err != nil {
		return nil, err
	}
	return topSellers(joined, limit), nil
}

// joined carga productos y pedidos y los cruza.
func (uc *AnalyticsUseCase) joined(ctx context.Context) ([]joinedOrder, error) {
	products, orders, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	return joinOrders(orders, products), nil
}

// load lee productos y luego pedidos.
func (uc *AnalyticsUseCase) load(ctx context.Context) ([]*entity.Product, []*entity.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, nil, fmt.Errorf("leer productos: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, nil, fmt.Errorf("leer pedidos: %w", err)
	}
	return products, orders, nil
}

// GenerateAll dibuja las figuras de catálogo y de pedidos. Las series vacías se omiten.
// Devuelve las rutas generadas.
func (uc *AnalyticsUseCase) GenerateAll(ctx context.Context) ([]string, error) {
	products, orders, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	joined := joinOrders(orders, products)

	var figs []Figure
	if len(products) > 0 {
		figs = append(figs,
			countFigure(FigureCategory, "Productos por categoría", "Categoría", "Número de productos", ChartBar, categoryCounts(products)),
			countFigure(FigureDiscount, "Proporción de productos por rango de descuento", "", "", ChartPie, discountBuckets(products)),
			countFigure(FigureLikesCount, "Suma de likes por categoría", "Likes", "Categoría", ChartBarH, likesByCategory(products)),
			Figure{
				Name: FigureDiscountLikesCount, Title: "Relación entre descuento y likes",
				XLabel: "Descuento (%)", YLabel: "Likes", Kind: ChartScatter,
				Points: discountVsLikes(products),
			},
		)
	}
	if len(joined) > 0 {
		all, _ := monthlyConsumption(joined, func(joinedOrder) bool { return true })
		figs = append(figs,
			monthlyFigure(FigureAllConsumption, "Consumo mensual de todos los clientes", ChartLine, all),
			countFigure(FigureTopSellers, "Los 10 productos más vendidos", "Número de pedidos", "Producto", ChartBarH, topSellers(joined, DefaultTopSellers)),
		)
	}
	return uc.render(ctx, figs)
}

// GenerateCustomer dibuja el consumo mensual de un cliente. Devuelve "" si no tiene pedidos válidos.
func (uc *AnalyticsUseCase) GenerateCustomer(ctx context.Context, customerID string) (string, error) {
	joined, err := uc.joined(ctx)
	if err != nil {
		return "", err
	}
	points, n := monthlyConsumption(joined, func(j joinedOrder) bool { return j.UserID == customerID })
	if n == 0 {
		return "", nil
	}
	paths, err := uc.render(ctx, []Figure{
		monthlyFigure(CustomerFigureName(customerID), "Consumo mensual de "+customerID, ChartBar, points),
	})
	if err != nil || len(paths) == 0 {
		return "", err
	}
	return paths[0], nil
}

func (uc *AnalyticsUseCase) render(ctx context.Context, figs []Figure) ([]string, error) {
	paths := make([]string, 0, len(figs))
	for _, f := range figs {
		if len(f.Labels) == 0 && len(f.Points) == 0 {
			continue
		}
		path, err := uc.renderer.Render(ctx, f)
		if err != nil {
			return paths, fmt.Errorf("figura %s: %w", f.Name, err)
		}
		uc.log.Info().Str("figure", f.Name).Str("path", path).Msg("figura generada")
		paths = append(paths, path)
	}
	return paths, nil
}

func countFigure(name, title, xLabel, yLabel string, kind ChartKind, points []dto.CountPoint) Figure {
	f := Figure{Name: name, Title: title, XLabel: xLabel, YLabel: yLabel, Kind: kind}
	for _, p := range points {
		f.Labels = append(f.Labels, p.Label)
		f.Values = append(f.Values, decimal.NewFromInt(p.Count))
	}
	return f
}

func monthlyFigure(name, title string, kind ChartKind, points []dto.MonthlyPoint) Figure {
	f := Figure{Name: name, Title: title, XLabel: "Mes", YLabel: "Consumo", Kind: kind}
	for _, p := range points {
		label := strconv.Itoa(p.Month)
		if p.Month >= 1 && p.Month <= 12 {
			label = monthLabels[p.Month-1]
		}
		f.Labels = append(f.Labels, label)
		f.Values = append(f.Values, p.Total)
	}
	return f
}
