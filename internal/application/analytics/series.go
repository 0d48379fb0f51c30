package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
)

// Rangos de descuento (límite superior inclusivo, como intervalos (a, b]).
const (
	BucketLow  = "< 30%"
	BucketMid  = "30% - 60%"
	BucketHigh = "> 60%"
)

var (
	discountFloor = decimal.NewFromInt(-1)
	discountLow   = decimal.NewFromInt(29)
	discountMid   = decimal.NewFromInt(60)
)

// joinedOrder pedido enriquecido con datos del producto.
type joinedOrder struct {
	UserID string
	Name   string
	Price  decimal.Decimal
	Month  int
}

// joinOrders cruza pedidos con productos por pro_id (gana el primer producto). Se descartan
// los pedidos con fecha ilegible, sin producto o cuyo producto no tiene precio.
func joinOrders(orders []*entity.Order, products []*entity.Product) []joinedOrder {
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		if _, ok := byID[p.ID]; !ok {
			byID[p.ID] = p
		}
	}
	out := make([]joinedOrder, 0, len(orders))
	for _, o := range orders {
		p, ok := byID[o.ProductID]
		if !ok || !p.CurrentPrice.Valid {
			continue
		}
		ts, err := entity.ParseTimestamp(o.OrderTime)
		if err != nil {
			continue
		}
		out = append(out, joinedOrder{UserID: o.UserID, Name: p.Name, Price: p.CurrentPrice.Decimal, Month: int(ts.Month())})
	}
	return out
}

// sortCounts ordena por conteo descendente y, a igualdad, por etiqueta.
func sortCounts(counts map[string]int64) []dto.CountPoint {
	out := make([]dto.CountPoint, 0, len(counts))
	for k, v := range counts {
		out = append(out, dto.CountPoint{Label: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func categoryCounts(products []*entity.Product) []dto.CountPoint {
	counts := make(map[string]int64)
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		counts[p.Category]++
	}
	return sortCounts(counts)
}

// discountBuckets siempre devuelve los tres rangos en orden fijo, con conteo cero si no hay productos.
func discountBuckets(products []*entity.Product) []dto.CountPoint {
	out := []dto.CountPoint{{Label: BucketLow}, {Label: BucketMid}, {Label: BucketHigh}}
	for _, p := range products {
		d := p.Discount
		switch {
		case d.LessThanOrEqual(discountFloor):
		case d.LessThanOrEqual(discountLow):
			out[0].Count++
		case d.LessThanOrEqual(discountMid):
			out[1].Count++
		default:
			out[2].Count++
		}
	}
	return out
}

// likesByCategory suma de likes por categoría, ascendente (a igualdad, por nombre).
func likesByCategory(products []*entity.Product) []dto.CountPoint {
	sums := make(map[string]int64)
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		sums[p.Category] += p.LikesCount
	}
	out := make([]dto.CountPoint, 0, len(sums))
	for k, v := range sums {
		out = append(out, dto.CountPoint{Label: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count < out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func discountVsLikes(products []*entity.Product) []dto.ScatterPoint {
	out := make([]dto.ScatterPoint, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ScatterPoint{ProductID: p.ID, Discount: p.Discount, Likes: p.LikesCount})
	}
	return out
}

// monthlyConsumption doce meses (enero a diciembre) con la suma de precios; keep filtra pedidos.
// El segundo valor es el número de pedidos que contribuyeron.
func monthlyConsumption(joined []joinedOrder, keep func(joinedOrder) bool) ([]dto.MonthlyPoint, int) {
	out := make([]dto.MonthlyPoint, 12)
	for i := range out {
		out[i] = dto.MonthlyPoint{Month: i + 1, Total: decimal.Zero}
	}
	n := 0
	for _, j := range joined {
		if !keep(j) {
			continue
		}
		out[j.Month-1].Total = out[j.Month-1].Total.Add(j.Price)
		n++
	}
	return out, n
}

func topSellers(joined []joinedOrder, limit int) []dto.CountPoint {
	counts := make(map[string]int64)
	for _, j := range joined {
		counts[j.Name]++
	}
	out := sortCounts(counts)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
