package dto

import "github.com/shopspring/decimal"

// CountPoint par etiqueta/conteo (categorías, rangos de descuento, más vendidos).
type CountPoint struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// ScatterPoint punto descuento vs likes de un producto.
type ScatterPoint struct {
	ProductID string          `json:"pro_id"`
	Discount  decimal.Decimal `json:"discount"`
	Likes     int64           `json:"likes"`
}

// MonthlyPoint consumo acumulado de un mes (1..12).
type MonthlyPoint struct {
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}
