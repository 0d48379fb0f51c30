package dto

import "github.com/shopspring/decimal"

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID           string          `json:"pro_id"`
	Model        string          `json:"pro_model"`
	Category     string          `json:"pro_category"`
	Name         string          `json:"pro_name"`
	CurrentPrice decimal.NullDecimal `json:"pro_current_price"`
	RawPrice     decimal.Decimal `json:"pro_raw_price"`
	Discount     decimal.Decimal `json:"pro_discount"`
	LikesCount   int64           `json:"pro_likes_count"`
}

// IngestReport resumen de una ingesta de catálogo.
type IngestReport struct {
	Files      int `json:"files"`
	Rows       int `json:"rows"`
	Stored     int `json:"stored"`
	Duplicates int `json:"duplicates"`
	Skipped    int `json:"skipped"`
}
