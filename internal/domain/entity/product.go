package entity

import (
	"github.com/shopspring/decimal"
)

// Nombres de campo de un registro de producto, en orden de persistencia.
const (
	FieldProID           = "pro_id"
	FieldProModel        = "pro_model"
	FieldProCategory     = "pro_category"
	FieldProName         = "pro_name"
	FieldProCurrentPrice = "pro_current_price"
	FieldProRawPrice     = "pro_raw_price"
	FieldProDiscount     = "pro_discount"
	FieldProLikesCount   = "pro_likes_count"
)

// ProductFields orden fijo de los campos de producto.
var ProductFields = []string{
	FieldProID, FieldProModel, FieldProCategory, FieldProName,
	FieldProCurrentPrice, FieldProRawPrice, FieldProDiscount, FieldProLikesCount,
}

// Product representa un producto del catálogo. Se crea en bloque desde las fuentes CSV
// y nunca se actualiza individualmente.
type Product struct {
	ID           string
	Model        string
	Category     string
	Name         string
	CurrentPrice decimal.NullDecimal // Valid=false si la fuente no trae un precio legible
	RawPrice     decimal.Decimal
	Discount     decimal.Decimal // porcentaje
	LikesCount   int64
}
