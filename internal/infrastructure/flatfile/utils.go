package flatfile

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// str lee un campo como texto; los números se formatean sin pérdida.
func str(r Record, key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// dec lee un campo numérico; texto no numérico o ausente vale cero.
func dec(r Record, key string) decimal.Decimal {
	return nullDec(r, key).Decimal
}

// nullDec lee un campo numérico conservando la ausencia: texto no numérico o campo
// inexistente dan Valid=false.
func nullDec(r Record, key string) decimal.NullDecimal {
	switch v := r[key].(type) {
	case int64:
		return decimal.NewNullDecimal(decimal.NewFromInt(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.NullDecimal{}
		}
		return decimal.NewNullDecimal(decimal.NewFromFloat(v))
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.NullDecimal{}
		}
		return decimal.NewNullDecimal(d)
	}
	return decimal.NullDecimal{}
}

// nullable escribe un decimal opcional: número si es válido, texto vacío si no.
func nullable(d decimal.NullDecimal) any {
	if !d.Valid {
		return ""
	}
	return d.Decimal.InexactFloat64()
}

// integer lee un campo entero; los flotantes se truncan.
func integer(r Record, key string) int64 {
	switch v := r[key].(type) {
	case int64:
		return v
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return int64(v)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}
