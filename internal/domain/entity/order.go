package entity

// Nombres de campo de un registro de pedido, en orden de persistencia.
const (
	FieldOrderID   = "order_id"
	FieldOrderTime = "order_time"
)

// OrderFields orden fijo de los campos de pedido.
var OrderFields = []string{FieldOrderID, FieldUserID, FieldProID, FieldOrderTime}

// Order representa la compra de un producto por un cliente. Inmutable una vez creado.
// UserID y ProductID no se validan contra sus tablas: se toleran referencias huérfanas.
type Order struct {
	ID        string
	UserID    string
	ProductID string
	OrderTime string // TimestampLayout
}
