package dto

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID        string `json:"order_id"`
	UserID    string `json:"user_id"`
	ProductID string `json:"pro_id"`
	OrderTime string `json:"order_time"`
}

// TestDataReport resumen de la generación de datos sintéticos.
type TestDataReport struct {
	BatchID   string   `json:"batch_id"`
	Customers []string `json:"customers"`
	Orders    int      `json:"orders"`
}
