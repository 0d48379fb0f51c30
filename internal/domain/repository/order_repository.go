package repository

import "github.com/jhoicas/tienda-cli/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(order *entity.Order) error
	// CreateBatch agrega varios pedidos en una sola apertura del archivo.
	CreateBatch(orders []*entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List() ([]*entity.Order, error)
	ListPage(page, size int) (Page[*entity.Order], error)
	ListByUser(userID string, page, size int) (Page[*entity.Order], error)
	Delete(id string) error
	DeleteAll() error
	IDs() (map[string]struct{}, error)
}
