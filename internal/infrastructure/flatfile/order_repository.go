package flatfile

import (
	"fmt"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre archivo plano.
type OrderRepo struct {
	store *Store
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(path string, log *logger.Logger) *OrderRepo {
	return &OrderRepo{store: NewStore(path, NewCodec(entity.OrderFields), log)}
}

func orderToRecord(o *entity.Order) Record {
	return Record{
		entity.FieldOrderID:   o.ID,
		entity.FieldUserID:    o.UserID,
		entity.FieldProID:     o.ProductID,
		entity.FieldOrderTime: o.OrderTime,
	}
}

func recordToOrder(r Record) *entity.Order {
	return &entity.Order{
		ID:        str(r, entity.FieldOrderID),
		UserID:    str(r, entity.FieldUserID),
		ProductID: str(r, entity.FieldProID),
		OrderTime: str(r, entity.FieldOrderTime),
	}
}

// Create agrega un pedido.
func (r *OrderRepo) Create(order *entity.Order) error {
	return r.CreateBatch([]*entity.Order{order})
}

// CreateBatch agrega varios pedidos de una vez.
func (r *OrderRepo) CreateBatch(orders []*entity.Order) error {
	recs := make([]Record, 0, len(orders))
	for _, o := range orders {
		recs = append(recs, orderToRecord(o))
	}
	if err := r.store.Append(recs...); err != nil {
		return fmt.Errorf("insert orders: %w", err)
	}
	return nil
}

// List devuelve todos los pedidos en orden de archivo.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	recs, err := r.store.LoadAll()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Order, 0, len(recs))
	for _, rec := range recs {
		out = append(out, recordToOrder(rec))
	}
	return out, nil
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	orders, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

// ListPage página de todos los pedidos.
func (r *OrderRepo) ListPage(page, size int) (repository.Page[*entity.Order], error) {
	orders, err := r.List()
	if err != nil {
		return repository.Page[*entity.Order]{}, err
	}
	return Paginate(orders, page, size), nil
}

// ListByUser página de los pedidos de un cliente.
func (r *OrderRepo) ListByUser(userID string, page, size int) (repository.Page[*entity.Order], error) {
	recs, err := r.store.Filter(func(rec Record) bool { return str(rec, entity.FieldUserID) == userID })
	if err != nil {
		return repository.Page[*entity.Order]{}, err
	}
	orders := make([]*entity.Order, 0, len(recs))
	for _, rec := range recs {
		orders = append(orders, recordToOrder(rec))
	}
	return Paginate(orders, page, size), nil
}

// Delete elimina el pedido con ese ID.
func (r *OrderRepo) Delete(id string) error {
	recs, err := r.store.LoadAll()
	if err != nil {
		return err
	}
	keep := make([]Record, 0, len(recs))
	for _, rec := range recs {
		if str(rec, entity.FieldOrderID) != id {
			keep = append(keep, rec)
		}
	}
	if len(keep) == len(recs) {
		return domain.ErrNotFound
	}
	if err := r.store.Rewrite(keep); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// DeleteAll elimina todos los pedidos.
func (r *OrderRepo) DeleteAll() error {
	if err := r.store.Truncate(); err != nil {
		return fmt.Errorf("delete orders: %w", err)
	}
	return nil
}

// IDs conjunto de IDs de pedido presentes.
func (r *OrderRepo) IDs() (map[string]struct{}, error) {
	recs, err := r.store.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make(map[string]struct{}, len(recs))
	for _, rec := range recs {
		ids[str(rec, entity.FieldOrderID)] = struct{}{}
	}
	return ids, nil
}
