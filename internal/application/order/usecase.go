package order

import (
	"fmt"
	"time"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/identity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// OrderUseCase compras y consultas de pedidos.
type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	ids         *identity.IDGenerator
	log         *logger.Logger
	now         func() time.Time
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, ids *identity.IDGenerator, log *logger.Logger) *OrderUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &OrderUseCase{orderRepo: orderRepo, productRepo: productRepo, ids: ids, log: log, now: time.Now}
}

// Create registra la compra de productID por customerID. Si at es nil se usa la hora actual.
// El producto debe existir en el catálogo en el momento de la compra.
func (uc *OrderUseCase) Create(customerID, productID string, at *time.Time) (*dto.OrderResponse, error) {
	p, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
	}
	ts := uc.now()
	if at != nil {
		ts = *at
	}
	ids, err := uc.orderRepo.IDs()
	if err != nil {
		return nil, err
	}
	id, err := uc.ids.OrderID(ids)
	if err != nil {
		return nil, fmt.Errorf("generar id de pedido: %w", err)
	}
	o := &entity.Order{ID: id, UserID: customerID, ProductID: productID, OrderTime: entity.FormatTimestamp(ts)}
	if err := uc.orderRepo.Create(o); err != nil {
		return nil, err
	}
	uc.log.Info().Str("order_id", id).Str("user_id", customerID).Str("pro_id", productID).Msg("pedido creado")
	return dto.FromOrder(o), nil
}

// Delete elimina un pedido.
func (uc *OrderUseCase) Delete(id string) error {
	if err := uc.orderRepo.Delete(id); err != nil {
		return fmt.Errorf("pedido %s: %w", id, err)
	}
	uc.log.Info().Str("order_id", id).Msg("pedido eliminado")
	return nil
}

// ListByCustomer página de los pedidos de un cliente.
func (uc *OrderUseCase) ListByCustomer(customerID string, page, size int) (*dto.PageResponse[*dto.OrderResponse], error) {
	p, err := uc.orderRepo.ListByUser(customerID, page, size)
	if err != nil {
		return nil, err
	}
	return toPage(p), nil
}

// ListAll página de todos los pedidos (vista de administrador).
func (uc *OrderUseCase) ListAll(page, size int) (*dto.PageResponse[*dto.OrderResponse], error) {
	p, err := uc.orderRepo.ListPage(page, size)
	if err != nil {
		return nil, err
	}
	return toPage(p), nil
}

// DeleteAll elimina todos los pedidos.
func (uc *OrderUseCase) DeleteAll() error {
	if err := uc.orderRepo.DeleteAll(); err != nil {
		return err
	}
	uc.log.Info().Msg("pedidos eliminados")
	return nil
}

func toPage(p repository.Page[*entity.Order]) *dto.PageResponse[*dto.OrderResponse] {
	return &dto.PageResponse[*dto.OrderResponse]{
		Items:      dto.MapSlice(p.Items, dto.FromOrder),
		Page:       p.Number,
		TotalPages: p.TotalPages,
	}
}
