package testdata

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-cli/internal/application/customer"
	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/identity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

const (
	testPassword = "Password123"
	lookback     = 365 * 24 * time.Hour
	letters      = "abcdefghijklmnopqrstuvwxyz"
)

// Options volumen de datos a generar.
type Options struct {
	Customers int
	MinOrders int
	MaxOrders int
}

// TestDataUseCase genera clientes y pedidos sintéticos sobre el catálogo existente.
type TestDataUseCase struct {
	customers   *customer.CustomerUseCase
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	ids         *identity.IDGenerator
	rnd         identity.RandSource
	opts        Options
	log         *logger.Logger
	now         func() time.Time
}

// NewTestDataUseCase construye el generador. Si rnd es nil usa identity.DefaultRand.
func NewTestDataUseCase(
	customers *customer.CustomerUseCase,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	ids *identity.IDGenerator,
	rnd identity.RandSource,
	opts Options,
	log *logger.Logger,
) *TestDataUseCase {
	if rnd == nil {
		rnd = identity.DefaultRand()
	}
	if log == nil {
		log = logger.Nop()
	}
	if opts.Customers <= 0 {
		opts.Customers = 10
	}
	if opts.MinOrders < 0 {
		opts.MinOrders = 0
	}
	if opts.MaxOrders < opts.MinOrders {
		opts.MaxOrders = opts.MinOrders
	}
	return &TestDataUseCase{
		customers: customers, productRepo: productRepo, orderRepo: orderRepo,
		ids: ids, rnd: rnd, opts: opts, log: log, now: time.Now,
	}
}

// Generate registra opts.Customers clientes y, para cada uno, entre MinOrders y MaxOrders
// pedidos de productos al azar con fechas dentro del último año.
func (uc *TestDataUseCase) Generate(ctx context.Context) (*dto.TestDataReport, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.ErrNoProducts
	}

	batch := uuid.New().String()
	log := uc.log.Child("batch_id", batch)
	report := &dto.TestDataReport{BatchID: batch}

	existing, err := uc.orderRepo.IDs()
	if err != nil {
		return nil, err
	}
	now := uc.now()

	for i := 0; i < uc.opts.Customers; i++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		c, err := uc.registerCustomer()
		if err != nil {
			return report, fmt.Errorf("registrar cliente de prueba: %w", err)
		}
		report.Customers = append(report.Customers, c.ID)

		n := uc.opts.MinOrders + uc.rnd.IntN(uc.opts.MaxOrders-uc.opts.MinOrders+1)
		orders := make([]*entity.Order, 0, n)
		for j := 0; j < n; j++ {
			id, err := uc.ids.OrderID(existing)
			if err != nil {
				return report, fmt.Errorf("generar id de pedido: %w", err)
			}
			existing[id] = struct{}{}
			p := products[uc.rnd.IntN(len(products))]
			at := now.Add(-time.Duration(uc.rnd.IntN(int(lookback / time.Second))) * time.Second)
			orders = append(orders, &entity.Order{ID: id, UserID: c.ID, ProductID: p.ID, OrderTime: entity.FormatTimestamp(at)})
		}
		if err := uc.orderRepo.CreateBatch(orders); err != nil {
			return report, err
		}
		report.Orders += len(orders)
	}
	log.Info().Int("customers", len(report.Customers)).Int("orders", report.Orders).Msg("datos de prueba generados")
	return report, nil
}

// registerCustomer reintenta ante un nombre ya usado.
func (uc *TestDataUseCase) registerCustomer() (*dto.UserResponse, error) {
	var err error
	for attempt := 0; attempt < 5; attempt++ {
		name := uc.username()
		var c *dto.UserResponse
		c, err = uc.customers.Register(dto.RegisterCustomerRequest{
			Username: name,
			Password: testPassword,
			Email:    name + "@test.com",
			Mobile:   uc.mobile(),
		})
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
	}
	return nil, err
}

// username nombre solo con letras para pasar la validación de usuario.
func (uc *TestDataUseCase) username() string {
	var b strings.Builder
	b.WriteString("testuser_")
	for i := 0; i < 10; i++ {
		b.WriteByte(letters[uc.rnd.IntN(len(letters))])
	}
	return b.String()
}

func (uc *TestDataUseCase) mobile() string {
	return fmt.Sprintf("04%08d", uc.rnd.IntN(100_000_000))
}
