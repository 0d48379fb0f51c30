package order

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/identity"
	"github.com/jhoicas/tienda-cli/internal/infrastructure/flatfile"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

func newUseCase(t *testing.T) *OrderUseCase {
	t.Helper()
	dir := t.TempDir()
	products := flatfile.NewProductRepository(filepath.Join(dir, "products.txt"), logger.Nop())
	require.NoError(t, products.ReplaceAll([]*entity.Product{{ID: "p1", Name: "Gorra"}}))
	orders := flatfile.NewOrderRepository(filepath.Join(dir, "orders.txt"), logger.Nop())
	return NewOrderUseCase(orders, products, identity.NewIDGenerator(nil), logger.Nop())
}

func TestCreate(t *testing.T) {
	uc := newUseCase(t)
	at := time.Date(2024, 3, 5, 14, 7, 9, 0, time.Local)

	o, err := uc.Create("u_1", "p1", &at)
	require.NoError(t, err)
	assert.Regexp(t, `^o_\d{5}$`, o.ID)
	assert.Equal(t, "05-03-2024_14:07:09", o.OrderTime)

	_, err = uc.Create("u_1", "nope", nil)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestListados(t *testing.T) {
	uc := newUseCase(t)
	for _, u := range []string{"u_1", "u_2", "u_1"} {
		_, err := uc.Create(u, "p1", nil)
		require.NoError(t, err)
	}

	mine, err := uc.ListByCustomer("u_1", 1, 10)
	require.NoError(t, err)
	assert.Len(t, mine.Items, 2)

	all, err := uc.ListAll(1, 2)
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
	assert.Equal(t, 2, all.TotalPages)

	require.NoError(t, uc.Delete(mine.Items[0].ID))
	assert.True(t, errors.Is(uc.Delete(mine.Items[0].ID), domain.ErrNotFound))

	require.NoError(t, uc.DeleteAll())
	all, err = uc.ListAll(1, 10)
	require.NoError(t, err)
	assert.Empty(t, all.Items)
}
