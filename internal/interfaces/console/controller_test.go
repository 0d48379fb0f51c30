package console

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-cli/internal/application/admin"
	"github.com/jhoicas/tienda-cli/internal/application/analytics"
	"github.com/jhoicas/tienda-cli/internal/application/auth"
	appcatalog "github.com/jhoicas/tienda-cli/internal/application/catalog"
	"github.com/jhoicas/tienda-cli/internal/application/customer"
	"github.com/jhoicas/tienda-cli/internal/application/order"
	"github.com/jhoicas/tienda-cli/internal/application/product"
	"github.com/jhoicas/tienda-cli/internal/application/testdata"
	"github.com/jhoicas/tienda-cli/internal/domain/identity"
	"github.com/jhoicas/tienda-cli/internal/infrastructure/catalog"
	"github.com/jhoicas/tienda-cli/internal/infrastructure/flatfile"
	"github.com/jhoicas/tienda-cli/internal/infrastructure/pdf"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

func newServices(t *testing.T) (Services, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "product"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "product", "a.csv"), []byte(
		"id,model,category,name,current_price,raw_price,discount,likes_count\n"+
			"p1,M1,ropa,Camiseta,10,20,50,3\n"+
			"p2,M2,calzado,Zapato,30,40,25,8\n"), 0o644))

	log := logger.Nop()
	users := flatfile.NewUserRepository(filepath.Join(dir, "users.txt"), log)
	products := flatfile.NewProductRepository(filepath.Join(dir, "products.txt"), log)
	orders := flatfile.NewOrderRepository(filepath.Join(dir, "orders.txt"), log)
	obf := identity.NewObfuscator(nil)
	ids := identity.NewIDGenerator(nil)
	customers := customer.NewCustomerUseCase(users, obf, ids, identity.NewStructValidator(), log)

	return Services{
		Auth:      auth.NewAuthUseCase(users, log),
		Admin:     admin.NewAdminUseCase(users, obf, ids, admin.Credentials{Username: "admin", Password: "admin_password1"}, log),
		Customers: customers,
		Products:  product.NewProductUseCase(products, log),
		Orders:    order.NewOrderUseCase(orders, products, ids, log),
		Catalog:   appcatalog.NewCatalogUseCase(catalog.NewCSVSource(filepath.Join(dir, "product", "*.csv")), products, log),
		Analytics: analytics.NewAnalyticsUseCase(products, orders, pdf.NewChartRenderer(filepath.Join(dir, "figure")), log),
		TestData:  testdata.NewTestDataUseCase(customers, products, orders, ids, nil, testdata.Options{Customers: 1, MinOrders: 1, MaxOrders: 2}, log),
	}, dir
}

func run(t *testing.T, svc Services, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	c := NewController(svc, NewIO(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out), logger.Nop(), 10)
	require.NoError(t, c.Bootstrap())
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func TestController_RegistroLoginYCompra(t *testing.T) {
	svc, _ := newServices(t)

	out := run(t, svc,
		"2", "alice_w Passw0rd a@b.com 0412345678",
		"2", "alice_w Passw0rd a@b.com 0412345678",
		"1", "alice_w Passw0rd",
		"1",
		"3 camis",
		"5 p1",
		"5 nope",
		"6",
		"2 role admin",
		"8",
		"1", "alice_w malaclave1",
		"3",
	)

	assert.Contains(t, out, "Catálogo inicial importado: 2 productos de 1 archivos.")
	assert.Contains(t, out, "Registro completado")
	assert.Contains(t, out, "el nombre de usuario ya existe")
	assert.Contains(t, out, "Bienvenido de nuevo, alice_w!")
	assert.Contains(t, out, "user_mobile: 0412345678")
	assert.Contains(t, out, "pro_name: Camiseta")
	assert.Contains(t, out, "Pedido creado: o_")
	assert.Contains(t, out, "[ERROR] en Cliente: no encontrado")
	assert.Contains(t, out, "Página: 1/1")
	assert.Contains(t, out, "solo se puede actualizar password, email o mobile")
	assert.Contains(t, out, "Sesión cerrada.")
	assert.Contains(t, out, "usuario o contraseña inválidos")
	assert.Contains(t, out, "¡Hasta pronto!")
}

func TestController_AdminBorraTodo(t *testing.T) {
	svc, _ := newServices(t)

	out := run(t, svc,
		"1", "admin admin_password1",
		"4",
		"3",
		"5",
		"6", "no",
		"6", ConfirmWord,
		"1",
		"2",
		"11",
		"3",
	)

	assert.Contains(t, out, "Datos de prueba generados: 1 clientes")
	assert.Contains(t, out, "--- pedidos ---")
	assert.Contains(t, out, "6 figuras generadas.")
	assert.Contains(t, out, "Borrado cancelado.")
	assert.Contains(t, out, "Se borraron todos los clientes, productos y pedidos.")
	assert.Contains(t, out, "No se encontraron productos.")
	assert.Contains(t, out, "No se encontraron clientes.")

	u, err := svc.Auth.Login("admin", "admin_password1")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())
}

func TestController_FinDeEntrada(t *testing.T) {
	svc, _ := newServices(t)
	out := run(t, svc, "9")
	assert.Contains(t, out, "opción inválida")
}

func TestController_ContextoCancelado(t *testing.T) {
	svc, _ := newServices(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewController(svc, NewIO(strings.NewReader("1\n"), &bytes.Buffer{}), logger.Nop(), 10)
	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
}

func TestDispatch_RecuperaPanico(t *testing.T) {
	var out bytes.Buffer
	c := NewController(Services{}, NewIO(strings.NewReader(""), &out), logger.Nop(), 10)

	assert.NotPanics(t, func() {
		c.dispatch("Prueba", "boom", func() error { panic("fallo") })
	})
	assert.Contains(t, out.String(), "[ERROR] en Prueba: error inesperado: fallo")
}

func TestReadArgs_RellenaYRecorta(t *testing.T) {
	c := NewIO(strings.NewReader("a b c d\n\n"), &bytes.Buffer{})

	args, ok := c.ReadArgs("> ", 2)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, args)

	args, ok = c.ReadArgs("> ", 3)
	require.True(t, ok)
	assert.Equal(t, []string{"", "", ""}, args)

	_, ok = c.ReadArgs("> ", 1)
	assert.False(t, ok)
}
