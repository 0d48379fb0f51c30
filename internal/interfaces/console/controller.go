package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-cli/internal/application/admin"
	"github.com/jhoicas/tienda-cli/internal/application/analytics"
	"github.com/jhoicas/tienda-cli/internal/application/auth"
	"github.com/jhoicas/tienda-cli/internal/application/catalog"
	"github.com/jhoicas/tienda-cli/internal/application/customer"
	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/application/order"
	"github.com/jhoicas/tienda-cli/internal/application/product"
	"github.com/jhoicas/tienda-cli/internal/application/testdata"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// ConfirmWord palabra que el administrador debe escribir para borrar todos los datos.
const ConfirmWord = "CONFIRM"

// Services casos de uso que la consola orquesta.
type Services struct {
	Auth      *auth.AuthUseCase
	Admin     *admin.AdminUseCase
	Customers *customer.CustomerUseCase
	Products  *product.ProductUseCase
	Orders    *order.OrderUseCase
	Catalog   *catalog.CatalogUseCase
	Analytics *analytics.AnalyticsUseCase
	TestData  *testdata.TestDataUseCase
}

// Controller máquina de estados de la sesión: sin sesión, administrador o cliente.
type Controller struct {
	svc      Services
	io       *IO
	log      *logger.Logger
	pageSize int
	user     *entity.User
}

// NewController construye el controlador.
func NewController(svc Services, io *IO, log *logger.Logger, pageSize int) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{svc: svc, io: io, log: log, pageSize: pageSize}
}

// Bootstrap siembra el administrador y carga el catálogo si está vacío.
func (c *Controller) Bootstrap() error {
	if _, err := c.svc.Admin.RegisterAdmin(); err != nil {
		return fmt.Errorf("registrar administrador: %w", err)
	}
	report, err := c.svc.Catalog.EnsureCatalog()
	if err != nil {
		return fmt.Errorf("cargar catálogo: %w", err)
	}
	if report != nil && report.Files > 0 {
		c.io.PrintMessage(fmt.Sprintf("Catálogo inicial importado: %d productos de %d archivos.", report.Stored, report.Files))
	}
	return nil
}

// Run atiende comandos hasta que el usuario sale, se agota la entrada o se cancela ctx.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var (
			more bool
			quit bool
		)
		switch {
		case c.user == nil:
			quit, more = c.mainStep(ctx)
		case c.user.IsAdmin():
			more = c.adminStep(ctx)
		default:
			more = c.customerStep(ctx)
		}
		if quit || !more {
			return nil
		}
	}
}

// dispatch ejecuta un comando con su propio id de correlación. Un error o pánico se
// registra y se informa, y la sesión continúa.
func (c *Controller) dispatch(source, command string, fn func() error) {
	log := c.log.Child("cmd_id", uuid.NewString())
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("command", command).Interface("panic", r).Msg("pánico en comando")
			c.io.PrintError(source, fmt.Sprintf("error inesperado: %v", r))
		}
	}()
	log.Debug().Str("command", command).Msg("comando recibido")
	if err := fn(); err != nil {
		log.Warn().Str("command", command).Err(err).Msg("comando fallido")
		c.io.PrintError(source, errorMessage(err))
	}
}

func (c *Controller) mainStep(ctx context.Context) (quit, more bool) {
	c.io.MainMenu()
	args, ok := c.io.ReadArgs("Elija una opción: ", 1)
	if !ok {
		return false, false
	}
	switch args[0] {
	case "1":
		creds, ok := c.io.ReadArgs("Usuario y contraseña (separados por espacio): ", 2)
		if !ok {
			return false, false
		}
		c.dispatch("Login", "login", func() error {
			u, err := c.svc.Auth.Login(creds[0], creds[1])
			if err != nil {
				return err
			}
			c.user = u
			c.io.PrintMessage("Bienvenido de nuevo, " + u.Name + "!")
			return nil
		})
	case "2":
		in, ok := c.io.ReadArgs("Usuario, contraseña, email y móvil (separados por espacio): ", 4)
		if !ok {
			return false, false
		}
		c.dispatch("Registro", "register", func() error {
			_, err := c.svc.Customers.Register(dto.RegisterCustomerRequest{
				Username: in[0], Password: in[1], Email: in[2], Mobile: in[3],
			})
			if err != nil {
				return err
			}
			c.io.PrintMessage("Registro completado. Ya puede iniciar sesión.")
			return nil
		})
	case "3":
		c.io.PrintMessage("Gracias por usar la tienda. ¡Hasta pronto!")
		return true, true
	default:
		c.io.PrintError("Menú principal", "opción inválida")
	}
	return false, true
}

func (c *Controller) adminStep(ctx context.Context) bool {
	c.io.AdminMenu()
	args, ok := c.io.ReadArgs("Opción y argumentos: ", 2)
	if !ok {
		return false
	}
	choice, param := args[0], args[1]
	const source = "Administración"

	switch choice {
	case "1":
		c.dispatch(source, "list_products", func() error { return c.showProducts(pageArg(param)) })
	case "2":
		c.dispatch(source, "list_customers", func() error {
			p, err := c.svc.Customers.List(pageArg(param), c.pageSize)
			if err != nil {
				return err
			}
			c.io.ShowList("clientes", dto.MapSlice(p.Items, formatUser), p.Page, p.TotalPages)
			return nil
		})
	case "3":
		c.dispatch(source, "list_orders", func() error {
			p, err := c.svc.Orders.ListAll(pageArg(param), c.pageSize)
			if err != nil {
				return err
			}
			c.io.ShowList("pedidos", dto.MapSlice(p.Items, formatOrder), p.Page, p.TotalPages)
			return nil
		})
	case "4":
		c.dispatch(source, "generate_test_data", func() error {
			c.io.PrintMessage("Generando datos de prueba...")
			r, err := c.svc.TestData.Generate(ctx)
			if err != nil {
				return err
			}
			c.io.PrintMessage(fmt.Sprintf("Datos de prueba generados: %d clientes, %d pedidos.", len(r.Customers), r.Orders))
			return nil
		})
	case "5":
		c.dispatch(source, "generate_figures", func() error {
			paths, err := c.svc.Analytics.GenerateAll(ctx)
			if err != nil {
				return err
			}
			c.io.PrintMessage(fmt.Sprintf("%d figuras generadas.", len(paths)))
			return nil
		})
	case "6":
		confirm, ok := c.io.ReadArgs(fmt.Sprintf("Escriba '%s' para borrar clientes, productos y pedidos: ", ConfirmWord), 1)
		if !ok {
			return false
		}
		if confirm[0] != ConfirmWord {
			c.io.PrintMessage("Borrado cancelado.")
			break
		}
		c.dispatch(source, "delete_all", func() error {
			if _, err := c.svc.Customers.DeleteAll(); err != nil {
				return err
			}
			if err := c.svc.Products.DeleteAll(); err != nil {
				return err
			}
			if err := c.svc.Orders.DeleteAll(); err != nil {
				return err
			}
			c.io.PrintMessage("Se borraron todos los clientes, productos y pedidos.")
			return nil
		})
	case "7":
		c.dispatch(source, "delete_customer", func() error {
			if err := c.svc.Customers.Delete(param); err != nil {
				return err
			}
			c.io.PrintMessage("Cliente eliminado.")
			return nil
		})
	case "8":
		c.dispatch(source, "delete_product", func() error {
			if err := c.svc.Products.Delete(param); err != nil {
				return err
			}
			c.io.PrintMessage("Producto eliminado.")
			return nil
		})
	case "9":
		c.dispatch(source, "delete_order", func() error {
			if err := c.svc.Orders.Delete(param); err != nil {
				return err
			}
			c.io.PrintMessage("Pedido eliminado.")
			return nil
		})
	case "10":
		c.dispatch(source, "ingest_catalog", func() error {
			r, err := c.svc.Catalog.Ingest()
			if err != nil {
				return err
			}
			c.io.PrintMessage(fmt.Sprintf("Catálogo importado: %d productos (%d duplicados, %d filas sin id).", r.Stored, r.Duplicates, r.Skipped))
			return nil
		})
	case "11":
		c.logout()
	default:
		c.io.PrintError(source, "opción inválida")
	}
	return true
}

func (c *Controller) customerStep(ctx context.Context) bool {
	c.io.CustomerMenu()
	args, ok := c.io.ReadArgs("Opción y argumentos: ", 3)
	if !ok {
		return false
	}
	choice, p1, p2 := args[0], args[1], args[2]
	const source = "Cliente"
	me := c.user.ID

	switch choice {
	case "1":
		c.dispatch(source, "show_profile", func() error {
			u, err := c.svc.Customers.Get(me)
			if err != nil {
				return err
			}
			c.io.PrintObject(formatUser(u))
			return nil
		})
	case "2":
		c.dispatch(source, "update_profile", func() error {
			if p1 == "" || p2 == "" {
				c.io.PrintError(source, "indique campo y valor (ej. '2 email nuevo@correo.com')")
				return nil
			}
			if err := c.svc.Customers.UpdateProfile(dto.UpdateProfileRequest{CustomerID: me, Field: p1, Value: p2}); err != nil {
				return err
			}
			c.io.PrintMessage("Perfil actualizado.")
			return nil
		})
	case "3":
		c.dispatch(source, "list_products", func() error {
			if p1 == "" || isPage(p1) {
				return c.showProducts(pageArg(p1))
			}
			found, err := c.svc.Products.Search(p1)
			if err != nil {
				return err
			}
			c.io.ShowList(fmt.Sprintf("productos que contienen '%s'", p1), dto.MapSlice(found, formatProduct), 1, 1)
			return nil
		})
	case "4":
		c.dispatch(source, "show_product", func() error {
			p, err := c.svc.Products.Get(p1)
			if err != nil {
				return err
			}
			c.io.PrintObject(formatProduct(p))
			return nil
		})
	case "5":
		c.dispatch(source, "purchase", func() error {
			o, err := c.svc.Orders.Create(me, p1, nil)
			if err != nil {
				return err
			}
			c.io.PrintMessage("Pedido creado: " + o.ID)
			return nil
		})
	case "6":
		c.dispatch(source, "order_history", func() error {
			p, err := c.svc.Orders.ListByCustomer(me, pageArg(p1), c.pageSize)
			if err != nil {
				return err
			}
			c.io.ShowList("pedidos", dto.MapSlice(p.Items, formatOrder), p.Page, p.TotalPages)
			return nil
		})
	case "7":
		c.dispatch(source, "consumption_figure", func() error {
			path, err := c.svc.Analytics.GenerateCustomer(ctx, me)
			if err != nil {
				return err
			}
			if path == "" {
				c.io.PrintMessage("No hay pedidos para generar la figura.")
				return nil
			}
			c.io.PrintMessage("Figura guardada en " + path)
			return nil
		})
	case "8":
		c.logout()
	default:
		c.io.PrintError(source, "opción inválida")
	}
	return true
}

func (c *Controller) showProducts(page int) error {
	p, err := c.svc.Products.List(page, c.pageSize)
	if err != nil {
		return err
	}
	c.io.ShowList("productos", dto.MapSlice(p.Items, formatProduct), p.Page, p.TotalPages)
	return nil
}

func (c *Controller) logout() {
	c.log.Info().Str("user_id", c.user.ID).Msg("sesión cerrada")
	c.user = nil
	c.io.PrintMessage("Sesión cerrada.")
}

// pageArg interpreta el número de página; vacío o no numérico es la página 1.
func pageArg(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return n
}

func isPage(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}
