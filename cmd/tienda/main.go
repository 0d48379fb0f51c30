package main

import (
	"context"
	"errors"
	"os"

	"go.uber.org/fx"

	"github.com/jhoicas/tienda-cli/internal/application/admin"
	"github.com/jhoicas/tienda-cli/internal/application/analytics"
	"github.com/jhoicas/tienda-cli/internal/application/auth"
	appcatalog "github.com/jhoicas/tienda-cli/internal/application/catalog"
	"github.com/jhoicas/tienda-cli/internal/application/customer"
	"github.com/jhoicas/tienda-cli/internal/application/order"
	"github.com/jhoicas/tienda-cli/internal/application/product"
	"github.com/jhoicas/tienda-cli/internal/application/testdata"
	"github.com/jhoicas/tienda-cli/internal/domain/identity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	infracatalog "github.com/jhoicas/tienda-cli/internal/infrastructure/catalog"
	"github.com/jhoicas/tienda-cli/internal/infrastructure/flatfile"
	infrapdf "github.com/jhoicas/tienda-cli/internal/infrastructure/pdf"
	"github.com/jhoicas/tienda-cli/internal/interfaces/console"
	"github.com/jhoicas/tienda-cli/pkg/config"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

type servicesParams struct {
	fx.In

	Auth      *auth.AuthUseCase
	Admin     *admin.AdminUseCase
	Customers *customer.CustomerUseCase
	Products  *product.ProductUseCase
	Orders    *order.OrderUseCase
	Catalog   *appcatalog.CatalogUseCase
	Analytics *analytics.AnalyticsUseCase
	TestData  *testdata.TestDataUseCase
}

func main() {
	fx.New(
		fx.NopLogger,
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectConsole(),
		fx.Invoke(runConsole),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.Load,
		newLogger,
		func() identity.RandSource { return identity.DefaultRand() },
		identity.NewObfuscator,
		identity.NewIDGenerator,
		identity.NewStructValidator,
	)
}

func newLogger(cfg *config.Config) *logger.Logger {
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_dir", cfg.Storage.DataDir).
		Msg("iniciando aplicación")
	return log
}

func injectRepo() fx.Option {
	return fx.Provide(
		func(cfg *config.Config, log *logger.Logger) repository.UserRepository {
			return flatfile.NewUserRepository(cfg.Storage.UsersFile, log)
		},
		func(cfg *config.Config, log *logger.Logger) repository.ProductRepository {
			return flatfile.NewProductRepository(cfg.Storage.ProductsFile, log)
		},
		func(cfg *config.Config, log *logger.Logger) repository.OrderRepository {
			return flatfile.NewOrderRepository(cfg.Storage.OrdersFile, log)
		},
		func(cfg *config.Config) appcatalog.ProductSource {
			return infracatalog.NewCSVSource(cfg.Storage.ProductSourceGlob)
		},
		func(cfg *config.Config) analytics.ChartRenderer {
			return infrapdf.NewChartRenderer(cfg.Storage.FigureDir)
		},
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		auth.NewAuthUseCase,
		customer.NewCustomerUseCase,
		product.NewProductUseCase,
		order.NewOrderUseCase,
		appcatalog.NewCatalogUseCase,
		analytics.NewAnalyticsUseCase,
		func(cfg *config.Config) admin.Credentials {
			return admin.Credentials{Username: cfg.Admin.Username, Password: cfg.Admin.Password}
		},
		admin.NewAdminUseCase,
		func(cfg *config.Config) testdata.Options {
			return testdata.Options{
				Customers: cfg.TestData.Customers,
				MinOrders: cfg.TestData.MinOrders,
				MaxOrders: cfg.TestData.MaxOrders,
			}
		},
		testdata.NewTestDataUseCase,
	)
}

func injectConsole() fx.Option {
	return fx.Provide(
		func(p servicesParams) console.Services {
			return console.Services{
				Auth:      p.Auth,
				Admin:     p.Admin,
				Customers: p.Customers,
				Products:  p.Products,
				Orders:    p.Orders,
				Catalog:   p.Catalog,
				Analytics: p.Analytics,
				TestData:  p.TestData,
			}
		},
		func() *console.IO { return console.NewIO(os.Stdin, os.Stdout) },
		func(svc console.Services, io *console.IO, log *logger.Logger, cfg *config.Config) *console.Controller {
			return console.NewController(svc, io, log, cfg.App.PageSize)
		},
	)
}

// runConsole siembra datos iniciales y atiende la consola en segundo plano; al salir
// el usuario se detiene la aplicación.
func runConsole(lc fx.Lifecycle, sd fx.Shutdowner, ctrl *console.Controller, log *logger.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := ctrl.Bootstrap(); err != nil {
				log.Error().Err(err).Msg("arranque")
				return err
			}
			go func() {
				if err := ctrl.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					log.Error().Err(err).Msg("consola")
				}
				_ = sd.Shutdown()
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
