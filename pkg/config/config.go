package config

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	Storage  StorageConfig
	Admin    AdminConfig
	TestData TestDataConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
	PageSize int
}

// StorageConfig rutas de los archivos planos y directorios de trabajo.
// Las rutas vacías se derivan de DataDir.
type StorageConfig struct {
	DataDir           string
	UsersFile         string
	ProductsFile      string
	OrdersFile        string
	FigureDir         string
	ProductSourceGlob string // ej. data/product/*.csv
}

// AdminConfig credenciales del administrador sembrado al arrancar.
type AdminConfig struct {
	Username string
	Password string
}

// TestDataConfig parámetros del generador de datos sintéticos.
type TestDataConfig struct {
	Customers int
	MinOrders int
	MaxOrders int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DATA_DIR, ADMIN_USERNAME, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	dataDir := getString(v, "DATA_DIR", "data")
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "tienda-cli"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
			PageSize: getInt(v, "PAGE_SIZE", 10),
		},
		Storage: StorageConfig{
			DataDir:           dataDir,
			UsersFile:         getString(v, "USERS_FILE", ""),
			ProductsFile:      getString(v, "PRODUCTS_FILE", ""),
			OrdersFile:        getString(v, "ORDERS_FILE", ""),
			FigureDir:         getString(v, "FIGURE_DIR", ""),
			ProductSourceGlob: getString(v, "PRODUCT_SOURCE_GLOB", ""),
		},
		Admin: AdminConfig{
			Username: getString(v, "ADMIN_USERNAME", "admin"),
			Password: getString(v, "ADMIN_PASSWORD", "admin_password1"),
		},
		TestData: TestDataConfig{
			Customers: getInt(v, "TESTDATA_CUSTOMERS", 10),
			MinOrders: getInt(v, "TESTDATA_MIN_ORDERS", 50),
			MaxOrders: getInt(v, "TESTDATA_MAX_ORDERS", 200),
		},
	}
	cfg.Storage.applyDefaults()
	if cfg.App.PageSize <= 0 {
		cfg.App.PageSize = 10
	}
	if cfg.TestData.MaxOrders < cfg.TestData.MinOrders {
		cfg.TestData.MaxOrders = cfg.TestData.MinOrders
	}
	return cfg
}

func (s *StorageConfig) applyDefaults() {
	if s.UsersFile == "" {
		s.UsersFile = filepath.Join(s.DataDir, "users.txt")
	}
	if s.ProductsFile == "" {
		s.ProductsFile = filepath.Join(s.DataDir, "products.txt")
	}
	if s.OrdersFile == "" {
		s.OrdersFile = filepath.Join(s.DataDir, "orders.txt")
	}
	if s.FigureDir == "" {
		s.FigureDir = filepath.Join(s.DataDir, "figure")
	}
	if s.ProductSourceGlob == "" {
		s.ProductSourceGlob = filepath.Join(s.DataDir, "product", "*.csv")
	}
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
