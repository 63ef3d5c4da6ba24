package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers de persistencia soportados (STORE_DRIVER).
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	Log   LogConfig
	Store StoreConfig
	DB    DBConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, production
	Name     string
	Locale   string // idioma para ordenar listados (BCP 47, ej. "es")
	Currency string // código ISO 4217 para mostrar totales
}

// LogConfig nivel de log: trace, debug, info, warn, error.
type LogConfig struct {
	Level string
}

// StoreConfig dónde y cómo se persisten las colecciones.
type StoreConfig struct {
	Driver       string // file, sqlite, postgres, memory
	Path         string // directorio (file) o archivo .db (sqlite)
	SeedDefaults bool   // poblar datos de ejemplo cuando una colección no existe
}

// DBConfig configuración de PostgreSQL (solo con STORE_DRIVER=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// Validate verifica que el driver sea conocido.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverFile, DriverSQLite, DriverPostgres, DriverMemory:
		return nil
	}
	return fmt.Errorf("STORE_DRIVER desconocido: %q", c.Store.Driver)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, STORE_DRIVER, STORE_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath(defaultDataDir())
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	driver := strings.ToLower(getString(v, "STORE_DRIVER", DriverFile))
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "production"),
			Name:     getString(v, "APP_NAME", "recetario"),
			Locale:   getString(v, "LOCALE", "es"),
			Currency: strings.ToUpper(getString(v, "CURRENCY", "EUR")),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "warn"),
		},
		Store: StoreConfig{
			Driver:       driver,
			Path:         getString(v, "STORE_PATH", defaultStorePath(driver)),
			SeedDefaults: getBool(v, "SEED_DEFAULTS", true),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "recetario"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaultDataDir directorio de datos del usuario (~/.recetario), o el actual si no hay HOME.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".recetario"
	}
	return filepath.Join(home, ".recetario")
}

func defaultStorePath(driver string) string {
	if driver == DriverSQLite {
		return filepath.Join(defaultDataDir(), "recetario.db")
	}
	return defaultDataDir()
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
		case string:
			n, err := strconv.Atoi(v.GetString(key))
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
