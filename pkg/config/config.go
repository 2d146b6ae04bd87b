package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	Log  LogConfig
	HTTP HTTPConfig
	Tax  TaxConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel del logger estructurado.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// TaxConfig parámetros del cálculo de totales.
type TaxConfig struct {
	DefaultRoundingMethod string // round_per_line | round_globally; se usa si la petición no lo trae
	BatchWorkers          int    // documentos calculados en paralelo por lote
	MaxBatchSize          int    // documentos máximos por petición de lote
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, TAX_BATCH_WORKERS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "taxtotals"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Tax: TaxConfig{
			DefaultRoundingMethod: getString(v, "TAX_DEFAULT_ROUNDING_METHOD", "round_per_line"),
			BatchWorkers:          getInt(v, "TAX_BATCH_WORKERS", 4),
			MaxBatchSize:          getInt(v, "TAX_MAX_BATCH_SIZE", 100),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Tax.DefaultRoundingMethod {
	case "round_per_line", "round_globally":
	default:
		return fmt.Errorf("config: TAX_DEFAULT_ROUNDING_METHOD inválido: %q", c.Tax.DefaultRoundingMethod)
	}
	if c.Tax.BatchWorkers <= 0 {
		return fmt.Errorf("config: TAX_BATCH_WORKERS debe ser positivo (%d)", c.Tax.BatchWorkers)
	}
	if c.Tax.MaxBatchSize <= 0 {
		return fmt.Errorf("config: TAX_MAX_BATCH_SIZE debe ser positivo (%d)", c.Tax.MaxBatchSize)
	}
	return nil
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
