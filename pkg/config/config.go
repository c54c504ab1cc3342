package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la consola (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	API     APIConfig
	Session SessionConfig
	MockAPI MockAPIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP de la consola.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIConfig apunta a la API REST remota que es dueña de los datos.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig cookie donde vive el token de sesión del navegador.
type SessionConfig struct {
	CookieName string
	Secure     bool
}

// MockAPIConfig configuración del servidor de desarrollo que imita la API remota.
type MockAPIConfig struct {
	Host            string
	Port            int
	JWTSecret       string
	TokenTTLMinutes int
}

// Addr devuelve la dirección de escucha del mock.
func (c MockAPIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_URL, HTTP_PORT, SESSION_COOKIE_NAME, etc.
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

	cfg := FromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromViper construye la configuración a partir de una instancia ya cargada.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "logistica-console"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		API: APIConfig{
			BaseURL: getString(v, "API_URL", "http://localhost:3000/api"),
			Timeout: time.Duration(getInt(v, "API_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Session: SessionConfig{
			CookieName: getString(v, "SESSION_COOKIE_NAME", "token"),
			Secure:     getBool(v, "SESSION_COOKIE_SECURE", false),
		},
		MockAPI: MockAPIConfig{
			Host:            getString(v, "MOCK_API_HOST", "0.0.0.0"),
			Port:            getInt(v, "MOCK_API_PORT", 3000),
			JWTSecret:       getString(v, "MOCK_JWT_SECRET", "dev-secret-no-usar-en-produccion"),
			TokenTTLMinutes: getInt(v, "MOCK_TOKEN_TTL_MINUTES", 60),
		},
	}
}

// Validate rechaza valores con los que la consola no puede arrancar.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("config: API_URL inválida: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("config: API_URL debe ser http(s), recibido %q", c.API.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("config: API_URL sin host: %q", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("config: API_TIMEOUT_SECONDS debe ser positivo")
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("config: SESSION_COOKIE_NAME vacío")
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
