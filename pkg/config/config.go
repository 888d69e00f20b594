package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del cliente (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	Camera  CameraConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig configuración del servicio remoto de movimientos.
type APIConfig struct {
	BaseURL        string // ej. http://192.168.5.113:3000
	TimeoutSeconds int
}

// Timeout devuelve el timeout de red como time.Duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SessionConfig ubicación del almacén clave-valor de sesión del dispositivo.
type SessionConfig struct {
	Path string // archivo JSON con userName/userProfile
}

// CameraConfig origen de las capturas fotográficas (spool local).
type CameraConfig struct {
	Dir string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, etc.
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
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "movilog"),
		},
		API: APIConfig{
			BaseURL:        getString(v, "API_BASE_URL", "http://localhost:3000"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 30),
		},
		Session: SessionConfig{
			Path: getString(v, "SESSION_PATH", defaultSessionPath()),
		},
		Camera: CameraConfig{
			Dir: getString(v, "CAMERA_DIR", defaultCameraDir()),
		},
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: API_BASE_URL vacío")
	}

	return cfg, nil
}

// defaultSessionPath resuelve ~/.config/movilog/session.json (o el directorio
// de config del sistema); si no hay home, cae al directorio de trabajo.
func defaultSessionPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(base, "movilog", "session.json")
}

func defaultCameraDir() string {
	base, err := os.UserHomeDir()
	if err != nil {
		return "capturas"
	}
	return filepath.Join(base, "movilog", "capturas")
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
