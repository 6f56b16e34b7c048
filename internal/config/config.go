package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	LogMode bool   `mapstructure:"log_mode"`
}

type AuthConfig struct {
	// Password is the single shared secret gating every protected
	// endpoint. The compiled-in default is insecure and exists only so
	// a fresh checkout starts; always override it in deployment.
	Password string `mapstructure:"password"`
}

type WebConfig struct {
	StaticDir string `mapstructure:"static_dir"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Web      WebConfig      `mapstructure:"web"`
}

// InsecureDefaultPassword is the fallback credential used when neither
// config file nor environment provides one.
const InsecureDefaultPassword = "admin123"

var (
	appConfig *Config
	once      sync.Once
)

// Load loads configuration from the given file path (e.g. "config.yaml").
// A missing file is not an error: compiled-in defaults apply, overridable
// through the environment (WM_* prefixed keys, plus the legacy PORT,
// DB_PATH and APP_PASSWORD names).
func Load(path string) (*Config, error) {
	var err error
	once.Do(func() {
		v := viper.New()

		v.SetDefault("server.address", "0.0.0.0")
		v.SetDefault("server.port", 5000)
		v.SetDefault("server.mode", "release")
		v.SetDefault("database.path", "data/wealth.db")
		v.SetDefault("database.log_mode", false)
		v.SetDefault("auth.password", InsecureDefaultPassword)
		v.SetDefault("web.static_dir", "web/static")

		if path == "" {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(".")
		} else {
			v.SetConfigFile(path)
		}

		// environment overrides, e.g. WM_SERVER_PORT=9000
		v.SetEnvPrefix("WM")
		v.AutomaticEnv()
		_ = v.BindEnv("server.port", "WM_SERVER_PORT", "PORT")
		_ = v.BindEnv("database.path", "WM_DATABASE_PATH", "DB_PATH")
		_ = v.BindEnv("auth.password", "WM_AUTH_PASSWORD", "APP_PASSWORD")

		if err = v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || os.IsNotExist(err) {
				err = nil // run on defaults
			} else {
				err = fmt.Errorf("read config: %w", err)
				return
			}
		}

		var c Config
		if err = v.Unmarshal(&c); err != nil {
			err = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		appConfig = &c
	})

	if err != nil {
		return nil, err
	}
	return appConfig, nil
}

// Get returns the loaded global configuration.
// Call Load() once at application startup.
func Get() *Config {
	return appConfig
}
