package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Catalog CatalogConfig
	UI      UIConfig
	Log     LogConfig
}

// CatalogConfig selects where the command catalog is read from.
type CatalogConfig struct {
	Path       string
	Source     string // "csv" or "sqlite"
	SQLitePath string `mapstructure:"sqlite_path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Wrap int
}

// LogConfig holds file-logger settings.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix GITAPP_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("catalog.path", "comandos.csv")
	v.SetDefault("catalog.source", "csv")
	v.SetDefault("catalog.sqlite_path", "comandos.db")
	v.SetDefault("ui.wrap", 80)
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "gitapp", "gitapp.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GITAPP_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "gitapp"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GITAPP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
