package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	// Database file path
	DBPath string `mapstructure:"db_path"`

	// HTTP settings
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`

	// Session cookie signing key
	SecretKey string `mapstructure:"secret_key"`

	// Optional SSL settings
	SSLCert string `mapstructure:"ssl_cert"`
	SSLKey  string `mapstructure:"ssl_key"`

	ConfigPath string
}

const (
	DefaultConfigPath = "watchlist.yml"
	DefaultDBPath     = "watchlist.sqlite3"
	DefaultHost       = "127.0.0.1"
	DefaultPort       = 5000
	DefaultSecretKey  = "dev"
)

// Load reads the configuration file and applies environment overrides
// (prefix WATCHLIST_). The config file is optional unless a path was
// passed explicitly; every key has a default.
func Load(configPath string) (*Config, error) {
	explicit := configPath != ""
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set defaults
	v.SetDefault("db_path", DefaultDBPath)
	v.SetDefault("host", DefaultHost)
	v.SetDefault("port", DefaultPort)
	v.SetDefault("secret_key", DefaultSecretKey)

	// Allow environment variable overrides
	v.AutomaticEnv()
	v.SetEnvPrefix("WATCHLIST")

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; everything has defaults.
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigPath = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}

	if c.SecretKey == "" {
		return fmt.Errorf("secret_key is required")
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}

	// Validate SSL config if provided
	if c.SSLCert != "" || c.SSLKey != "" {
		if c.SSLCert == "" || c.SSLKey == "" {
			return fmt.Errorf("both ssl_cert and ssl_key must be provided")
		}
		if _, err := os.Stat(c.SSLCert); os.IsNotExist(err) {
			return fmt.Errorf("ssl_cert file does not exist: %s", c.SSLCert)
		}
		if _, err := os.Stat(c.SSLKey); os.IsNotExist(err) {
			return fmt.Errorf("ssl_key file does not exist: %s", c.SSLKey)
		}
	}

	return nil
}

func (c *Config) IsDevMode() bool {
	return os.Getenv("WATCHLIST_DEV_MODE") == "1"
}
