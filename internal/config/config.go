package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Seed   SeedConfig   `mapstructure:"seed"`
}

type ServerConfig struct {
	Address        string        `mapstructure:"address" validate:"required,hostname_port"`
	MaxConnections int           `mapstructure:"max_connections" validate:"gte=0"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout" validate:"gte=0"`
}

// SeedConfig lists the sources loaded into the dictionary at startup.
// Both are optional and nothing is written back to them.
type SeedConfig struct {
	File     string         `mapstructure:"file" validate:"omitempty,readable_file"`
	Database DatabaseConfig `mapstructure:"database"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port" validate:"omitempty,gte=1,lte=65535"`
	Database        string            `mapstructure:"database" validate:"required_with=Host"`
	Username        string            `mapstructure:"username" validate:"required_with=Host"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds" validate:"gte=0"`
}

// Enabled reports whether a database seed source is configured.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/dictd")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

// Viper exposes the underlying viper instance so that command line flags can be bound to keys.
func (loader *ConfigLoader) Viper() *viper.Viper {
	return loader.viper
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.address", ":7890")
	v.SetDefault("server.max_connections", 0)
	v.SetDefault("server.idle_timeout", 0)
	v.SetDefault("seed.file", "")
	v.SetDefault("seed.database.port", 3306)

	if err := v.BindEnv("server.address", "DICTD_ADDRESS"); err != nil {
		return nil, fmt.Errorf("failed to bind DICTD_ADDRESS environment variable: %w", err)
	}
	if err := v.BindEnv("seed.database.host", "DICTD_DB_HOST"); err != nil {
		return nil, fmt.Errorf("failed to bind DICTD_DB_HOST environment variable: %w", err)
	}
	// Bind database password to environment variable
	if err := v.BindEnv("seed.database.password", "DICTD_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DICTD_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validator.Struct() > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
