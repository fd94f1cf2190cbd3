package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/at-ishikawa/dictd/internal/config"
)

// flagBinding maps a command line flag to a configuration key.
type flagBinding struct {
	key  string
	flag *pflag.Flag
}

func loadConfig(bindings ...flagBinding) (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	for _, binding := range bindings {
		if err := loader.Viper().BindPFlag(binding.key, binding.flag); err != nil {
			return nil, fmt.Errorf("failed to bind --%s flag: %w", binding.flag.Name, err)
		}
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
