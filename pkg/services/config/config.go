package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultAddr            = ":8080"
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxContentBytes = 50 << 20
)

// Config holds the service settings. Every field has a working default,
// so the YAML file is optional.
type Config struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxContentBytes int64         `mapstructure:"max_content_bytes"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("addr", defaultAddr)
	v.SetDefault("shutdown_timeout", defaultShutdownTimeout)
	v.SetDefault("max_content_bytes", defaultMaxContentBytes)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
