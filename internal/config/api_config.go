package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type APIConfig struct {
	Port           int     `mapstructure:"port"`
	MetricsPort    int     `mapstructure:"metrics_port"`
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
}

func (config APIConfig) validate() error {

	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("invalid port: %d", config.Port)
	}

	if config.MetricsPort <= 0 || config.MetricsPort > 65535 {
		return fmt.Errorf("invalid metrics port: %d", config.MetricsPort)
	}

	if config.RateLimitRPS <= 0 {
		return fmt.Errorf("rate limit rps must be positive")
	}

	return nil
}

func (config APIConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("api.port", "PORT"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("api.metrics_port", "METRICS_PORT"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
