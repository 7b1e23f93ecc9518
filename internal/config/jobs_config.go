package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type JobsConfig struct {
	CatalogSize          int `mapstructure:"catalog_size"`
	PageSize             int `mapstructure:"page_size"`
	RecentExpirationDays int `mapstructure:"recent_expiration_days"`
}

func (config JobsConfig) validate() error {

	if config.CatalogSize <= 0 {
		return fmt.Errorf("catalog size must be positive")
	}

	if config.PageSize <= 0 {
		return fmt.Errorf("page size must be positive")
	}

	if config.RecentExpirationDays <= 0 {
		return fmt.Errorf("recent expiration days must be positive")
	}

	return nil
}

func (config JobsConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("jobs.catalog_size", "CATALOG_SIZE")
}
