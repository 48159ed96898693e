// Package config resolves application settings from the config file,
// environment, and flags via viper.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Settings is the resolved client configuration.
type Settings struct {
	BaseURL     string
	Theme       string
	Timeout     time.Duration
	TrendMonths int
	RecentLimit int
}

// SetDefaults registers the default value for every settings key. Call once
// before reading config so partial config files resolve cleanly.
func SetDefaults() {
	viper.SetDefault("api.base_url", "http://localhost:5000")
	viper.SetDefault("api.timeout", "30s")
	viper.SetDefault("dashboard.trend_months", 6)
	viper.SetDefault("dashboard.recent_limit", 5)
	viper.SetDefault("dashboard.theme", "default")
}

// Load reads the resolved settings out of viper.
func Load() Settings {
	return Settings{
		BaseURL:     viper.GetString("api.base_url"),
		Theme:       viper.GetString("dashboard.theme"),
		Timeout:     viper.GetDuration("api.timeout"),
		TrendMonths: viper.GetInt("dashboard.trend_months"),
		RecentLimit: viper.GetInt("dashboard.recent_limit"),
	}
}
