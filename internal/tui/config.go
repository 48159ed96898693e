package tui

import (
	"github.com/pennyflow/pennyflow/internal/api"
	"github.com/pennyflow/pennyflow/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Client      *api.Client
	Theme       themes.Theme
	TrendMonths int
	RecentLimit int
	Width       int
	Height      int
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:       themes.Default,
		TrendMonths: 6,
		RecentLimit: 5,
		Width:       100,
		Height:      30,
	}
}

// normalize fills gaps in a caller-supplied configuration.
func (c Config) normalize() Config {
	def := defaultConfig()
	if c.TrendMonths <= 0 {
		c.TrendMonths = def.TrendMonths
	}
	if c.RecentLimit <= 0 {
		c.RecentLimit = def.RecentLimit
	}
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	return c
}
