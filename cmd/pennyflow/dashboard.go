package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pennyflow/pennyflow/internal/api"
	"github.com/pennyflow/pennyflow/internal/config"
	"github.com/pennyflow/pennyflow/internal/tui"
	"github.com/pennyflow/pennyflow/internal/tui/themes"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDashboard(cmd.Context())
		},
	}
}

func runDashboard(ctx context.Context) error {
	settings := config.Load()

	return tui.Run(ctx, tui.Config{
		Client:      api.NewClient(settings.BaseURL, settings.Timeout),
		Theme:       themes.GetTheme(settings.Theme),
		TrendMonths: settings.TrendMonths,
		RecentLimit: settings.RecentLimit,
	})
}
