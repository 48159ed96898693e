package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennyflow/pennyflow/internal/api"
	"github.com/pennyflow/pennyflow/internal/config"
	"github.com/pennyflow/pennyflow/internal/export"
	"github.com/pennyflow/pennyflow/internal/model"
)

func exportCmd() *cobra.Command {
	var (
		output    string
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download transactions as CSV",
		Long: `Download the transaction history as a CSV file.

Without --output the CSV is written to stdout, so it can be piped
straight into other tools.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, d := range []string{startDate, endDate} {
				if d == "" {
					continue
				}
				if _, err := model.ParseDate(d); err != nil {
					return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", d)
				}
			}

			settings := config.Load()
			client := api.NewClient(settings.BaseURL, settings.Timeout)

			_, err := export.Run(cmd.Context(), client, export.Options{
				OutputPath: config.ExpandPath(output),
				Range:      api.DateRange{StartDate: startDate, EndDate: endDate},
				Progress:   true,
			})
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the CSV to this file instead of stdout")
	cmd.Flags().StringVar(&startDate, "start-date", "", "only include transactions on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "only include transactions on or before this date (YYYY-MM-DD)")

	return cmd
}
