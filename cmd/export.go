package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Bitlatte/tripcard/internal/export"
	"github.com/Bitlatte/tripcard/internal/site"
)

var exportOut string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports the itinerary to an xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := site.Load(cmd.Context(), siteOptions(appConfig, logger))
		if err != nil {
			return err
		}
		if err := export.WriteFile(data, exportOut); err != nil {
			return err
		}
		logger.Info("itinerary exported", zap.String("path", exportOut), zap.Int("days", len(data.Itinerary)))
		fmt.Fprintln(cmd.OutOrStdout(), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "itinerary.xlsx", "Workbook to write")
	rootCmd.AddCommand(exportCmd)
}
