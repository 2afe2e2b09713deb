package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Bitlatte/tripcard/internal/config"
	"github.com/Bitlatte/tripcard/internal/site"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the itinerary page and its static snapshots",
	Long: `The build command loads the itinerary document and the Markdown notes,
renders them into the base layout, copies static assets from the static
directory, and writes index.html plus one snapshot per day filter and a
revealed moodboard into the configured output directory (default './public/').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuildProcess(cmd, appConfig)
	},
}

func runBuildProcess(cmd *cobra.Command, cfg config.Config) error {
	logger.Info("starting build",
		zap.String("dataSource", cfg.DataSource),
		zap.String("outputDir", cfg.OutputDir),
		zap.String("baseURL", cfg.BaseURL),
	)
	_, err := site.Build(cmd.Context(), siteOptions(cfg, logger))
	return err
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
