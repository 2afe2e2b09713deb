package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// weatherCmd represents the weather command
var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Resolves the current location and prints the weather widget",
	Long: `The weather command runs the same chain as the page's weather widget:
the configured device position, then the IP lookups, then reverse geocoding
and the Open-Meteo forecast. It prints the fields the widget would show.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newWeatherService(appConfig.Weather, logger)
		r := svc.Resolve(cmd.Context())
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, r.Status)
		if r.Location != "" {
			fmt.Fprintln(out, r.Location)
		}
		fmt.Fprintln(out, r.Temp)
		fmt.Fprintln(out, r.Meta)
		fmt.Fprintln(out, r.Tip)
		return r.Err
	},
}

func init() {
	rootCmd.AddCommand(weatherCmd)
}
