package cmd

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Bitlatte/tripcard/internal/printer"
	"github.com/Bitlatte/tripcard/internal/site"
)

var (
	printOut       string
	printDay       int
	printLandscape bool
	printChrome    string
)

// printCmd represents the print command
var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Builds the page and prints it to PDF",
	Long: `The print command builds the site, serves the output on a loopback
port and prints the page in headless Chrome. Use --day to print a single
day's snapshot.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := runBuildProcess(cmd, appConfig); err != nil {
			return err
		}

		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		srv := &http.Server{
			Handler:           newRouter(appConfig.OutputDir, appConfig.BaseURL),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() { _ = srv.Serve(ln) }()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		url := "http://" + ln.Addr().String() + normalizeBase(appConfig.BaseURL)
		if printDay > 0 {
			url += site.DayURL(printDay - 1)
		}

		opts := printer.DefaultOptions
		opts.Landscape = printLandscape
		opts.ExecPath = printChrome
		opts.Logger = logger.Named("printer")
		if err := printer.PrintToFile(ctx, url, printOut, opts); err != nil {
			return err
		}
		logger.Info("pdf written", zap.String("path", printOut))
		fmt.Fprintln(cmd.OutOrStdout(), printOut)
		return nil
	},
}

func init() {
	printCmd.Flags().StringVarP(&printOut, "out", "o", "itinerary.pdf", "PDF file to write")
	printCmd.Flags().IntVar(&printDay, "day", 0, "Print only day N (1-based)")
	printCmd.Flags().BoolVar(&printLandscape, "landscape", false, "Landscape paper orientation")
	printCmd.Flags().StringVar(&printChrome, "chrome", "", "Chrome executable (default: auto-detect)")
	rootCmd.AddCommand(printCmd)
}
