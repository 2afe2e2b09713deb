// Package printer renders a page to PDF in headless Chrome.
package printer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// ErrNoURL is returned when there is nothing to print.
var ErrNoURL = errors.New("no page url to print")

// Options control the browser and the PDF layout.
type Options struct {
	// ExecPath overrides the Chrome binary; empty means auto-detect.
	ExecPath string
	Timeout  time.Duration
	// Landscape and Background mirror the browser print dialog.
	Landscape  bool
	Background bool
	Logger     *zap.Logger
}

// DefaultOptions print portrait A4 with backgrounds within a minute.
var DefaultOptions = Options{Timeout: time.Minute, Background: true}

// A4 in inches.
const (
	paperWidth  = 8.27
	paperHeight = 11.69
)

// Params is the Page.printToPDF call made for opts.
func Params(opts Options) *page.PrintToPDFParams {
	return page.PrintToPDF().
		WithLandscape(opts.Landscape).
		WithPrintBackground(opts.Background).
		WithPaperWidth(paperWidth).
		WithPaperHeight(paperHeight).
		WithPreferCSSPageSize(true)
}

// Print loads url and returns the page as PDF bytes.
func Print(ctx context.Context, url string, opts Options) ([]byte, error) {
	if url == "" {
		return nil, ErrNoURL
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.WindowSize(1280, 900),
	)
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	sugar := log.Sugar()
	tabCtx, cancelTab := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(sugar.Debugf),
		chromedp.WithErrorf(sugar.Errorf),
	)
	defer cancelTab()

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		tabCtx, cancel = context.WithTimeout(tabCtx, opts.Timeout)
		defer cancel()
	}

	var pdf []byte
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := Params(opts).Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print %s: %w", url, err)
	}
	log.Info("page printed", zap.String("url", url), zap.Int("bytes", len(pdf)))
	return pdf, nil
}

// PrintToFile prints url into path.
func PrintToFile(ctx context.Context, url, path string, opts Options) error {
	pdf, err := Print(ctx, url, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
