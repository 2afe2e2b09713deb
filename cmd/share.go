package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Bitlatte/tripcard/internal/dom"
	"github.com/Bitlatte/tripcard/internal/share"
	"github.com/Bitlatte/tripcard/internal/site"
)

// shareCmd represents the share command
var shareCmd = &cobra.Command{
	Use:       "share <wechat|qq|copy>",
	Short:     "Shares the page link",
	Long:      `The share command runs the page's share menu against the system clipboard and browser. wechat prints the QR code link, qq opens the QQ share page, and copy puts the page link on the clipboard, prompting on stdin when the clipboard is unavailable.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(share.TargetWechat), string(share.TargetQQ), string(share.TargetCopy)},
	RunE: func(cmd *cobra.Command, args []string) error {
		target := share.Target(args[0])
		if appConfig.SiteURL == "" {
			return fmt.Errorf("siteURL is not configured")
		}

		opts := siteOptions(appConfig, logger)
		opts.Weather = nil
		opts.Share.Clipboard = share.SystemClipboard{}
		opts.Share.Opener = share.BrowserOpener{}
		opts.Share.Prompter = share.StreamPrompter{In: os.Stdin, Out: cmd.OutOrStdout()}

		page, err := site.Bootstrap(cmd.Context(), opts)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		page.Share.Handle(cmd.Context(), target)
		switch target {
		case share.TargetWechat:
			fmt.Fprintln(out, dom.Attr(page.Doc.GetElementByID("wechatQRImage"), "src"))
		case share.TargetQQ:
			fmt.Fprintln(out, share.QQShareURL(page.Share.Payload()))
		default:
			btn := page.Doc.GetElementByID("btnShare")
			if dom.Text(btn) == share.CopiedLabel {
				fmt.Fprintln(out, share.CopiedLabel)
			}
			// Let the button label restore before exiting.
			return page.Doc.Drain(cmd.Context())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
}
