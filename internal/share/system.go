package share

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/cli/browser"
)

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(_ context.Context, text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// BrowserOpener opens URLs in the user's default browser.
type BrowserOpener struct{}

func (BrowserOpener) Open(url string) error {
	return browser.OpenURL(url)
}

// StreamPrompter prints the message and value, then blocks until a line is
// read (or input ends).
type StreamPrompter struct {
	In  io.Reader
	Out io.Writer
}

func (p StreamPrompter) Prompt(message, value string) {
	fmt.Fprintf(p.Out, "%s%s\n", message, value)
	if p.In == nil {
		return
	}
	_, _ = bufio.NewReader(p.In).ReadString('\n')
}
