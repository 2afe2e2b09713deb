// Package share implements the share menu: native share on mobile, a QR
// modal for WeChat, a QQ share link, and clipboard copy with a prompt
// fallback.
package share

import (
	"context"
	"errors"
	"net/url"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/Bitlatte/tripcard/internal/dom"
)

// Target names a share destination as found in data-share attributes.
type Target string

const (
	TargetWechat Target = "wechat"
	TargetQQ     Target = "qq"
	TargetCopy   Target = "copy"
)

const (
	CopiedLabel   = "链接已复制"
	PromptMessage = "请复制链接："
	CopiedFor     = 1400 * time.Millisecond

	DefaultTitle = "行程分享"
	DefaultText  = "云南行程分享"
)

// ErrClipboardUnavailable is returned by clipboards that cannot be used.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Payload is what gets shared.
type Payload struct {
	Title string
	Text  string
	URL   string
}

// NativeSharer is the platform share sheet.
type NativeSharer interface {
	Share(ctx context.Context, p Payload) error
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Opener opens a URL in a new tab or window.
type Opener interface {
	Open(url string) error
}

// Prompter shows a blocking dialog with a pre-filled value.
type Prompter interface {
	Prompt(message, value string)
}

// Options carries the capabilities available to the controller. Nil
// capabilities count as unavailable.
type Options struct {
	Native    NativeSharer
	Clipboard Clipboard
	Opener    Opener
	Prompter  Prompter
	UserAgent string
	Logger    *zap.Logger
}

// Controller owns the share button, menu and WeChat modal of one document.
type Controller struct {
	doc     *dom.Document
	payload Payload
	opts    Options
	log     *zap.Logger

	button *html.Node
	menu   *html.Node
	modal  *html.Node
	qrImg  *html.Node
}

var mobileUA = regexp.MustCompile(`(?i)android|iphone|ipad|ipod`)

// IsMobile reports whether a user agent belongs to a phone or tablet.
func IsMobile(userAgent string) bool {
	return mobileUA.MatchString(userAgent)
}

// QRCodeURL is the image URL of a QR code for link.
func QRCodeURL(link string) string {
	return "https://api.qrserver.com/v1/create-qr-code/?size=220x220&data=" + encodeURIComponent(link)
}

// QQShareURL is the QQ share widget URL for p.
func QQShareURL(p Payload) string {
	return "https://connect.qq.com/widget/shareqq/index.html?url=" + encodeURIComponent(p.URL) +
		"&title=" + encodeURIComponent(p.Title) +
		"&desc=" + encodeURIComponent(p.Text)
}

// uriComponentEscaper undoes the QueryEscape choices that differ from
// browser URI component encoding: spaces are %20 and !'()* stay literal.
var uriComponentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeURIComponent(s string) string {
	return uriComponentEscaper.Replace(url.QueryEscape(s))
}

// New binds a controller to doc and wires its listeners. Missing elements
// turn the matching feature off.
func New(doc *dom.Document, p Payload, opts Options) *Controller {
	if p.Title == "" {
		p.Title = DefaultTitle
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	c := &Controller{
		doc:     doc,
		payload: p,
		opts:    opts,
		log:     log,
		button:  doc.GetElementByID("btnShare"),
		menu:    doc.GetElementByID("shareMenu"),
		modal:   doc.GetElementByID("wechatModal"),
		qrImg:   doc.GetElementByID("wechatQRImage"),
	}
	if c.button != nil && dom.Attr(c.button, "data-default-text") == "" {
		dom.SetAttr(c.button, "data-default-text", dom.Text(c.button))
	}
	c.wireMenu()
	c.wireModal()
	return c
}

func (c *Controller) wireMenu() {
	if c.button == nil || c.menu == nil {
		return
	}
	c.doc.AddEventListener(c.button, "click", func(ev *dom.Event) {
		ev.StopPropagation()
		dom.ToggleClass(c.menu, "open")
	})
	c.doc.AddEventListener(c.doc.Root(), "click", func(ev *dom.Event) {
		if !c.doc.Contains(c.menu, ev.Target) && ev.Target != c.button {
			dom.RemoveClass(c.menu, "open")
		}
	})
	for _, btn := range c.doc.QueryAll(c.menu, "button[data-share]") {
		target := Target(dom.Attr(btn, "data-share"))
		c.doc.AddEventListener(btn, "click", func(*dom.Event) {
			c.Handle(context.Background(), target)
			dom.RemoveClass(c.menu, "open")
		})
	}
}

func (c *Controller) wireModal() {
	if c.modal == nil {
		return
	}
	hide := func(*dom.Event) { dom.RemoveClass(c.modal, "show") }
	if closeBtn := c.doc.GetElementByID("btnCloseWechat"); closeBtn != nil {
		c.doc.AddEventListener(closeBtn, "click", hide)
	}
	c.doc.AddEventListener(c.modal, "click", func(ev *dom.Event) {
		if ev.Target == c.modal {
			hide(ev)
		}
	})
}

// Payload returns the payload shared by this controller.
func (c *Controller) Payload() Payload { return c.payload }

// Handle runs the share chain for target: native share where possible, then
// the platform-specific fallback.
func (c *Controller) Handle(ctx context.Context, target Target) {
	if target != TargetCopy && c.opts.Native != nil && IsMobile(c.opts.UserAgent) {
		err := c.opts.Native.Share(ctx, c.payload)
		if err == nil {
			return
		}
		c.log.Warn("native share cancelled", zap.Error(err))
	}

	switch target {
	case TargetWechat:
		c.ShowWechatModal()
	case TargetQQ:
		if c.opts.Opener == nil {
			c.log.Warn("no opener for qq share")
			return
		}
		if err := c.opts.Opener.Open(QQShareURL(c.payload)); err != nil {
			c.log.Warn("open qq share", zap.Error(err))
		}
	default:
		c.CopyLink(ctx)
	}
}

// ShowWechatModal points the modal image at a QR code for the page link and
// shows the modal.
func (c *Controller) ShowWechatModal() {
	if c.modal == nil || c.qrImg == nil {
		return
	}
	dom.SetAttr(c.qrImg, "src", QRCodeURL(c.payload.URL))
	dom.AddClass(c.modal, "show")
}

// CopyLink copies the page link, falling back to the prompter on failure.
func (c *Controller) CopyLink(ctx context.Context) {
	err := ErrClipboardUnavailable
	if c.opts.Clipboard != nil {
		err = c.opts.Clipboard.WriteText(ctx, c.payload.URL)
	}
	if err == nil {
		c.showCopied()
		return
	}
	c.log.Debug("clipboard copy failed", zap.Error(err))
	if c.opts.Prompter != nil {
		c.opts.Prompter.Prompt(PromptMessage, c.payload.URL)
	}
}

func (c *Controller) showCopied() {
	if c.button == nil {
		return
	}
	if dom.Attr(c.button, "data-default-text") == "" {
		dom.SetAttr(c.button, "data-default-text", dom.Text(c.button))
	}
	original := dom.Attr(c.button, "data-default-text")
	c.doc.SetText(c.button, CopiedLabel)
	c.doc.SetTimeout(CopiedFor, func() {
		c.doc.SetText(c.button, original)
	})
}
