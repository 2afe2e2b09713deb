// Package site assembles the itinerary page: it loads the document, runs
// every renderer and widget against the layout, and writes static snapshots.
package site

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"github.com/Bitlatte/tripcard/internal/dom"
	"github.com/Bitlatte/tripcard/internal/hero"
	"github.com/Bitlatte/tripcard/internal/markup"
	"github.com/Bitlatte/tripcard/internal/model"
	"github.com/Bitlatte/tripcard/internal/moodboard"
	"github.com/Bitlatte/tripcard/internal/notes"
	"github.com/Bitlatte/tripcard/internal/render"
	"github.com/Bitlatte/tripcard/internal/share"
	"github.com/Bitlatte/tripcard/internal/weather"
)

// DefaultTitle is used when the document has no site title.
const DefaultTitle = "行程"

// Options configure one page build.
type Options struct {
	DataSource       string
	OutputDir        string
	BaseURL          string
	SiteURL          string
	LayoutsDir       string
	StaticDir        string
	NotesDir         string
	Params           map[string]interface{}
	MoodboardInitial int

	Rand       *rand.Rand
	HTTPClient *http.Client
	// Weather is optional; without it the widget keeps its layout text.
	Weather    *weather.Service
	Share      share.Options
	Logger     *zap.Logger
}

func (o Options) baseURL() string {
	if o.BaseURL == "" {
		return "/"
	}
	if !strings.HasSuffix(o.BaseURL, "/") {
		return o.BaseURL + "/"
	}
	return o.BaseURL
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Page is a fully wired page.
type Page struct {
	Doc     *dom.Document
	Data    *model.Document
	Hero    model.HeroVariant
	Share   *share.Controller
	Board   *moodboard.Board
	Weather weather.Report

	chips    *html.Node
	timeline *html.Node
}

// DayURL is the snapshot path of a single-day filter, relative to BaseURL.
func DayURL(day int) string {
	return "day/" + strconv.Itoa(day+1) + "/"
}

// Load reads the itinerary document and the Markdown notes concurrently and
// merges the notes into the advice sections.
func Load(ctx context.Context, opts Options) (*model.Document, error) {
	var (
		data  *model.Document
		extra notes.Sections
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data, err = model.Load(gctx, opts.HTTPClient, opts.DataSource)
		return err
	})
	g.Go(func() error {
		var err error
		extra, err = notes.LoadDir(opts.NotesDir, opts.logger())
		if err != nil {
			opts.logger().Warn("skipping markdown notes", zap.String("dir", opts.NotesDir), zap.Error(err))
			extra = notes.Sections{}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := *data
	merged.StayAdvice = append(append([]model.Note(nil), data.StayAdvice...), extra.Stay...)
	merged.PackingAdvice = append(append([]model.Note(nil), data.PackingAdvice...), extra.Packing...)
	return &merged, nil
}

// Bootstrap builds the page. When the document cannot be loaded the returned
// page holds the error panel and the error is returned alongside it.
func Bootstrap(ctx context.Context, opts Options) (*Page, error) {
	log := opts.logger()
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	tpl, err := loadLayout(opts.LayoutsDir)
	if err != nil {
		return nil, err
	}

	data, loadErr := Load(ctx, opts)
	pageData := model.PageData{
		SiteTitle: DefaultTitle,
		BaseURL:   opts.baseURL(),
		PageURL:   opts.SiteURL,
		Params:    opts.Params,
	}
	if data != nil && data.Site.Title != "" {
		pageData.SiteTitle = data.Site.Title
	}
	payload := share.Payload{
		Title: firstNonEmpty(pageData.SiteTitle, share.DefaultTitle),
		Text:  share.DefaultText,
		URL:   opts.SiteURL,
	}
	if data != nil {
		payload.Text = firstNonEmpty(data.Site.Subtitle, share.DefaultText)
	}
	pageData.QQShare = share.QQShareURL(payload)
	pageData.WechatQR = share.QRCodeURL(payload.URL)

	doc, err := newDocument(tpl, pageData)
	if err != nil {
		return nil, err
	}
	if loadErr != nil {
		log.Error("failed to load itinerary", zap.String("source", opts.DataSource), zap.Error(loadErr))
		ShowErrorPanel(doc, loadErr)
		return &Page{Doc: doc}, loadErr
	}

	p := &Page{Doc: doc, Data: data}
	p.Hero, _ = hero.Apply(doc, rng)

	doc.SetText(doc.GetElementByID("tripTitle"), firstNonEmpty(data.Site.Title, DefaultTitle))
	doc.SetText(doc.GetElementByID("tripSubtitle"), data.Site.Subtitle)
	setFooter(doc, data.Site.FooterNote, log)

	render.KV(doc, doc.GetElementByID("overview"), data.Overview)
	render.Notes(doc, doc.GetElementByID("stayAdvice"), data.StayAdvice)
	render.Notes(doc, doc.GetElementByID("packingAdvice"), data.PackingAdvice)

	p.timeline = doc.GetElementByID("timeline")
	p.chips = doc.GetElementByID("chips")
	render.Timeline(doc, p.timeline, data.Itinerary)
	base := opts.baseURL()
	render.Chips(doc, p.chips, data.Itinerary, p.filter, func(day int) string {
		if day == render.AllDays {
			return base + "#days"
		}
		return base + DayURL(day) + "#days"
	})

	shareOpts := opts.Share
	if shareOpts.Logger == nil {
		shareOpts.Logger = log
	}
	p.Share = share.New(doc, payload, shareOpts)

	var weatherGroup errgroup.Group
	widget := weather.Bind(doc)
	if widget != nil && opts.Weather != nil {
		widget.Pending()
		weatherGroup.Go(func() error {
			p.Weather = opts.Weather.Resolve(ctx)
			return nil
		})
	}

	p.Board = moodboard.Init(doc, rng, moodboard.AllShots(), opts.MoodboardInitial)

	if widget != nil && opts.Weather != nil {
		_ = weatherGroup.Wait()
		widget.Show(p.Weather)
	}
	return p, nil
}

func (p *Page) filter(day int) {
	if day == render.AllDays {
		render.Timeline(p.Doc, p.timeline, p.Data.Itinerary)
		return
	}
	render.Timeline(p.Doc, p.timeline, []model.Day{p.Data.Itinerary[day]})
}

// SelectDay clicks the chip of day i, or the "all" chip for render.AllDays.
func (p *Page) SelectDay(day int) error {
	chips := p.Doc.QueryAll(p.chips, ".chip")
	idx := day + 1
	if idx < 0 || idx >= len(chips) {
		return fmt.Errorf("no chip for day %d", day)
	}
	p.Doc.Click(chips[idx])
	return nil
}

// RevealMoodboard clicks the moodboard reveal control. It reports whether
// there was anything to reveal.
func (p *Page) RevealMoodboard() bool {
	if p.Board == nil || len(p.Board.Remaining()) == 0 {
		return false
	}
	p.Doc.Click(p.Doc.GetElementByID("btnRevealMoodboard"))
	return true
}

func setFooter(doc *dom.Document, note string, log *zap.Logger) {
	footer := doc.GetElementByID("footerNote")
	if footer == nil {
		return
	}
	rendered, err := markup.New().Inline(note)
	if err == nil {
		err = doc.SetInnerHTML(footer, rendered)
	}
	if err != nil {
		log.Warn("footer markdown failed, using plain text", zap.Error(err))
		doc.SetText(footer, note)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
