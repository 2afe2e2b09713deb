// Package weather resolves the visitor's location, fetches current weather
// and renders the weather widget.
package weather

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/Bitlatte/tripcard/internal/dom"
)

// Widget texts.
const (
	StatusLocating = "定位中..."
	StatusToday    = "今日天气"
	StatusFailed   = "天气获取失败"
)

// Report is the text the widget shows.
type Report struct {
	Status   string
	Location string
	Temp     string
	Meta     string
	Tip      string

	Err error
}

// FailedReport is the fixed failure state.
func FailedReport(err error) Report {
	return Report{
		Status: StatusFailed,
		Temp:   "--",
		Meta:   "尝试刷新页面或稍后重试",
		Tip:    "带上心爱的小外套以防万一",
		Err:    err,
	}
}

// Service runs the location and weather chain.
type Service struct {
	Locator    Locator
	Geocoder   ReverseGeocoder
	Forecaster Forecaster
	Logger     *zap.Logger
}

// Enrich replaces a placeholder label with a reverse-geocoded place name.
// Geocoding errors keep the original label.
func (s *Service) Enrich(ctx context.Context, loc Location) Location {
	if loc.Label != "" && loc.Label != CurrentPositionLabel {
		return loc
	}
	if s.Geocoder == nil {
		return loc
	}
	name, err := s.Geocoder.Reverse(ctx, loc.Lat, loc.Lon)
	if err != nil {
		s.logger().Debug("reverse geocode failed", zap.Error(err))
		return loc
	}
	if name != "" {
		loc.Label = name
	}
	return loc
}

// Resolve produces the widget report. Any failure yields FailedReport.
func (s *Service) Resolve(ctx context.Context) Report {
	r, err := s.resolve(ctx)
	if err != nil {
		s.logger().Error("weather widget failed", zap.Error(err))
		return FailedReport(err)
	}
	return r
}

func (s *Service) resolve(ctx context.Context) (Report, error) {
	if s.Locator == nil || s.Forecaster == nil {
		return Report{}, fmt.Errorf("weather service not configured")
	}
	base, err := s.Locator.Locate(ctx)
	if err != nil {
		return Report{}, err
	}
	loc := s.Enrich(ctx, base)

	label := loc.Label
	if label == "" {
		label = fmt.Sprintf("%.2f, %.2f", loc.Lat, loc.Lon)
	}

	reading, err := s.Forecaster.Current(ctx, loc.Lat, loc.Lon)
	if err != nil {
		return Report{}, err
	}

	temp := Round(reading.Temp)
	meta := fmt.Sprintf("%s · 风速 %dkm/h", Describe(reading.Code), Round(reading.Wind))
	if reading.Max != nil && reading.Min != nil {
		meta += fmt.Sprintf(" · %d℃~%d℃", Round(*reading.Min), Round(*reading.Max))
	}
	return Report{
		Status:   StatusToday,
		Location: "当前位置：" + label,
		Temp:     fmt.Sprintf("%d℃", temp),
		Meta:     meta,
		Tip:      Outfit(temp),
	}, nil
}

func (s *Service) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Widget is the set of page slots the report is written into.
type Widget struct {
	doc      *dom.Document
	status   *html.Node
	temp     *html.Node
	meta     *html.Node
	tip      *html.Node
	location *html.Node
}

// Bind finds the widget slots. It returns nil if any is missing.
func Bind(doc *dom.Document) *Widget {
	w := &Widget{
		doc:      doc,
		status:   doc.GetElementByID("weatherStatus"),
		temp:     doc.GetElementByID("weatherTemp"),
		meta:     doc.GetElementByID("weatherMeta"),
		tip:      doc.GetElementByID("weatherTip"),
		location: doc.GetElementByID("weatherLocation"),
	}
	if w.status == nil || w.temp == nil || w.meta == nil || w.tip == nil || w.location == nil {
		return nil
	}
	return w
}

// Pending shows the locating state.
func (w *Widget) Pending() {
	w.doc.SetText(w.status, StatusLocating)
}

// Show writes r into the slots.
func (w *Widget) Show(r Report) {
	w.doc.SetText(w.status, r.Status)
	w.doc.SetText(w.temp, r.Temp)
	w.doc.SetText(w.meta, r.Meta)
	w.doc.SetText(w.tip, r.Tip)
	w.doc.SetText(w.location, r.Location)
}
