package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// CurrentPositionLabel is the placeholder label of a device position; it is
// replaced by reverse geocoding when possible.
const CurrentPositionLabel = "当前位置"

// CurrentCityLabel labels an IP lookup that returned no place name.
const CurrentCityLabel = "当前城市"

var (
	ErrGeolocationUnsupported = errors.New("浏览器不支持定位")
	ErrIPLocation             = errors.New("无法通过 IP 获得定位")
)

// Location is a resolved position with a display label.
type Location struct {
	Lat   float64
	Lon   float64
	Label string
}

// Locator resolves the user's location.
type Locator interface {
	Locate(ctx context.Context) (Location, error)
}

// Chain tries each locator in order and returns the first success.
type Chain []Locator

func (c Chain) Locate(ctx context.Context) (Location, error) {
	var errs []error
	for _, l := range c {
		loc, err := l.Locate(ctx)
		if err == nil {
			return loc, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return Location{}, ErrIPLocation
	}
	return Location{}, fmt.Errorf("resolve location: %w", errors.Join(errs...))
}

// PositionFunc reads the device position. highAccuracy mirrors the browser
// option of the same name.
type PositionFunc func(ctx context.Context, highAccuracy bool) (lat, lon float64, err error)

// FixedPosition is a position source that always reports the same point.
func FixedPosition(lat, lon float64) PositionFunc {
	return func(context.Context, bool) (float64, float64, error) { return lat, lon, nil }
}

// PositionOptions mirror the browser geolocation options.
type PositionOptions struct {
	EnableHighAccuracy bool
	Timeout            time.Duration
	MaximumAge         time.Duration
}

// DefaultPositionOptions: low accuracy, 6s timeout, 5 minute cache.
var DefaultPositionOptions = PositionOptions{
	EnableHighAccuracy: false,
	Timeout:            6 * time.Second,
	MaximumAge:         5 * time.Minute,
}

// Geolocation reads the device position, reusing a cached fix younger than
// MaximumAge.
type Geolocation struct {
	Source  PositionFunc
	Options PositionOptions
	Now     func() time.Time

	mu       sync.Mutex
	cached   *Location
	cachedAt time.Time
}

func (g *Geolocation) Locate(ctx context.Context) (Location, error) {
	if g == nil || g.Source == nil {
		return Location{}, ErrGeolocationUnsupported
	}
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cached != nil && g.Options.MaximumAge > 0 && now().Sub(g.cachedAt) <= g.Options.MaximumAge {
		return *g.cached, nil
	}

	if g.Options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Options.Timeout)
		defer cancel()
	}
	type fix struct {
		lat, lon float64
		err      error
	}
	done := make(chan fix, 1)
	go func() {
		lat, lon, err := g.Source(ctx, g.Options.EnableHighAccuracy)
		done <- fix{lat, lon, err}
	}()

	select {
	case <-ctx.Done():
		return Location{}, fmt.Errorf("geolocation: %w", ctx.Err())
	case f := <-done:
		if f.err != nil {
			return Location{}, fmt.Errorf("geolocation: %w", f.err)
		}
		loc := Location{Lat: f.lat, Lon: f.lon, Label: CurrentPositionLabel}
		g.cached = &loc
		g.cachedAt = now()
		return loc, nil
	}
}

// DefaultIPEndpoints are queried in order by IPLocator.
var DefaultIPEndpoints = []string{
	"https://ipapi.co/json/",
	"https://ipwho.is/?fields=city,region,country,country_code,latitude,longitude",
}

// IPLocator estimates the location from the caller's IP address.
type IPLocator struct {
	Endpoints []string
	Client    *http.Client
}

type ipResponse struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	City        string  `json:"city"`
	Region      string  `json:"region"`
	CountryName string  `json:"country_name"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
}

func (l *IPLocator) Locate(ctx context.Context) (Location, error) {
	endpoints := l.Endpoints
	if len(endpoints) == 0 {
		endpoints = DefaultIPEndpoints
	}
	for _, endpoint := range endpoints {
		var data ipResponse
		if err := getJSON(ctx, l.Client, endpoint, &data); err != nil {
			continue
		}
		if data.Latitude == 0 || data.Longitude == 0 {
			continue
		}
		label := joinNonEmpty(
			firstNonEmpty(data.City, data.Region),
			firstNonEmpty(data.CountryName, data.Country, data.CountryCode),
		)
		if label == "" {
			label = CurrentCityLabel
		}
		return Location{Lat: data.Latitude, Lon: data.Longitude, Label: label}, nil
	}
	return Location{}, ErrIPLocation
}

func getJSON(ctx context.Context, client *http.Client, url string, v any) error {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func joinNonEmpty(parts ...string) string {
	var keep []string
	for _, p := range parts {
		if p != "" {
			keep = append(keep, p)
		}
	}
	return strings.Join(keep, " · ")
}
