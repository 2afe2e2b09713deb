package cmd

import (
	"math/rand/v2"
	"net/http"

	"go.uber.org/zap"

	"github.com/Bitlatte/tripcard/internal/config"
	"github.com/Bitlatte/tripcard/internal/site"
	"github.com/Bitlatte/tripcard/internal/weather"
)

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// newWeatherService builds the location and weather chain: the configured
// device position first, then the IP lookups, then Open-Meteo.
func newWeatherService(cfg config.Weather, log *zap.Logger) *weather.Service {
	client := &http.Client{Timeout: cfg.HTTPTimeout}

	geo := &weather.Geolocation{
		Options: weather.PositionOptions{
			Timeout:    cfg.Timeout,
			MaximumAge: cfg.MaximumAge,
		},
	}
	if cfg.HasPosition() {
		geo.Source = weather.FixedPosition(*cfg.Latitude, *cfg.Longitude)
	}

	return &weather.Service{
		Locator: weather.Chain{
			geo,
			&weather.IPLocator{Endpoints: cfg.IPEndpoints, Client: client},
		},
		Geocoder:   &weather.OpenMeteoGeocoder{BaseURL: cfg.GeocodeURL, Language: "zh", Client: client},
		Forecaster: &weather.OpenMeteoForecaster{BaseURL: cfg.ForecastURL, Client: client},
		Logger:     log.Named("weather"),
	}
}

func siteOptions(cfg config.Config, log *zap.Logger) site.Options {
	opts := site.Options{
		DataSource:       cfg.DataSource,
		OutputDir:        cfg.OutputDir,
		BaseURL:          cfg.BaseURL,
		SiteURL:          cfg.SiteURL,
		LayoutsDir:       cfg.LayoutsDir,
		StaticDir:        cfg.StaticDir,
		NotesDir:         cfg.NotesDir,
		Params:           siteParams,
		MoodboardInitial: cfg.Moodboard.InitialCount,
		Rand:             newRand(cfg.Seed),
		HTTPClient:       &http.Client{Timeout: cfg.Weather.HTTPTimeout},
		Logger:           log,
	}
	opts.Share.UserAgent = cfg.Share.UserAgent
	if cfg.Weather.Enabled {
		opts.Weather = newWeatherService(cfg.Weather, log)
	}
	return opts
}
