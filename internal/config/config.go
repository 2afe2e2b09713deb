package config

import "time"

type Config struct {
	OutputDir  string `mapstructure:"outputDir"`
	BaseURL    string `mapstructure:"baseURL"`
	SiteURL    string `mapstructure:"siteURL"`
	DataSource string `mapstructure:"dataSource"`
	LayoutsDir string `mapstructure:"layoutsDir"`
	StaticDir  string `mapstructure:"staticDir"`
	NotesDir   string `mapstructure:"notesDir"`
	LogLevel   string `mapstructure:"logLevel"`

	// Seed fixes the hero and moodboard picks. Zero means random.
	Seed uint64 `mapstructure:"seed"`

	Moodboard Moodboard `mapstructure:"moodboard"`
	Share     Share     `mapstructure:"share"`
	Weather   Weather   `mapstructure:"weather"`
}

type Moodboard struct {
	InitialCount int `mapstructure:"initialCount"`
}

type Share struct {
	UserAgent string `mapstructure:"userAgent"`
}

type Weather struct {
	Enabled bool `mapstructure:"enabled"`

	// Latitude and Longitude stand in for the device position. Both nil
	// means the device has none and the IP lookup is used.
	Latitude    *float64      `mapstructure:"latitude"`
	Longitude   *float64      `mapstructure:"longitude"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaximumAge  time.Duration `mapstructure:"maximumAge"`
	HTTPTimeout time.Duration `mapstructure:"httpTimeout"`
	IPEndpoints []string      `mapstructure:"ipEndpoints"`
	GeocodeURL  string        `mapstructure:"geocodeURL"`
	ForecastURL string        `mapstructure:"forecastURL"`
}

// HasPosition reports whether a fixed device position is configured.
func (w Weather) HasPosition() bool {
	return w.Latitude != nil && w.Longitude != nil
}
