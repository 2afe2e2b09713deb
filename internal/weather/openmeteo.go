package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	DefaultGeocodeURL  = "https://geocoding-api.open-meteo.com/v1/reverse"
	DefaultForecastURL = "https://api.open-meteo.com/v1/forecast"
)

// ErrNoCurrentWeather means the forecast response lacked current conditions.
var ErrNoCurrentWeather = errors.New("缺少天气数据")

// ReverseGeocoder turns coordinates into a place name.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (string, error)
}

// Forecaster fetches current conditions for coordinates.
type Forecaster interface {
	Current(ctx context.Context, lat, lon float64) (Reading, error)
}

// Reading is the current weather plus today's range. Max and Min are nil
// when the daily block is missing.
type Reading struct {
	Temp float64
	Wind float64
	Code int
	Max  *float64
	Min  *float64
}

// OpenMeteoGeocoder uses the Open-Meteo reverse geocoding API.
type OpenMeteoGeocoder struct {
	BaseURL  string
	Language string
	Client   *http.Client
}

type geocodeResponse struct {
	Results []struct {
		Name     string `json:"name"`
		City     string `json:"city"`
		District string `json:"district"`
		Admin1   string `json:"admin1"`
		Country  string `json:"country"`
	} `json:"results"`
}

func (g *OpenMeteoGeocoder) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	base := g.BaseURL
	if base == "" {
		base = DefaultGeocodeURL
	}
	lang := g.Language
	if lang == "" {
		lang = "zh"
	}
	params := url.Values{
		"latitude":  {formatCoord(lat)},
		"longitude": {formatCoord(lon)},
		"count":     {"1"},
		"language":  {lang},
	}
	var data geocodeResponse
	if err := getJSON(ctx, g.Client, base+"?"+params.Encode(), &data); err != nil {
		return "", fmt.Errorf("反向地理编码失败: %w", err)
	}
	if len(data.Results) == 0 {
		return "", nil
	}
	first := data.Results[0]
	return joinNonEmpty(
		firstNonEmpty(first.City, first.Name),
		firstNonEmpty(first.District, first.Admin1),
		first.Country,
	), nil
}

// OpenMeteoForecaster uses the Open-Meteo forecast API.
type OpenMeteoForecaster struct {
	BaseURL string
	Client  *http.Client
}

type forecastResponse struct {
	CurrentWeather *struct {
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
	Daily *struct {
		Max []*float64 `json:"temperature_2m_max"`
		Min []*float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

func (f *OpenMeteoForecaster) Current(ctx context.Context, lat, lon float64) (Reading, error) {
	base := f.BaseURL
	if base == "" {
		base = DefaultForecastURL
	}
	params := url.Values{
		"latitude":        {formatCoord(lat)},
		"longitude":       {formatCoord(lon)},
		"current_weather": {"true"},
		"daily":           {"temperature_2m_max,temperature_2m_min"},
		"timezone":        {"auto"},
	}
	var data forecastResponse
	if err := getJSON(ctx, f.Client, base+"?"+params.Encode(), &data); err != nil {
		return Reading{}, fmt.Errorf("天气接口请求失败: %w", err)
	}
	if data.CurrentWeather == nil {
		return Reading{}, ErrNoCurrentWeather
	}
	r := Reading{
		Temp: data.CurrentWeather.Temperature,
		Wind: data.CurrentWeather.WindSpeed,
		Code: data.CurrentWeather.WeatherCode,
	}
	if data.Daily != nil {
		if len(data.Daily.Max) > 0 {
			r.Max = data.Daily.Max[0]
		}
		if len(data.Daily.Min) > 0 {
			r.Min = data.Daily.Min[0]
		}
	}
	return r, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
