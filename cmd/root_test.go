package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitlatte/tripcard/internal/weather"
)

func TestDecodeConfigDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := decodeConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "public", cfg.OutputDir)
	assert.Equal(t, "/", cfg.BaseURL)
	assert.Equal(t, "data.json", cfg.DataSource)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 6, cfg.Moodboard.InitialCount)
	assert.True(t, cfg.Weather.Enabled)
	assert.Equal(t, 6*time.Second, cfg.Weather.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Weather.MaximumAge)
	assert.Equal(t, weather.DefaultIPEndpoints, cfg.Weather.IPEndpoints)
	assert.False(t, cfg.Weather.HasPosition())
}

func TestInitializeConfigReadsFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
outputDir: dist
siteURL: https://example.com/trip/
weather:
  latitude: 25.6
  longitude: 100.2
  timeout: 2s
`), 0o644))
	t.Setenv("TRIPCARD_BASEURL", "/trip/")
	t.Setenv("TRIPCARD_MOODBOARD_INITIALCOUNT", "4")

	old := cfgFile
	cfgFile = path
	defer func() { cfgFile = old }()

	require.NoError(t, initializeConfig(nil))
	assert.Equal(t, "dist", appConfig.OutputDir)
	assert.Equal(t, "/trip/", appConfig.BaseURL)
	assert.Equal(t, "https://example.com/trip/", appConfig.SiteURL)
	assert.Equal(t, 4, appConfig.Moodboard.InitialCount)
	assert.Equal(t, 2*time.Second, appConfig.Weather.Timeout)
	require.True(t, appConfig.Weather.HasPosition())
	assert.InDelta(t, 25.6, *appConfig.Weather.Latitude, 1e-9)
	assert.InDelta(t, 100.2, *appConfig.Weather.Longitude, 1e-9)
}

func TestInitializeConfigMissingExplicitFile(t *testing.T) {
	old := cfgFile
	cfgFile = filepath.Join(t.TempDir(), "nope.yaml")
	defer func() { cfgFile = old }()

	assert.Error(t, initializeConfig(nil))
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = newLogger("loud")
	assert.Error(t, err)
}
