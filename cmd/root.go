package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Bitlatte/tripcard/internal/config"
	"github.com/Bitlatte/tripcard/internal/moodboard"
	"github.com/Bitlatte/tripcard/internal/weather"
)

var cfgFile string
var appConfig config.Config

// siteParams are the free-form config.yaml values exposed to layouts as
// .Params.
var siteParams map[string]interface{}

var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "tripcard",
	Short: "tripcard - a shareable travel itinerary page",
	Long: `tripcard renders a travel itinerary (data.json) into a static,
shareable page with a randomized hero, day filters, a weather widget,
share actions and a photo moodboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initializeConfig(cmd); err != nil {
			return err
		}
		l, err := newLogger(appConfig.LogLevel)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command with the layout params read from config.yaml.
func Execute(params map[string]interface{}) {
	siteParams = params
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("outputDir", "public")
	v.SetDefault("baseURL", "/")
	v.SetDefault("siteURL", "")
	v.SetDefault("dataSource", "data.json")
	v.SetDefault("layoutsDir", "layouts")
	v.SetDefault("staticDir", "static")
	v.SetDefault("notesDir", "notes")
	v.SetDefault("logLevel", "info")
	v.SetDefault("seed", 0)
	v.SetDefault("moodboard.initialCount", moodboard.InitialCount)
	v.SetDefault("share.userAgent", "")
	v.SetDefault("weather.enabled", true)
	v.SetDefault("weather.timeout", "6s")
	v.SetDefault("weather.maximumAge", "5m")
	v.SetDefault("weather.httpTimeout", "10s")
	v.SetDefault("weather.ipEndpoints", weather.DefaultIPEndpoints)
	v.SetDefault("weather.geocodeURL", weather.DefaultGeocodeURL)
	v.SetDefault("weather.forecastURL", weather.DefaultForecastURL)
}

func initializeConfig(_ *cobra.Command) error {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("TRIPCARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFile != "" {
				return fmt.Errorf("config file %s not found: %w", cfgFile, err)
			}
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg, err := decodeConfig(v)
	if err != nil {
		return err
	}
	appConfig = cfg
	return nil
}

// decodeConfig unmarshals v. The weather position is read separately so an
// unset key stays nil instead of becoming 0.
func decodeConfig(v *viper.Viper) (config.Config, error) {
	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	cfg.Weather.Latitude = optionalFloat(v, "weather.latitude")
	cfg.Weather.Longitude = optionalFloat(v, "weather.longitude")
	return cfg, nil
}

func optionalFloat(v *viper.Viper, key string) *float64 {
	if !v.IsSet(key) {
		return nil
	}
	f := v.GetFloat64(key)
	return &f
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid logLevel %q: %w", level, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}
