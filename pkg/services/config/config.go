package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Defaults for the data-quality bounds. MaxTripDistance keeps the historic
// 1000-mile cutoff the analysis has always used; MaxFareAmount caps fares
// at $1000, which is above any plausible metered fare but below the
// data-entry errors that show up in the raw feeds. Both materially change
// downstream results, so overriding them is a config decision, not code.
const (
	DefaultMaxTripDistance   = 1000.0
	DefaultMaxFareAmount     = 1000.0
	DefaultLongestTripsLimit = 10
	DefaultBusiestZonesLimit = 5
)

// Config is the full configuration surface of one pipeline run.
type Config struct {
	YellowTripsPath string `mapstructure:"yellow_trips_path"`
	GreenTripsPath  string `mapstructure:"green_trips_path"`
	ZoneLookupPath  string `mapstructure:"zone_lookup_path"`
	OutputDir       string `mapstructure:"output_dir"`

	MaxTripDistance float64 `mapstructure:"max_trip_distance"`
	MaxFareAmount   float64 `mapstructure:"max_fare_amount"`

	LongestTripsLimit int `mapstructure:"longest_trips_limit"`
	BusiestZonesLimit int `mapstructure:"busiest_zones_limit"`

	// ReportingMonth bounds the temporal filter, format "2006-01".
	// Empty disables the month bound.
	ReportingMonth string `mapstructure:"reporting_month"`
}

func Default() Config {
	return Config{
		OutputDir:         "output",
		MaxTripDistance:   DefaultMaxTripDistance,
		MaxFareAmount:     DefaultMaxFareAmount,
		LongestTripsLimit: DefaultLongestTripsLimit,
		BusiestZonesLimit: DefaultBusiestZonesLimit,
	}
}

// Load reads a YAML config file, filling unset values from Default.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := Default()
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("max_trip_distance", defaults.MaxTripDistance)
	v.SetDefault("max_fare_amount", defaults.MaxFareAmount)
	v.SetDefault("longest_trips_limit", defaults.LongestTripsLimit)
	v.SetDefault("busiest_zones_limit", defaults.BusiestZonesLimit)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.YellowTripsPath == "" && c.GreenTripsPath == "":
		return fmt.Errorf("at least one of yellow_trips_path or green_trips_path is required")
	case c.ZoneLookupPath == "":
		return fmt.Errorf("zone_lookup_path is required")
	case c.MaxTripDistance <= 0:
		return fmt.Errorf("max_trip_distance must be greater than 0")
	case c.MaxFareAmount <= 0:
		return fmt.Errorf("max_fare_amount must be greater than 0")
	case c.LongestTripsLimit <= 0:
		return fmt.Errorf("longest_trips_limit must be greater than 0")
	case c.BusiestZonesLimit <= 0:
		return fmt.Errorf("busiest_zones_limit must be greater than 0")
	}
	if c.ReportingMonth != "" {
		if _, _, err := c.MonthBounds(); err != nil {
			return err
		}
	}
	return nil
}

// MonthBounds returns the [start, end) interval of the reporting month, or
// zero times when no month is configured.
func (c Config) MonthBounds() (time.Time, time.Time, error) {
	if c.ReportingMonth == "" {
		return time.Time{}, time.Time{}, nil
	}
	start, err := time.Parse("2006-01", c.ReportingMonth)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid reporting_month %q: %w", c.ReportingMonth, err)
	}
	return start, start.AddDate(0, 1, 0), nil
}
