package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "SNOWMAP"

	KeyVerbose           = "verbose"
	KeyStats             = "stats"
	KeyTrim              = "trim"
	KeyLegend            = "legend"
	KeyReport            = "report"
	KeyHistogramWidth    = "histogram.width"
	KeyHistogramBarChar  = "histogram.bar_char"
	KeyHistogramFillChar = "histogram.fill_char"
	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Verbose   bool
	Stats     bool
	Trim      int
	Legend    string
	Report    string
	Histogram HistogramConfig
	Log       LogConfig
}

type HistogramConfig struct {
	// Width of 0 means detect from the terminal.
	Width    int
	BarChar  string
	FillChar string
}

type LogConfig struct {
	Level  string
	Format string
}

func Defaults() Config {
	return Config{
		Histogram: HistogramConfig{
			BarChar:  "#",
			FillChar: "=",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"verbose": KeyVerbose,
	"stats":   KeyStats,
	"trim":    KeyTrim,
	"legend":  KeyLegend,
	"report":  KeyReport,
	"width":   KeyHistogramWidth,
}

// DefaultPath is the config file looked up when no explicit file is given.
func DefaultPath(homeDir string) string {
	return filepath.Join(homeDir, ".config", "snowmap", "config.toml")
}

// Load resolves the configuration with flags over environment over config file over defaults.
// An explicit configFile must exist; the default location is optional.
func Load(v *viper.Viper, flags *pflag.FlagSet, configFile, homeDir string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	applyDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, configFile, homeDir); err != nil {
		return Config{}, err
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	cfg := Config{
		Verbose: v.GetBool(KeyVerbose),
		Stats:   v.GetBool(KeyStats),
		Trim:    v.GetInt(KeyTrim),
		Legend:  v.GetString(KeyLegend),
		Report:  v.GetString(KeyReport),
		Histogram: HistogramConfig{
			Width:    v.GetInt(KeyHistogramWidth),
			BarChar:  v.GetString(KeyHistogramBarChar),
			FillChar: v.GetString(KeyHistogramFillChar),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString(KeyLogLevel)),
			Format: strings.ToLower(v.GetString(KeyLogFormat)),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func applyDefaults(v *viper.Viper) {
	defaults := Defaults()
	v.SetDefault(KeyVerbose, defaults.Verbose)
	v.SetDefault(KeyStats, defaults.Stats)
	v.SetDefault(KeyTrim, defaults.Trim)
	v.SetDefault(KeyLegend, defaults.Legend)
	v.SetDefault(KeyReport, defaults.Report)
	v.SetDefault(KeyHistogramWidth, defaults.Histogram.Width)
	v.SetDefault(KeyHistogramBarChar, defaults.Histogram.BarChar)
	v.SetDefault(KeyHistogramFillChar, defaults.Histogram.FillChar)
	v.SetDefault(KeyLogLevel, defaults.Log.Level)
	v.SetDefault(KeyLogFormat, defaults.Log.Format)
}

func readConfigFile(v *viper.Viper, configFile, homeDir string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", configFile, err)
		}
		return nil
	}

	if homeDir == "" {
		return nil
	}

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(filepath.Dir(DefaultPath(homeDir)))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", DefaultPath(homeDir), err)
	}

	return nil
}

func (c Config) Validate() error {
	if c.Histogram.Width < 0 {
		return fmt.Errorf("%w: histogram.width must be >= 0, got %d", ErrInvalidConfig, c.Histogram.Width)
	}
	if runewidth.StringWidth(c.Histogram.BarChar) != 1 {
		return fmt.Errorf("%w: histogram.bar_char must be a single-cell character, got %q", ErrInvalidConfig, c.Histogram.BarChar)
	}
	if runewidth.StringWidth(c.Histogram.FillChar) != 1 {
		return fmt.Errorf("%w: histogram.fill_char must be a single-cell character, got %q", ErrInvalidConfig, c.Histogram.FillChar)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unsupported log.level %q", ErrInvalidConfig, c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unsupported log.format %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// TrimBound returns the per-group cap, or 0 when trimming is disabled.
func (c Config) TrimBound() int {
	if c.Trim <= 0 {
		return 0
	}
	return c.Trim
}
