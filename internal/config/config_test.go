package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("map", pflag.ContinueOnError)
	flags.BoolP("verbose", "v", false, "")
	flags.BoolP("stats", "s", false, "")
	flags.IntP("trim", "t", 0, "")
	flags.String("legend", "", "")
	flags.String("report", "", "")
	flags.Int("width", 0, "")
	return flags
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	cfg, err := Load(viper.New(), newFlagSet(), "", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, 0, cfg.TrimBound())
}

func TestLoadReadsDefaultConfigFile(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, DefaultPath(home), `
trim = 5
legend = "/tmp/legend.toml"

[histogram]
width = 120
bar_char = "*"

[log]
level = "debug"
format = "json"
`)

	cfg, err := Load(viper.New(), newFlagSet(), "", home)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.TrimBound())
	assert.Equal(t, "/tmp/legend.toml", cfg.Legend)
	assert.Equal(t, 120, cfg.Histogram.Width)
	assert.Equal(t, "*", cfg.Histogram.BarChar)
	assert.Equal(t, "=", cfg.Histogram.FillChar)
	assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)
}

func TestLoadPrecedenceFlagsOverEnvOverFile(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, DefaultPath(home), "trim = 5\nreport = \"file.xlsx\"\n\n[histogram]\nwidth = 100\n")

	t.Setenv("SNOWMAP_TRIM", "7")
	t.Setenv("SNOWMAP_HISTOGRAM_WIDTH", "90")

	flags := newFlagSet()
	require.NoError(t, flags.Parse([]string{"--trim", "3", "-v"}))

	cfg, err := Load(viper.New(), flags, "", home)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Trim)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 90, cfg.Histogram.Width)
	assert.Equal(t, "file.xlsx", cfg.Report)
}

func TestLoadExplicitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeConfig(t, path, "stats = true\n")

	cfg, err := Load(viper.New(), newFlagSet(), path, t.TempDir())
	require.NoError(t, err)
	assert.True(t, cfg.Stats)
}

func TestLoadExplicitConfigFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	_, err := Load(viper.New(), newFlagSet(), path, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config "+path)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, DefaultPath(home), "[histogram]\nbar_char = \"##\"\n")

	_, err := Load(viper.New(), newFlagSet(), "", home)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "histogram.bar_char")
}

func TestNegativeTrimDisablesTrimming(t *testing.T) {
	flags := newFlagSet()
	require.NoError(t, flags.Parse([]string{"--trim=-4"}))

	cfg, err := Load(viper.New(), flags, "", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, -4, cfg.Trim)
	assert.Equal(t, 0, cfg.TrimBound())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "defaults"},
		{name: "negative width", mutate: func(c *Config) { c.Histogram.Width = -1 }, want: "histogram.width"},
		{name: "empty fill", mutate: func(c *Config) { c.Histogram.FillChar = "" }, want: "histogram.fill_char"},
		{name: "wide bar", mutate: func(c *Config) { c.Histogram.BarChar = "界" }, want: "histogram.bar_char"},
		{name: "custom bar", mutate: func(c *Config) { c.Histogram.BarChar = "*" }},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "trace" }, want: "log.level"},
		{name: "bad format", mutate: func(c *Config) { c.Log.Format = "xml" }, want: "log.format"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Defaults()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}

			err := cfg.Validate()
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
