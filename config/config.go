// Package config loads startup options from defaults, an optional TOML file and RETUI_ environment variables
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/retui/terminal"
)

// EnvPrefix is prepended to every key when reading the environment
const EnvPrefix = "RETUI"

// Config keys
const (
	KeyNoAlt          = "no_alt"
	KeyASCIISnapshot  = "ascii_snapshot"
	KeyFocusHighlight = "focus_highlight"
	KeyDisableMouse   = "disable_mouse"
	KeyColor          = "color"
	KeyLogFile        = "log_file"
	KeyDebug          = "debug"
)

// Config holds the options read once at startup
type Config struct {
	NoAlt          bool   `mapstructure:"no_alt"`
	ASCIISnapshot  bool   `mapstructure:"ascii_snapshot"`
	FocusHighlight bool   `mapstructure:"focus_highlight"`
	DisableMouse   bool   `mapstructure:"disable_mouse"`
	Color          string `mapstructure:"color"`
	LogFile        string `mapstructure:"log_file"`
	Debug          bool   `mapstructure:"debug"`
}

// ErrInvalidColor is returned for a color value other than auto, truecolor or 256
var ErrInvalidColor = errors.New("invalid color mode")

// Default returns the built-in configuration
func Default() *Config {
	return &Config{Color: "auto"}
}

// New returns a viper instance with defaults and environment binding set up.
// Callers may bind command-line flags into it before Load
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyNoAlt, d.NoAlt)
	v.SetDefault(KeyASCIISnapshot, d.ASCIISnapshot)
	v.SetDefault(KeyFocusHighlight, d.FocusHighlight)
	v.SetDefault(KeyDisableMouse, d.DisableMouse)
	v.SetDefault(KeyColor, d.Color)
	v.SetDefault(KeyLogFile, d.LogFile)
	v.SetDefault(KeyDebug, d.Debug)
}

// Load reads the optional TOML file at path into v and decodes the result.
// An empty path skips the file
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	switch cfg.Color {
	case "auto", "truecolor", "256":
	case "":
		cfg.Color = "auto"
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, cfg.Color)
	}
	return cfg, nil
}

// ColorMode resolves the configured color value against the terminal environment
func (c *Config) ColorMode() terminal.ColorMode {
	return terminal.ParseColorMode(c.Color)
}

// TerminalOptions maps the configuration onto terminal lifecycle options
func (c *Config) TerminalOptions() terminal.Options {
	return terminal.Options{
		NoAltScreen:  c.NoAlt,
		DisableMouse: c.DisableMouse,
		ColorMode:    c.ColorMode(),
	}
}
