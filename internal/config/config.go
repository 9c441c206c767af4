// Package config provides configuration types, defaults and loading for chevron.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"

	"github.com/iw2rmb/chevron/internal/log"
)

// DefaultPath is where a default config is written when none exists.
const DefaultPath = ".chevron/config.yaml"

var (
	// ErrInvalidLimit is returned for negative or zero size limits.
	ErrInvalidLimit = errors.New("invalid limit")
	// ErrInvalidColor is returned for theme colors that are not #RGB or #RRGGBB.
	ErrInvalidColor = errors.New("invalid color")
	// ErrInvalidSuggestion is returned for inline catalog entries that are
	// empty or span more than one line.
	ErrInvalidSuggestion = errors.New("invalid suggestion")
)

var hexColorRE = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Config holds all configuration options for chevron.
type Config struct {
	Catalog        []string    `mapstructure:"catalog" yaml:"catalog"`
	CatalogFile    string      `mapstructure:"catalog_file" yaml:"catalog_file,omitempty"`
	HistoryLimit   int         `mapstructure:"history_limit" yaml:"history_limit"`
	MaxVisibleRows int         `mapstructure:"max_visible_rows" yaml:"max_visible_rows"`
	MaxWidth       int         `mapstructure:"max_width" yaml:"max_width"`
	LineNumbers    bool        `mapstructure:"line_numbers" yaml:"line_numbers"`
	Theme          ThemeConfig `mapstructure:"theme" yaml:"theme"`
	Debug          bool        `mapstructure:"debug" yaml:"debug"`
	LogFile        string      `mapstructure:"log_file" yaml:"log_file"`
}

// ThemeConfig holds color overrides. Empty values keep the built-in style.
type ThemeConfig struct {
	Entity    string `mapstructure:"entity" yaml:"entity,omitempty"`       // committed suggestion text
	Highlight string `mapstructure:"highlight" yaml:"highlight,omitempty"` // highlighted popup row
	Popup     string `mapstructure:"popup" yaml:"popup,omitempty"`         // popup background
}

// DefaultCatalog is the built-in suggestion list.
func DefaultCatalog() []string {
	return []string{
		"application",
		"react",
		"render",
		"suggestion",
		"tougher",
		"tournament",
		"react application",
		"this is a react component",
		"react component",
		"react-component",
	}
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Catalog:        DefaultCatalog(),
		HistoryLimit:   1000,
		MaxVisibleRows: 8,
		MaxWidth:       40,
		LineNumbers:    false,
		Theme: ThemeConfig{
			Entity:    "#1E90FF",
			Highlight: "#7D56F4",
		},
		LogFile: "debug.log",
	}
}

// SetDefaults registers Defaults with v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("catalog", d.Catalog)
	v.SetDefault("history_limit", d.HistoryLimit)
	v.SetDefault("max_visible_rows", d.MaxVisibleRows)
	v.SetDefault("max_width", d.MaxWidth)
	v.SetDefault("line_numbers", d.LineNumbers)
	v.SetDefault("theme.entity", d.Theme.Entity)
	v.SetDefault("theme.highlight", d.Theme.Highlight)
	v.SetDefault("theme.popup", d.Theme.Popup)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_file", d.LogFile)
}

// Load reads configuration into a fresh viper instance.
//
// Lookup order when path is empty:
//  1. .chevron/config.yaml (current directory)
//  2. ~/.config/chevron/config.yaml (user config)
//
// A missing file is not an error; defaults apply. used is the file that was
// read, or "".
func Load(path string) (cfg Config, used string, err error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("chevron")
	v.AutomaticEnv()

	switch {
	case path != "":
		v.SetConfigFile(path)
	case fileExists(DefaultPath):
		v.SetConfigFile(DefaultPath)
	default:
		if home, herr := os.UserHomeDir(); herr == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "chevron"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, "", fmt.Errorf("reading config: %w", err)
		}
		log.Debug(log.CatConfig, "no config file found, using defaults")
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("decoding config: %w", err)
	}
	used = v.ConfigFileUsed()
	log.Debug(log.CatConfig, "config loaded", "path", used, "catalog", len(cfg.Catalog))
	return cfg, used, nil
}

// Validate checks configuration for errors.
func (c Config) Validate() error {
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative, got %d: %w", c.HistoryLimit, ErrInvalidLimit)
	}
	if c.MaxVisibleRows <= 0 {
		return fmt.Errorf("max_visible_rows must be positive, got %d: %w", c.MaxVisibleRows, ErrInvalidLimit)
	}
	if c.MaxWidth <= 0 {
		return fmt.Errorf("max_width must be positive, got %d: %w", c.MaxWidth, ErrInvalidLimit)
	}
	for i, item := range c.Catalog {
		if item == "" || strings.ContainsAny(item, "\r\n") {
			return fmt.Errorf("catalog[%d] must be a non-empty single line, got %q: %w", i, item, ErrInvalidSuggestion)
		}
	}
	for _, tc := range []struct{ key, val string }{
		{"theme.entity", c.Theme.Entity},
		{"theme.highlight", c.Theme.Highlight},
		{"theme.popup", c.Theme.Popup},
	} {
		if tc.val != "" && !hexColorRE.MatchString(tc.val) {
			return fmt.Errorf("%s must be a hex color, got %q: %w", tc.key, tc.val, ErrInvalidColor)
		}
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
