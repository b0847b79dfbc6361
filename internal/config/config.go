// Package config loads viewer configuration from a TOML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/lineview/internal/style"
	"github.com/dshills/lineview/internal/view"
)

// Config holds the viewer settings.
type Config struct {
	// GutterWidth is the line number gutter width in columns, including the
	// separator column.
	GutterWidth int `toml:"gutter_width"`

	// TabWidth is the tab stop interval in display columns.
	TabWidth int `toml:"tab_width"`

	// PageStep is the PgUp/PgDn cursor distance in lines.
	PageStep int `toml:"page_step"`

	// Follow reloads the document when the file changes on disk.
	Follow bool `toml:"follow"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// StyleScript is the path of an optional Lua styling script.
	StyleScript string `toml:"style_script"`

	Theme ThemeConfig `toml:"theme"`
}

// ThemeConfig holds theme color overrides as hex strings ("#rrggbb").
// Empty fields keep the built-in theme values.
type ThemeConfig struct {
	GutterFg   string `toml:"gutter_fg"`
	CursorFg   string `toml:"cursor_fg"`
	CursorBg   string `toml:"cursor_bg"`
	CursorBold *bool  `toml:"cursor_bold"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		GutterWidth: view.DefaultGutterWidth,
		TabWidth:    view.DefaultTabWidth,
		PageStep:    10,
		LogLevel:    "info",
	}
}

// DefaultPath returns the standard config file location, or "" when the
// user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lineview", "config.toml")
}

// Load reads the config file at path, falling back to DefaultPath when path
// is empty. A missing file is not an error; defaults apply. Environment
// variables override file values.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults apply.
		case err != nil:
			return cfg, fmt.Errorf("config: reading %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, &ParseError{Path: path, Message: err.Error(), Err: err}
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// envPrefix is the environment variable prefix for overrides.
const envPrefix = "LINEVIEW_"

// applyEnv overrides settings from LINEVIEW_* environment variables.
func (c *Config) applyEnv() {
	if v, ok := lookupInt(envPrefix + "GUTTER_WIDTH"); ok {
		c.GutterWidth = v
	}
	if v, ok := lookupInt(envPrefix + "TAB_WIDTH"); ok {
		c.TabWidth = v
	}
	if v, ok := lookupInt(envPrefix + "PAGE_STEP"); ok {
		c.PageStep = v
	}
	if v, ok := os.LookupEnv(envPrefix + "FOLLOW"); ok {
		c.Follow = v == "1" || v == "true" || v == "yes"
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(envPrefix + "STYLE_SCRIPT"); ok {
		c.StyleScript = v
	}
}

func lookupInt(name string) (int, bool) {
	s, ok := os.LookupEnv(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Validate checks setting ranges.
func (c *Config) Validate() error {
	if c.GutterWidth < 0 {
		return fmt.Errorf("config: gutter_width must be >= 0, got %d", c.GutterWidth)
	}
	if c.TabWidth < 1 {
		return fmt.Errorf("config: tab_width must be >= 1, got %d", c.TabWidth)
	}
	if c.PageStep < 1 {
		return fmt.Errorf("config: page_step must be >= 1, got %d", c.PageStep)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log_level must be debug, info, warn, or error, got %q", c.LogLevel)
	}
	return nil
}

// BuildTheme applies the theme overrides on top of the built-in theme.
func (c Config) BuildTheme() (view.Theme, error) {
	theme := view.DefaultTheme()

	if c.Theme.GutterFg != "" {
		color, err := style.FromHex(c.Theme.GutterFg)
		if err != nil {
			return theme, fmt.Errorf("config: theme.gutter_fg: %w", err)
		}
		theme.Gutter.Foreground = color
	}
	if c.Theme.CursorFg != "" {
		color, err := style.FromHex(c.Theme.CursorFg)
		if err != nil {
			return theme, fmt.Errorf("config: theme.cursor_fg: %w", err)
		}
		theme.Cursor.Foreground = color
	}
	if c.Theme.CursorBg != "" {
		color, err := style.FromHex(c.Theme.CursorBg)
		if err != nil {
			return theme, fmt.Errorf("config: theme.cursor_bg: %w", err)
		}
		theme.Cursor.Background = color
	}
	if c.Theme.CursorBold != nil {
		theme.Cursor.Bold = *c.Theme.CursorBold
	}

	return theme, nil
}

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("config: parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
