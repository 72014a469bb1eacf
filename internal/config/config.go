package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// AppConfig holds all application configuration.
type AppConfig struct {
	Tabs     []TabConfig    `mapstructure:"tabs"`
	Style    StyleConfig    `mapstructure:"style"`
	Behavior BehaviorConfig `mapstructure:"behavior"`
	Log      LogConfig      `mapstructure:"log"`
}

// TabConfig describes one tab of the demo. Exactly one of Text, File or Trace
// provides the page content.
type TabConfig struct {
	Label string `mapstructure:"label"`
	Text  string `mapstructure:"text"`
	File  string `mapstructure:"file"`
	Trace bool   `mapstructure:"trace"` // page charts the scroll position
}

// StyleConfig holds the optional look of the tab bar. Empty colours mean
// "use the default".
type StyleConfig struct {
	IndicatorHeight int    `mapstructure:"indicator_height"` // eighths of a row, 0 hides the indicator
	IndicatorColor  string `mapstructure:"indicator_color"`  // empty = transparent
	BackgroundColor string `mapstructure:"background_color"` // empty = terminal background
	ActiveColor     string `mapstructure:"active_color"`     // empty = primary text
	InactiveColor   string `mapstructure:"inactive_color"`   // empty = secondary text
}

// BehaviorConfig tunes scrolling.
type BehaviorConfig struct {
	AnimateSelect   bool          `mapstructure:"animate_select"`
	DragStep        float64       `mapstructure:"drag_step"`
	SettleDelay     time.Duration `mapstructure:"settle_delay"`
	SpringFrequency float64       `mapstructure:"spring_frequency"`
	SpringDamping   float64       `mapstructure:"spring_damping"`
	FrameInterval   time.Duration `mapstructure:"frame_interval"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level   string            `mapstructure:"level"`
	Format  string            `mapstructure:"format"` // "console" or "json"
	File    string            `mapstructure:"file"`
	Console bool              `mapstructure:"console"` // also log to stderr; off for the TUI
	Rotate  LogRotateConfig   `mapstructure:"rotate"`
	Levels  map[string]string `mapstructure:"levels"`
}

// LogRotateConfig defines log rotation settings
type LogRotateConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	Compress   bool `mapstructure:"compress"`
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}

// NewConfig creates a new AppConfig by reading from a file, environment
// variables, and applying defaults. An empty path searches the standard
// locations; a missing file is not an error.
func NewConfig(configPath string) (*AppConfig, error) {
	cfg := defaultConfig()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.tabpager")
	}

	v.SetEnvPrefix("TABPAGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(cfg.Tabs) == 0 {
		cfg.Tabs = demoTabs()
	}
	cfg.expandPaths(filepath.Dir(v.ConfigFileUsed()))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration with the demo tabs.
func Default() AppConfig {
	cfg := defaultConfig()
	cfg.Tabs = demoTabs()
	return cfg
}

// defaultConfig leaves Tabs empty: decoding a file's tab list on top of
// default entries would merge their fields.
func defaultConfig() AppConfig {
	return AppConfig{
		Style: StyleConfig{
			IndicatorHeight: 3,
		},
		Behavior: BehaviorConfig{
			AnimateSelect:   false,
			DragStep:        0.1,
			SettleDelay:     300 * time.Millisecond,
			SpringFrequency: 12.0,
			SpringDamping:   0.9,
			FrameInterval:   16 * time.Millisecond,
		},
		Log: LogConfig{
			Level:  "INFO",
			Format: "console",
			File:   "$HOME/.tabpager/logs/tabpager.log",
			Rotate: LogRotateConfig{
				MaxSizeMB:  10,
				MaxBackups: 3,
				MaxAgeDays: 14,
				Compress:   true,
			},
			Levels: map[string]string{
				"tui":  "INFO",
				"sync": "WARN",
			},
		},
	}
}

func demoTabs() []TabConfig {
	return []TabConfig{
		{Label: "Overview", Text: overviewText},
		{Label: "Keys", Text: keysText},
		{Label: "Trace", Trace: true},
	}
}

// expandPaths expands ~ and environment variables, and resolves relative tab
// files against the directory of the config file.
func (c *AppConfig) expandPaths(base string) {
	c.Log.File = expandPath(c.Log.File)
	for i := range c.Tabs {
		if c.Tabs[i].File == "" {
			continue
		}
		p := expandPath(c.Tabs[i].File)
		if !filepath.IsAbs(p) && base != "" {
			p = filepath.Join(base, p)
		}
		c.Tabs[i].File = p
	}
}

func expandPath(p string) string {
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[2:])
		}
	}
	return os.ExpandEnv(p)
}

// Validate checks the configuration and returns a *ConfigError on the first
// problem found.
func (c AppConfig) Validate() error {
	if len(c.Tabs) == 0 {
		return &ConfigError{Field: "tabs", Message: "must not be empty"}
	}
	for i, t := range c.Tabs {
		field := fmt.Sprintf("tabs[%d]", i)
		if t.Label == "" {
			return &ConfigError{Field: field + ".label", Message: "must not be empty"}
		}
		sources := 0
		for _, set := range []bool{t.Text != "", t.File != "", t.Trace} {
			if set {
				sources++
			}
		}
		if sources > 1 {
			return &ConfigError{Field: field, Message: "must set only one of text, file or trace"}
		}
	}
	if c.Style.IndicatorHeight < 0 {
		return &ConfigError{Field: "style.indicator_height", Message: "must not be negative"}
	}
	if c.Behavior.DragStep <= 0 || c.Behavior.DragStep > 1 {
		return &ConfigError{Field: "behavior.drag_step", Message: "must be in (0, 1]"}
	}
	if c.Behavior.SettleDelay <= 0 {
		return &ConfigError{Field: "behavior.settle_delay", Message: "must be positive"}
	}
	if c.Behavior.SpringFrequency <= 0 {
		return &ConfigError{Field: "behavior.spring_frequency", Message: "must be positive"}
	}
	if c.Behavior.SpringDamping <= 0 {
		return &ConfigError{Field: "behavior.spring_damping", Message: "must be positive"}
	}
	if c.Behavior.FrameInterval <= 0 {
		return &ConfigError{Field: "behavior.frame_interval", Message: "must be positive"}
	}
	return nil
}

// FPS is the frame rate implied by FrameInterval.
func (b BehaviorConfig) FPS() int {
	if b.FrameInterval <= 0 {
		return 60
	}
	fps := int(time.Second / b.FrameInterval)
	if fps < 1 {
		return 1
	}
	return fps
}

const overviewText = `A paged viewer synchronized with a tab bar.

Drag the pages sideways and the indicator follows the
scroll position exactly. Pick a tab and the pages jump
to it.`

const keysText = `tab / →        next tab
shift+tab / ←  previous tab
1-9            jump to tab
H / L          drag pages left / right
wheel          drag pages
j / k          scroll page content
?              toggle help
q              quit`
