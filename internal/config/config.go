// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultServiceURL     = "ws://127.0.0.1:54000/livestyle"
	DefaultServiceTimeout = 5 * time.Second
	DefaultPanelWidth     = 56
	DefaultDebounce       = 500 * time.Millisecond
	DefaultLocalHost      = "livestyle"
	DefaultNotifyDuration = 300 * time.Millisecond
	DefaultExpandDuration = 400 * time.Millisecond
	DefaultEasing         = "outExpo"
	DefaultFPS            = 60
	DefaultServeAddr      = "127.0.0.1:54000"
	DefaultServePath      = "/livestyle"
	DefaultDomain         = "livestyle.io"
)

// Duration is a time.Duration that can be unmarshaled from human-readable strings.
// Supports formats like "300ms", "5s", "1m", or integer milliseconds.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: must be like '300ms', '5s' or milliseconds: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML output.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Config represents the rvpanel configuration.
type Config struct {
	Service   ServiceConfig   `toml:"service"`
	Panel     PanelConfig     `toml:"panel"`
	Animation AnimationConfig `toml:"animation"`
	Desktop   DesktopConfig   `toml:"desktop"`
	Theme     ThemeConfig     `toml:"theme"`
	Serve     ServeConfig     `toml:"serve"`
}

// ServiceConfig describes how to reach the LiveStyle app.
type ServiceConfig struct {
	URL     string   `toml:"url"`
	Timeout Duration `toml:"timeout"`
}

// PanelConfig holds panel behaviour.
type PanelConfig struct {
	Width     int      `toml:"width"`      // Panel width in cells
	Debounce  Duration `toml:"debounce"`   // Minimum interval between toggle actions
	LocalHost string   `toml:"local_host"` // Placeholder host for file: pages
}

// AnimationConfig holds transition timing.
type AnimationConfig struct {
	Notify Duration `toml:"notify"` // Notification slide
	Expand Duration `toml:"expand"` // Description expand/collapse
	Easing string   `toml:"easing"` // outExpo, linear, inOutQuad
	FPS    int      `toml:"fps"`
}

// FrameInterval returns the delay between animation frames.
func (a AnimationConfig) FrameInterval() time.Duration {
	fps := a.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// DesktopConfig controls desktop notifications.
type DesktopConfig struct {
	Notify bool `toml:"notify"` // Send a desktop notification when a session starts
}

// ThemeConfig holds panel colours (lipgloss colour strings).
type ThemeConfig struct {
	Accent string `toml:"accent"`
	Muted  string `toml:"muted"`
}

// ServeConfig configures the development service.
type ServeConfig struct {
	Addr   string `toml:"addr"`
	Path   string `toml:"path"`
	Domain string `toml:"domain"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Service: ServiceConfig{
			URL:     DefaultServiceURL,
			Timeout: Duration(DefaultServiceTimeout),
		},
		Panel: PanelConfig{
			Width:     DefaultPanelWidth,
			Debounce:  Duration(DefaultDebounce),
			LocalHost: DefaultLocalHost,
		},
		Animation: AnimationConfig{
			Notify: Duration(DefaultNotifyDuration),
			Expand: Duration(DefaultExpandDuration),
			Easing: DefaultEasing,
			FPS:    DefaultFPS,
		},
		Desktop: DesktopConfig{
			Notify: false,
		},
		Theme: ThemeConfig{
			Accent: "12",
			Muted:  "8",
		},
		Serve: ServeConfig{
			Addr:   DefaultServeAddr,
			Path:   DefaultServePath,
			Domain: DefaultDomain,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "rvpanel", "config.toml")
}

// StatePath returns the path to the state directory.
// Uses XDG_STATE_HOME if set, otherwise ~/.local/state.
func StatePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "rvpanel")
}

// LogPath returns the path of the TUI log file.
func LogPath() string {
	return filepath.Join(StatePath(), "rvpanel.log")
}

// EnsureStateDir creates the state directory if it doesn't exist.
func EnsureStateDir() error {
	path := StatePath()
	if path == "" {
		return errors.New("unable to determine state directory")
	}
	return os.MkdirAll(path, 0755)
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
