package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the glassy settings file.
type Config struct {
	Path              string // resolved path of the file that was (or would be) read
	Catalog           string // file path or doublestar pattern; empty uses the embedded catalog
	Theme             string
	Watch             bool
	PollInterval      time.Duration
	ResetPageOnFilter bool
	Log               LogConfig
}

// LogConfig describes the rotating log file.
type LogConfig struct {
	File       string // "-" or "off" disables logging
	Level      string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Overrides carry command-line values that win over the file. Nil pointers
// leave the file value alone.
type Overrides struct {
	Catalog *string
	Theme   *string
	Watch   *bool
}

const (
	defaultConfigPath   = "~/.config/glassy/config.toml"
	defaultTheme        = "Glass"
	defaultPollInterval = 2 * time.Second
	defaultLogFile      = "~/.local/state/glassy/glassy.log"
	defaultLogLevel     = "info"
	defaultMaxSizeMB    = 10
	defaultMaxBackups   = 3
	defaultMaxAgeDays   = 28
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Theme:        defaultTheme,
		PollInterval: defaultPollInterval,
		Log: LogConfig{
			File:       mustExpand(defaultLogFile),
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
			MaxAgeDays: defaultMaxAgeDays,
		},
	}
}

// Load locates and parses the glassy config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	cfg.Path = resolved

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Catalog           string `toml:"catalog"`
		Theme             string `toml:"theme"`
		Watch             bool   `toml:"watch"`
		PollInterval      int    `toml:"poll_interval"`
		ResetPageOnFilter bool   `toml:"reset_page_on_filter"`
		Log               struct {
			File       string `toml:"file"`
			Level      string `toml:"level"`
			MaxSizeMB  int    `toml:"max_size_mb"`
			MaxBackups int    `toml:"max_backups"`
			MaxAgeDays int    `toml:"max_age_days"`
		} `toml:"log"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	var problems []error
	if raw.PollInterval < 0 {
		problems = append(problems, fmt.Errorf("poll_interval must not be negative, got %d", raw.PollInterval))
	}
	if raw.Log.MaxSizeMB < 0 || raw.Log.MaxBackups < 0 || raw.Log.MaxAgeDays < 0 {
		problems = append(problems, fmt.Errorf("log rotation limits must not be negative"))
	}
	if len(problems) > 0 {
		return Config{}, fmt.Errorf("invalid config %s: %w", resolved, errors.Join(problems...))
	}

	cfg.Catalog = expandCatalog(raw.Catalog)
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}
	cfg.Watch = raw.Watch
	if raw.PollInterval > 0 {
		cfg.PollInterval = time.Duration(raw.PollInterval) * time.Second
	}
	cfg.ResetPageOnFilter = raw.ResetPageOnFilter

	if file := strings.TrimSpace(raw.Log.File); file != "" {
		cfg.Log.File = expandLogFile(file)
	}
	if level := strings.TrimSpace(raw.Log.Level); level != "" {
		cfg.Log.Level = strings.ToLower(level)
	}
	if raw.Log.MaxSizeMB > 0 {
		cfg.Log.MaxSizeMB = raw.Log.MaxSizeMB
	}
	if raw.Log.MaxBackups > 0 {
		cfg.Log.MaxBackups = raw.Log.MaxBackups
	}
	if raw.Log.MaxAgeDays > 0 {
		cfg.Log.MaxAgeDays = raw.Log.MaxAgeDays
	}

	return cfg, nil
}

// Apply layers command-line overrides on top of the loaded values.
func (c *Config) Apply(o Overrides) {
	if o.Catalog != nil {
		c.Catalog = expandCatalog(*o.Catalog)
	}
	if o.Theme != nil {
		if theme := strings.TrimSpace(*o.Theme); theme != "" {
			c.Theme = theme
		}
	}
	if o.Watch != nil {
		c.Watch = *o.Watch
	}
}

// LoggingDisabled reports whether the log file is switched off.
func (l LogConfig) LoggingDisabled() bool {
	switch strings.ToLower(strings.TrimSpace(l.File)) {
	case "", "-", "off":
		return true
	}
	return false
}

func expandCatalog(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return mustExpand(value)
}

func expandLogFile(value string) string {
	switch strings.ToLower(value) {
	case "-", "off":
		return value
	}
	return mustExpand(value)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
