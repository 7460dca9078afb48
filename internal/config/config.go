// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/sched/internal/ui/styles"
	"github.com/jeranaias/sched/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete sched configuration.
type Config struct {
	Display DisplayConfig     `toml:"display" json:"display"`
	Time    TimeConfig        `toml:"time" json:"time"`
	Palette PaletteConfig     `toml:"palette" json:"palette"`
	Tags    map[string]string `toml:"tags" json:"tags"`
	Watch   WatchConfig       `toml:"watch" json:"watch"`
	TUI     TUIConfig         `toml:"tui" json:"tui"`
}

// DisplayConfig controls how agendas are drawn.
type DisplayConfig struct {
	Theme   string `toml:"theme" json:"theme"`
	Compact bool   `toml:"compact" json:"compact"`
	Width   int    `toml:"width" json:"width"` // 0 = detect
}

// TimeConfig selects the timezone used for "now".
type TimeConfig struct {
	Timezone string `toml:"timezone" json:"timezone"` // IANA name, "" = local
}

// PaletteConfig points at an external tag color file.
type PaletteConfig struct {
	File string `toml:"file" json:"file"` // JSON or YAML
}

// WatchConfig tunes `sched watch`.
type WatchConfig struct {
	DebounceMs int `toml:"debounce_ms" json:"debounce_ms"`
}

// TUIConfig tunes `sched tui`.
type TUIConfig struct {
	RefreshSecs int `toml:"refresh_secs" json:"refresh_secs"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Theme: "dark",
		},
		Tags: map[string]string{},
		Watch: WatchConfig{
			DebounceMs: 200,
		},
		TUI: TUIConfig{
			RefreshSecs: 60,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the sched configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".sched"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
//
// When a file exists but cannot be decoded, Load returns the defaults
// together with the decode error so callers can warn and carry on.
func Load() (*Config, error) {
	var loadErr error

	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			cfg := &Config{}
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			} else {
				return finish(cfg)
			}
		}
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			cfg := &Config{}
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = errors.Join(loadErr, fmt.Errorf("failed to load JSON config: %w", err))
			} else {
				return finish(cfg)
			}
		}
	}

	cfg, err := finish(Default())
	if err != nil {
		return nil, err
	}
	return cfg, loadErr
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation. Unlike Load, a missing file is an error.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finish(cfg)
}

// finish applies env overrides and validates.
func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	fillDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Display.Theme == "" {
		cfg.Display.Theme = defaults.Display.Theme
	}
	if cfg.Tags == nil {
		cfg.Tags = map[string]string{}
	}
	if cfg.Watch.DebounceMs == 0 {
		cfg.Watch.DebounceMs = defaults.Watch.DebounceMs
	}
	if cfg.TUI.RefreshSecs == 0 {
		cfg.TUI.RefreshSecs = defaults.TUI.RefreshSecs
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
// RELIABILITY: Atomic write with fsync prevents a half-written config.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# sched configuration file\n")
	buf.WriteString("# Generated by `sched config init` - edit freely\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFileWithDir(path, buf.Bytes(), 0o600, 0o755); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFileWithDir(path, data, 0o600, 0o755); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
	Err     error // underlying cause, if any
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes every entry to errors.Is and errors.As.
func (e ValidateErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, v := range e {
		errs[i] = v
	}
	return errs
}

// maxDebounceMs caps watch.debounce_ms.
const maxDebounceMs = 10000

// Validate validates the configuration and returns any errors.
// An unknown theme name is not an error: it falls back to dark.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Display.Width < 0 {
		errs = append(errs, ValidationError{
			Field:   "display.width",
			Message: "width cannot be negative (0 detects the terminal)",
		})
	}

	if c.Time.Timezone != "" {
		if _, err := time.LoadLocation(c.Time.Timezone); err != nil {
			errs = append(errs, ValidationError{
				Field:   "time.timezone",
				Message: fmt.Sprintf("unknown timezone '%s'", c.Time.Timezone),
				Err:     err,
			})
		}
	}

	for _, tag := range styles.Palette(c.Tags).Tags() {
		if _, err := styles.ParseHex(c.Tags[tag]); err != nil {
			errs = append(errs, ValidationError{
				Field:   "tags." + tag,
				Message: err.Error(),
				Err:     err,
			})
		}
	}

	if c.Watch.DebounceMs < 0 || c.Watch.DebounceMs > maxDebounceMs {
		errs = append(errs, ValidationError{
			Field:   "watch.debounce_ms",
			Message: fmt.Sprintf("must be between 0 and %d", maxDebounceMs),
		})
	}

	if c.TUI.RefreshSecs < 0 {
		errs = append(errs, ValidationError{
			Field:   "tui.refresh_secs",
			Message: "cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - SCHED_THEME: overrides display.theme
//   - SCHED_TZ: overrides time.timezone
//   - SCHED_PALETTE: overrides palette.file
//   - SCHED_WIDTH: overrides display.width (ignored unless an integer)
func (c *Config) ApplyEnvOverrides() {
	if theme := os.Getenv("SCHED_THEME"); theme != "" {
		c.Display.Theme = theme
	}
	if tz := os.Getenv("SCHED_TZ"); tz != "" {
		c.Time.Timezone = tz
	}
	if palette := os.Getenv("SCHED_PALETTE"); palette != "" {
		c.Palette.File = palette
	}
	if width := os.Getenv("SCHED_WIDTH"); width != "" {
		if w, err := strconv.Atoi(strings.TrimSpace(width)); err == nil {
			c.Display.Width = w
		}
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// ThemeID resolves display.theme. The second result is false when the name
// was not recognized and dark was used instead.
func (c *Config) ThemeID() (styles.ThemeID, bool) {
	return styles.ThemeByName(c.Display.Theme)
}

// Location resolves time.timezone; empty means the local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Time.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Time.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Time.Timezone, err)
	}
	return loc, nil
}

// DebounceInterval returns watch.debounce_ms as a duration.
func (c *Config) DebounceInterval() time.Duration {
	return time.Duration(c.Watch.DebounceMs) * time.Millisecond
}

// RefreshInterval returns tui.refresh_secs as a duration.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.TUI.RefreshSecs) * time.Second
}

// String renders the configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("<config: %v>", err)
	}
	return buf.String()
}
