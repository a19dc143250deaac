// Package config loads the datefmt command configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/bjaus/datefmt"
	"github.com/bjaus/datefmt/internal/treespec"
)

// ErrUnknownValue is returned when a config field names an unknown option.
var ErrUnknownValue = errors.New("unknown config value")

// Config is the command configuration.
type Config struct {
	// Format is the default format: a well-known name or a key of Trees.
	Format  string                     `toml:"format"`
	ISO8601 ISO8601Config              `toml:"iso8601"`
	Trees   map[string][]treespec.Node `toml:"trees,omitempty"`
}

// ISO8601Config mirrors [datefmt.Config] with named options.
type ISO8601Config struct {
	Components      string `toml:"components"` // date, time, offset, date_time, date_time_offset, time_offset
	Separators      bool   `toml:"separators"`
	SixDigitYear    bool   `toml:"six_digit_year"`
	DateKind        string `toml:"date_kind"`      // calendar, week, ordinal
	TimePrecision   string `toml:"time_precision"` // hour, minute, second
	DecimalDigits   int    `toml:"decimal_digits"`
	OffsetPrecision string `toml:"offset_precision"` // hour, minute
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Format: "rfc3339",
		ISO8601: ISO8601Config{
			Components:      "date_time_offset",
			Separators:      true,
			DateKind:        "calendar",
			TimePrecision:   "second",
			DecimalDigits:   9,
			OffsetPrecision: "minute",
		},
	}
}

var components = map[string]datefmt.Components{
	"date":             datefmt.FormatDate,
	"time":             datefmt.FormatTime,
	"offset":           datefmt.FormatOffset,
	"date_time":        datefmt.FormatDateTime,
	"date_time_offset": datefmt.FormatDateTimeOffset,
	"time_offset":      datefmt.FormatTimeOffset,
}

var dateKinds = map[string]datefmt.DateKind{
	"calendar": datefmt.DateCalendar,
	"week":     datefmt.DateWeek,
	"ordinal":  datefmt.DateOrdinal,
}

var timePrecisions = map[string]datefmt.TimePrecision{
	"hour":   datefmt.PrecisionHour,
	"minute": datefmt.PrecisionMinute,
	"second": datefmt.PrecisionSecond,
}

var offsetPrecisions = map[string]datefmt.OffsetPrecision{
	"hour":   datefmt.OffsetPrecisionHour,
	"minute": datefmt.OffsetPrecisionMinute,
}

func pick[T any](table map[string]T, field, name string) (T, error) {
	v, ok := table[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: iso8601.%s = %q", ErrUnknownValue, field, name)
	}
	return v, nil
}

// Format returns the ISO 8601 format the section describes.
func (c ISO8601Config) Format() (datefmt.ISO8601, error) {
	comps, err := pick(components, "components", c.Components)
	if err != nil {
		return datefmt.ISO8601{}, err
	}
	kind, err := pick(dateKinds, "date_kind", c.DateKind)
	if err != nil {
		return datefmt.ISO8601{}, err
	}
	tp, err := pick(timePrecisions, "time_precision", c.TimePrecision)
	if err != nil {
		return datefmt.ISO8601{}, err
	}
	op, err := pick(offsetPrecisions, "offset_precision", c.OffsetPrecision)
	if err != nil {
		return datefmt.ISO8601{}, err
	}
	return datefmt.NewISO8601(datefmt.Config{
		Components:      comps,
		NoSeparators:    !c.Separators,
		SixDigitYear:    c.SixDigitYear,
		DateKind:        kind,
		TimePrecision:   tp,
		DecimalDigits:   c.DecimalDigits,
		OffsetPrecision: op,
	})
}

// Resolve returns the format called name: a configured tree, "iso8601" with
// the configured options, or another well-known format.
func (c *Config) Resolve(name string) (datefmt.Formattable, error) {
	if nodes, ok := c.Trees[name]; ok {
		item, err := treespec.Build(nodes)
		if err != nil {
			return nil, fmt.Errorf("tree %q: %w", name, err)
		}
		return item, nil
	}
	if name == "iso8601" {
		return c.ISO8601.Format()
	}
	return datefmt.ParseWellKnown(name)
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from r. Fields missing from r keep their defaults.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Write encodes cfg to w.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from path. A missing file yields [Default].
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// Init writes cfg to path, creating parent directories. It refuses to
// overwrite an existing file.
func Init(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// DefaultPath returns the config file location under the user config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "datefmt", "config.toml"), nil
}
