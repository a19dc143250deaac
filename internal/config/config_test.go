package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/datefmt"
	"github.com/bjaus/datefmt/internal/config"
	"github.com/bjaus/datefmt/internal/treespec"
)

var sample = datefmt.Project(time.Date(2024, time.March, 14, 1, 2, 3, 0, time.FixedZone("", 5*3600+30*60)))

func TestManagerRead(t *testing.T) {
	t.Parallel()
	const doc = `
format = "short"

[iso8601]
components = "date"
date_kind = "week"

[[trees.short]]
component = "year"

[[trees.short]]
literal = "/"

[[trees.short]]
component = "ordinal"
padding = "none"
`
	m := &config.Manager{}
	cfg, err := m.Read(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "short", cfg.Format)
	assert.Equal(t, "date", cfg.ISO8601.Components)
	assert.Equal(t, "week", cfg.ISO8601.DateKind)
	// Fields absent from the file keep their defaults.
	assert.True(t, cfg.ISO8601.Separators)
	assert.Equal(t, 9, cfg.ISO8601.DecimalDigits)

	f, err := cfg.Resolve(cfg.Format)
	require.NoError(t, err)
	got, err := datefmt.FormatString(f, sample)
	require.NoError(t, err)
	assert.Equal(t, "2024/74", got)

	iso, err := cfg.Resolve("iso8601")
	require.NoError(t, err)
	got, err = datefmt.FormatString(iso, sample)
	require.NoError(t, err)
	assert.Equal(t, "2024-W11-4", got)
}

func TestManagerReadInvalid(t *testing.T) {
	t.Parallel()
	m := &config.Manager{}
	_, err := m.Read(strings.NewReader("format = ["))
	require.Error(t, err)
}

func TestManagerRoundTrip(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Trees = map[string][]treespec.Node{
		"clock": {
			{Component: "hour"},
			treespec.Lit(":"),
			{Component: "minute"},
			{Optional: []treespec.Node{treespec.Lit(":"), {Component: "second"}}},
		},
	}

	var buf bytes.Buffer
	m := &config.Manager{}
	require.NoError(t, m.Write(&buf, cfg))

	back, err := m.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)

	f, err := back.Resolve("clock")
	require.NoError(t, err)
	got, err := datefmt.FormatString(f, sample)
	require.NoError(t, err)
	assert.Equal(t, "01:02:03", got)
}

func TestManagerRoundTripEmptyFirst(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Trees = map[string][]treespec.Node{
		"e": {treespec.Lit("a"), {First: []treespec.Node{}}},
	}

	var buf bytes.Buffer
	m := &config.Manager{}
	require.NoError(t, m.Write(&buf, cfg))
	assert.Contains(t, buf.String(), "first = []")

	back, err := m.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)

	f, err := back.Resolve("e")
	require.NoError(t, err)
	got, err := datefmt.FormatString(f, sample)
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}

func TestResolve(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Trees = map[string][]treespec.Node{
		"rfc3339": {treespec.Lit("shadowed")},
		"broken":  {{Component: "nope"}},
	}
	tests := map[string]struct {
		name    string
		want    string
		wantErr error
	}{
		"tree shadows well-known": {name: "rfc3339", want: "shadowed"},
		"well-known":              {name: "rfc2822", want: "Thu, 14 Mar 2024 01:02:03 +0530"},
		"iso8601 defaults":        {name: "iso8601", want: "2024-03-14T01:02:03.000000000+05:30"},
		"unknown":                 {name: "rfc822", wantErr: datefmt.ErrUnknownFormat},
		"broken tree":             {name: "broken", wantErr: treespec.ErrInvalidNode},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			f, err := cfg.Resolve(tt.name)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			got, err := datefmt.FormatString(f, sample)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestISO8601ConfigFormat(t *testing.T) {
	t.Parallel()
	c := config.Default().ISO8601
	c.Separators = false
	c.DecimalDigits = 0
	c.OffsetPrecision = "hour"
	c.Components = "time_offset"
	c.TimePrecision = "minute"
	f, err := c.Format()
	require.NoError(t, err)
	assert.Equal(t, datefmt.Config{
		Components:      datefmt.FormatTimeOffset,
		NoSeparators:    true,
		TimePrecision:   datefmt.PrecisionMinute,
		OffsetPrecision: datefmt.OffsetPrecisionHour,
	}, f.Config())
}

func TestISO8601ConfigFormatErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]func(*config.ISO8601Config){
		"components":       func(c *config.ISO8601Config) { c.Components = "everything" },
		"date kind":        func(c *config.ISO8601Config) { c.DateKind = "julian" },
		"time precision":   func(c *config.ISO8601Config) { c.TimePrecision = "day" },
		"offset precision": func(c *config.ISO8601Config) { c.OffsetPrecision = "second" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c := config.Default().ISO8601
			mutate(&c)
			_, err := c.Format()
			require.ErrorIs(t, err, config.ErrUnknownValue)
		})
	}

	c := config.Default().ISO8601
	c.DecimalDigits = 12
	_, err := c.Format()
	require.ErrorIs(t, err, datefmt.ErrInvalidConfig)
}

func TestReadFromFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.ReadFromFile(filepath.Join(dir, "absent.toml"))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("init then read", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "nested", "config.toml")
		want := config.Default()
		want.Format = "rfc2822"
		require.NoError(t, config.Init(path, want))

		got, err := config.ReadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		// Init never overwrites.
		require.ErrorIs(t, config.Init(path, config.Default()), os.ErrExist)
	})

	t.Run("malformed file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("format = "), 0o644))
		_, err := config.ReadFromFile(path)
		require.ErrorContains(t, err, path)
	})
}
