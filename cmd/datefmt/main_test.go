package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/datefmt"
)

const stamp = "2024-03-14T01:02:03.12+05:30"

func run(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", configPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func missingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.toml")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFormatCommand(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args []string
		want string
	}{
		"default format": {args: []string{"format", stamp}, want: stamp + "\n"},
		"several":        {args: []string{"format", stamp, "2024-03-14T01:02:03Z"}, want: stamp + "\n2024-03-14T01:02:03Z\n"},
		"rfc2822":        {args: []string{"format", "-f", "rfc2822", stamp}, want: "Thu, 14 Mar 2024 01:02:03 +0530\n"},
		"iso8601":        {args: []string{"format", "-f", "iso8601", stamp}, want: "2024-03-14T01:02:03.120000000+05:30\n"},
		"utc":            {args: []string{"format", "--utc", stamp}, want: "2024-03-13T19:32:03.12Z\n"},
		"unix seconds":   {args: []string{"format", "-f", "rfc2822", "0"}, want: "Thu, 01 Jan 1970 00:00:00 +0000\n"},
		"negative unix":  {args: []string{"format", "-f", "rfc3339", "--", "-86400"}, want: "1969-12-31T00:00:00Z\n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out, err := run(t, missingConfig(t), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFormatCommandNow(t *testing.T) {
	t.Parallel()
	out, err := run(t, missingConfig(t), "format")
	require.NoError(t, err)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`, out)
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestFormatCommandErrors(t *testing.T) {
	t.Parallel()
	tree := writeFile(t, "tree.yaml", "- component: year\n")
	tests := map[string]struct {
		args    []string
		wantErr error
		msg     string
	}{
		"unknown format":  {args: []string{"format", "-f", "rfc822", stamp}, wantErr: datefmt.ErrUnknownFormat},
		"omitted slot":    {args: []string{"format", "--omit", "offset", stamp}, wantErr: datefmt.ErrInsufficientTypeInformation},
		"bad timestamp":   {args: []string{"format", "yesterday"}, msg: `parsing timestamp "yesterday"`},
		"unknown part":    {args: []string{"format", "--omit", "zone", stamp}, msg: `unknown part "zone"`},
		"tree and format": {args: []string{"format", "--tree", tree, "-f", "rfc3339", stamp}, msg: "mutually exclusive"},
		"missing tree":    {args: []string{"format", "--tree", filepath.Join(t.TempDir(), "none.yaml"), stamp}, msg: "opening tree file"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := run(t, missingConfig(t), tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestFormatCommandTree(t *testing.T) {
	t.Parallel()
	tree := writeFile(t, "tree.yaml", `
- component: weekday
  repr: short
- literal: " "
- component: day
  padding: none
- literal: " "
- component: month
  repr: long
- optional:
    - literal: ", "
    - component: second
`)
	out, err := run(t, missingConfig(t), "format", "--tree", tree, stamp, "2024-03-15T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "Thu 14 March, 03\nFri 15 March\n", out)
}

func TestFormatCommandConfiguredTree(t *testing.T) {
	t.Parallel()
	cfg := writeFile(t, "config.toml", `
format = "stamp"

[[trees.stamp]]
component = "unix_timestamp"
precision = "millisecond"
`)
	out, err := run(t, cfg, "format", stamp)
	require.NoError(t, err)
	assert.Equal(t, "1710358323120\n", out)
}

func TestFormatsCommand(t *testing.T) {
	t.Parallel()
	cfg := writeFile(t, "config.toml", `
[[trees.compact]]
component = "year"

[[trees.compact]]
component = "ordinal"

[[trees.old]]
component = "nope"
`)
	out, err := run(t, cfg, "formats")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Regexp(t, `^NAME\s+SOURCE\s+SAMPLE$`, lines[0])
	assert.Regexp(t, `^-+\s+-+\s+-+$`, lines[1])
	assert.Regexp(t, `^rfc2822\s+built-in\s+Thu, 14 Mar 2024 01:02:03 \+0530$`, lines[2])
	assert.Regexp(t, `^rfc3339\s+built-in\s+2024-03-14T01:02:03\.12\+05:30$`, lines[3])
	assert.Regexp(t, `^iso8601\s+built-in\s+2024-03-14T01:02:03\.120000000\+05:30$`, lines[4])
	assert.Regexp(t, `^compact\s+config\s+2024074$`, lines[5])
	assert.Regexp(t, `^old\s+config\s+<error: .*unknown component "nope">$`, lines[6])
}

func TestFormatsCommandUnrepresentable(t *testing.T) {
	t.Parallel()
	out, err := run(t, missingConfig(t), "formats", "--at", "1800-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.Contains(t, out, "<cannot represent year>")
}

func TestFormatsCommandBordered(t *testing.T) {
	t.Parallel()
	out, err := run(t, missingConfig(t), "formats", "--border", "--width", "10")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "╭"))
	assert.Contains(t, out, "│ rfc3339 │ built-in │ 2024-03... │")
}

func TestConfigCommands(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	out, err := run(t, path, "config", "init")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	_, err = run(t, path, "config", "init")
	require.ErrorIs(t, err, os.ErrExist)

	out, err = run(t, path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `format = "rfc3339"`)
	assert.Contains(t, out, "[iso8601]")
}

func TestTable(t *testing.T) {
	t.Parallel()
	tbl := &table{
		header: []string{"A", "BB"},
		rows:   [][]string{{"xyz", "1"}},
	}

	var buf bytes.Buffer
	require.NoError(t, tbl.write(&buf))
	assert.Equal(t, "A    BB\n---  --\nxyz  1\n", buf.String())

	buf.Reset()
	tbl.bordered = true
	require.NoError(t, tbl.write(&buf))
	want := strings.Join([]string{
		"╭─────┬────╮",
		"│ A   │ BB │",
		"├─────┼────┤",
		"│ xyz │ 1  │",
		"╰─────┴────╯",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestFitCell(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		s     string
		width int
		want  string
	}{
		"pads":           {s: "ab", width: 4, want: "ab  "},
		"exact":          {s: "abcd", width: 4, want: "abcd"},
		"ellipsis":       {s: "abcdefgh", width: 5, want: "ab..."},
		"narrow":         {s: "abcdef", width: 3, want: "abc"},
		"wide runes":     {s: "日本", width: 4, want: "日本"},
		"wide runes pad": {s: "日本", width: 6, want: "日本  "},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fitCell(tt.s, tt.width))
		})
	}
}

func TestTableFit(t *testing.T) {
	t.Parallel()
	tbl := &table{
		header: []string{"NAME", "SAMPLE"},
		rows:   [][]string{{"rfc3339", "2024-03-14T01:02:03.12+05:30"}},
		fit:    20,
	}
	var buf bytes.Buffer
	require.NoError(t, tbl.write(&buf))
	assert.Equal(t, "NAME     SAMPLE\n-------  -----------\nrfc3339  2024-03-...\n", buf.String())

	// The last column never shrinks below three cells.
	tbl.fit = 5
	assert.Equal(t, []int{7, 3}, tbl.widths())

	assert.Equal(t, 0, terminalWidth(&buf))
}
