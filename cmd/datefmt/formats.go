package main

import (
	"errors"
	"io"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bjaus/datefmt"
)

const sampleTimestamp = "2024-03-14T01:02:03.12+05:30"

func newFormatsCmd(a *app) *cobra.Command {
	var (
		at       string
		bordered bool
		width    int
	)
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List available formats with a sample rendering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := parseTimestamp(at, time.Now)
			if err != nil {
				return err
			}
			p := datefmt.Project(t)

			tbl := &table{
				header:   []string{"NAME", "SOURCE", "SAMPLE"},
				maxWidth: width,
				fit:      terminalWidth(cmd.OutOrStdout()),
				bordered: bordered,
			}
			for _, name := range datefmt.WellKnownNames() {
				if _, shadowed := a.cfg.Trees[name]; shadowed {
					continue
				}
				tbl.rows = append(tbl.rows, a.sampleRow(name, "built-in", p))
			}
			for _, name := range slices.Sorted(maps.Keys(a.cfg.Trees)) {
				tbl.rows = append(tbl.rows, a.sampleRow(name, "config", p))
			}
			return tbl.write(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&at, "at", sampleTimestamp, "timestamp to render samples for")
	cmd.Flags().BoolVar(&bordered, "border", false, "draw a bordered table")
	cmd.Flags().IntVar(&width, "width", 0, "truncate columns to this many cells (0 for no limit)")
	return cmd
}

func (a *app) sampleRow(name, source string, p datefmt.Projection) []string {
	sample, err := a.sample(name, p)
	if err != nil {
		a.logger.Warn("format failed", "name", name, "err", err)
		var ce *datefmt.ComponentError
		if errors.As(err, &ce) {
			return []string{name, source, "<cannot represent " + ce.Component + ">"}
		}
		return []string{name, source, "<error: " + err.Error() + ">"}
	}
	return []string{name, source, sample}
}

func (a *app) sample(name string, p datefmt.Projection) (string, error) {
	f, err := a.cfg.Resolve(name)
	if err != nil {
		return "", err
	}
	return datefmt.FormatString(f, p)
}

// terminalWidth returns the width of w when it is a terminal, or 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
