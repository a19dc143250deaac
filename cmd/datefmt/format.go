package main

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/bjaus/datefmt"
	"github.com/bjaus/datefmt/internal/treespec"
)

type formatOptions struct {
	format   string
	treePath string
	omit     []string
	utc      bool
}

func newFormatCmd(a *app) *cobra.Command {
	opts := &formatOptions{}
	cmd := &cobra.Command{
		Use:   "format [timestamp...]",
		Short: "Format timestamps (RFC 3339, Unix seconds or \"now\")",
		Long: `Format each timestamp on its own line. Timestamps are RFC 3339 strings,
integer Unix seconds, or "now". With no arguments the current time is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.selectFormat(opts)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{"now"}
			}
			projections, err := project(args, opts)
			if err != nil {
				return err
			}
			n, err := datefmt.WriteIter(cmd.OutOrStdout(), f, projections)
			a.logger.Debug("formatted", "inputs", len(args), "bytes", n)
			return err
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "format name: rfc2822, rfc3339, iso8601 or a configured tree")
	cmd.Flags().StringVar(&opts.treePath, "tree", "", "YAML file describing a format tree")
	cmd.Flags().StringSliceVar(&opts.omit, "omit", nil, "drop parts of the value: date, time, offset")
	cmd.Flags().BoolVar(&opts.utc, "utc", false, "convert timestamps to UTC first")
	return cmd
}

func (a *app) selectFormat(opts *formatOptions) (datefmt.Formattable, error) {
	if opts.treePath != "" {
		if opts.format != "" {
			return nil, errors.New("--format and --tree are mutually exclusive")
		}
		f, err := os.Open(opts.treePath)
		if err != nil {
			return nil, fmt.Errorf("opening tree file: %w", err)
		}
		defer f.Close()
		nodes, err := treespec.Decode(f)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("tree loaded", "path", opts.treePath, "nodes", len(nodes))
		return treespec.Build(nodes)
	}
	name := opts.format
	if name == "" {
		name = a.cfg.Format
	}
	a.logger.Debug("format selected", "name", name)
	return a.cfg.Resolve(name)
}

func parseTimestamp(s string, now func() time.Time) (time.Time, error) {
	if s == "now" {
		return now(), nil
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}

// project parses every argument up front so a bad timestamp fails before
// any output is written.
func project(args []string, opts *formatOptions) (iter.Seq[datefmt.Projection], error) {
	omit := map[string]bool{}
	for _, part := range opts.omit {
		switch part {
		case "date", "time", "offset":
			omit[part] = true
		default:
			return nil, fmt.Errorf("--omit: unknown part %q", part)
		}
	}

	projections := make([]datefmt.Projection, len(args))
	for i, arg := range args {
		t, err := parseTimestamp(arg, time.Now)
		if err != nil {
			return nil, err
		}
		if opts.utc {
			t = t.UTC()
		}
		p := datefmt.Project(t)
		if omit["date"] {
			p.Date = nil
		}
		if omit["time"] {
			p.Time = nil
		}
		if omit["offset"] {
			p.Offset = nil
		}
		projections[i] = p
	}

	return func(yield func(datefmt.Projection) bool) {
		for _, p := range projections {
			if !yield(p) {
				return
			}
		}
	}, nil
}
