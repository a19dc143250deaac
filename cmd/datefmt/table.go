package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type table struct {
	header []string
	rows   [][]string
	// maxWidth caps every column; 0 means unlimited.
	maxWidth int
	// fit shrinks the last column so a line is at most fit cells wide.
	fit      int
	bordered bool
}

func (t *table) widths() []int {
	n := len(t.header)
	for _, row := range t.rows {
		n = max(n, len(row))
	}
	widths := make([]int, n)
	measure := func(cells []string) {
		for i, cell := range cells {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	measure(t.header)
	for _, row := range t.rows {
		measure(row)
	}
	if t.maxWidth > 0 {
		for i := range widths {
			widths[i] = min(widths[i], t.maxWidth)
		}
	}
	if t.fit > 0 && n > 0 {
		used := 2 * (n - 1)
		if t.bordered {
			used = 3*n + 1
		}
		for _, width := range widths[:n-1] {
			used += width
		}
		widths[n-1] = max(3, min(widths[n-1], t.fit-used))
	}
	return widths
}

func (t *table) write(w io.Writer) error {
	widths := t.widths()
	if t.bordered {
		return t.writeBordered(w, widths)
	}
	if len(t.header) > 0 {
		if err := writePlainRow(w, t.header, widths); err != nil {
			return err
		}
		sep := make([]string, len(widths))
		for i, width := range widths {
			sep[i] = strings.Repeat("-", width)
		}
		if _, err := fmt.Fprintln(w, strings.Join(sep, "  ")); err != nil {
			return err
		}
	}
	for _, row := range t.rows {
		if err := writePlainRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writePlainRow(w io.Writer, cells []string, widths []int) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = fitCell(cell, width)
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	return err
}

func (t *table) writeBordered(w io.Writer, widths []int) error {
	if err := drawHLine(w, widths, "╭", "┬", "╮"); err != nil {
		return err
	}
	if len(t.header) > 0 {
		if err := drawRow(w, t.header, widths); err != nil {
			return err
		}
		if err := drawHLine(w, widths, "├", "┼", "┤"); err != nil {
			return err
		}
	}
	for _, row := range t.rows {
		if err := drawRow(w, row, widths); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, "╰", "┴", "╯")
}

func drawHLine(w io.Writer, widths []int, left, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawRow(w io.Writer, cells []string, widths []int) error {
	var sb strings.Builder
	sb.WriteString("│")
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" ")
		sb.WriteString(fitCell(cell, width))
		sb.WriteString(" │")
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

// fitCell truncates s to width display columns and pads it on the right.
func fitCell(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		tail := "..."
		if width <= 3 {
			tail = ""
		}
		s = runewidth.Truncate(s, width, tail)
	}
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
