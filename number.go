package datefmt

import (
	"fmt"
	"io"
)

// write passes b to w, wrapping any failure in ErrWrite.
func write(w io.Writer, b []byte) (int, error) {
	n, err := w.Write(b)
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return n, nil
}

func writeString(w io.Writer, s string) (int, error) {
	n, err := io.WriteString(w, s)
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return n, nil
}

// writeZeroPadded writes value as at least width decimal digits, left-padded
// with '0'. Call sites keep value within width digits.
func writeZeroPadded(w io.Writer, value uint64, width int) (int, error) {
	return writeNumber(w, value, width, PadZero)
}

// writeNumber writes value padded to width according to pad.
func writeNumber(w io.Writer, value uint64, width int, pad Padding) (int, error) {
	var buf [24]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + value%10)
		value /= 10
		if value == 0 {
			break
		}
	}
	if pad != PadNone {
		fill := byte('0')
		if pad == PadSpace {
			fill = ' '
		}
		for len(buf)-i < width && i > 0 {
			i--
			buf[i] = fill
		}
	}
	return write(w, buf[i:])
}

func writeSign(w io.Writer, negative, mandatory bool) (int, error) {
	switch {
	case negative:
		return writeString(w, "-")
	case mandatory:
		return writeString(w, "+")
	}
	return 0, nil
}

func abs(v int) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
