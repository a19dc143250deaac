package datefmt

import (
	"io"
	"iter"
)

// WriteIter formats each projection from seq with f and writes it to w as it
// arrives, one per line. It stops at the first error and returns the number
// of bytes written so far.
func WriteIter(w io.Writer, f Formattable, seq iter.Seq[Projection]) (int, error) {
	var n int
	var streamErr error
	seq(func(p Projection) bool {
		m, err := Format(w, f, p)
		n += m
		if err != nil {
			streamErr = err
			return false
		}
		m, err = writeString(w, "\n")
		n += m
		if err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return n, streamErr
}

// WriteChan formats projections from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, f Formattable, ch <-chan Projection) (int, error) {
	return WriteIter(w, f, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
