package datefmt

import "io"

// RFC2822 formats as "Thu, 14 Mar 2024 01:02:03 +0530". It needs a date, a
// time and an offset, a year of at least 1900, and an offset without
// seconds.
type RFC2822 struct{}

// RFC3339 formats as "2024-03-14T01:02:03.12+05:30", writing "Z" for UTC and
// only as many fractional digits as the nanoseconds need. It needs a date, a
// time and an offset, a year in [0, 9999], and an offset without seconds.
type RFC3339 struct{}

// wellKnownWriter accumulates bytes written and stops at the first failure,
// so fixed layouts read as a flat sequence of fields.
type wellKnownWriter struct {
	w   io.Writer
	n   int
	err error
}

func (ww *wellKnownWriter) str(s string) {
	if ww.err != nil {
		return
	}
	var m int
	m, ww.err = writeString(ww.w, s)
	ww.n += m
}

func (ww *wellKnownWriter) num(v uint64, width int) {
	if ww.err != nil {
		return
	}
	var m int
	m, ww.err = writeZeroPadded(ww.w, v, width)
	ww.n += m
}

func (ww *wellKnownWriter) sign(negative bool) {
	if negative {
		ww.str("-")
	} else {
		ww.str("+")
	}
}

func (RFC2822) formatInto(w io.Writer, _ bool, p Projection) (int, error) {
	if p.Date == nil || p.Time == nil || p.Offset == nil {
		return 0, ErrInsufficientTypeInformation
	}
	d, t, o := *p.Date, *p.Time, *p.Offset

	if d.Year() < 1900 {
		return 0, invalidComponent("year")
	}
	if o.Seconds() != 0 {
		return 0, invalidComponent("offset_second")
	}

	ww := &wellKnownWriter{w: w}
	ww.str(d.Weekday().String()[:3])
	ww.str(", ")
	ww.num(uint64(d.Day()), 2)
	ww.str(" ")
	ww.str(d.Month().String()[:3])
	ww.str(" ")
	ww.num(uint64(d.Year()), 4)
	ww.str(" ")
	ww.num(uint64(t.Hour()), 2)
	ww.str(":")
	ww.num(uint64(t.Minute()), 2)
	ww.str(":")
	ww.num(uint64(t.Second()), 2)
	ww.str(" ")
	ww.sign(o.IsNegative())
	ww.num(abs(o.Hours()), 2)
	ww.num(abs(o.Minutes()), 2)
	return ww.n, ww.err
}

func (RFC3339) formatInto(w io.Writer, _ bool, p Projection) (int, error) {
	if p.Date == nil || p.Time == nil || p.Offset == nil {
		return 0, ErrInsufficientTypeInformation
	}
	d, t, o := *p.Date, *p.Time, *p.Offset

	if d.Year() < 0 || d.Year() >= 10_000 {
		return 0, invalidComponent("year")
	}
	if o.Seconds() != 0 {
		return 0, invalidComponent("offset_second")
	}

	ww := &wellKnownWriter{w: w}
	ww.num(uint64(d.Year()), 4)
	ww.str("-")
	ww.num(uint64(d.Month()), 2)
	ww.str("-")
	ww.num(uint64(d.Day()), 2)
	ww.str("T")
	ww.num(uint64(t.Hour()), 2)
	ww.str(":")
	ww.num(uint64(t.Minute()), 2)
	ww.str(":")
	ww.num(uint64(t.Second()), 2)

	if t.Nanosecond() != 0 {
		width, v := DigitsOneOrMore.repr(t.Nanosecond())
		ww.str(".")
		ww.num(v, width)
	}

	if o.IsUTC() {
		ww.str("Z")
		return ww.n, ww.err
	}
	ww.sign(o.IsNegative())
	ww.num(abs(o.Hours()), 2)
	ww.str(":")
	ww.num(abs(o.Minutes()), 2)
	return ww.n, ww.err
}
