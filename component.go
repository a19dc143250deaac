package datefmt

import (
	"fmt"
	"io"
	"time"
)

// Component is a placeholder that renders one field of a [Projection]. The
// set of components is closed: [Day], [Month], [Ordinal], [Weekday],
// [WeekNumber], [Year], [Hour], [Minute], [Period], [Second], [Subsecond],
// [OffsetHour], [OffsetMinute], [OffsetSecond], [Ignore] and
// [UnixTimestamp]. The zero value of each carries its default modifiers.
type Component interface {
	Item
	component()
}

// Day is the day of the month, 2 digits.
type Day struct {
	Padding Padding
}

// Month is the month of the year, numeric or by English name.
type Month struct {
	Padding Padding
	Repr    MonthRepr
}

// Ordinal is the day of the year, 3 digits.
type Ordinal struct {
	Padding Padding
}

// Weekday is the day of the week, by English name or number.
type Weekday struct {
	Repr WeekdayRepr
	// ZeroIndexed numbers the first day 0 instead of 1. Numeric reprs only.
	ZeroIndexed bool
}

// WeekNumber is the week of the year, 2 digits.
type WeekNumber struct {
	Padding Padding
	Repr    WeekNumberRepr
}

// Year is the calendar year, or the ISO week-numbering year when
// ISOWeekBased is set.
type Year struct {
	Padding       Padding
	Repr          YearRepr
	ISOWeekBased  bool
	SignMandatory bool
}

// Hour is the hour of the day, 2 digits.
type Hour struct {
	Padding    Padding
	TwelveHour bool
}

// Minute is the minute of the hour, 2 digits.
type Minute struct {
	Padding Padding
}

// Period is AM or PM.
type Period struct {
	Lowercase bool
}

// Second is the second of the minute, 2 digits.
type Second struct {
	Padding Padding
}

// Subsecond is the fraction of the second, without the decimal point.
type Subsecond struct {
	Digits SubsecondDigits
}

// OffsetHour is the whole hours of the UTC offset with its sign.
type OffsetHour struct {
	Padding      Padding
	OmitPlusSign bool
}

// OffsetMinute is the minutes past the hour of the UTC offset, unsigned.
type OffsetMinute struct {
	Padding Padding
}

// OffsetSecond is the seconds past the minute of the UTC offset, unsigned.
type OffsetSecond struct {
	Padding Padding
}

// Ignore skips Count bytes when parsing. It writes nothing.
type Ignore struct {
	Count int
}

// UnixTimestamp is the signed time since the Unix epoch. It needs a date, a
// time and an offset.
type UnixTimestamp struct {
	Precision     UnixPrecision
	SignMandatory bool
}

// componentIgnorable reports whether c carries only a default value under p.
func componentIgnorable(c Component, p Projection) bool {
	switch c := c.(type) {
	case Day, Month, Ordinal, Weekday, WeekNumber, Year, Hour, Minute, Period, Ignore, UnixTimestamp:
		return false
	case Second:
		return p.Time == nil || p.Time.Second() == 0
	case Subsecond:
		if p.Time == nil {
			return true
		}
		_, v := c.Digits.repr(p.Time.Nanosecond())
		return v == 0
	case OffsetHour:
		return p.Offset == nil || p.Offset.IsUTC()
	case OffsetMinute:
		return p.Offset == nil || p.Offset.Minutes() == 0
	case OffsetSecond:
		return p.Offset == nil || p.Offset.Seconds() == 0
	default:
		panic(fmt.Sprintf("datefmt: unknown component %T", c))
	}
}

// formatComponent renders c from the slot of p it needs.
func formatComponent(w io.Writer, c Component, p Projection) (int, error) {
	switch c := c.(type) {
	case Day:
		if p.Date == nil {
			return 0, ErrInsufficientTypeInformation
		}
		return writeNumber(w, uint64(p.Date.Day()), 2, c.Padding)
	case Month:
		if p.Date == nil {
			return 0, ErrInsufficientTypeInformation
		}
		return fmtMonth(w, *p.Date, c)
	case Ordinal:
		if p.Date == nil {
			return 0, ErrInsufficientTypeInformation
		}
		return writeNumber(w, uint64(p.Date.Ordinal()), 3, c.Padding)
	case Weekday:
		if p.Date == nil {
			return 0, ErrInsufficientTypeInformation
		}
		return fmtWeekday(w, *p.Date, c)
	case WeekNumber:
		if p.Date == nil {
			return 0, ErrInsufficientTypeInformation
		}
		return fmtWeekNumber(w, *p.Date, c)
	case Year:
		if p.Date == nil {
			return 0, ErrInsufficientTypeInformation
		}
		return fmtYear(w, *p.Date, c)
	case Hour:
		if p.Time == nil {
			return 0, ErrInsufficientTypeInformation
		}
		h := p.Time.Hour()
		if c.TwelveHour {
			h %= 12
			if h == 0 {
				h = 12
			}
		}
		return writeNumber(w, uint64(h), 2, c.Padding)
	case Minute:
		if p.Time == nil {
			return 0, ErrInsufficientTypeInformation
		}
		return writeNumber(w, uint64(p.Time.Minute()), 2, c.Padding)
	case Period:
		if p.Time == nil {
			return 0, ErrInsufficientTypeInformation
		}
		return fmtPeriod(w, *p.Time, c)
	case Second:
		if p.Time == nil {
			return 0, ErrInsufficientTypeInformation
		}
		return writeNumber(w, uint64(p.Time.Second()), 2, c.Padding)
	case Subsecond:
		if p.Time == nil {
			return 0, ErrInsufficientTypeInformation
		}
		width, v := c.Digits.repr(p.Time.Nanosecond())
		return writeZeroPadded(w, v, width)
	case OffsetHour:
		if p.Offset == nil {
			return 0, ErrInsufficientTypeInformation
		}
		n, err := writeSign(w, p.Offset.IsNegative(), !c.OmitPlusSign)
		if err != nil {
			return n, err
		}
		m, err := writeNumber(w, abs(p.Offset.Hours()), 2, c.Padding)
		return n + m, err
	case OffsetMinute:
		if p.Offset == nil {
			return 0, ErrInsufficientTypeInformation
		}
		return writeNumber(w, abs(p.Offset.Minutes()), 2, c.Padding)
	case OffsetSecond:
		if p.Offset == nil {
			return 0, ErrInsufficientTypeInformation
		}
		return writeNumber(w, abs(p.Offset.Seconds()), 2, c.Padding)
	case Ignore:
		return 0, nil
	case UnixTimestamp:
		if p.Date == nil || p.Time == nil || p.Offset == nil {
			return 0, ErrInsufficientTypeInformation
		}
		return fmtUnixTimestamp(w, OffsetDateTime{Date: *p.Date, Time: *p.Time, Offset: *p.Offset}, c)
	default:
		panic(fmt.Sprintf("datefmt: unknown component %T", c))
	}
}

func fmtMonth(w io.Writer, d Date, c Month) (int, error) {
	switch c.Repr {
	case MonthLong:
		return writeString(w, d.Month().String())
	case MonthShort:
		return writeString(w, d.Month().String()[:3])
	default:
		return writeNumber(w, uint64(d.Month()), 2, c.Padding)
	}
}

func fmtWeekday(w io.Writer, d Date, c Weekday) (int, error) {
	index := uint64(1)
	if c.ZeroIndexed {
		index = 0
	}
	switch c.Repr {
	case WeekdayShort:
		return writeString(w, d.Weekday().String()[:3])
	case WeekdaySunday:
		return writeNumber(w, uint64(d.Weekday())+index, 1, PadNone)
	case WeekdayMonday:
		return writeNumber(w, uint64(daysFromMonday(d.Weekday()))+index, 1, PadNone)
	default:
		return writeString(w, d.Weekday().String())
	}
}

func fmtWeekNumber(w io.Writer, d Date, c WeekNumber) (int, error) {
	var week int
	switch c.Repr {
	case WeekNumberSunday:
		week = d.SundayWeek()
	case WeekNumberMonday:
		week = d.MondayWeek()
	default:
		_, week = d.ISOWeek()
	}
	return writeNumber(w, uint64(week), 2, c.Padding)
}

func fmtYear(w io.Writer, d Date, c Year) (int, error) {
	year := d.Year()
	if c.ISOWeekBased {
		year, _ = d.ISOWeek()
	}
	if c.Repr == YearLastTwo {
		return writeNumber(w, abs(year%100), 2, c.Padding)
	}
	width := 4
	switch v := abs(year); {
	case v >= 100_000:
		width = 6
	case v >= 10_000:
		width = 5
	}
	// Years past four digits always carry a sign.
	n, err := writeSign(w, year < 0, c.SignMandatory || year >= 10_000)
	if err != nil {
		return n, err
	}
	m, err := writeNumber(w, abs(year), width, c.Padding)
	return n + m, err
}

func fmtPeriod(w io.Writer, t Time, c Period) (int, error) {
	s := "AM"
	if t.Hour() >= 12 {
		s = "PM"
	}
	if c.Lowercase {
		s = string(s[0]+'a'-'A') + "m"
	}
	return writeString(w, s)
}

// fmtUnixTimestamp writes seconds floored toward negative infinity and finer
// units truncated toward zero. The magnitude is assembled from whole seconds
// and a fraction so nanosecond timestamps never overflow.
func fmtUnixTimestamp(w io.Writer, dt OffsetDateTime, c UnixTimestamp) (int, error) {
	t := dt.Std()
	sec := t.Unix()
	if c.Precision == UnixSecond {
		n, err := writeSign(w, sec < 0, c.SignMandatory)
		if err != nil {
			return n, err
		}
		m, err := writeNumber(w, abs64(sec), 0, PadNone)
		return n + m, err
	}

	nsec := int64(t.Nanosecond())
	negative := sec < 0
	if negative && nsec > 0 {
		sec++
		nsec = int64(time.Second) - nsec
	}
	digits := c.Precision.digits()
	frac := uint64(nsec) / pow10[9-digits]
	whole := abs64(sec)
	if whole == 0 && frac == 0 {
		negative = false
	}

	n, err := writeSign(w, negative, c.SignMandatory)
	if err != nil {
		return n, err
	}
	if whole == 0 {
		m, err := writeNumber(w, frac, 0, PadNone)
		return n + m, err
	}
	m, err := writeNumber(w, whole, 0, PadNone)
	n += m
	if err != nil {
		return n, err
	}
	m, err = writeZeroPadded(w, frac, digits)
	return n + m, err
}

func abs64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

func (Day) component()           {}
func (Month) component()         {}
func (Ordinal) component()       {}
func (Weekday) component()       {}
func (WeekNumber) component()    {}
func (Year) component()          {}
func (Hour) component()          {}
func (Minute) component()        {}
func (Period) component()        {}
func (Second) component()        {}
func (Subsecond) component()     {}
func (OffsetHour) component()    {}
func (OffsetMinute) component()  {}
func (OffsetSecond) component()  {}
func (Ignore) component()        {}
func (UnixTimestamp) component() {}

func (Day) item()           {}
func (Month) item()         {}
func (Ordinal) item()       {}
func (Weekday) item()       {}
func (WeekNumber) item()    {}
func (Year) item()          {}
func (Hour) item()          {}
func (Minute) item()        {}
func (Period) item()        {}
func (Second) item()        {}
func (Subsecond) item()     {}
func (OffsetHour) item()    {}
func (OffsetMinute) item()  {}
func (OffsetSecond) item()  {}
func (Ignore) item()        {}
func (UnixTimestamp) item() {}

func (c Day) formatInto(w io.Writer, s bool, p Projection) (int, error) {
	return formatItem(w, c, s, p)
}

func (c Month) formatInto(w io.Writer, s bool, p Projection) (int, error) {
	return formatItem(w, c, s, p)
}

func (c Ordinal) formatInto(w io.Writer, s bool, p Projection) (int, error) {
	return formatItem(w, c, s, p)
}

func (c Weekday) formatInto(w io.Writer, s bool, p Projection) (int, error) {
	return formatItem(w, c, s, p)
}

func (c WeekNumber) formatInto(w io.Writer, s bool, p Projection) (int, error) {
	return formatItem(w, c, s, p)
}

func (c Year) formatInto(w io.Writer, s bool, p Projection) (int, error) {
	return formatItem(w, c, s, p)
}

func (c Hour) formatInto(w io.Writer, s bool, p Projection) (int, error) {
	return formatItem(w, c, s, p)
}

func (c Minute) formatInto(w io.Writer, s bool, p Projection) (int, error) {
	return formatItem(w, c, s, p)
}

func (c Period) formatInto(w io.Writer, s bool, p Projection) (int, error) {
	return formatItem(w, c, s, p)
}

func (c Second) formatInto(w io.Writer, s bool, p Projection) (int, error) {
	return formatItem(w, c, s, p)
}

func (c Subsecond) formatInto(w io.Writer, s bool, p Projection) (int, error) {
	return formatItem(w, c, s, p)
}

func (c OffsetHour) formatInto(w io.Writer, s bool, p Projection) (int, error) {
	return formatItem(w, c, s, p)
}

func (c OffsetMinute) formatInto(w io.Writer, s bool, p Projection) (int, error) {
	return formatItem(w, c, s, p)
}

func (c OffsetSecond) formatInto(w io.Writer, s bool, p Projection) (int, error) {
	return formatItem(w, c, s, p)
}

func (c Ignore) formatInto(w io.Writer, s bool, p Projection) (int, error) {
	return formatItem(w, c, s, p)
}

func (c UnixTimestamp) formatInto(w io.Writer, s bool, p Projection) (int, error) {
	return formatItem(w, c, s, p)
}
