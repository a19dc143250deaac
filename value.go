package datefmt

import (
	"fmt"
	"time"
)

// Date is a calendar date in the proleptic Gregorian calendar. The zero value
// is January 1 of year 1.
type Date struct {
	t time.Time
}

// Year bounds accepted by [NewDate].
const (
	MinYear = -999_999
	MaxYear = 999_999
)

// NewDate returns the date for the given year, month and day. Unlike
// [time.Date], out-of-range values are rejected instead of normalized.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: year %d out of range", ErrInvalidValue, year)
	}
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: month %d out of range", ErrInvalidValue, month)
	}
	if day < 1 || day > daysIn(year, month) {
		return Date{}, fmt.Errorf("%w: day %d out of range for %s %d", ErrInvalidValue, day, month, year)
	}
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}, nil
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// Ordinal returns the day of the year, 1 through 366.
func (d Date) Ordinal() int { return d.t.YearDay() }

// ISOWeek returns the ISO 8601 week-numbering year and week.
func (d Date) ISOWeek() (year, week int) { return d.t.ISOWeek() }

// SundayWeek returns the week of the year where week 1 starts on the first
// Sunday. Days before it are in week 0.
func (d Date) SundayWeek() int {
	return (d.Ordinal() - int(d.Weekday()) + 6) / 7
}

// MondayWeek returns the week of the year where week 1 starts on the first
// Monday. Days before it are in week 0.
func (d Date) MondayWeek() int {
	return (d.Ordinal() - daysFromMonday(d.Weekday()) + 6) / 7
}

func daysFromMonday(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// Time is a time of day with nanosecond precision. The zero value is
// midnight.
type Time struct {
	hour, minute, second uint8
	nanosecond           uint32
}

// NewTime returns the time of day for the given clock values.
func NewTime(hour, minute, second, nanosecond int) (Time, error) {
	switch {
	case hour < 0 || hour > 23:
		return Time{}, fmt.Errorf("%w: hour %d out of range", ErrInvalidValue, hour)
	case minute < 0 || minute > 59:
		return Time{}, fmt.Errorf("%w: minute %d out of range", ErrInvalidValue, minute)
	case second < 0 || second > 59:
		return Time{}, fmt.Errorf("%w: second %d out of range", ErrInvalidValue, second)
	case nanosecond < 0 || nanosecond > 999_999_999:
		return Time{}, fmt.Errorf("%w: nanosecond %d out of range", ErrInvalidValue, nanosecond)
	}
	return Time{
		hour:       uint8(hour),
		minute:     uint8(minute),
		second:     uint8(second),
		nanosecond: uint32(nanosecond),
	}, nil
}

// TimeOf returns the wall clock of t in t's location.
func TimeOf(t time.Time) Time {
	h, m, s := t.Clock()
	return Time{hour: uint8(h), minute: uint8(m), second: uint8(s), nanosecond: uint32(t.Nanosecond())}
}

func (t Time) Hour() int       { return int(t.hour) }
func (t Time) Minute() int     { return int(t.minute) }
func (t Time) Second() int     { return int(t.second) }
func (t Time) Nanosecond() int { return int(t.nanosecond) }

// Offset is a fixed UTC offset. All three fields share the same sign. The
// zero value is UTC.
type Offset struct {
	hours, minutes, seconds int8
}

// UTC is the zero offset.
var UTC = Offset{}

// NewOffset returns the offset of hours, minutes and seconds east of UTC.
// Non-zero fields must agree in sign.
func NewOffset(hours, minutes, seconds int) (Offset, error) {
	switch {
	case hours < -25 || hours > 25:
		return Offset{}, fmt.Errorf("%w: offset hours %d out of range", ErrInvalidValue, hours)
	case minutes < -59 || minutes > 59:
		return Offset{}, fmt.Errorf("%w: offset minutes %d out of range", ErrInvalidValue, minutes)
	case seconds < -59 || seconds > 59:
		return Offset{}, fmt.Errorf("%w: offset seconds %d out of range", ErrInvalidValue, seconds)
	}
	neg := hours < 0 || minutes < 0 || seconds < 0
	pos := hours > 0 || minutes > 0 || seconds > 0
	if neg && pos {
		return Offset{}, fmt.Errorf("%w: offset fields have mixed signs", ErrInvalidValue)
	}
	return Offset{hours: int8(hours), minutes: int8(minutes), seconds: int8(seconds)}, nil
}

// OffsetFromSeconds returns the offset of total seconds east of UTC.
func OffsetFromSeconds(total int) (Offset, error) {
	return NewOffset(total/3600, total/60%60, total%60)
}

// OffsetOf returns the UTC offset of t's location at t.
func OffsetOf(t time.Time) Offset {
	_, secs := t.Zone()
	o, err := OffsetFromSeconds(secs)
	if err != nil {
		// Zone offsets beyond ±25h do not exist in practice.
		panic(err)
	}
	return o
}

// Hours returns the whole hours of the offset.
func (o Offset) Hours() int { return int(o.hours) }

// Minutes returns the minutes past the hour, carrying the offset's sign.
func (o Offset) Minutes() int { return int(o.minutes) }

// Seconds returns the seconds past the minute, carrying the offset's sign.
func (o Offset) Seconds() int { return int(o.seconds) }

// TotalSeconds returns the offset in seconds east of UTC.
func (o Offset) TotalSeconds() int {
	return int(o.hours)*3600 + int(o.minutes)*60 + int(o.seconds)
}

// IsUTC reports whether the offset is exactly zero.
func (o Offset) IsUTC() bool { return o == UTC }

// IsNegative reports whether the offset is west of UTC.
func (o Offset) IsNegative() bool {
	return o.hours < 0 || o.minutes < 0 || o.seconds < 0
}

func (o Offset) location() *time.Location {
	return time.FixedZone("", o.TotalSeconds())
}

// Projection is the input to a formatting call. Each slot is independently
// present or nil; formatting fails with [ErrInsufficientTypeInformation] when
// a description needs a slot that is nil.
type Projection struct {
	Date   *Date
	Time   *Time
	Offset *Offset
}

// Project returns a projection with all three slots filled from t.
func Project(t time.Time) Projection {
	d, c, o := DateOf(t), TimeOf(t), OffsetOf(t)
	return Projection{Date: &d, Time: &c, Offset: &o}
}

// DateOnly returns a projection holding only d.
func DateOnly(d Date) Projection { return Projection{Date: &d} }

// TimeOnly returns a projection holding only t.
func TimeOnly(t Time) Projection { return Projection{Time: &t} }

// OffsetOnly returns a projection holding only o.
func OffsetOnly(o Offset) Projection { return Projection{Offset: &o} }

// WithDate returns a copy of p with the date slot set.
func (p Projection) WithDate(d Date) Projection {
	p.Date = &d
	return p
}

// WithTime returns a copy of p with the time slot set.
func (p Projection) WithTime(t Time) Projection {
	p.Time = &t
	return p
}

// WithOffset returns a copy of p with the offset slot set.
func (p Projection) WithOffset(o Offset) Projection {
	p.Offset = &o
	return p
}

// DateTime is a date and time of day without an offset.
type DateTime struct {
	Date Date
	Time Time
}

// OffsetDateTime is a date and time of day at a fixed UTC offset.
type OffsetDateTime struct {
	Date   Date
	Time   Time
	Offset Offset
}

// OffsetDateTimeOf returns the date, time and offset of t.
func OffsetDateTimeOf(t time.Time) OffsetDateTime {
	return OffsetDateTime{Date: DateOf(t), Time: TimeOf(t), Offset: OffsetOf(t)}
}

// Std returns the equivalent [time.Time] in a fixed zone.
func (dt OffsetDateTime) Std() time.Time {
	return time.Date(dt.Date.Year(), dt.Date.Month(), dt.Date.Day(),
		dt.Time.Hour(), dt.Time.Minute(), dt.Time.Second(), dt.Time.Nanosecond(),
		dt.Offset.location())
}
