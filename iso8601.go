package datefmt

import (
	"fmt"
	"io"
	"math/bits"
)

// Components selects which parts of a [Projection] an ISO 8601 format writes.
type Components int

const (
	FormatNone Components = iota // parse-only; formatting panics
	FormatDate
	FormatTime
	FormatOffset
	FormatDateTime
	FormatDateTimeOffset
	FormatTimeOffset
)

func (c Components) date() bool {
	return c == FormatDate || c == FormatDateTime || c == FormatDateTimeOffset
}

func (c Components) time() bool {
	return c == FormatTime || c == FormatDateTime || c == FormatDateTimeOffset || c == FormatTimeOffset
}

func (c Components) offset() bool {
	return c == FormatOffset || c == FormatDateTimeOffset || c == FormatTimeOffset
}

// DateKind selects the ISO 8601 date layout.
type DateKind int

const (
	DateCalendar DateKind = iota // 2024-03-14
	DateWeek                     // 2024-W11-4
	DateOrdinal                  // 2024-074
)

// TimePrecision selects the smallest time unit written. Decimal digits, if
// any, are a fraction of that unit.
type TimePrecision int

const (
	PrecisionSecond TimePrecision = iota // T01:02:03
	PrecisionMinute                      // T01:02
	PrecisionHour                        // T01
)

// OffsetPrecision selects the smallest offset unit written.
type OffsetPrecision int

const (
	OffsetPrecisionMinute OffsetPrecision = iota // +05:30
	OffsetPrecisionHour                          // +05
)

// Config is the editable form of an ISO 8601 configuration. Turn it into a
// format with [NewISO8601].
type Config struct {
	Components      Components
	NoSeparators    bool
	SixDigitYear    bool
	DateKind        DateKind
	TimePrecision   TimePrecision
	DecimalDigits   int // 0 through 9
	OffsetPrecision OffsetPrecision
}

// DefaultConfig writes "2024-03-14T01:02:03.000000000+05:30".
var DefaultConfig = Config{
	Components:    FormatDateTimeOffset,
	DecimalDigits: 9,
}

// EncodedConfig is a validated [Config] packed into an integer, suitable for
// storing a configuration as a constant.
type EncodedConfig uint64

const (
	componentsShift      = 0
	noSeparatorsBit      = 1 << 3
	sixDigitYearBit      = 1 << 4
	dateKindShift        = 5
	timePrecisionShift   = 7
	decimalDigitsShift   = 9
	offsetPrecisionShift = 13
	encodedMask          = 1<<14 - 1
)

// Encode validates c and packs it.
func (c Config) Encode() (EncodedConfig, error) {
	switch {
	case c.Components < FormatNone || c.Components > FormatTimeOffset:
		return 0, fmt.Errorf("%w: components %d", ErrInvalidConfig, c.Components)
	case c.DateKind < DateCalendar || c.DateKind > DateOrdinal:
		return 0, fmt.Errorf("%w: date kind %d", ErrInvalidConfig, c.DateKind)
	case c.TimePrecision < PrecisionSecond || c.TimePrecision > PrecisionHour:
		return 0, fmt.Errorf("%w: time precision %d", ErrInvalidConfig, c.TimePrecision)
	case c.DecimalDigits < 0 || c.DecimalDigits > 9:
		return 0, fmt.Errorf("%w: %d decimal digits", ErrInvalidConfig, c.DecimalDigits)
	case c.OffsetPrecision < OffsetPrecisionMinute || c.OffsetPrecision > OffsetPrecisionHour:
		return 0, fmt.Errorf("%w: offset precision %d", ErrInvalidConfig, c.OffsetPrecision)
	}
	enc := EncodedConfig(c.Components) << componentsShift
	if c.NoSeparators {
		enc |= noSeparatorsBit
	}
	if c.SixDigitYear {
		enc |= sixDigitYearBit
	}
	enc |= EncodedConfig(c.DateKind) << dateKindShift
	enc |= EncodedConfig(c.TimePrecision) << timePrecisionShift
	enc |= EncodedConfig(c.DecimalDigits) << decimalDigitsShift
	enc |= EncodedConfig(c.OffsetPrecision) << offsetPrecisionShift
	return enc, nil
}

// Decode unpacks e without validating it.
func (e EncodedConfig) Decode() Config {
	return Config{
		Components:      Components(e >> componentsShift & 0b111),
		NoSeparators:    e&noSeparatorsBit != 0,
		SixDigitYear:    e&sixDigitYearBit != 0,
		DateKind:        DateKind(e >> dateKindShift & 0b11),
		TimePrecision:   TimePrecision(e >> timePrecisionShift & 0b11),
		DecimalDigits:   int(e >> decimalDigitsShift & 0b1111),
		OffsetPrecision: OffsetPrecision(e >> offsetPrecisionShift & 0b1),
	}
}

// ISO8601 formats according to a validated configuration. The zero value is
// parse-only: formatting with it panics.
type ISO8601 struct {
	enc    EncodedConfig
	config Config
}

// ISO8601Default formats with [DefaultConfig].
var ISO8601Default = MustISO8601(DefaultConfig)

// NewISO8601 validates c and returns the format it describes.
func NewISO8601(c Config) (ISO8601, error) {
	enc, err := c.Encode()
	if err != nil {
		return ISO8601{}, err
	}
	return ISO8601{enc: enc, config: c}, nil
}

// MustISO8601 is like [NewISO8601] but panics on an invalid configuration.
// It is meant for package-level variables.
func MustISO8601(c Config) ISO8601 {
	f, err := NewISO8601(c)
	if err != nil {
		panic(err)
	}
	return f
}

// ISO8601FromEncoded validates a packed configuration and returns the format
// it describes.
func ISO8601FromEncoded(e EncodedConfig) (ISO8601, error) {
	if e&^encodedMask != 0 {
		return ISO8601{}, fmt.Errorf("%w: unknown bits %#x", ErrInvalidConfig, uint64(e&^encodedMask))
	}
	return NewISO8601(e.Decode())
}

// Encoded returns the packed configuration.
func (f ISO8601) Encoded() EncodedConfig { return f.enc }

// Config returns the configuration.
func (f ISO8601) Config() Config { return f.config }

func (f ISO8601) formatInto(w io.Writer, _ bool, p Projection) (int, error) {
	c := f.config
	if !c.Components.date() && !c.Components.time() && !c.Components.offset() {
		panic("datefmt: attempted to format with a parse-only ISO 8601 configuration")
	}

	ww := &wellKnownWriter{w: w}
	if c.Components.date() {
		if p.Date == nil {
			return 0, ErrInsufficientTypeInformation
		}
		if err := c.writeDate(ww, *p.Date); err != nil {
			return ww.n, err
		}
	}
	if c.Components.time() {
		if p.Time == nil {
			return ww.n, ErrInsufficientTypeInformation
		}
		c.writeTime(ww, *p.Time)
	}
	if c.Components.offset() {
		if p.Offset == nil {
			return ww.n, ErrInsufficientTypeInformation
		}
		if err := c.writeOffset(ww, *p.Offset); err != nil {
			return ww.n, err
		}
	}
	return ww.n, ww.err
}

func (c Config) sep(ww *wellKnownWriter, s string) {
	if !c.NoSeparators {
		ww.str(s)
	}
}

func (c Config) writeYear(ww *wellKnownWriter, year int) error {
	if c.SixDigitYear {
		ww.sign(year < 0)
		ww.num(abs(year), 6)
		return nil
	}
	if year < 0 || year > 9999 {
		return invalidComponent("year")
	}
	ww.num(uint64(year), 4)
	return nil
}

func (c Config) writeDate(ww *wellKnownWriter, d Date) error {
	switch c.DateKind {
	case DateWeek:
		year, week := d.ISOWeek()
		if err := c.writeYear(ww, year); err != nil {
			return err
		}
		c.sep(ww, "-")
		ww.str("W")
		ww.num(uint64(week), 2)
		c.sep(ww, "-")
		ww.num(uint64(daysFromMonday(d.Weekday())+1), 1)
	case DateOrdinal:
		if err := c.writeYear(ww, d.Year()); err != nil {
			return err
		}
		c.sep(ww, "-")
		ww.num(uint64(d.Ordinal()), 3)
	default:
		if err := c.writeYear(ww, d.Year()); err != nil {
			return err
		}
		c.sep(ww, "-")
		ww.num(uint64(d.Month()), 2)
		c.sep(ww, "-")
		ww.num(uint64(d.Day()), 2)
	}
	return ww.err
}

const (
	nanosPerSecond = uint64(1_000_000_000)
	nanosPerMinute = 60 * nanosPerSecond
	nanosPerHour   = 60 * nanosPerMinute
)

func (c Config) writeTime(ww *wellKnownWriter, t Time) {
	ww.str("T")
	nanos := uint64(t.Hour())*nanosPerHour +
		uint64(t.Minute())*nanosPerMinute +
		uint64(t.Second())*nanosPerSecond +
		uint64(t.Nanosecond())
	switch c.TimePrecision {
	case PrecisionHour:
		c.writeDecimal(ww, nanos, nanosPerHour)
	case PrecisionMinute:
		ww.num(uint64(t.Hour()), 2)
		c.sep(ww, ":")
		c.writeDecimal(ww, nanos%nanosPerHour, nanosPerMinute)
	default:
		ww.num(uint64(t.Hour()), 2)
		c.sep(ww, ":")
		ww.num(uint64(t.Minute()), 2)
		c.sep(ww, ":")
		c.writeDecimal(ww, nanos%nanosPerMinute, nanosPerSecond)
	}
}

// writeDecimal writes nanos as a count of unit with two integer digits and
// DecimalDigits fractional digits. The fraction is truncated, never rounded
// up into the next unit.
func (c Config) writeDecimal(ww *wellKnownWriter, nanos, unit uint64) {
	ww.num(nanos/unit, 2)
	if c.DecimalDigits == 0 {
		return
	}
	hi, lo := bits.Mul64(nanos%unit, pow10[c.DecimalDigits])
	frac, _ := bits.Div64(hi, lo, unit)
	ww.str(".")
	ww.num(frac, c.DecimalDigits)
}

func (c Config) writeOffset(ww *wellKnownWriter, o Offset) error {
	if o.Seconds() != 0 {
		return invalidComponent("offset_second")
	}
	if o.IsUTC() {
		ww.str("Z")
		return ww.err
	}
	if c.OffsetPrecision == OffsetPrecisionHour && o.Minutes() != 0 {
		return invalidComponent("offset_minute")
	}
	ww.sign(o.IsNegative())
	ww.num(abs(o.Hours()), 2)
	if c.OffsetPrecision == OffsetPrecisionMinute {
		c.sep(ww, ":")
		ww.num(abs(o.Minutes()), 2)
	}
	return ww.err
}
