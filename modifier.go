package datefmt

// Padding controls how numeric components are widened to their natural width.
type Padding int

const (
	PadZero  Padding = iota // 07
	PadSpace                //  7
	PadNone                 // 7
)

// MonthRepr selects how a month is written.
type MonthRepr int

const (
	MonthNumerical MonthRepr = iota // 03
	MonthLong                       // March
	MonthShort                      // Mar
)

// WeekdayRepr selects how a weekday is written.
type WeekdayRepr int

const (
	WeekdayLong   WeekdayRepr = iota // Thursday
	WeekdayShort                     // Thu
	WeekdaySunday                    // number of days from Sunday
	WeekdayMonday                    // number of days from Monday
)

// WeekNumberRepr selects the week numbering scheme.
type WeekNumberRepr int

const (
	WeekNumberISO    WeekNumberRepr = iota // ISO 8601, week 1 contains January 4
	WeekNumberSunday                       // week 1 starts on the first Sunday
	WeekNumberMonday                       // week 1 starts on the first Monday
)

// YearRepr selects how many digits of the year are written.
type YearRepr int

const (
	YearFull    YearRepr = iota
	YearLastTwo          // absolute value of year mod 100
)

// SubsecondDigits selects how many fractional digits are written.
// DigitsOneOrMore writes the fewest digits that lose no non-zero digit.
type SubsecondDigits int

const (
	DigitsOneOrMore SubsecondDigits = iota
	Digits1
	Digits2
	Digits3
	Digits4
	Digits5
	Digits6
	Digits7
	Digits8
	Digits9
)

var pow10 = [...]uint64{1, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000, 1_000_000_000}

// repr returns the digit width and the value to write at that width for a
// nanosecond count.
func (d SubsecondDigits) repr(nanos int) (int, uint64) {
	n := uint64(nanos)
	if d >= Digits1 && d <= Digits9 {
		width := int(d)
		return width, n / pow10[9-width]
	}
	width := 9
	for width > 1 && n%10 == 0 {
		n /= 10
		width--
	}
	return width, n
}

// UnixPrecision selects the unit of a Unix timestamp.
type UnixPrecision int

const (
	UnixSecond UnixPrecision = iota
	UnixMillisecond
	UnixMicrosecond
	UnixNanosecond
)

func (p UnixPrecision) digits() int {
	switch p {
	case UnixMillisecond:
		return 3
	case UnixMicrosecond:
		return 6
	case UnixNanosecond:
		return 9
	default:
		return 0
	}
}
