package treespec

import (
	"fmt"

	"github.com/bjaus/datefmt"
)

var paddings = map[string]datefmt.Padding{
	"zero":  datefmt.PadZero,
	"space": datefmt.PadSpace,
	"none":  datefmt.PadNone,
}

var monthReprs = map[string]datefmt.MonthRepr{
	"numerical": datefmt.MonthNumerical,
	"long":      datefmt.MonthLong,
	"short":     datefmt.MonthShort,
}

var weekdayReprs = map[string]datefmt.WeekdayRepr{
	"long":   datefmt.WeekdayLong,
	"short":  datefmt.WeekdayShort,
	"sunday": datefmt.WeekdaySunday,
	"monday": datefmt.WeekdayMonday,
}

var weekNumberReprs = map[string]datefmt.WeekNumberRepr{
	"iso":    datefmt.WeekNumberISO,
	"sunday": datefmt.WeekNumberSunday,
	"monday": datefmt.WeekNumberMonday,
}

var yearReprs = map[string]datefmt.YearRepr{
	"full":     datefmt.YearFull,
	"last_two": datefmt.YearLastTwo,
}

var unixPrecisions = map[string]datefmt.UnixPrecision{
	"second":      datefmt.UnixSecond,
	"millisecond": datefmt.UnixMillisecond,
	"microsecond": datefmt.UnixMicrosecond,
	"nanosecond":  datefmt.UnixNanosecond,
}

// lookup resolves a named modifier value. An empty name selects the zero
// value, which is always the default.
func lookup[T any](table map[string]T, field, name string) (T, error) {
	var zero T
	if name == "" {
		return zero, nil
	}
	v, ok := table[name]
	if !ok {
		return zero, fmt.Errorf("unknown %s %q", field, name)
	}
	return v, nil
}

func (n Node) sign(def bool) bool {
	if n.Sign == nil {
		return def
	}
	return *n.Sign
}

func (n Node) component() (datefmt.Component, error) {
	pad, err := lookup(paddings, "padding", n.Padding)
	if err != nil {
		return nil, err
	}

	switch n.Component {
	case "day":
		return datefmt.Day{Padding: pad}, nil
	case "month":
		repr, err := lookup(monthReprs, "month repr", n.Repr)
		if err != nil {
			return nil, err
		}
		return datefmt.Month{Padding: pad, Repr: repr}, nil
	case "ordinal":
		return datefmt.Ordinal{Padding: pad}, nil
	case "weekday":
		repr, err := lookup(weekdayReprs, "weekday repr", n.Repr)
		if err != nil {
			return nil, err
		}
		return datefmt.Weekday{Repr: repr, ZeroIndexed: n.ZeroIndexed}, nil
	case "week_number":
		repr, err := lookup(weekNumberReprs, "week number repr", n.Repr)
		if err != nil {
			return nil, err
		}
		return datefmt.WeekNumber{Padding: pad, Repr: repr}, nil
	case "year":
		repr, err := lookup(yearReprs, "year repr", n.Repr)
		if err != nil {
			return nil, err
		}
		return datefmt.Year{Padding: pad, Repr: repr, ISOWeekBased: n.ISOWeekBased, SignMandatory: n.sign(false)}, nil
	case "hour":
		return datefmt.Hour{Padding: pad, TwelveHour: n.TwelveHour}, nil
	case "minute":
		return datefmt.Minute{Padding: pad}, nil
	case "period":
		return datefmt.Period{Lowercase: n.Lowercase}, nil
	case "second":
		return datefmt.Second{Padding: pad}, nil
	case "subsecond":
		if n.Digits < 0 || n.Digits > 9 {
			return nil, fmt.Errorf("subsecond digits %d out of range", n.Digits)
		}
		return datefmt.Subsecond{Digits: datefmt.SubsecondDigits(n.Digits)}, nil
	case "offset_hour":
		return datefmt.OffsetHour{Padding: pad, OmitPlusSign: !n.sign(true)}, nil
	case "offset_minute":
		return datefmt.OffsetMinute{Padding: pad}, nil
	case "offset_second":
		return datefmt.OffsetSecond{Padding: pad}, nil
	case "ignore":
		if n.Count < 1 {
			return nil, fmt.Errorf("ignore count must be positive, got %d", n.Count)
		}
		return datefmt.Ignore{Count: n.Count}, nil
	case "unix_timestamp":
		prec, err := lookup(unixPrecisions, "unix precision", n.Precision)
		if err != nil {
			return nil, err
		}
		return datefmt.UnixTimestamp{Precision: prec, SignMandatory: n.sign(false)}, nil
	default:
		return nil, fmt.Errorf("unknown component %q", n.Component)
	}
}
