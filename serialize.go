package datefmt

import (
	"encoding/binary"

	"gopkg.in/yaml.v3"
)

// Human-readable layouts used by String, MarshalText and MarshalYAML.
var (
	dateFormat = Compound{
		Year{}, Literal("-"), Month{}, Literal("-"), Day{},
	}
	timeFormat = Compound{
		Hour{}, Literal(":"), Minute{}, Literal(":"), Second{},
		Optional{Item: Compound{Literal("."), Subsecond{}}},
	}
	offsetFormat = Compound{
		OffsetHour{}, Literal(":"), OffsetMinute{}, Literal(":"), OffsetSecond{},
	}
	dateTimeFormat = Compound{
		dateFormat, Literal(" "), timeFormat,
	}
	offsetDateTimeFormat = Compound{
		dateFormat, Literal(" "), timeFormat, Literal(" "), offsetFormat,
	}
)

// mustFormat renders p with a layout whose slots p always fills.
func mustFormat(f Formattable, p Projection) string {
	s, err := FormatString(f, p)
	if err != nil {
		panic(err)
	}
	return s
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func marshalTuple(fields []int64) []byte {
	buf := make([]byte, 0, len(fields)*binary.MaxVarintLen64)
	for _, f := range fields {
		buf = binary.AppendVarint(buf, f)
	}
	return buf
}

// String returns the date as "2024-03-14".
func (d Date) String() string {
	return mustFormat(dateFormat, Projection{Date: &d})
}

func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }
func (d Date) MarshalYAML() (any, error)    { return yamlString(d.String()), nil }

// Tuple returns the compact form (year, ordinal).
func (d Date) Tuple() []int64 {
	return []int64{int64(d.Year()), int64(d.Ordinal())}
}

// MarshalBinary encodes [Date.Tuple] as signed varints.
func (d Date) MarshalBinary() ([]byte, error) { return marshalTuple(d.Tuple()), nil }

// String returns the time as "01:02:03", with a fraction only when the
// nanoseconds are non-zero.
func (t Time) String() string {
	return mustFormat(timeFormat, Projection{Time: &t})
}

func (t Time) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
func (t Time) MarshalYAML() (any, error)    { return yamlString(t.String()), nil }

// Tuple returns the compact form (hour, minute, second, nanosecond).
func (t Time) Tuple() []int64 {
	return []int64{int64(t.hour), int64(t.minute), int64(t.second), int64(t.nanosecond)}
}

// MarshalBinary encodes [Time.Tuple] as signed varints.
func (t Time) MarshalBinary() ([]byte, error) { return marshalTuple(t.Tuple()), nil }

// String returns the offset as "+05:30:00".
func (o Offset) String() string {
	return mustFormat(offsetFormat, Projection{Offset: &o})
}

func (o Offset) MarshalText() ([]byte, error) { return []byte(o.String()), nil }
func (o Offset) MarshalYAML() (any, error)    { return yamlString(o.String()), nil }

// Tuple returns the compact form (hours, minutes, seconds).
func (o Offset) Tuple() []int64 {
	return []int64{int64(o.hours), int64(o.minutes), int64(o.seconds)}
}

// MarshalBinary encodes [Offset.Tuple] as signed varints.
func (o Offset) MarshalBinary() ([]byte, error) { return marshalTuple(o.Tuple()), nil }

// String returns the date and time as "2024-03-14 01:02:03".
func (dt DateTime) String() string {
	return mustFormat(dateTimeFormat, dt.projection())
}

func (dt DateTime) MarshalText() ([]byte, error) { return []byte(dt.String()), nil }
func (dt DateTime) MarshalYAML() (any, error)    { return yamlString(dt.String()), nil }

// Tuple returns the date tuple followed by the time tuple.
func (dt DateTime) Tuple() []int64 {
	return append(dt.Date.Tuple(), dt.Time.Tuple()...)
}

// MarshalBinary encodes [DateTime.Tuple] as signed varints.
func (dt DateTime) MarshalBinary() ([]byte, error) { return marshalTuple(dt.Tuple()), nil }

// String returns the value as "2024-03-14 01:02:03 +05:30:00".
func (dt OffsetDateTime) String() string {
	return mustFormat(offsetDateTimeFormat, dt.projection())
}

func (dt OffsetDateTime) MarshalText() ([]byte, error) { return []byte(dt.String()), nil }
func (dt OffsetDateTime) MarshalYAML() (any, error)    { return yamlString(dt.String()), nil }

// Tuple returns the date, time and offset tuples in order.
func (dt OffsetDateTime) Tuple() []int64 {
	out := append(dt.Date.Tuple(), dt.Time.Tuple()...)
	return append(out, dt.Offset.Tuple()...)
}

// MarshalBinary encodes [OffsetDateTime.Tuple] as signed varints.
func (dt OffsetDateTime) MarshalBinary() ([]byte, error) { return marshalTuple(dt.Tuple()), nil }
