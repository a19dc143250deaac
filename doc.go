// Package datefmt renders dates, times and UTC offsets as text.
//
// A format is either a tree of [Item] values or one of the well-known
// formats [RFC2822], [RFC3339] and [ISO8601]. The central entry points are
// [Format] and [FormatString], which take a format and a [Projection]: the
// date, time and offset slots of the value being formatted. Any slot may be
// nil; a format that needs a missing slot fails with
// [ErrInsufficientTypeInformation].
//
//	p := datefmt.Project(time.Now())
//	datefmt.Format(os.Stdout, datefmt.RFC3339{}, p)
//
// # Format Trees
//
// Trees are built from five shapes:
//
//   - [Literal] — text written verbatim
//   - a [Component] such as [Year], [Hour] or [OffsetMinute]
//   - [Compound] — a sequence of items
//   - [Optional] — an item that is left out when it holds only defaults
//   - [First] — alternatives, of which only the first is written
//
// Components carry modifiers as struct fields. The zero value of each
// component uses its default modifiers:
//
//	f := datefmt.Compound{
//		datefmt.Hour{}, datefmt.Literal(":"), datefmt.Minute{},
//		datefmt.Optional{Item: datefmt.Compound{datefmt.Literal(":"), datefmt.Second{}}},
//	}
//
// # Ignorability
//
// An [Optional] writes nothing when its contents are ignorable: a zero
// [Second], a zero [Subsecond], a UTC [OffsetHour], a zero [OffsetMinute] or
// [OffsetSecond], and any [Literal]. A [Compound] is ignorable when all its
// items are; a [First] when its first item is. Every other component always
// writes.
//
// # Well-known Formats
//
// [RFC2822] and [RFC3339] need all three slots and reject values the RFCs
// cannot represent with a [ComponentError]. [ISO8601] is configured with a
// [Config]; [ISO8601Default] writes "2024-03-14T01:02:03.000000000+05:30".
// Use [ParseWellKnown] to select one by name.
//
// # Streaming
//
// [WriteIter] and [WriteChan] format a sequence of projections, one per line.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInsufficientTypeInformation] — the format needs a missing slot
//   - [ErrInvalidComponent] — a value the format cannot represent
//   - [ErrWrite] — the underlying writer failed
//   - [ErrInvalidValue] — a constructor received an out-of-range field
//   - [ErrInvalidConfig] — an ISO 8601 configuration is invalid
//   - [ErrUnknownFormat] — [ParseWellKnown] received an unknown name
package datefmt
