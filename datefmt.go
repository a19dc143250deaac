package datefmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInsufficientTypeInformation = errors.New("insufficient type information")
	ErrInvalidComponent            = errors.New("invalid component")
	ErrWrite                       = errors.New("write failed")
	ErrInvalidValue                = errors.New("invalid value")
	ErrInvalidConfig               = errors.New("invalid iso8601 config")
	ErrUnknownFormat               = errors.New("unknown format")
)

// ComponentError reports a value that a well-known format cannot represent.
// It matches [ErrInvalidComponent] with [errors.Is].
type ComponentError struct {
	// Component names the offending field, e.g. "year" or "offset_second".
	Component string
}

func (e *ComponentError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidComponent, e.Component)
}

func (e *ComponentError) Unwrap() error { return ErrInvalidComponent }

func invalidComponent(name string) error {
	return &ComponentError{Component: name}
}

// Formattable is a format description: any [Item] tree or one of the
// well-known formats [RFC2822], [RFC3339] and [ISO8601]. The interface is
// sealed.
type Formattable interface {
	formatInto(w io.Writer, suppressible bool, p Projection) (int, error)
}

// Format renders p according to f and writes the result to w. It returns the
// number of bytes written. Bytes written before a failure are not meaningful.
func Format(w io.Writer, f Formattable, p Projection) (int, error) {
	return f.formatInto(w, false, p)
}

// FormatString renders p according to f and returns the result.
func FormatString(f Formattable, p Projection) (string, error) {
	var buf bytes.Buffer
	if _, err := Format(&buf, f, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var wellKnown = []struct {
	name   string
	format Formattable
}{
	{"rfc2822", RFC2822{}},
	{"rfc3339", RFC3339{}},
	{"iso8601", ISO8601Default},
}

// WellKnownNames returns the names accepted by [ParseWellKnown].
func WellKnownNames() []string {
	out := make([]string, len(wellKnown))
	for i, wk := range wellKnown {
		out[i] = wk.name
	}
	return out
}

// ParseWellKnown returns the well-known format with the given name. The
// "iso8601" name yields [ISO8601Default].
func ParseWellKnown(name string) (Formattable, error) {
	for _, wk := range wellKnown {
		if wk.name == name {
			return wk.format, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Format renders the date alone according to f.
func (d Date) Format(f Formattable) (string, error) {
	return FormatString(f, Projection{Date: &d})
}

// Format renders the time of day alone according to f.
func (t Time) Format(f Formattable) (string, error) {
	return FormatString(f, Projection{Time: &t})
}

// Format renders the offset alone according to f.
func (o Offset) Format(f Formattable) (string, error) {
	return FormatString(f, Projection{Offset: &o})
}

// Format renders the date and time according to f.
func (dt DateTime) Format(f Formattable) (string, error) {
	return FormatString(f, dt.projection())
}

// Format renders the date, time and offset according to f.
func (dt OffsetDateTime) Format(f Formattable) (string, error) {
	return FormatString(f, dt.projection())
}

func (dt DateTime) projection() Projection {
	return Projection{Date: &dt.Date, Time: &dt.Time}
}

func (dt OffsetDateTime) projection() Projection {
	return Projection{Date: &dt.Date, Time: &dt.Time, Offset: &dt.Offset}
}
