package datefmt

import (
	"fmt"
	"io"
)

// Item is a node of a format description tree. The set of shapes is closed:
// [Literal], any [Component], [Compound], [Optional] and [First]. Trees are
// immutable once built and may be shared across goroutines.
type Item interface {
	Formattable
	item()
}

// Literal is written verbatim.
type Literal string

// Compound is a sequence of items written in order.
type Compound []Item

// Optional wraps an item that is omitted entirely when everything it would
// write is a default value, such as a zero second or a UTC offset.
type Optional struct {
	Item Item
}

// First holds alternatives. Only the first alternative is ever written; the
// rest exist for descriptions that are also used to parse. An empty First
// writes nothing.
type First []Item

func (Literal) item()  {}
func (Compound) item() {}
func (Optional) item() {}
func (First) item()    {}

func (l Literal) formatInto(w io.Writer, s bool, p Projection) (int, error) {
	return formatItem(w, l, s, p)
}

func (c Compound) formatInto(w io.Writer, s bool, p Projection) (int, error) {
	return formatItem(w, c, s, p)
}

func (o Optional) formatInto(w io.Writer, s bool, p Projection) (int, error) {
	return formatItem(w, o, s, p)
}

func (f First) formatInto(w io.Writer, s bool, p Projection) (int, error) {
	return formatItem(w, f, s, p)
}

// ignorable reports whether item would write nothing but default values
// under p. Literals count as ignorable so that an optional separator vanishes
// together with the component it introduces.
func ignorable(item Item, p Projection) bool {
	switch item := item.(type) {
	case Literal:
		return true
	case Component:
		return componentIgnorable(item, p)
	case Compound:
		for _, child := range item {
			if !ignorable(child, p) {
				return false
			}
		}
		return true
	case Optional:
		return item.Item == nil || ignorable(item.Item, p)
	case First:
		return len(item) == 0 || ignorable(item[0], p)
	default:
		panic(fmt.Sprintf("datefmt: unknown item %T", item))
	}
}

// formatItem writes item to w. When suppressible is set and the item is
// ignorable under p, nothing is written.
func formatItem(w io.Writer, item Item, suppressible bool, p Projection) (int, error) {
	if suppressible && ignorable(item, p) {
		return 0, nil
	}
	switch item := item.(type) {
	case Literal:
		return writeString(w, string(item))
	case Component:
		return formatComponent(w, item, p)
	case Compound:
		var n int
		for _, child := range item {
			m, err := formatItem(w, child, false, p)
			n += m
			if err != nil {
				return n, err
			}
		}
		return n, nil
	case Optional:
		if item.Item == nil {
			return 0, nil
		}
		return formatItem(w, item.Item, true, p)
	case First:
		if len(item) == 0 {
			return 0, nil
		}
		return formatItem(w, item[0], false, p)
	default:
		panic(fmt.Sprintf("datefmt: unknown item %T", item))
	}
}
