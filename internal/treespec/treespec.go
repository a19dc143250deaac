// Package treespec describes format item trees as plain data so they can be
// kept in TOML or YAML files and built into a [datefmt.Item].
package treespec

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/datefmt"
)

// ErrInvalidNode is returned when a node cannot be built.
var ErrInvalidNode = errors.New("invalid tree node")

// Node describes one format item. Exactly one of Literal, Component,
// Compound, Optional and First must be set. The remaining fields are
// modifiers and only apply to the components that have them.
type Node struct {
	Literal   *string `toml:"literal,omitempty" yaml:"literal,omitempty"`
	Component string  `toml:"component,omitempty" yaml:"component,omitempty"`
	// Nil lists are left out when encoding; an empty First stays as [].
	Compound []Node `toml:"compound" yaml:"compound,omitempty"`
	Optional []Node `toml:"optional" yaml:"optional,omitempty"`
	First    []Node `toml:"first" yaml:"first,omitempty"`

	Padding      string `toml:"padding,omitempty" yaml:"padding,omitempty"`
	Repr         string `toml:"repr,omitempty" yaml:"repr,omitempty"`
	Digits       int    `toml:"digits,omitempty" yaml:"digits,omitempty"`
	Precision    string `toml:"precision,omitempty" yaml:"precision,omitempty"`
	Sign         *bool  `toml:"sign,omitempty" yaml:"sign,omitempty"`
	TwelveHour   bool   `toml:"twelve_hour,omitempty" yaml:"twelve_hour,omitempty"`
	Lowercase    bool   `toml:"lowercase,omitempty" yaml:"lowercase,omitempty"`
	ZeroIndexed  bool   `toml:"zero_indexed,omitempty" yaml:"zero_indexed,omitempty"`
	ISOWeekBased bool   `toml:"iso_week_based,omitempty" yaml:"iso_week_based,omitempty"`
	Count        int    `toml:"count,omitempty" yaml:"count,omitempty"`
}

// Lit returns a literal node.
func Lit(s string) Node { return Node{Literal: &s} }

// Decode reads a YAML list of nodes from r.
func Decode(r io.Reader) ([]Node, error) {
	var nodes []Node
	if err := yaml.NewDecoder(r).Decode(&nodes); err != nil {
		return nil, fmt.Errorf("decoding tree: %w", err)
	}
	return nodes, nil
}

// Build returns the sequence of nodes as a [datefmt.Compound].
func Build(nodes []Node) (datefmt.Item, error) {
	items, err := buildAll("", nodes)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func buildAll(path string, nodes []Node) (datefmt.Compound, error) {
	items := make(datefmt.Compound, len(nodes))
	for i, n := range nodes {
		item, err := n.build(fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

// Build returns the item n describes.
func (n Node) Build() (datefmt.Item, error) {
	return n.build("")
}

func (n Node) build(path string) (datefmt.Item, error) {
	set := 0
	for _, ok := range []bool{n.Literal != nil, n.Component != "", n.Compound != nil, n.Optional != nil, n.First != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: %s: want exactly one of literal, component, compound, optional, first; got %d", ErrInvalidNode, path, set)
	}

	switch {
	case n.Literal != nil:
		return datefmt.Literal(*n.Literal), nil
	case n.Compound != nil:
		items, err := buildAll(path+".compound", n.Compound)
		if err != nil {
			return nil, err
		}
		return items, nil
	case n.Optional != nil:
		inner, err := buildAll(path+".optional", n.Optional)
		if err != nil {
			return nil, err
		}
		if len(inner) == 1 {
			return datefmt.Optional{Item: inner[0]}, nil
		}
		return datefmt.Optional{Item: inner}, nil
	case n.First != nil:
		alts, err := buildAll(path+".first", n.First)
		if err != nil {
			return nil, err
		}
		return datefmt.First(alts), nil
	default:
		c, err := n.component()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidNode, path, err)
		}
		return c, nil
	}
}
