// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pinspec reads edge-pinning operations from YAML, for layouts
described in configuration rather than code:

	edges: [top, left, right]
	insets: {top: 8, left: 16, right: 16}
	except: [right]
	priority: high

An absent edges key selects all edges, matching the zero value of
pin.Edges. An absent priority means required.
*/
package pinspec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"pinui.org/anchor"
	"pinui.org/pin"
)

var (
	// ErrUnknownEdge reports an edge name outside top, left, bottom,
	// right, all.
	ErrUnknownEdge = errors.New("pinspec: unknown edge")
	// ErrUnknownPriority reports a priority name outside required,
	// high, low.
	ErrUnknownPriority = errors.New("pinspec: unknown priority")
)

// Spec is the YAML form of an edge-pinning operation.
type Spec struct {
	Edges    []string           `yaml:"edges"`
	Insets   map[string]float32 `yaml:"insets"`
	Except   []string           `yaml:"except"`
	Priority string             `yaml:"priority"`
}

// Parse decodes a Spec, rejecting unknown keys.
func Parse(data []byte) (Spec, error) {
	var s Spec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty document, zero spec.
			return Spec{}, nil
		}
		return Spec{}, fmt.Errorf("pinspec: parse: %w", err)
	}
	return s, nil
}

// Compile resolves the spec's names into a pin.Edges operation and the
// priority to apply to the constraints it creates.
func (s Spec) Compile() (pin.Edges, anchor.Priority, error) {
	e := pin.Edges{}
	var err error
	if e.Edges, err = parseEdges(s.Edges); err != nil {
		return pin.Edges{}, 0, err
	}
	if e.Except, err = parseEdges(s.Except); err != nil {
		return pin.Edges{}, 0, err
	}
	for name, v := range s.Insets {
		switch name {
		case "top":
			e.Inset.Top = v
		case "left":
			e.Inset.Left = v
		case "bottom":
			e.Inset.Bottom = v
		case "right":
			e.Inset.Right = v
		default:
			return pin.Edges{}, 0, fmt.Errorf("%w: inset %q", ErrUnknownEdge, name)
		}
	}
	p, err := parsePriority(s.Priority)
	if err != nil {
		return pin.Edges{}, 0, err
	}
	return e, p, nil
}

// Pin compiles the spec and applies it, setting the spec's priority on
// every created constraint.
func (s Spec) Pin(box, target anchor.Box) (pin.EdgeConstraints, error) {
	e, p, err := s.Compile()
	if err != nil {
		return pin.EdgeConstraints{}, err
	}
	res := e.Pin(box, target)
	for _, c := range res.Constraints() {
		c.Priority = p
	}
	return res, nil
}

func parseEdges(names []string) (pin.EdgeSet, error) {
	var set pin.EdgeSet
	for _, name := range names {
		switch name {
		case "top":
			set |= pin.Top
		case "left":
			set |= pin.Left
		case "bottom":
			set |= pin.Bottom
		case "right":
			set |= pin.Right
		case "all":
			set = pin.All
		default:
			return pin.None, fmt.Errorf("%w: %q", ErrUnknownEdge, name)
		}
	}
	return set, nil
}

func parsePriority(name string) (anchor.Priority, error) {
	switch name {
	case "", "required":
		return anchor.Required, nil
	case "high":
		return anchor.High, nil
	case "low":
		return anchor.Low, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPriority, name)
	}
}
