// SPDX-License-Identifier: Unlicense OR MIT

/*
Package anchor provides the boxes, anchors and constraints that the
pinning layer in package pin composes.

A Box exposes one Anchor per edge, axis and dimension. Pairing two
compatible anchors yields a Constraint, a relationship with a constant
offset, a priority and an active flag. Constraints are created inactive;
activate them individually or in bulk with Activate.
*/
package anchor

// Kind is the pairing class of an anchor. Anchors constrain only
// against anchors of the same kind.
type Kind uint8

const (
	// Horizontal anchors position along the x axis: Leading, Trailing,
	// CenterX.
	Horizontal Kind = iota
	// Vertical anchors position along the y axis: Top, Bottom, the
	// baselines and CenterY.
	Vertical
	// Dimension anchors describe extent: Width and Height. Only
	// dimension anchors may be constrained to a constant.
	Dimension
)

// Attribute identifies which edge, axis or dimension of its box an
// anchor refers to.
type Attribute uint8

const (
	Top Attribute = iota
	Leading
	Trailing
	Bottom
	FirstBaseline
	LastBaseline
	CenterX
	CenterY
	Width
	Height
)

// Kind returns the pairing class of the attribute.
func (a Attribute) Kind() Kind {
	switch a {
	case Leading, Trailing, CenterX:
		return Horizontal
	case Top, Bottom, FirstBaseline, LastBaseline, CenterY:
		return Vertical
	case Width, Height:
		return Dimension
	default:
		panic("unreachable")
	}
}

func (a Attribute) String() string {
	switch a {
	case Top:
		return "Top"
	case Leading:
		return "Leading"
	case Trailing:
		return "Trailing"
	case Bottom:
		return "Bottom"
	case FirstBaseline:
		return "FirstBaseline"
	case LastBaseline:
		return "LastBaseline"
	case CenterX:
		return "CenterX"
	case CenterY:
		return "CenterY"
	case Width:
		return "Width"
	case Height:
		return "Height"
	default:
		panic("unreachable")
	}
}

func (k Kind) String() string {
	switch k {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	case Dimension:
		return "Dimension"
	default:
		panic("unreachable")
	}
}

// An Anchor is a handle to one attribute of a box. Anchors are
// allocated once per box; their identity is stable for the lifetime of
// the box.
type Anchor struct {
	box  Box
	attr Attribute
}

// Box returns the box the anchor belongs to.
func (a *Anchor) Box() Box {
	return a.box
}

// Attribute returns which attribute of the box the anchor refers to.
func (a *Anchor) Attribute() Attribute {
	return a.attr
}

// Kind returns the pairing class of the anchor.
func (a *Anchor) Kind() Kind {
	return a.attr.Kind()
}

// EqualTo returns an inactive constraint pinning a to other offset by
// constant. It panics if the anchors are of different kinds.
func (a *Anchor) EqualTo(other *Anchor, constant float32) *Constraint {
	if a.Kind() != other.Kind() {
		panic("anchor: incompatible anchor kinds " + a.Kind().String() + " and " + other.Kind().String())
	}
	return &Constraint{
		first:    a,
		second:   other,
		Constant: constant,
		Priority: Required,
	}
}

// EqualToConstant returns an inactive constraint fixing a dimension
// anchor to the magnitude v. It panics for edge, baseline and center
// anchors, which have no meaningful constant extent.
func (a *Anchor) EqualToConstant(v float32) *Constraint {
	if a.Kind() != Dimension {
		panic("anchor: constant constraint on " + a.Kind().String() + " anchor")
	}
	return &Constraint{
		first:    a,
		Constant: v,
		Priority: Required,
	}
}
