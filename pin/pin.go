// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pin builds constraints that pin one box to another.

The general operation is Edges, a value describing which edges to pin,
with what insets, minus an optional exclusion set:

	res := pin.Edges{Inset: pin.UniformInset(8), Except: pin.Bottom}.Pin(child, parent)

Helpers cover the common shapes: Horizontally, Vertically, Center and
the Size variants. Every operation returns the created constraints
inactive and, as a side effect, turns off frame translation on the
pinned box so the constraints can take effect once activated:

	anchor.Activate(res.Constraints()...)

Insets and offsets are accepted verbatim; nothing in this package
validates or fails.
*/
package pin

import (
	"pinui.org/anchor"
	"pinui.org/geom"
)

// Edges describes an edge-pinning operation. The zero value pins all
// four edges with no insets.
type Edges struct {
	// Edges selects the edges to pin. None selects All: an
	// edge-pinning operation with nothing to pin is expressed
	// through Except, not through an empty selection.
	Edges EdgeSet
	// Inset offsets each pinned edge, top/left inward positive,
	// bottom/right negated.
	Inset Inset
	// Except removes edges from the selection.
	Except EdgeSet
}

// EdgeConstraints holds the constraints created by an edge-pinning
// operation. A slot is non-nil if and only if its edge was in the
// resolved edge set.
type EdgeConstraints struct {
	Top      *anchor.Constraint
	Leading  *anchor.Constraint
	Bottom   *anchor.Constraint
	Trailing *anchor.Constraint
}

// Constraints returns the non-nil slots in top, leading, bottom,
// trailing order.
func (e EdgeConstraints) Constraints() []*anchor.Constraint {
	cs := make([]*anchor.Constraint, 0, 4)
	for _, c := range []*anchor.Constraint{e.Top, e.Leading, e.Bottom, e.Trailing} {
		if c != nil {
			cs = append(cs, c)
		}
	}
	return cs
}

// Pin creates one constraint per resolved edge, pairing the box's
// anchor with the target's anchor for the same edge. The resolved set
// is Edges minus Except. Frame translation is turned off on box even
// when the resolved set is empty.
func (e Edges) Pin(box, target anchor.Box) EdgeConstraints {
	optOutFrameTranslation(box)
	edges := e.Edges
	if edges == None {
		edges = All
	}
	resolved := edges &^ e.Except
	var res EdgeConstraints
	if resolved.Contains(Top) {
		res.Top = box.Top().EqualTo(target.Top(), e.Inset.Top)
	}
	if resolved.Contains(Left) {
		res.Leading = box.Leading().EqualTo(target.Leading(), e.Inset.Left)
	}
	if resolved.Contains(Bottom) {
		res.Bottom = box.Bottom().EqualTo(target.Bottom(), -e.Inset.Bottom)
	}
	if resolved.Contains(Right) {
		res.Trailing = box.Trailing().EqualTo(target.Trailing(), -e.Inset.Right)
	}
	return res
}

// HorizontalConstraints holds the pair created by Horizontally. Both
// slots are always non-nil.
type HorizontalConstraints struct {
	Leading  *anchor.Constraint
	Trailing *anchor.Constraint
}

// Constraints returns the leading and trailing constraints.
func (h HorizontalConstraints) Constraints() []*anchor.Constraint {
	return []*anchor.Constraint{h.Leading, h.Trailing}
}

// Horizontally pins the leading and trailing edges of box to target.
func Horizontally(box, target anchor.Box, leading, trailing float32) HorizontalConstraints {
	res := Edges{
		Edges: Left | Right,
		Inset: Inset{Left: leading, Right: trailing},
	}.Pin(box, target)
	return HorizontalConstraints{Leading: res.Leading, Trailing: res.Trailing}
}

// VerticalConstraints holds the pair created by Vertically. Both
// slots are always non-nil.
type VerticalConstraints struct {
	Top    *anchor.Constraint
	Bottom *anchor.Constraint
}

// Constraints returns the top and bottom constraints.
func (v VerticalConstraints) Constraints() []*anchor.Constraint {
	return []*anchor.Constraint{v.Top, v.Bottom}
}

// Vertically pins the top and bottom edges of box to target.
func Vertically(box, target anchor.Box, top, bottom float32) VerticalConstraints {
	res := Edges{
		Edges: Top | Bottom,
		Inset: Inset{Top: top, Bottom: bottom},
	}.Pin(box, target)
	return VerticalConstraints{Top: res.Top, Bottom: res.Bottom}
}

// CenterConstraints holds the pair created by Center. Both slots are
// always non-nil.
type CenterConstraints struct {
	X *anchor.Constraint
	Y *anchor.Constraint
}

// Constraints returns the centerX and centerY constraints.
func (c CenterConstraints) Constraints() []*anchor.Constraint {
	return []*anchor.Constraint{c.X, c.Y}
}

// Center pins the center of box to the center of target, displaced by
// offset. Unlike edge insets the offset is applied as-is on both axes,
// with no sign flip.
func Center(box, target anchor.Box, offset geom.Point) CenterConstraints {
	optOutFrameTranslation(box)
	return CenterConstraints{
		X: box.CenterX().EqualTo(target.CenterX(), offset.X),
		Y: box.CenterY().EqualTo(target.CenterY(), offset.Y),
	}
}

// SizeConstraints holds the pair created by the Size operations. Both
// slots are always non-nil.
type SizeConstraints struct {
	Width  *anchor.Constraint
	Height *anchor.Constraint
}

// Constraints returns the width and height constraints.
func (s SizeConstraints) Constraints() []*anchor.Constraint {
	return []*anchor.Constraint{s.Width, s.Height}
}

// SizeTo pins the width and height of box to those of target.
func SizeTo(box, target anchor.Box) SizeConstraints {
	optOutFrameTranslation(box)
	return SizeConstraints{
		Width:  box.Width().EqualTo(target.Width(), 0),
		Height: box.Height().EqualTo(target.Height(), 0),
	}
}

// Size fixes the width and height of box to the given magnitudes. The
// constraints are against constants, not another box.
func Size(box anchor.Box, size geom.Point) SizeConstraints {
	optOutFrameTranslation(box)
	return SizeConstraints{
		Width:  box.Width().EqualToConstant(size.X),
		Height: box.Height().EqualToConstant(size.Y),
	}
}

// UniformSize fixes both dimensions of box to v.
func UniformSize(box anchor.Box, v float32) SizeConstraints {
	return Size(box, geom.Point{X: v, Y: v})
}

// optOutFrameTranslation turns off frame translation on boxes that
// have it. The transition is one-way; boxes already in constraint
// mode are left alone.
func optOutFrameTranslation(box anchor.Box) {
	if ft, ok := box.(anchor.FrameTranslator); ok && ft.TranslatesFrameToConstraints() {
		ft.SetTranslatesFrameToConstraints(false)
	}
}
