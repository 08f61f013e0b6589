// SPDX-License-Identifier: Unlicense OR MIT

package pin

import "strings"

// EdgeSet is a set of the four logical box edges. Left and Right are
// direction-agnostic names: they pin the leading and trailing anchors,
// not absolute screen sides. Combine sets with |, subtract with &^.
type EdgeSet uint8

const (
	Top EdgeSet = 1 << iota
	Left
	Bottom
	Right

	// All is the full edge set.
	All = Top | Left | Bottom | Right
	// None is the empty edge set.
	None EdgeSet = 0
)

// Contains reports whether s includes every edge in e.
func (s EdgeSet) Contains(e EdgeSet) bool {
	return s&e == e
}

func (s EdgeSet) String() string {
	if s == None {
		return "None"
	}
	if s == All {
		return "All"
	}
	var names []string
	if s.Contains(Top) {
		names = append(names, "Top")
	}
	if s.Contains(Left) {
		names = append(names, "Left")
	}
	if s.Contains(Bottom) {
		names = append(names, "Bottom")
	}
	if s.Contains(Right) {
		names = append(names, "Right")
	}
	return strings.Join(names, "|")
}

// Inset is space between a box and its target, one value per edge.
// Values are applied with a fixed sign convention: top and left are
// added to the constraint constant, bottom and right negated, so that
// positive insets shrink the box inward on all four edges. Values are
// not validated; negative insets push outward.
type Inset struct {
	Top, Left, Bottom, Right float32
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v float32) Inset {
	return Inset{Top: v, Left: v, Bottom: v, Right: v}
}
