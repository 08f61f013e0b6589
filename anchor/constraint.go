// SPDX-License-Identifier: Unlicense OR MIT

package anchor

import "fmt"

// Priority is the strength of a constraint. A Required constraint must
// be satisfied exactly; lower priorities yield to higher ones.
type Priority float32

const (
	Required Priority = 1000
	High     Priority = 750
	Low      Priority = 250
)

// A Constraint pins its first anchor to its second, or, for dimension
// anchors, to a constant magnitude. Constant and Priority may be
// adjusted at any time; the active flag decides whether the layout
// engine considers the constraint at all.
type Constraint struct {
	first  *Anchor
	second *Anchor

	Constant float32
	Priority Priority

	active bool
}

// First returns the constrained anchor.
func (c *Constraint) First() *Anchor {
	return c.first
}

// Second returns the anchor the first is pinned to, or nil for
// constant constraints.
func (c *Constraint) Second() *Anchor {
	return c.second
}

// Active reports whether the constraint participates in layout.
func (c *Constraint) Active() bool {
	return c.active
}

// SetActive sets the active flag.
func (c *Constraint) SetActive(active bool) {
	c.active = active
}

// Activate marks the constraint active.
func (c *Constraint) Activate() {
	c.active = true
}

// Deactivate marks the constraint inactive.
func (c *Constraint) Deactivate() {
	c.active = false
}

func (c *Constraint) String() string {
	if c.second == nil {
		return fmt.Sprintf("%v.%v = %g", c.first.box, c.first.attr, c.Constant)
	}
	return fmt.Sprintf("%v.%v = %v.%v %+g", c.first.box, c.first.attr, c.second.box, c.second.attr, c.Constant)
}

// Activate marks every non-nil constraint in cs active. Nil entries
// are skipped so optional result slots can be passed through.
func Activate(cs ...*Constraint) {
	for _, c := range cs {
		if c != nil {
			c.active = true
		}
	}
}

// Deactivate marks every non-nil constraint in cs inactive.
func Deactivate(cs ...*Constraint) {
	for _, c := range cs {
		if c != nil {
			c.active = false
		}
	}
}
