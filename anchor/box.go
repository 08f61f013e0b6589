// SPDX-License-Identifier: Unlicense OR MIT

package anchor

import "pinui.org/geom"

// Box is any entity that can take part in constraints: a rendering
// View or a non-rendering Guide. The ten accessors return the box's
// anchors; a given accessor returns the same *Anchor on every call.
type Box interface {
	Top() *Anchor
	Leading() *Anchor
	Trailing() *Anchor
	Bottom() *Anchor
	FirstBaseline() *Anchor
	LastBaseline() *Anchor
	CenterX() *Anchor
	CenterY() *Anchor
	Width() *Anchor
	Height() *Anchor
}

// FrameTranslator is the capability of boxes that can derive layout
// from an explicit frame instead of constraints. Frame translation
// must be off before constraints on the box take effect; package pin
// turns it off as a side effect of every pin operation.
type FrameTranslator interface {
	TranslatesFrameToConstraints() bool
	SetTranslatesFrameToConstraints(bool)
}

// anchors indexes by Attribute.
type anchors [Height + 1]Anchor

func (a *anchors) init(b Box) {
	for i := range a {
		a[i] = Anchor{box: b, attr: Attribute(i)}
	}
}

// A View is a rendering box. Its Frame positions it while frame
// translation is on; once any pin operation targets the view the
// frame is ignored in favor of constraints.
type View struct {
	name       string
	anchors    anchors
	translates bool

	Frame geom.Rect
}

// NewView returns a view with frame translation on.
func NewView(name string) *View {
	v := &View{name: name, translates: true}
	v.anchors.init(v)
	return v
}

// Name returns the name the view was created with.
func (v *View) Name() string {
	return v.name
}

func (v *View) String() string {
	return v.name
}

func (v *View) Top() *Anchor           { return &v.anchors[Top] }
func (v *View) Leading() *Anchor       { return &v.anchors[Leading] }
func (v *View) Trailing() *Anchor      { return &v.anchors[Trailing] }
func (v *View) Bottom() *Anchor        { return &v.anchors[Bottom] }
func (v *View) FirstBaseline() *Anchor { return &v.anchors[FirstBaseline] }
func (v *View) LastBaseline() *Anchor  { return &v.anchors[LastBaseline] }
func (v *View) CenterX() *Anchor       { return &v.anchors[CenterX] }
func (v *View) CenterY() *Anchor       { return &v.anchors[CenterY] }
func (v *View) Width() *Anchor         { return &v.anchors[Width] }
func (v *View) Height() *Anchor        { return &v.anchors[Height] }

// TranslatesFrameToConstraints reports whether the view still derives
// layout from its Frame.
func (v *View) TranslatesFrameToConstraints() bool {
	return v.translates
}

// SetTranslatesFrameToConstraints sets the frame translation mode.
func (v *View) SetTranslatesFrameToConstraints(t bool) {
	v.translates = t
}

// A Guide is a non-rendering box used to shape layout without drawing
// anything. Guides have no frame and no translation mode.
type Guide struct {
	name    string
	anchors anchors
}

// NewGuide returns a layout guide.
func NewGuide(name string) *Guide {
	g := &Guide{name: name}
	g.anchors.init(g)
	return g
}

// Name returns the name the guide was created with.
func (g *Guide) Name() string {
	return g.name
}

func (g *Guide) String() string {
	return g.name
}

func (g *Guide) Top() *Anchor           { return &g.anchors[Top] }
func (g *Guide) Leading() *Anchor       { return &g.anchors[Leading] }
func (g *Guide) Trailing() *Anchor      { return &g.anchors[Trailing] }
func (g *Guide) Bottom() *Anchor        { return &g.anchors[Bottom] }
func (g *Guide) FirstBaseline() *Anchor { return &g.anchors[FirstBaseline] }
func (g *Guide) LastBaseline() *Anchor  { return &g.anchors[LastBaseline] }
func (g *Guide) CenterX() *Anchor       { return &g.anchors[CenterX] }
func (g *Guide) CenterY() *Anchor       { return &g.anchors[CenterY] }
func (g *Guide) Width() *Anchor         { return &g.anchors[Width] }
func (g *Guide) Height() *Anchor        { return &g.anchors[Height] }
